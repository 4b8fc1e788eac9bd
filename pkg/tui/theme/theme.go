package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/glyph"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabsTheme
	List   ListTheme
	Status StatusTheme
	Error  ErrorTheme
}

// TabsTheme styles the view switcher across the top.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// ListTheme styles the grouped record list.
type ListTheme struct {
	DayHeader lipgloss.Style
	Count     lipgloss.Style
	Sender    lipgloss.Style
	Title     lipgloss.Style
	Summary   lipgloss.Style
	Selected  lipgloss.Style
	Empty     lipgloss.Style
}

// StatusTheme styles the footer status/search bar.
type StatusTheme struct {
	Bar    lipgloss.Style
	Filter lipgloss.Style
	Search lipgloss.Style
}

// ErrorTheme styles the error panel.
type ErrorTheme struct {
	Frame   lipgloss.Style
	Message lipgloss.Style
	Hint    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Active:   lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		},
		List: ListTheme{
			DayHeader: lipgloss.NewStyle().Bold(true),
			Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Sender:    lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
			Title:     lipgloss.NewStyle(),
			Summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Status: StatusTheme{
			Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Search: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Error: ErrorTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Message: lipgloss.NewStyle().Foreground(lipgloss.Color(glyph.ColorHigh)).Bold(true),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// PriorityStyle colors text with the record's priority color.
func PriorityStyle(p record.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color()))
}

// TypeStyle colors text with the mail type color.
func TypeStyle(t record.MailType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color()))
}

// StatusStyle colors text with the event status color.
func StatusStyle(s record.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color()))
}
