// Package metrics renders the analytics summary panel.
package metrics

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/theme"
)

// FetchFn loads the analytics summary.
type FetchFn func(ctx context.Context) (client.Summary, error)

// LoadedMsg resolves a summary fetch.
type LoadedMsg struct {
	Generation int
	Summary    client.Summary
	Err        error
}

type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseError
)

// Model holds the analytics view state. It follows the same
// Loading/Ready/Error lifecycle as the record views, the payload is just a
// single aggregate instead of a list.
type Model struct {
	fetch FetchFn
	theme theme.Theme

	state      phase
	summary    client.Summary
	message    string
	generation int
	inflight   bool

	width  int
	height int
}

func NewModel(fetch FetchFn) *Model {
	return &Model{fetch: fetch, theme: theme.Default()}
}

func (m *Model) Title() string { return "Analytics" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.Refresh() }

// Refresh starts a fetch unless one is in flight.
func (m *Model) Refresh() tea.Cmd {
	if m.inflight {
		return nil
	}
	m.inflight = true
	m.generation++
	m.state = phaseLoading
	generation := m.generation
	fetch := m.fetch
	return func() tea.Msg {
		summary, err := fetch(context.Background())
		return LoadedMsg{Generation: generation, Summary: summary, Err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.inflight = false
		if msg.Err != nil {
			m.state = phaseError
			m.message = msg.Err.Error()
			return m, nil
		}
		m.state = phaseReady
		m.summary = msg.Summary
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Refresh()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.state {
	case phaseLoading:
		return m.theme.List.Empty.Render("Loading analytics...")
	case phaseError:
		msg := m.theme.Error.Message.Render(m.message)
		hint := m.theme.Error.Hint.Render("press r to try again")
		return m.theme.Error.Frame.Render(msg + "\n\n" + hint)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Emails Processed", fmt.Sprintf("%d", m.summary.TotalEmailsProcessed)},
		{"Spam Detected", fmt.Sprintf("%d", m.summary.SpamDetected)},
		{"Events Extracted", fmt.Sprintf("%d", m.summary.EventsExtracted)},
		{"Average Urgency", fmt.Sprintf("%.1f", m.summary.AverageUrgency)},
		{"Processing Time", fmt.Sprintf("%.1fs", m.summary.ProcessingTime)},
	}
	out := ""
	for _, row := range rows {
		out += fmt.Sprintf("%s  %s\n",
			m.theme.List.DayHeader.Render(fmt.Sprintf("%-18s", row.label)),
			m.theme.List.Count.Render(row.value))
	}
	return out
}
