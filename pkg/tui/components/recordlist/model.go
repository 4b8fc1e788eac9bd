// Package recordlist renders one view's grouped records with live search,
// filter cycling, and sort cycling. Every Mailmind view is an instance of
// this component over a different domain.
package recordlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/glyph"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/timeutil"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/theme"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/viewstate"
)

// FetchFn loads the raw records for this view.
type FetchFn func(ctx context.Context) ([]record.Record, error)

// LoadedMsg resolves a fetch started by this component.
type LoadedMsg struct {
	Domain     record.Domain
	Generation int
	Records    []record.Record
	Err        error
}

// Model is one view instance: a view-state store plus its presentation.
type Model struct {
	title  string
	domain record.Domain
	store  *viewstate.Store
	fetch  FetchFn
	theme  theme.Theme

	filters   []string
	filterIdx int
	sortKeys  []pipeline.SortKey
	sortIdx   int

	search    textinput.Model
	searching bool

	width  int
	height int
	scroll int
}

// NewModel builds a view over the given domain.
func NewModel(title string, domain record.Domain, fetch FetchFn, opts ...viewstate.Option) *Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"

	return &Model{
		title:    title,
		domain:   domain,
		store:    viewstate.New(viewstate.ForDomain(domain), opts...),
		fetch:    fetch,
		theme:    theme.Default(),
		filters:  viewstate.Filters(domain),
		sortKeys: []pipeline.SortKey{pipeline.SortDate, pipeline.SortSender, pipeline.SortSubject, pipeline.SortType},
		search:   search,
	}
}

// Title is the tab label.
func (m *Model) Title() string { return m.title }

// Store exposes the underlying view-state machine.
func (m *Model) Store() *viewstate.Store { return m.store }

// Searching reports whether the search input currently owns the keyboard.
func (m *Model) Searching() bool { return m.searching }

// SetSize updates the render area.
func (m *Model) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	m.width = width
	m.height = height
	m.search.SetWidth(width - 4)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.Refresh() }

// Refresh starts a fetch unless one is already in flight.
func (m *Model) Refresh() tea.Cmd {
	generation, ok := m.store.Begin()
	if !ok {
		return nil
	}
	fetch := m.fetch
	domain := m.domain
	return func() tea.Msg {
		records, err := fetch(context.Background())
		return LoadedMsg{Domain: domain, Generation: generation, Records: records, Err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Domain == m.domain {
			m.store.Finish(msg.Generation, msg.Records, msg.Err)
			m.scroll = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(m.filters)
			m.store.SetFilter(m.filters[m.filterIdx])
			m.scroll = 0
		case "s":
			m.sortIdx = (m.sortIdx + 1) % len(m.sortKeys)
			m.store.SetSort(m.sortKeys[m.sortIdx])
		case "r":
			return m, m.Refresh()
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		}
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.store.SetSearch("")
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearch(m.search.Value())
	m.scroll = 0
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.store.Phase() {
	case viewstate.PhaseLoading:
		return m.theme.List.Empty.Render(fmt.Sprintf("Loading %s...", strings.ToLower(m.title)))
	case viewstate.PhaseError:
		return m.errorPanel()
	}

	lines := m.lines()
	if len(lines) == 0 {
		lines = []string{m.theme.List.Empty.Render("nothing to show")}
	}
	if m.scroll > len(lines)-1 {
		m.scroll = len(lines) - 1
	}
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	end := m.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[m.scroll:end], "\n")
	return body + "\n" + m.footer()
}

func (m *Model) errorPanel() string {
	msg := m.theme.Error.Message.Render(m.store.Message())
	hint := m.theme.Error.Hint.Render("press r to try again")
	return m.theme.Error.Frame.Render(msg + "\n\n" + hint)
}

func (m *Model) lines() []string {
	grouped := m.store.Groups()
	var out []string
	for _, g := range grouped.Groups {
		header := m.theme.List.DayHeader.Render(g.Key) + " " +
			m.theme.List.Count.Render(fmt.Sprintf("- %d items", len(g.Records)))
		out = append(out, header)
		for i := range g.Records {
			out = append(out, m.recordLines(&g.Records[i])...)
		}
		out = append(out, "")
	}
	if n := len(grouped.Skipped); n > 0 {
		out = append(out, m.theme.List.Empty.Render(
			fmt.Sprintf("%d records hidden (no usable date)", n)))
	}
	return out
}

func (m *Model) recordLines(r *record.Record) []string {
	mark := theme.PriorityStyle(r.Priority).Render(glyph.Priority(string(r.Priority)).Symbol)
	if m.domain == record.DomainMail {
		mark = theme.TypeStyle(r.Type).Render(glyph.MailType(string(r.Type)).Symbol) + " " + mark
	}
	when := r.Timestamp.Local().Format("15:04")
	if m.domain == record.DomainEvent {
		when = timeutil.ClockRange(r.Timestamp, r.End)
	}
	head := fmt.Sprintf("  %s %s  %s  %s", mark,
		m.theme.List.Count.Render(when),
		m.theme.List.Sender.Render(r.Sender),
		m.theme.List.Title.Render(r.Title))
	out := []string{head}

	summaryWidth := m.width - 6
	if summaryWidth > 10 {
		for _, l := range strings.Split(wordwrap.String(r.Summary, summaryWidth), "\n") {
			out = append(out, "      "+m.theme.List.Summary.Render(l))
		}
	}
	if r.Location != "" {
		out = append(out, "      "+m.theme.List.Summary.Render("at "+r.Location))
	}
	return out
}

func (m *Model) footer() string {
	if m.searching {
		return m.theme.Status.Search.Render(m.search.View())
	}
	sel := m.store.Selection()
	parts := []string{
		fmt.Sprintf("filter:%s", m.theme.Status.Filter.Render(sel.Filter)),
		fmt.Sprintf("sort:%s", string(sel.Sort)),
		fmt.Sprintf("%d items", m.store.VisibleCount()),
	}
	if sel.Search != "" {
		parts = append(parts, fmt.Sprintf("search:%q", sel.Search))
	}
	bar := m.theme.Status.Bar.Render(strings.Join(parts, "  ") + "   / search · f filter · s sort · r refresh")
	return lipgloss.NewStyle().Width(m.width).Render(bar)
}
