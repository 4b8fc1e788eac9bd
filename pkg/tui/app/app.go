// Package app composes the Mailmind views into one Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/components/metrics"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/components/recordlist"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/theme"
)

// view is the contract every tab satisfies.
type view interface {
	Title() string
	SetSize(width, height int)
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	Searching() bool
}

// Model is the root UI: a tab row over the five Mailmind views.
type Model struct {
	views  []view
	active int

	width  int
	height int
	theme  theme.Theme
}

// New builds the root model over the backend client.
func New(c *client.Client) *Model {
	history := func(d record.Domain) recordlist.FetchFn {
		return func(ctx context.Context) ([]record.Record, error) {
			emails, err := c.EmailHistory(ctx, 0)
			if err != nil {
				return nil, err
			}
			return record.FromHistory(emails, d), nil
		}
	}
	return &Model{
		views: []view{
			recordlist.NewModel("Agenda", record.DomainAgenda, history(record.DomainAgenda)),
			recordlist.NewModel("Events", record.DomainEvent, history(record.DomainEvent)),
			recordlist.NewModel("Mails", record.DomainMail, history(record.DomainMail)),
			recordlist.NewModel("Gist", record.DomainGist, history(record.DomainGist)),
			wrapMetrics(metrics.NewModel(func(ctx context.Context) (client.Summary, error) {
				return c.AnalyticsSummary(ctx)
			})),
		},
		theme: theme.Default(),
	}
}

// Run launches the Bubble Tea program.
func Run(c *client.Client) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. Every view starts loading immediately.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, v := range m.views {
			v.SetSize(m.width, m.height-2)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.views[m.active].Searching() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.active = (m.active + 1) % len(m.views)
				return m, nil
			case "shift+tab":
				m.active = (m.active + len(m.views) - 1) % len(m.views)
				return m, nil
			case "1", "2", "3", "4", "5":
				m.active = int(msg.String()[0] - '1')
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if _, cmd := m.views[m.active].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Fetch completions and other messages go to every view, each checks
	// its own domain and generation.
	for _, v := range m.views {
		if _, cmd := v.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	tabs := make([]string, 0, len(m.views))
	for i, v := range m.views {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if i == m.active {
			tabs = append(tabs, m.theme.Tabs.Active.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tabs.Inactive.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	body := m.views[m.active].View()
	return header + "\n" + strings.TrimRight(body, "\n"), nil
}

// metricsView adapts the analytics panel to the view contract.
type metricsView struct {
	*metrics.Model
}

func wrapMetrics(m *metrics.Model) view { return metricsView{m} }

func (metricsView) Searching() bool { return false }
