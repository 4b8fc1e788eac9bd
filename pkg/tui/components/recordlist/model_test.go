package recordlist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/viewstate"
)

func fetchWith(records []record.Record, err error) FetchFn {
	return func(context.Context) ([]record.Record, error) {
		return records, err
	}
}

func fixedClock(t time.Time) viewstate.Option {
	return viewstate.WithClock(func() time.Time { return t })
}

func loaded(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a fetch command")
	}
	msg, ok := cmd().(LoadedMsg)
	if !ok {
		t.Fatalf("expected a loaded message")
	}
	if _, c := m.Update(msg); c != nil {
		t.Fatalf("expected no follow-up command")
	}
}

func TestViewShowsLoadingBeforeFirstFetchResolves(t *testing.T) {
	m := NewModel("Agenda", record.DomainAgenda, fetchWith(nil, nil))
	m.SetSize(60, 20)
	_ = m.Init()

	if !strings.Contains(m.View(), "Loading agenda") {
		t.Fatalf("expected loading text, got:\n%s", m.View())
	}
}

func TestViewRendersGroupedRecords(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	m := NewModel("Agenda", record.DomainAgenda, fetchWith([]record.Record{
		{ID: "1", Title: "Invoice due", Sender: "billing@corp.example", Timestamp: now},
	}, nil), fixedClock(now))
	m.SetSize(80, 20)
	loaded(t, m, m.Init())

	view := m.View()
	if !strings.Contains(view, "March 14, 2026") {
		t.Fatalf("expected day header, got:\n%s", view)
	}
	if !strings.Contains(view, "Invoice due") {
		t.Fatalf("expected record title, got:\n%s", view)
	}
}

func TestViewShowsErrorWithRetryHint(t *testing.T) {
	m := NewModel("Agenda", record.DomainAgenda, fetchWith(nil, errors.New("boom")))
	m.SetSize(60, 20)
	loaded(t, m, m.Init())

	view := m.View()
	if !strings.Contains(view, "boom") {
		t.Fatalf("expected error message, got:\n%s", view)
	}
	if !strings.Contains(view, "press r to try again") {
		t.Fatalf("expected retry hint, got:\n%s", view)
	}
}

func TestRefreshKeyRetriesAfterError(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	calls := 0
	m := NewModel("Agenda", record.DomainAgenda, func(context.Context) ([]record.Record, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return []record.Record{{ID: "1", Title: "Back online", Timestamp: now}}, nil
	}, fixedClock(now))
	m.SetSize(80, 20)
	loaded(t, m, m.Init())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	loaded(t, m, cmd)

	if !strings.Contains(m.View(), "Back online") {
		t.Fatalf("expected recovery, got:\n%s", m.View())
	}
}

func TestFilterKeyCyclesSelection(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	m := NewModel("Agenda", record.DomainAgenda, fetchWith([]record.Record{
		{ID: "1", Title: "Urgent", Priority: record.PriorityHigh, Timestamp: now},
		{ID: "2", Title: "Routine", Priority: record.PriorityMedium, Timestamp: now},
	}, nil), fixedClock(now))
	m.SetSize(80, 20)
	loaded(t, m, m.Init())

	if m.Store().VisibleCount() != 2 {
		t.Fatalf("expected both records before filtering, got %d", m.Store().VisibleCount())
	}

	_, _ = m.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	if m.Store().Selection().Filter != "important" {
		t.Fatalf("expected important filter, got %q", m.Store().Selection().Filter)
	}
	if m.Store().VisibleCount() != 1 {
		t.Fatalf("expected one important record, got %d", m.Store().VisibleCount())
	}
}

func TestSearchInputFiltersLive(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	m := NewModel("Agenda", record.DomainAgenda, fetchWith([]record.Record{
		{ID: "1", Title: "Invoice due", Timestamp: now},
		{ID: "2", Title: "Standup notes", Timestamp: now},
	}, nil), fixedClock(now))
	m.SetSize(80, 20)
	loaded(t, m, m.Init())

	_, _ = m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !m.Searching() {
		t.Fatalf("expected search to own the keyboard")
	}

	for _, r := range "invoice" {
		_, _ = m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if m.Store().VisibleCount() != 1 {
		t.Fatalf("expected live narrowing, got %d visible", m.Store().VisibleCount())
	}

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Searching() {
		t.Fatalf("expected enter to commit the search")
	}
	if m.Store().Selection().Search != "invoice" {
		t.Fatalf("expected term kept after commit, got %q", m.Store().Selection().Search)
	}

	_, _ = m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Store().Selection().Search != "" {
		t.Fatalf("expected escape to clear the search, got %q", m.Store().Selection().Search)
	}
	if m.Store().VisibleCount() != 2 {
		t.Fatalf("expected everything back, got %d", m.Store().VisibleCount())
	}
}

func TestConcurrentRefreshIgnored(t *testing.T) {
	m := NewModel("Agenda", record.DomainAgenda, fetchWith(nil, nil))
	m.SetSize(60, 20)

	if cmd := m.Refresh(); cmd == nil {
		t.Fatalf("expected first refresh to start")
	}
	if cmd := m.Refresh(); cmd != nil {
		t.Fatalf("expected second refresh to be ignored while in flight")
	}
}

func TestStaleCompletionDropped(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	m := NewModel("Agenda", record.DomainAgenda, fetchWith(nil, nil), fixedClock(now))
	m.SetSize(60, 20)

	first, _ := m.Store().Begin()
	m.Store().Finish(first, nil, errors.New("boom"))
	second, _ := m.Store().Begin()

	_, _ = m.Update(LoadedMsg{
		Domain:     record.DomainAgenda,
		Generation: first,
		Records:    []record.Record{{ID: "zombie", Title: "Zombie", Timestamp: now}},
	})
	if m.Store().Phase() != viewstate.PhaseLoading {
		t.Fatalf("expected stale completion dropped, got %v", m.Store().Phase())
	}

	_, _ = m.Update(LoadedMsg{Domain: record.DomainAgenda, Generation: second})
	if m.Store().Phase() != viewstate.PhaseReady {
		t.Fatalf("expected fresh completion applied, got %v", m.Store().Phase())
	}
}

func TestLoadedMsgForOtherDomainIgnored(t *testing.T) {
	m := NewModel("Agenda", record.DomainAgenda, fetchWith(nil, nil))
	gen, _ := m.Store().Begin()

	_, _ = m.Update(LoadedMsg{Domain: record.DomainMail, Generation: gen})
	if m.Store().Phase() != viewstate.PhaseLoading {
		t.Fatalf("expected foreign completion ignored, got %v", m.Store().Phase())
	}
}
