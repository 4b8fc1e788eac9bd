// Package viewstate holds the per-view state machine every Mailmind view
// runs on: Loading -> Ready or Error, with Ready recomputing its render
// sequence whenever a selection changes and refresh re-entering Loading.
package viewstate

import (
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// Phase is the fetch lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	}
	return "loading"
}

// Selection is the user's current filter, search, and sort choice.
type Selection struct {
	Search string
	Filter string
	Sort   pipeline.SortKey
}

// Config parameterizes the shared pipeline for one view domain.
type Config struct {
	Domain record.Domain

	// Predicates builds the active predicate set for a selection. When
	// nil, only the search predicate over the domain's field set applies.
	Predicates func(sel Selection, now time.Time) []pipeline.Predicate

	// Ascending orders records oldest first inside each day group, the
	// calendar reading direction. Mail views read newest first.
	Ascending bool
}

// Store is the view-state machine. It is not safe for concurrent use, each
// view owns one and drives it from its own event loop.
type Store struct {
	cfg Config
	now func() time.Time

	phase   Phase
	message string

	sel     Selection
	records []record.Record
	grouped pipeline.Grouped
	visible int

	generation int
	inflight   bool
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the wall clock, for tests and temporal predicates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store in the Loading phase with an empty selection.
func New(cfg Config, opts ...Option) *Store {
	s := &Store{
		cfg:   cfg,
		now:   time.Now,
		phase: PhaseLoading,
		sel:   Selection{Filter: pipeline.All, Sort: pipeline.SortDate},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase reports the current lifecycle state.
func (s *Store) Phase() Phase { return s.phase }

// Message is the user-facing error text, empty outside PhaseError.
func (s *Store) Message() string { return s.message }

// Selection returns the active selections.
func (s *Store) Selection() Selection { return s.sel }

// Groups is the derived render sequence.
func (s *Store) Groups() pipeline.Grouped { return s.grouped }

// VisibleCount is the number of records surviving the active predicates,
// including ones hidden from grouping for lack of a date.
func (s *Store) VisibleCount() int { return s.visible }

// Begin enters Loading and hands out a fetch generation. It reports false
// when a fetch is already in flight, concurrent refresh triggers are
// ignored rather than raced.
func (s *Store) Begin() (int, bool) {
	if s.inflight {
		return 0, false
	}
	s.inflight = true
	s.generation++
	s.phase = PhaseLoading
	s.message = ""
	return s.generation, true
}

// Finish resolves the fetch started by Begin. Completions carrying a stale
// generation are dropped, which is what keeps an unmounted or superseded
// fetch from clobbering newer state.
func (s *Store) Finish(generation int, records []record.Record, err error) bool {
	if generation != s.generation {
		return false
	}
	s.inflight = false
	if err != nil {
		// The error state replaces any previously rendered list, stale
		// data and an error never mix.
		s.phase = PhaseError
		s.message = err.Error()
		s.records = nil
		s.grouped = pipeline.Grouped{}
		s.visible = 0
		return true
	}
	s.phase = PhaseReady
	s.records = records
	s.recompute()
	return true
}

// SetSearch updates the search term and recomputes synchronously, no fetch.
func (s *Store) SetSearch(term string) {
	s.sel.Search = term
	s.recompute()
}

// SetFilter updates the active filter and recomputes synchronously.
func (s *Store) SetFilter(filter string) {
	if filter == "" {
		filter = pipeline.All
	}
	s.sel.Filter = filter
	s.recompute()
}

// SetSort updates the sort key and recomputes synchronously.
func (s *Store) SetSort(key pipeline.SortKey) {
	s.sel.Sort = key
	s.recompute()
}

func (s *Store) recompute() {
	if s.phase != PhaseReady {
		return
	}
	now := s.now()
	preds := []pipeline.Predicate{
		pipeline.Search(s.sel.Search, pipeline.SearchFields(s.cfg.Domain)...),
	}
	if s.cfg.Predicates != nil {
		preds = append(preds, s.cfg.Predicates(s.sel, now)...)
	}
	filtered := pipeline.Apply(s.records, preds...)
	s.visible = len(filtered)

	var sorted []record.Record
	if s.cfg.Ascending {
		sorted = pipeline.SortAscending(filtered, s.sel.Sort)
	} else {
		sorted = pipeline.Sort(filtered, s.sel.Sort)
	}
	s.grouped = pipeline.GroupByDay(sorted)
}
