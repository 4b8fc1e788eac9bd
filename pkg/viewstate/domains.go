package viewstate

import (
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// ForDomain returns the pipeline configuration each view instantiates the
// shared engine with.
func ForDomain(d record.Domain) Config {
	switch d {
	case record.DomainEvent:
		return Config{
			Domain:    d,
			Ascending: true,
			Predicates: func(sel Selection, now time.Time) []pipeline.Predicate {
				return []pipeline.Predicate{pipeline.Window(sel.Filter, now)}
			},
		}
	case record.DomainMail:
		return Config{
			Domain: d,
			Predicates: func(sel Selection, _ time.Time) []pipeline.Predicate {
				return []pipeline.Predicate{pipeline.Type(sel.Filter)}
			},
		}
	case record.DomainGist:
		return Config{
			Domain: d,
			Predicates: func(sel Selection, _ time.Time) []pipeline.Predicate {
				return []pipeline.Predicate{pipeline.Category(sel.Filter)}
			},
		}
	default:
		return Config{
			Domain: record.DomainAgenda,
			Predicates: func(sel Selection, _ time.Time) []pipeline.Predicate {
				return []pipeline.Predicate{pipeline.Focus(sel.Filter)}
			},
		}
	}
}

// Filters lists the cycle order of filter values per domain, used by the
// interactive UI's filter toggle.
func Filters(d record.Domain) []string {
	switch d {
	case record.DomainEvent:
		return []string{pipeline.All, pipeline.WindowToday, pipeline.WindowThisWeek, pipeline.WindowUpcoming}
	case record.DomainMail:
		return []string{pipeline.All, "events", "spam", "regular"}
	case record.DomainGist:
		return []string{pipeline.All, "work", "personal", "newsletter", "billing", "security"}
	default:
		return []string{pipeline.All, pipeline.FocusImportant, pipeline.FocusActionRequired, pipeline.FocusFollowUp}
	}
}
