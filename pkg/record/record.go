package record

import (
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/glyph"
)

// Domain selects which view pipeline a record was normalized for.
type Domain string

const (
	DomainAgenda Domain = "agenda"
	DomainEvent  Domain = "event"
	DomainMail   Domain = "mail"
	DomainGist   Domain = "gist"
)

// Priority is the closed urgency enumeration. Unrecognized upstream values
// collapse to the default rather than leaking through.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func ParsePriority(v string) Priority {
	switch Priority(v) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(v)
	}
	return PriorityMedium
}

func (p Priority) Color() string { return glyph.Priority(string(p)).Color }

// Category is the closed mail category enumeration.
type Category string

const (
	CategoryWork       Category = "work"
	CategoryPersonal   Category = "personal"
	CategoryNewsletter Category = "newsletter"
	CategoryBilling    Category = "billing"
	CategorySecurity   Category = "security"
	CategoryEvent      Category = "event"
	CategoryGeneral    Category = "general"
)

func ParseCategory(v string) Category {
	switch Category(v) {
	case CategoryWork, CategoryPersonal, CategoryNewsletter,
		CategoryBilling, CategorySecurity, CategoryEvent, CategoryGeneral:
		return Category(v)
	}
	return CategoryGeneral
}

// Status is the extracted event status.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusTentative Status = "tentative"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(v string) Status {
	switch Status(v) {
	case StatusConfirmed, StatusTentative, StatusCancelled:
		return Status(v)
	}
	return StatusConfirmed
}

func (s Status) Color() string { return glyph.Status(string(s)).Color }

// MailType classifies a processed mail by what the processor found in it.
type MailType string

const (
	TypeEvent   MailType = "event"
	TypeSpam    MailType = "spam"
	TypeRegular MailType = "regular"
)

func (t MailType) Color() string { return glyph.MailType(string(t)).Color }

// Record is the canonical, default-populated view model every pipeline
// operates on. ID and Title are never empty, enum fields always hold a
// member of their enumeration, and Timestamp is either valid or zero (zero
// only for mail-side domains, see Normalize).
type Record struct {
	ID     string
	Domain Domain

	Title   string
	Sender  string
	Summary string

	Timestamp time.Time
	End       time.Time

	Priority Priority
	Category Category
	Status   Status
	Type     MailType
	Tags     []string

	Location     string
	Attendees    []string
	CalendarLink string

	ActionRequired bool
	FollowUp       bool
	Read           bool
	Starred        bool

	SpamScore      float64
	ProcessingTime float64

	// Raw points back at the backend record for "view original" actions.
	// It is traceability only, never mutated.
	Raw *client.Email
}
