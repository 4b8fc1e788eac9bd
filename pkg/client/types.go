package client

import (
	"bytes"
	"encoding/json"
)

// ID accepts both string and numeric identifiers, the backend has shipped
// both shapes over time.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Email is one processed-mail record as returned by /emails/history. All
// fields besides the id are optional upstream.
type Email struct {
	ID             ID         `json:"id"`
	Subject        string     `json:"subject,omitempty"`
	Title          string     `json:"title,omitempty"`
	Sender         string     `json:"sender,omitempty"`
	SenderName     string     `json:"sender_name,omitempty"`
	Date           string     `json:"date,omitempty"`
	ProcessedAt    string     `json:"processed_at,omitempty"`
	AISummary      string     `json:"ai_summary,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Category       string     `json:"category,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	ActionRequired bool       `json:"action_required,omitempty"`
	FollowUp       bool       `json:"follow_up,omitempty"`
	Read           bool       `json:"read,omitempty"`
	Starred        bool       `json:"starred,omitempty"`
	EventExtracted bool       `json:"event_extracted,omitempty"`
	SpamDetected   bool       `json:"spam_detected,omitempty"`
	EventData      *EventData `json:"event_data,omitempty"`
	Analysis       *Analysis  `json:"analysis,omitempty"`
	SpamScore      float64    `json:"spam_score,omitempty"`
	ProcessingTime float64    `json:"processing_time,omitempty"`
}

// Analysis is the older envelope for extracted event details. Both shapes
// are still produced by deployed processors, so both are accepted.
type Analysis struct {
	EventDetails *EventData `json:"event_details,omitempty"`
}

// EventData carries the calendar details extracted from an event mail.
type EventData struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
	Location     string   `json:"location,omitempty"`
	Attendees    []string `json:"attendees,omitempty"`
	CalendarLink string   `json:"calendar_link,omitempty"`
	Status       string   `json:"status,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// Details resolves the event payload regardless of which envelope the
// processor used.
func (e *Email) Details() *EventData {
	if e == nil {
		return nil
	}
	if e.EventData != nil {
		return e.EventData
	}
	if e.Analysis != nil {
		return e.Analysis.EventDetails
	}
	return nil
}

// Summary is the aggregate returned by /analytics/summary.
type Summary struct {
	TotalEmailsProcessed int     `json:"total_emails_processed"`
	SpamDetected         int     `json:"spam_detected"`
	EventsExtracted      int     `json:"events_extracted"`
	AverageUrgency       float64 `json:"average_urgency"`
	ProcessingTime       float64 `json:"processing_time"`
}

type historyResponse struct {
	Success bool    `json:"success"`
	Emails  []Email `json:"emails"`
	Error   string  `json:"error,omitempty"`
}

type summaryResponse struct {
	Success bool    `json:"success"`
	Summary Summary `json:"summary"`
	Error   string  `json:"error,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type authResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}
