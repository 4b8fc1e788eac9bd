package events

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

const calendarStamp = "20060102T150405Z"

// Open prints the calendar link for one event. When the processor did not
// attach a link, a Google Calendar template URL is built from the event
// fields.
type Open struct {
	ID     string
	Client *client.Client
}

func (n *Open) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not open event, no client")
	}
	if n.ID == "" {
		return errors.New("requires an event id")
	}

	r, err := find(ctx, n.Client, n.ID)
	if err != nil {
		return err
	}
	fmt.Println(CalendarURL(r))
	return nil
}

// CalendarURL resolves the link for an event record.
func CalendarURL(r record.Record) string {
	if r.CalendarLink != "" {
		return r.CalendarLink
	}
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", r.Title)
	q.Set("dates", fmt.Sprintf("%s/%s",
		r.Timestamp.UTC().Format(calendarStamp),
		r.End.UTC().Format(calendarStamp)))
	q.Set("details", r.Summary)
	q.Set("location", r.Location)
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
