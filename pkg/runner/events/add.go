package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
)

// Add posts one extracted event to the user's calendar through the backend.
type Add struct {
	ID     string
	Client *client.Client
}

func (n *Add) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not add event, no client")
	}
	if n.ID == "" {
		return errors.New("requires an event id")
	}

	r, err := find(ctx, n.Client, n.ID)
	if err != nil {
		return err
	}

	details := client.EventData{
		Title:       r.Title,
		Description: r.Summary,
		StartTime:   r.Timestamp.UTC().Format(time.RFC3339),
		EndTime:     r.End.UTC().Format(time.RFC3339),
		Location:    r.Location,
		Attendees:   r.Attendees,
	}
	if err := n.Client.AddCalendarEvent(ctx, details); err != nil {
		return err
	}
	fmt.Printf("added %q to your calendar\n", r.Title)
	return nil
}
