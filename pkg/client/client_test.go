package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmailHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails/history" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "25" {
			t.Fatalf("expected limit 25, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"emails":[{"id":1,"subject":"hi"},{"id":"abc"}]}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	emails, err := c.EmailHistory(context.Background(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(emails))
	}
	if emails[0].ID.String() != "1" {
		t.Fatalf("expected numeric id coerced to string, got %q", emails[0].ID)
	}
	if emails[1].ID.String() != "abc" {
		t.Fatalf("expected string id kept, got %q", emails[1].ID)
	}
}

func TestEmailHistoryDefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Fatalf("expected default limit, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"emails":[]}`))
	}))
	defer srv.Close()

	if _, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmailHistoryPayloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0)
	var pe *PayloadError
	if !errors.As(err, &pe) {
		t.Fatalf("expected payload error, got %v", err)
	}
	if pe.Message != "boom" {
		t.Fatalf("expected backend message surfaced, got %q", pe.Message)
	}
}

func TestEmailHistoryPayloadFailureWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0)
	if err == nil || !strings.Contains(err.Error(), "backend reported a failure") {
		t.Fatalf("expected generic failure message, got %v", err)
	}
}

func TestEmailHistoryUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestEmailHistoryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if te.Status != http.StatusInternalServerError {
		t.Fatalf("expected status recorded, got %d", te.Status)
	}
}

func TestEmailHistoryConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).EmailHistory(context.Background(), 0)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if te.Err == nil {
		t.Fatalf("expected underlying error kept")
	}
}

func TestAddCalendarEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/add-event" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			EventDetails EventData `json:"event_details"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.EventDetails.Title != "Standup" {
			t.Fatalf("expected event details in body, got %q", body.EventDetails.Title)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := New(Config{BaseURL: srv.URL}).AddCalendarEvent(context.Background(), EventData{Title: "Standup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyticsSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/summary" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"summary":{"total_emails_processed":12,"spam_detected":3,"events_extracted":4,"average_urgency":1.5,"processing_time":0.8}}`))
	}))
	defer srv.Close()

	s, err := New(Config{BaseURL: srv.URL}).AnalyticsSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalEmailsProcessed != 12 || s.SpamDetected != 3 || s.EventsExtracted != 4 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["email"] != "me@example.com" {
			t.Fatalf("expected email in body, got %q", body["email"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user_id":"u-1"}`))
	}))
	defer srv.Close()

	id, err := New(Config{BaseURL: srv.URL}).Login(context.Background(), "me@example.com", "secretword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "u-1" {
		t.Fatalf("expected user id, got %q", id)
	}
}

func TestLoginRejectedKeepsBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).Login(context.Background(), "me@example.com", "wrong")
	var pe *PayloadError
	if !errors.As(err, &pe) {
		t.Fatalf("expected payload error, got %v", err)
	}
	if pe.Message != "invalid credentials" {
		t.Fatalf("expected backend message, got %q", pe.Message)
	}
}

func TestAuthTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"emails":[]}`))
	}))
	defer srv.Close()

	if _, err := New(Config{BaseURL: srv.URL, Token: "tok-1"}).EmailHistory(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	status, err := New(Config{BaseURL: srv.URL}).Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "healthy" {
		t.Fatalf("expected healthy, got %q", status)
	}
}
