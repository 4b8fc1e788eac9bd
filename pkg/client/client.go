package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// DefaultHistoryLimit matches the backend's default page size.
const DefaultHistoryLimit = 50

// Config selects the backend endpoint and the credential presented with
// every request.
type Config struct {
	BaseURL string
	Token   string
}

// Client is the remote fetch gateway for the Mailmind backend. It maps
// transport failures and success=false payloads onto the error taxonomy in
// errors.go and performs no retries.
type Client struct {
	http *resty.Client
}

func New(cfg Config) *Client {
	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}
	return &Client{http: r}
}

// EmailHistory fetches the processed mail history, newest first.
func (c *Client) EmailHistory(ctx context.Context, limit int) ([]Email, error) {
	const op = "fetch email history"
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&historyResponse{}).
		SetError(&statusResponse{}).
		Get("/emails/history")
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if err := c.check(op, resp); err != nil {
		return nil, err
	}
	out := resp.Result().(*historyResponse)
	if !out.Success {
		return nil, &PayloadError{Op: op, Message: payloadMessage(out.Error)}
	}
	return out.Emails, nil
}

// AnalyticsSummary fetches the per-user processing aggregates.
func (c *Client) AnalyticsSummary(ctx context.Context) (Summary, error) {
	const op = "fetch analytics summary"
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&summaryResponse{}).
		SetError(&statusResponse{}).
		Get("/analytics/summary")
	if err != nil {
		return Summary{}, &TransportError{Op: op, Err: err}
	}
	if err := c.check(op, resp); err != nil {
		return Summary{}, err
	}
	out := resp.Result().(*summaryResponse)
	if !out.Success {
		return Summary{}, &PayloadError{Op: op, Message: payloadMessage(out.Error)}
	}
	return out.Summary, nil
}

// AddCalendarEvent asks the backend to create the event on the user's
// calendar.
func (c *Client) AddCalendarEvent(ctx context.Context, details EventData) error {
	const op = "add calendar event"
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"event_details": details}).
		SetResult(&statusResponse{}).
		SetError(&statusResponse{}).
		Post("/calendar/add-event")
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if err := c.check(op, resp); err != nil {
		return err
	}
	out := resp.Result().(*statusResponse)
	if !out.Success {
		return &PayloadError{Op: op, Message: payloadMessage(out.Error)}
	}
	return nil
}

// Health reports the backend health status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	const op = "health check"
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&healthResponse{}).
		Get("/health")
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return "", &TransportError{Op: op, Status: resp.StatusCode()}
	}
	return resp.Result().(*healthResponse).Status, nil
}

// Login authenticates against the auth collaborator and returns the user id.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	return c.auth(ctx, "login", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates a new account and returns the user id.
func (c *Client) Register(ctx context.Context, fields map[string]string) (string, error) {
	return c.auth(ctx, "register", "/auth/register", fields)
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.auth(ctx, "logout", "/auth/logout", nil)
	return err
}

func (c *Client) auth(ctx context.Context, op, path string, body map[string]string) (string, error) {
	req := c.http.R().
		SetContext(ctx).
		SetResult(&authResponse{}).
		SetError(&authResponse{})
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		// Login rejections also come back as 401, surface the backend
		// message rather than the generic session error.
		if out, ok := resp.Error().(*authResponse); ok && out.Error != "" {
			return "", &PayloadError{Op: op, Message: out.Error}
		}
		return "", ErrUnauthorized
	}
	if !resp.IsSuccess() {
		if out, ok := resp.Error().(*authResponse); ok && out.Error != "" {
			return "", &PayloadError{Op: op, Message: out.Error}
		}
		return "", &TransportError{Op: op, Status: resp.StatusCode()}
	}
	out := resp.Result().(*authResponse)
	if !out.Success {
		return "", &PayloadError{Op: op, Message: payloadMessage(out.Error)}
	}
	return out.UserID, nil
}

func (c *Client) check(op string, resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return &TransportError{Op: op, Status: resp.StatusCode()}
	}
	return nil
}
