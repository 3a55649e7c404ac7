package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joshua-takyi/eventsphere/internal/models"
)

const maxBodySize = 8 << 20

// Client talks to the EventSphere REST API. Every call is a single
// request: no retries, no caching, no pagination.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getList(ctx, "/api/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListComments(ctx context.Context, eventID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.getList(ctx, "/api/event_comments/event/"+url.PathEscape(eventID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) ListCollaborators(ctx context.Context, eventID string) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	if err := c.getList(ctx, "/api/event_collaborators/event/"+url.PathEscape(eventID), &collaborators); err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (c *Client) ListPartners(ctx context.Context, eventID string) ([]models.Partner, error) {
	var partners []models.Partner
	if err := c.getList(ctx, "/api/event_partners/event/"+url.PathEscape(eventID), &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func (c *Client) PostComment(ctx context.Context, eventID, content string) (*models.Comment, error) {
	var comment models.Comment
	body := models.NewComment{EventID: eventID, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/event_comments", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) CreateClient(ctx context.Context, form models.ClientForm) error {
	return c.do(ctx, http.MethodPost, "/api/clients", form, nil)
}

func (c *Client) CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.getList(ctx, "/api/currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getList(ctx, "/api/event_categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getList(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// getList decodes a GET response that must be a JSON array.
func (c *Client) getList(ctx context.Context, path string, out interface{}) error {
	data, err := c.roundTrip(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return &FormatError{Path: path, Reason: "expected a JSON array"}
	}
	if err := sonic.Unmarshal(trimmed, out); err != nil {
		return &FormatError{Path: path, Reason: err.Error()}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		var err error
		body, err = sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
	}
	data, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return &FormatError{Path: path, Reason: err.Error()}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}

	c.logger.Debug("remote api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(data),
		}
	}
	return data, nil
}

func serverMessage(data []byte) string {
	var payload struct {
		Error   interface{} `json:"error"`
		Message string      `json:"message"`
	}
	if err := sonic.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	return payload.Message
}
