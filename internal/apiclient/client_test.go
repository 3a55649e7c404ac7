package apiclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestListEvents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/events" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[{"id": 1, "title": "Jazz Night", "description": "...", "status": ""}]`))
	})

	events, err := c.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 || events[0].ID != "1" || events[0].Title != "Jazz Night" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestListEventsRejectsNonArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": []}`))
	})

	_, err := c.ListEvents(context.Background())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestServerErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "title is required"}`))
	})

	_, err := c.ListEvents(context.Background())
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusUnprocessableEntity || se.Message != "title is required" {
		t.Errorf("unexpected server error: %+v", se)
	}
	if got := UserMessage(err, "generic"); got != "title is required" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c, err := New(srv.URL, time.Second, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.ListComments(context.Background(), "1")
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if got := UserMessage(err, "generic"); got != "Unable to reach the server" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestDetailPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[]`))
	})
	ctx := context.Background()
	if _, err := c.ListComments(ctx, "7"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListCollaborators(ctx, "7"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListPartners(ctx, "7"); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"/api/event_comments/event/7",
		"/api/event_collaborators/event/7",
		"/api/event_partners/event/7",
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestPostComment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/event_comments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"event_id":"3"`) || !strings.Contains(string(body), `"content":"Great!"`) {
			t.Errorf("unexpected body %s", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 10, "event_id": 3, "content": "Great!", "created_at": "2024-01-01T10:00:00Z"}`))
	})

	comment, err := c.PostComment(context.Background(), "3", "Great!")
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if comment.ID != "10" || comment.EventID != "3" {
		t.Errorf("unexpected comment: %+v", comment)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New("localhost:3001", time.Second, nil); err == nil {
		t.Error("expected error for url without scheme")
	}
}
