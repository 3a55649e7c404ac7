package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joshua-takyi/eventsphere/internal/helpers"
	"github.com/joshua-takyi/eventsphere/internal/mailer"
	"github.com/joshua-takyi/eventsphere/internal/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCatalog struct {
	usersErr error
	created  *models.EventPayload
}

func (f *fakeCatalog) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	return []models.Currency{{ID: "3", Code: "EUR"}, {ID: "4", Code: "USD"}}, nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "8", Name: "Music"}}, nil
}

func (f *fakeCatalog) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return []models.User{{ID: "11"}}, nil
}

func (f *fakeCatalog) CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error) {
	f.created = &payload
	return &models.Event{ID: "100", Title: payload.Title}, nil
}

func TestReferenceDataDefaults(t *testing.T) {
	es := NewEventService(&fakeCatalog{}, quietLogger())
	rd, err := es.ReferenceData(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rd.DefaultCurrencyID != "3" || rd.DefaultCategoryID != "8" || rd.DefaultCreatedBy != "11" {
		t.Errorf("defaults = %+v", rd)
	}
}

func TestReferenceDataAllOrNothing(t *testing.T) {
	es := NewEventService(&fakeCatalog{usersErr: errors.New("users down")}, quietLogger())
	rd, err := es.ReferenceData(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rd.Currencies) != 0 || len(rd.Categories) != 0 || len(rd.Users) != 0 {
		t.Errorf("partial data leaked: %+v", rd)
	}
}

func TestCreateEvent(t *testing.T) {
	catalog := &fakeCatalog{}
	es := NewEventService(catalog, quietLogger())

	_, err := es.CreateEvent(context.Background(), models.EventForm{Title: "x"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if catalog.created != nil {
		t.Fatal("invalid form must not be sent")
	}

	form := models.EventForm{
		Title: "Jazz", Description: "Live", CategoryID: "8", CurrencyID: "3", CreatedBy: "11",
		StartDate: "2024-06-01T19:00", EndDate: "2024-06-01T23:00", Status: "published", Budget: "n/a",
	}
	event, err := es.CreateEvent(context.Background(), form)
	if err != nil {
		t.Fatal(err)
	}
	if event.ID != "100" || catalog.created.CategoryID != 8 || catalog.created.Budget != nil {
		t.Errorf("event=%+v payload=%+v", event, catalog.created)
	}
}

type fakeSender struct {
	err  error
	sent []mailer.Message
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeClients struct {
	created []models.ClientForm
}

func (f *fakeClients) CreateClient(ctx context.Context, form models.ClientForm) error {
	f.created = append(f.created, form)
	return nil
}

func TestRegisterClient(t *testing.T) {
	sender := &fakeSender{}
	clients := &fakeClients{}
	cs := NewClientService(clients, NewMailService(sender))

	form := &models.ClientForm{FullName: "Ada", Email: "ada@example.com", CIN: "AB1", Occupation: "Engineer"}
	if err := cs.Register(context.Background(), form); err != nil {
		t.Fatal(err)
	}
	if len(sender.sent) != 1 || len(clients.created) != 1 {
		t.Errorf("sent=%d created=%d", len(sender.sent), len(clients.created))
	}
}

func TestRegisterClientEmailFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	clients := &fakeClients{}
	cs := NewClientService(clients, NewMailService(sender))

	form := &models.ClientForm{FullName: "Ada", Email: "ada@example.com", CIN: "AB1", Occupation: "Engineer"}
	err := cs.Register(context.Background(), form)
	if !errors.Is(err, ErrWelcomeEmail) {
		t.Fatalf("expected ErrWelcomeEmail, got %v", err)
	}
	if len(clients.created) != 0 {
		t.Error("client must not be created when the email fails")
	}
}

func TestSendClientWelcomeMissingFields(t *testing.T) {
	ms := NewMailService(&fakeSender{})
	if err := ms.SendClientWelcome(context.Background(), models.ClientForm{FullName: "Ada"}); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

type emptySource struct{}

func (emptySource) ListEvents(ctx context.Context) ([]models.Event, error) {
	return []models.Event{{ID: "1", Title: "Jazz Night"}}, nil
}
func (emptySource) ListComments(ctx context.Context, id string) ([]models.Comment, error) {
	return nil, nil
}
func (emptySource) ListCollaborators(ctx context.Context, id string) ([]models.Collaborator, error) {
	return nil, nil
}
func (emptySource) ListPartners(ctx context.Context, id string) ([]models.Partner, error) {
	return nil, nil
}
func (emptySource) PostComment(ctx context.Context, id, content string) (*models.Comment, error) {
	return &models.Comment{}, nil
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	prefs := models.MemoryNewRepo()
	prefs.SavePreference(ctx, "theme:visitor-1", "dark")

	ss := NewSessionService(emptySource{}, prefs, helpers.DefaultDerivers(), time.Minute, quietLogger())
	now := time.Now()
	ss.now = func() time.Time { return now }

	s, err := ss.Create(ctx, "visitor-1")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Theme.IsDark() {
		t.Error("theme should be restored for the visitor")
	}
	if got := len(s.Feed.FilteredEvents()); got != 1 {
		t.Errorf("events loaded = %d", got)
	}
	if _, err := ss.Get(s.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := ss.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session should expire, got %v", err)
	}
	if ss.Len() != 0 {
		t.Errorf("sessions left: %d", ss.Len())
	}
}

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Events</title>
<item><title>Food Festival</title><link>https://example.com/food</link><guid>food-1</guid>
<description>Street food from 30 countries.</description><category>Food</category>
<pubDate>Mon, 02 Sep 2024 18:00:00 GMT</pubDate></item>
</channel></rss>`

func TestNewsFromFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	items := NewNewsService(srv.URL, quietLogger()).List(context.Background())
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	n := items[0]
	if n.ID != "food-1" || n.Title != "Food Festival" || n.Category != "Food" || n.Date != "2024-09-02" || n.Time != "18:00" {
		t.Errorf("item = %+v", n)
	}
}

func TestNewsNewestFirst(t *testing.T) {
	const rss = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Events</title>
<item><title>Old</title><guid>old</guid><pubDate>Mon, 01 Jan 2024 10:00:00 GMT</pubDate></item>
<item><title>Undated</title><guid>undated</guid></item>
<item><title>New</title><guid>new</guid><pubDate>Tue, 01 Oct 2024 10:00:00 GMT</pubDate></item>
</channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer srv.Close()

	items := NewNewsService(srv.URL, quietLogger()).List(context.Background())
	if len(items) != 3 || items[0].ID != "new" || items[1].ID != "old" || items[2].ID != "undated" {
		t.Errorf("order = %+v", items)
	}
}

func TestNewsFallsBackToCurated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if items := NewNewsService(srv.URL, quietLogger()).List(context.Background()); len(items) != len(curatedNews) {
		t.Errorf("got %d items, want curated list", len(items))
	}
	if items := NewNewsService("", quietLogger()).List(context.Background()); len(items) != len(curatedNews) {
		t.Errorf("got %d items without feed url", len(items))
	}
}
