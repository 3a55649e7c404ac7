// Package feed is the event list page state: the fetched events, the
// search and status filter, and the lazily loaded details of the one
// expanded card.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joshua-takyi/eventsphere/internal/helpers"
	"github.com/joshua-takyi/eventsphere/internal/models"
)

// LoadEventsError is shown in place of the list when it cannot be fetched.
const LoadEventsError = "Unable to load events. Please try again later."

var ErrUnknownFilter = errors.New("unknown status filter")

// EventSource is the part of the remote API the feed reads and writes.
type EventSource interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListComments(ctx context.Context, eventID string) ([]models.Comment, error)
	ListCollaborators(ctx context.Context, eventID string) ([]models.Collaborator, error)
	ListPartners(ctx context.Context, eventID string) ([]models.Partner, error)
	PostComment(ctx context.Context, eventID, content string) (*models.Comment, error)
}

type Controller struct {
	source EventSource
	derive helpers.Derivers
	logger *slog.Logger

	// base outlives any single request; detail fetches derive from it.
	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	events       []models.Event
	filtered     []models.Event
	searchTerm   string
	filterStatus models.FilterStatus
	loading      bool
	errMsg       string
	listGen      uint64

	selectedID    string
	detailGen     uint64
	cancelDetails context.CancelFunc
	comments      Result[models.Comment]
	collaborators Result[models.Collaborator]
	partners      Result[models.Partner]
	expanded      map[Section]bool
	commentDraft  string

	// pendingComments were posted while comments was still loading.
	pendingComments []models.Comment
}

func NewController(source EventSource, derive helpers.Derivers, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	base, cancel := context.WithCancel(context.Background())
	return &Controller{
		source:        source,
		derive:        derive,
		logger:        logger,
		base:          base,
		cancel:        cancel,
		events:        []models.Event{},
		filtered:      []models.Event{},
		filterStatus:  models.FilterAll,
		comments:      idle[models.Comment](),
		collaborators: idle[models.Collaborator](),
		partners:      idle[models.Partner](),
		expanded: map[Section]bool{
			SectionComments:      true,
			SectionCollaborators: true,
			SectionPartners:      true,
		},
	}
}

// FetchEvents replaces the event list. On failure the previous list is
// kept and a page-level error is set. Only the latest call is applied.
func (c *Controller) FetchEvents(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.listGen++
	gen := c.listGen
	c.mu.Unlock()

	events, err := c.source.ListEvents(ctx)
	if err == nil {
		events = c.decorateEvents(events)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.listGen {
		return err
	}
	c.loading = false
	if err != nil {
		c.logger.Error("failed to load events", "error", err)
		c.errMsg = LoadEventsError
		return fmt.Errorf("fetch events: %w", err)
	}
	c.events = events
	c.refilter()
	return nil
}

func (c *Controller) decorateEvents(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		e.Status = models.EventStatus(strings.ToLower(strings.TrimSpace(string(e.Status))))
		if e.Status == "" {
			e.Status = models.StatusDraft
		}
		if e.Image == "" {
			e.Image = c.derive.EventImage(i, e.ID.String())
		}
		out[i] = e
	}
	return out
}

func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
	c.refilter()
}

func (c *Controller) SetFilterStatus(status string) error {
	fs, ok := models.ParseFilterStatus(status)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, status)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterStatus = fs
	c.refilter()
	return nil
}

// ApplyFilters sets the search term and status filter together; nil leaves
// a filter unchanged. An unknown status changes neither.
func (c *Controller) ApplyFilters(term, status *string) error {
	var fs models.FilterStatus
	if status != nil {
		var ok bool
		if fs, ok = models.ParseFilterStatus(*status); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, *status)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if term != nil {
		c.searchTerm = *term
	}
	if status != nil {
		c.filterStatus = fs
	}
	c.refilter()
	return nil
}

func (c *Controller) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = ""
	c.filterStatus = models.FilterAll
	c.refilter()
}

// refilter must be called with mu held.
func (c *Controller) refilter() {
	filtered := make([]models.Event, 0, len(c.events))
	for _, e := range c.events {
		if e.Matches(c.searchTerm, c.filterStatus) {
			filtered = append(filtered, e)
		}
	}
	c.filtered = filtered
}

func (c *Controller) FilteredEvents() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Event, len(c.filtered))
	copy(out, c.filtered)
	return out
}

func (c *Controller) SelectedEventID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// ShowDetails toggles the card of eventID. Selecting the open card closes
// it; selecting another one drops the previous details and starts the
// three detail fetches. It reports whether the card is now open.
func (c *Controller) ShowDetails(eventID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelDetails != nil {
		c.cancelDetails()
		c.cancelDetails = nil
	}
	c.detailGen++

	if eventID == c.selectedID {
		c.selectedID = ""
		c.pendingComments = nil
		c.comments = idle[models.Comment]()
		c.collaborators = idle[models.Collaborator]()
		c.partners = idle[models.Partner]()
		return false
	}

	c.selectedID = eventID
	c.pendingComments = nil
	c.comments = loading[models.Comment]()
	c.collaborators = loading[models.Collaborator]()
	c.partners = loading[models.Partner]()

	ctx, cancel := context.WithCancel(c.base)
	c.cancelDetails = cancel
	gen := c.detailGen

	c.wg.Add(3)
	go c.loadComments(ctx, gen, eventID)
	go c.loadCollaborators(ctx, gen, eventID)
	go c.loadPartners(ctx, gen, eventID)
	return true
}

func (c *Controller) loadComments(ctx context.Context, gen uint64, eventID string) {
	defer c.wg.Done()
	comments, err := c.source.ListComments(ctx, eventID)
	for i := range comments {
		comments[i].Avatar = c.derive.CommentAvatar(comments[i].Username)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.detailGen {
		c.logger.Debug("discarding stale comments", "event_id", eventID)
		return
	}
	if err != nil {
		c.logger.Error("failed to load comments", "event_id", eventID, "error", err)
		c.comments = failed[models.Comment](err)
		c.pendingComments = nil
		return
	}
	c.comments = loaded(mergeComments(comments, c.pendingComments))
	c.pendingComments = nil
}

// mergeComments appends the posted comments the fetched list does not
// already contain.
func mergeComments(fetched, posted []models.Comment) []models.Comment {
	if len(posted) == 0 {
		return fetched
	}
	seen := make(map[models.FlexString]bool, len(fetched))
	for _, cm := range fetched {
		seen[cm.ID] = true
	}
	for _, cm := range posted {
		if cm.ID != "" && seen[cm.ID] {
			continue
		}
		fetched = append(fetched, cm)
	}
	return fetched
}

func (c *Controller) loadCollaborators(ctx context.Context, gen uint64, eventID string) {
	defer c.wg.Done()
	collaborators, err := c.source.ListCollaborators(ctx, eventID)
	for i := range collaborators {
		userID := collaborators[i].UserID.String()
		collaborators[i].Avatar = c.derive.CollaboratorAvatar(userID)
		collaborators[i].Name = c.derive.CollaboratorName(userID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.detailGen {
		c.logger.Debug("discarding stale collaborators", "event_id", eventID)
		return
	}
	if err != nil {
		c.logger.Error("failed to load collaborators", "event_id", eventID, "error", err)
		c.collaborators = failed[models.Collaborator](err)
		return
	}
	c.collaborators = loaded(collaborators)
}

func (c *Controller) loadPartners(ctx context.Context, gen uint64, eventID string) {
	defer c.wg.Done()
	partners, err := c.source.ListPartners(ctx, eventID)
	for i := range partners {
		partners[i].Logo = c.derive.PartnerLogo(partners[i].FullName)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.detailGen {
		c.logger.Debug("discarding stale partners", "event_id", eventID)
		return
	}
	if err != nil {
		c.logger.Error("failed to load partners", "event_id", eventID, "error", err)
		c.partners = failed[models.Partner](err)
		return
	}
	c.partners = loaded(partners)
}

func (c *Controller) ToggleSection(section Section) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[section] = !c.expanded[section]
	return c.expanded[section]
}

func (c *Controller) SetCommentDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commentDraft = text
}

// PostComment sends text as a comment on eventID. Blank text is ignored
// without a request. The echoed comment is appended to the open card's
// list and the draft is cleared; nothing changes on failure. A comment
// posted while the list is loading is merged in once it arrives.
func (c *Controller) PostComment(ctx context.Context, eventID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	comment, err := c.source.PostComment(ctx, eventID, text)
	if err != nil {
		c.logger.Error("failed to post comment", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("post comment: %w", err)
	}
	comment.Avatar = c.derive.CurrentUserAvatar
	comment.Username = c.derive.CurrentUserName

	c.mu.Lock()
	defer c.mu.Unlock()
	c.commentDraft = ""
	if c.selectedID == eventID {
		switch c.comments.State {
		case StateLoaded:
			c.comments.Items = append(c.comments.Items, *comment)
		case StateLoading:
			c.pendingComments = append(c.pendingComments, *comment)
		}
	}
	return comment, nil
}

// Wait blocks until the in-flight detail fetches have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels outstanding detail fetches.
func (c *Controller) Close() {
	c.cancel()
}
