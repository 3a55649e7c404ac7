package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventsphere/internal/models"
	"golang.org/x/sync/errgroup"
)

type EventCatalog interface {
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error)
}

type EventService struct {
	api    EventCatalog
	logger *slog.Logger
}

func NewEventService(api EventCatalog, logger *slog.Logger) *EventService {
	return &EventService{
		api:    api,
		logger: logger,
	}
}

// ReferenceData loads the three select lists together. If any of them
// fails the whole prefetch fails and empty lists are returned with the error.
func (es *EventService) ReferenceData(ctx context.Context) (models.ReferenceData, error) {
	var (
		currencies []models.Currency
		categories []models.Category
		users      []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currencies, err = es.api.ListCurrencies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = es.api.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = es.api.ListUsers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		es.logger.Error("failed to load event form data", "error", err)
		return models.EmptyReferenceData(), fmt.Errorf("load reference data: %w", err)
	}
	return models.NewReferenceData(currencies, categories, users), nil
}

func (es *EventService) CreateEvent(ctx context.Context, form models.EventForm) (*models.Event, error) {
	if err := models.Validate.Struct(form); err != nil {
		return nil, &ValidationError{Err: err}
	}
	event, err := es.api.CreateEvent(ctx, form.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}
