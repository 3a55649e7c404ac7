package container

import (
	"log/slog"

	"github.com/joshua-takyi/eventsphere/internal/apiclient"
	"github.com/joshua-takyi/eventsphere/internal/config"
	"github.com/joshua-takyi/eventsphere/internal/helpers"
	"github.com/joshua-takyi/eventsphere/internal/mailer"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	API         *apiclient.Client
	Preferences models.PreferenceRepo

	Sessions      *services.SessionService
	MailService   *services.MailService
	ClientService *services.ClientService
	EventService  *services.EventService
	NewsService   *services.NewsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	api *apiclient.Client,
	prefs models.PreferenceRepo,
	sender mailer.Sender,
	derive helpers.Derivers,
) *Container {
	mailService := services.NewMailService(sender)

	return &Container{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		API:            api,
		Preferences:    prefs,
		Sessions:       services.NewSessionService(api, prefs, derive, cfg.SessionTTL, logger),
		MailService:    mailService,
		ClientService:  services.NewClientService(api, mailService),
		EventService:   services.NewEventService(api, logger),
		NewsService:    services.NewNewsService(cfg.NewsFeedURL, logger),
	}
}
