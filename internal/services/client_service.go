package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/eventsphere/internal/models"
)

type ClientCreator interface {
	CreateClient(ctx context.Context, form models.ClientForm) error
}

type ClientService struct {
	api  ClientCreator
	mail *MailService
}

func NewClientService(api ClientCreator, mail *MailService) *ClientService {
	return &ClientService{
		api:  api,
		mail: mail,
	}
}

// Register sends the welcome email and then creates the client. A client
// is never created when the email could not be sent.
func (cs *ClientService) Register(ctx context.Context, form *models.ClientForm) error {
	form.Sanitize()
	if err := models.Validate.Struct(form); err != nil {
		return &ValidationError{Err: err}
	}

	if err := cs.mail.SendClientWelcome(ctx, *form); err != nil {
		return fmt.Errorf("%w: %v", ErrWelcomeEmail, err)
	}

	if err := cs.api.CreateClient(ctx, *form); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}
