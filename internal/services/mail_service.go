package services

import (
	"context"
	"strings"

	"github.com/joshua-takyi/eventsphere/internal/mailer"
	"github.com/joshua-takyi/eventsphere/internal/models"
)

type MailService struct {
	sender mailer.Sender
}

func NewMailService(sender mailer.Sender) *MailService {
	return &MailService{sender: sender}
}

// SendClientWelcome sends the signup confirmation. Only the name and
// address are required here; the signup form checks the rest.
func (ms *MailService) SendClientWelcome(ctx context.Context, client models.ClientForm) error {
	if strings.TrimSpace(client.Email) == "" || strings.TrimSpace(client.FullName) == "" {
		return ErrMissingFields
	}
	msg, err := mailer.WelcomeMessage(client)
	if err != nil {
		return err
	}
	return ms.sender.Send(ctx, msg)
}
