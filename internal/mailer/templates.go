package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/joshua-takyi/eventsphere/internal/models"
)

const WelcomeSubject = "Welcome to EventSphere"

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<h1>Hello {{.FullName}},</h1>
<p>Thank you for signing up to EventSphere.</p>
<p>Your details:</p>
<ul>
  <li><strong>CIN:</strong> {{.CIN}}</li>
  <li><strong>Occupation:</strong> {{.Occupation}}</li>
</ul>
<p>See you soon!</p>
`))

// WelcomeMessage renders the signup confirmation for a new client.
func WelcomeMessage(client models.ClientForm) (Message, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, client); err != nil {
		return Message{}, fmt.Errorf("render welcome email: %w", err)
	}
	return Message{
		To:       client.Email,
		ToName:   client.FullName,
		Subject:  WelcomeSubject,
		HTMLBody: buf.String(),
	}, nil
}
