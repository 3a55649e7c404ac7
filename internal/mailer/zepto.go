package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// email request payload for ZeptoMail API
type zeptoRequest struct {
	From     zeptoAddress  `json:"from"`
	To       []zeptoTarget `json:"to"`
	Subject  string        `json:"subject"`
	HtmlBody string        `json:"htmlbody"`
}

type zeptoAddress struct {
	Address string `json:"address"`
}

type zeptoTarget struct {
	Email zeptoNamedAddress `json:"email_address"`
}

type zeptoNamedAddress struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ZeptoSender sends through the ZeptoMail HTTP API.
type ZeptoSender struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewZeptoSender(apiURL, apiKey, from string, httpClient *http.Client, logger *slog.Logger) (*ZeptoSender, error) {
	if apiURL == "" || apiKey == "" || from == "" {
		return nil, fmt.Errorf("missing required email config")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ZeptoSender{
		apiURL:     apiURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (z *ZeptoSender) Send(ctx context.Context, msg Message) error {
	payload := zeptoRequest{
		From: zeptoAddress{Address: z.from},
		To: []zeptoTarget{
			{Email: zeptoNamedAddress{Address: msg.To, Name: msg.ToName}},
		},
		Subject:  msg.Subject,
		HtmlBody: msg.HTMLBody,
	}

	jsonData, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", z.apiKey)

	resp, err := z.httpClient.Do(req)
	if err != nil {
		z.logger.Error("zeptomail request failed", "to", msg.To, "error", err)
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		z.logger.Error("zeptomail rejected email", "to", msg.To, "status", resp.Status)
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}

	z.logger.Info("email sent", "to", msg.To, "transport", "zeptomail")
	return nil
}
