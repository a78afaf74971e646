package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/contact"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendClient sends transactional mail through the Resend HTTP API. A nil
// client is valid and means mail is disabled.
type ResendClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	adminEmail  string
	endpoint    string
	httpClient  *http.Client
}

func NewResendClient(apiKey, senderEmail, senderName, adminEmail string) *ResendClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &ResendClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		adminEmail:  adminEmail,
		endpoint:    defaultResendEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

// SendSubmissionConfirmation mails the visitor a summary of what they sent.
func (c *ResendClient) SendSubmissionConfirmation(ctx context.Context, msg contact.Message) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	subject := "¡Gracias por tu solicitud! - " + c.senderName
	htmlBody, err := buildSubmissionConfirmationHTML(msg, c.senderName)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, []string{msg.Email}, subject, htmlBody)
}

// SendSubmissionAlert mails the operator about a new lead.
func (c *ResendClient) SendSubmissionAlert(ctx context.Context, msg contact.Message) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if strings.TrimSpace(c.adminEmail) == "" {
		return "", errors.New("missing admin notification email")
	}
	subject := fmt.Sprintf("Nueva Solicitud: %s - %s", msg.ServiceType, msg.Name)
	htmlBody, err := buildSubmissionAlertHTML(msg)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, []string{c.adminEmail}, subject, htmlBody)
}

func (c *ResendClient) sendHTML(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if len(to) == 0 || strings.TrimSpace(to[0]) == "" {
		return "", errors.New("missing recipient email")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(htmlBody) == "" {
		return "", errors.New("missing html body")
	}

	payload := resendSendRequest{
		From:    fmt.Sprintf("%s <%s>", c.senderName, c.senderEmail),
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", errors.New("resend response missing id")
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
