package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sender определяет интерфейс для отправки SMS
type Sender interface {
	Send(ctx context.Context, phoneNumber, text string) error
}

// TwilioSender реализует отправку SMS через Twilio Messages API
type TwilioSender struct {
	logger     *zap.Logger
	accountSID string
	authToken  string
	fromNumber string
	apiURL     string
	client     *http.Client
}

// NewTwilioSender создаёт новый Twilio sender
func NewTwilioSender(logger *zap.Logger, accountSID, authToken, fromNumber string) *TwilioSender {
	return &TwilioSender{
		logger:     logger,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		apiURL:     "https://api.twilio.com/2010-04-01",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send отправляет SMS через Twilio
func (s *TwilioSender) Send(ctx context.Context, phoneNumber, text string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.apiURL, s.accountSID)

	// Twilio принимает form-encoded тело
	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("From", s.fromNumber)
	form.Set("Body", text)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Twilio отвечает 201 Created при принятом сообщении
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	sid, _ := result["sid"].(string)
	s.logger.Debug("sms sent successfully",
		zap.String("to", phoneNumber),
		zap.String("message_sid", sid),
	)

	return nil
}

// NoOpSender - no-op реализация Sender (для тестов или когда SMS отключены)
type NoOpSender struct {
	logger *zap.Logger
}

// NewNoOpSender создаёт no-op sender
func NewNoOpSender(logger *zap.Logger) *NoOpSender {
	return &NoOpSender{
		logger: logger,
	}
}

// Send ничего не делает, только логирует
func (s *NoOpSender) Send(ctx context.Context, phoneNumber, text string) error {
	s.logger.Debug("no-op sender: sms not sent",
		zap.String("to", phoneNumber),
		zap.String("text_preview", truncate(text, 50)),
	)
	return nil
}

// truncate обрезает строку до указанной длины
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
