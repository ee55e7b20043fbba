package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clinicsched/config"
	"clinicsched/models"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Logger *zap.Logger
	client *http.Client
}

// NewDefaultNotificationService builds the default reminder sink.
func NewDefaultNotificationService(logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{
		Logger: logger,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// SendAppointmentReminder logs the reminder and forwards it to the configured
// webhook, if any. The webhook receives the raw reminder payload as JSON.
func (svc *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	svc.Logger.Info("Appointment reminder due",
		zap.String("appointmentId", payload.AppointmentID),
		zap.String("staffId", payload.StaffID),
		zap.String("date", payload.Date),
		zap.Int("start", payload.Start),
		zap.String("client", payload.ClientName))

	url := config.AppConfig.NotifyWebhookURL
	if url == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
