package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/svaraj/bizdesk/internal/pkg/constants"
	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// PublishOTPSMS hands the OTP code off to the SMS dispatcher. The code never
// touches the database unhashed; the dispatch subject is its only transport.
func (g *AuthGW) PublishOTPSMS(ctx context.Context, phone, code string, expiresIn time.Duration) error {
	msg := models.SMSMessage{
		Phone:     phone,
		Body:      fmt.Sprintf("%s is your verification code. It expires in %d minutes.", code, int(expiresIn.Minutes())),
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sms message: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectAuthSMSDispatch, data)
}

// PublishUserLogin publishes a login event for downstream consumers
func (g *AuthGW) PublishUserLogin(ctx context.Context, event *models.UserLoginEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal login event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectAuthUserLogin, data)
}
