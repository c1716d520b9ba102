package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/svaraj/bizdesk/internal/pkg/logger"
	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// InitNewRelic initializes the New Relic agent when enabled. A nil return
// means the service runs without APM, which is fine for local development.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it",
			logger.Err(err))
		return nil
	}

	return nrApp
}
