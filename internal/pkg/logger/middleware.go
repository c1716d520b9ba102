package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs every HTTP request with latency, status and caller
// identity, and decorates the active New Relic transaction when one exists.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			entry := logger.WithRequest(requestID, c.Request().Method, path).With(
				zap.Int("status", status),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("user_id", userID),
			)

			switch {
			case status >= 500:
				entry.Error("request failed", zap.Error(err))
			case status >= 400:
				entry.Warn("client error")
			default:
				entry.Info("request processed")
			}

			return err
		}
	}
}
