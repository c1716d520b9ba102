package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/svaraj/bizdesk/internal/utils"
)

// RateLimiterConfig contains configuration for the transport-level rate
// limiter. This guards routes against abusive clients; the per-phone OTP
// issuance cap lives in the auth usecase.
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // key prefix in Redis
	Limit       int           // maximum number of requests per period
	Period      time.Duration // fixed window length
}

// RateLimiterMiddleware limits requests per client IP (or authenticated
// user) using a Redis counter with a fixed-window TTL.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			pipe := config.RedisClient.TxPipeline()
			incr := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, config.Period)
			if _, err := pipe.Exec(ctx); err != nil {
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			count := incr.Val()
			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil {
					ttl = config.Period
				}

				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			remaining := int64(config.Limit) - count
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			return next(c)
		}
	}
}
