package constants

// Redis key prefixes
const (
	KeyRateLimitPrefix = "bizdesk:ratelimit"
)
