package gateway

import (
	"fmt"

	natspkg "github.com/svaraj/bizdesk/internal/pkg/nats"
)

// AuthGW publishes auth domain events to NATS
type AuthGW struct {
	natsClient *natspkg.Client
}

// NewAuthGW creates a new NATS gateway instance
func NewAuthGW(natsURL string) (*AuthGW, error) {
	client, err := natspkg.NewClient(natsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS client: %w", err)
	}

	return &AuthGW{
		natsClient: client,
	}, nil
}

// Close closes the NATS connection
func (g *AuthGW) Close() {
	if g.natsClient != nil {
		g.natsClient.Close()
	}
}
