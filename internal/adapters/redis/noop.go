package redis

import (
	"context"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// NoOpPublisher drops every snapshot. Used when no Redis address is configured.
type NoOpPublisher struct{}

func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

func (p *NoOpPublisher) PublishSnapshot(ctx context.Context, projects []domain.Project) error {
	return nil
}

func (p *NoOpPublisher) Close() error {
	return nil
}
