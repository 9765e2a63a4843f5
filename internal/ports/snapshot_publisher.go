package ports

import (
	"context"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// SnapshotPublisher forwards board snapshots to processes outside this one.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, projects []domain.Project) error
	Close() error
}
