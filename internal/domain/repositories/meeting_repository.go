package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskledger/taskledger/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// CreateWithItems persists a meeting together with its action items,
	// risk flags and clarification questions in a single transaction.
	// Nothing is written if any insert fails.
	CreateWithItems(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with all action items and their children
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings newest first with offset pagination
	List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error)

	// Delete removes a meeting and cascades to all descendants.
	// Returns the number of meetings removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
