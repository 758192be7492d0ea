package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/taskledger/taskledger/internal/domain/entities"
)

// ActionItemUpdate carries the mutable action item fields for a partial
// update. Nil pointers leave the stored value untouched.
type ActionItemUpdate struct {
	Owner      *string
	Deadline   *datatypes.Date
	Priority   *entities.Priority
	IsComplete *bool
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// FindByID retrieves an action item with risk flags and questions
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// ListByMeeting retrieves all action items of a meeting, oldest first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// Update applies a partial update and returns the refreshed item
	Update(ctx context.Context, id uuid.UUID, update ActionItemUpdate) (*entities.ActionItem, error)

	// FindQuestion retrieves a clarification question by its ID
	FindQuestion(ctx context.Context, questionID uint) (*entities.ClarificationQuestion, error)

	// AnswerQuestion records the user's answer and answered timestamp
	AnswerQuestion(ctx context.Context, question *entities.ClarificationQuestion) error
}
