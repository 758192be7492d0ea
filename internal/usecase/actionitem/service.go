package actionitem

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/taskledger/taskledger/internal/domain/entities"
	"github.com/taskledger/taskledger/internal/domain/repositories"
	"github.com/taskledger/taskledger/internal/usecase/errors"
)

// UpdateInput carries the mutable fields of an action item. Nil pointers
// leave the stored value untouched.
type UpdateInput struct {
	Owner      *string
	Deadline   *string // YYYY-MM-DD
	Priority   *string
	IsComplete *bool
}

// Service handles action item reads, partial updates and clarifications
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)
	ListForMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.ActionItem, error)
	AnswerClarification(ctx context.Context, actionItemID uuid.UUID, questionID uint, answer string) (*entities.ClarificationQuestion, error)
}

type service struct {
	itemRepo    repositories.ActionItemRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewService constructs an action item service
func NewService(itemRepo repositories.ActionItemRepository, meetingRepo repositories.MeetingRepository, logger *zap.Logger) Service {
	return &service{
		itemRepo:    itemRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// Get retrieves an action item with risk flags and questions
func (s *service) Get(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrActionItemNotFound
	}
	return item, nil
}

// ListForMeeting retrieves all action items of a meeting, oldest first.
// The meeting itself must exist.
func (s *service) ListForMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, errors.ErrMeetingNotFound
	}
	return s.itemRepo.ListByMeeting(ctx, meetingID)
}

// Update applies a field-level partial update. Setting is_complete to its
// current value is a no-op beyond the updated_at bump, so repeating the
// call yields the same observable state.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.ActionItem, error) {
	update := repositories.ActionItemUpdate{
		Owner:      input.Owner,
		IsComplete: input.IsComplete,
	}

	if input.Priority != nil {
		priority := entities.Priority(*input.Priority)
		if !entities.ValidPriority(priority) {
			return nil, errors.ErrInvalidPriority
		}
		update.Priority = &priority
	}

	if input.Deadline != nil {
		parsed, err := time.Parse("2006-01-02", *input.Deadline)
		if err != nil {
			return nil, errors.ErrInvalidDeadline
		}
		deadline := datatypes.Date(parsed)
		update.Deadline = &deadline
	}

	item, err := s.itemRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrActionItemNotFound
	}

	if s.logger != nil {
		s.logger.Info("action item updated", zap.String("action_item_id", id.String()))
	}
	return item, nil
}

// AnswerClarification records a user's answer to a clarification question.
// The question must belong to the given action item and can be answered
// only once.
func (s *service) AnswerClarification(ctx context.Context, actionItemID uuid.UUID, questionID uint, answer string) (*entities.ClarificationQuestion, error) {
	item, err := s.itemRepo.FindByID(ctx, actionItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrActionItemNotFound
	}

	question, err := s.itemRepo.FindQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, errors.ErrClarificationNotFound
	}
	if question.ActionItemID != actionItemID {
		return nil, errors.ErrClarificationWrongItem
	}
	if question.Answered() {
		return nil, errors.ErrClarificationAnswered
	}

	now := time.Now().UTC()
	question.Answer = &answer
	question.AnsweredAt = &now

	if err := s.itemRepo.AnswerQuestion(ctx, question); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("clarification answered",
			zap.String("action_item_id", actionItemID.String()),
			zap.Uint("question_id", questionID),
			zap.String("field", string(question.Field)),
		)
	}
	return question, nil
}
