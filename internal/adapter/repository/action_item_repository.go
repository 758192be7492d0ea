package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskledger/taskledger/internal/domain/entities"
	"github.com/taskledger/taskledger/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// FindByID retrieves an action item with risk flags and questions
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("RiskFlags").
		Preload("ClarificationQuestions").
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByMeeting retrieves all action items of a meeting, oldest first
func (r *actionItemRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("RiskFlags").
		Preload("ClarificationQuestions").
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a partial update and returns the refreshed item. Only the
// fields set in update are written; updated_at is bumped on every call.
func (r *actionItemRepository) Update(ctx context.Context, id uuid.UUID, update repositories.ActionItemUpdate) (*entities.ActionItem, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	values := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Owner != nil {
		values["owner"] = *update.Owner
	}
	if update.Deadline != nil {
		values["deadline"] = *update.Deadline
	}
	if update.Priority != nil {
		values["priority"] = *update.Priority
	}
	if update.IsComplete != nil {
		values["is_complete"] = *update.IsComplete
	}

	err = r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(values).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// FindQuestion retrieves a clarification question by its ID
func (r *actionItemRepository) FindQuestion(ctx context.Context, questionID uint) (*entities.ClarificationQuestion, error) {
	var question entities.ClarificationQuestion
	err := r.db.WithContext(ctx).
		Where("id = ?", questionID).
		First(&question).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// AnswerQuestion records the user's answer and answered timestamp
func (r *actionItemRepository) AnswerQuestion(ctx context.Context, question *entities.ClarificationQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}
