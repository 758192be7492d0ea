package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskledger/taskledger/internal/domain/entities"
	"github.com/taskledger/taskledger/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// CreateWithItems persists the meeting and all nested records atomically.
// GORM inserts the associations (action items, risk flags, clarification
// questions) inside the transaction, so a failing insert rolls back the
// whole submission.
func (r *meetingRepository) CreateWithItems(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(meeting).Error
	})
}

// FindByID retrieves a meeting with all action items and their children
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("action_items.created_at ASC")
		}).
		Preload("ActionItems.RiskFlags").
		Preload("ActionItems.ClarificationQuestions").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings newest first with offset pagination
func (r *meetingRepository) List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("ActionItems").
		Order("processed_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}

	return meetings, total, nil
}

// Delete removes a meeting; the database cascades to action items, risk
// flags and clarification questions via their foreign keys.
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Meeting{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
