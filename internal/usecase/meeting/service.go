package meeting

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/internal/domain/entities"
	"github.com/taskledger/taskledger/internal/domain/repositories"
	"github.com/taskledger/taskledger/internal/usecase/errors"
	"github.com/taskledger/taskledger/internal/usecase/extraction"
)

// Pagination bounds for the meeting list
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// CreateInput is a transcript submission
type CreateInput struct {
	MeetingText  string
	Participants []string
	Title        *string
	MeetingDate  *time.Time
}

// Service orchestrates meeting submission and retrieval
type Service interface {
	// Create runs extraction over the transcript and persists the meeting
	// with all extracted action items atomically.
	Create(ctx context.Context, input CreateInput) (*entities.Meeting, error)

	// Get returns a meeting with its items and derived statistics
	Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, *entities.MeetingStatistics, error)

	// List returns meetings newest first
	List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error)

	// Delete removes a meeting and all descendants
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	meetingRepo repositories.MeetingRepository
	extractor   extraction.Service
	logger      *zap.Logger
}

// NewService constructs a meeting service
func NewService(meetingRepo repositories.MeetingRepository, extractor extraction.Service, logger *zap.Logger) Service {
	return &service{
		meetingRepo: meetingRepo,
		extractor:   extractor,
		logger:      logger,
	}
}

// Create runs the extraction pipeline and stores the outcome. The
// submission either fully succeeds (meeting plus all extracted items
// persisted) or fails with nothing durably written.
func (s *service) Create(ctx context.Context, input CreateInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.MeetingText) == "" {
		return nil, errors.ErrEmptyTranscript
	}

	meetingDate := time.Now().UTC()
	if input.MeetingDate != nil {
		meetingDate = *input.MeetingDate
	}

	meeting := entities.NewMeeting(input.MeetingText, input.Participants, input.Title, meetingDate)

	result, err := s.extractor.Extract(ctx, extraction.Input{
		MeetingID:    meeting.ID,
		MeetingText:  input.MeetingText,
		Participants: input.Participants,
		Title:        input.Title,
		MeetingDate:  meetingDate,
	})
	if err != nil {
		return nil, err
	}

	meeting.ActionItems = result.Items
	meeting.TotalConfidence = result.OverallConfidence

	if err := s.meetingRepo.CreateWithItems(ctx, meeting); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("meeting created",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("action_items", len(meeting.ActionItems)),
			zap.Float64("total_confidence", meeting.TotalConfidence),
		)
	}

	return meeting, nil
}

// Get returns a meeting with its items and derived statistics
func (s *service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, *entities.MeetingStatistics, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if meeting == nil {
		return nil, nil, errors.ErrMeetingNotFound
	}

	stats := entities.ComputeStatistics(meeting.ActionItems)
	return meeting, &stats, nil
}

// List returns meetings newest first; limit is clamped to MaxListLimit
func (s *service) List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.meetingRepo.List(ctx, skip, limit)
}

// Delete removes a meeting and all descendants
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.meetingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.ErrMeetingNotFound
	}

	if s.logger != nil {
		s.logger.Info("meeting deleted", zap.String("meeting_id", id.String()))
	}
	return nil
}
