package actionitem

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/internal/domain/entities"
	"github.com/taskledger/taskledger/internal/domain/repositories"
	usecaseErrors "github.com/taskledger/taskledger/internal/usecase/errors"
)

type fakeItemRepo struct {
	items     map[uuid.UUID]*entities.ActionItem
	questions map[uint]*entities.ClarificationQuestion
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:     make(map[uuid.UUID]*entities.ActionItem),
		questions: make(map[uint]*entities.ClarificationQuestion),
	}
}

func (r *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	for _, item := range r.items {
		if item.MeetingID == meetingID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, id uuid.UUID, update repositories.ActionItemUpdate) (*entities.ActionItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if update.Owner != nil {
		item.Owner = update.Owner
	}
	if update.Deadline != nil {
		item.Deadline = update.Deadline
	}
	if update.Priority != nil {
		item.Priority = *update.Priority
	}
	if update.IsComplete != nil {
		item.IsComplete = *update.IsComplete
	}
	return item, nil
}

func (r *fakeItemRepo) FindQuestion(ctx context.Context, questionID uint) (*entities.ClarificationQuestion, error) {
	return r.questions[questionID], nil
}

func (r *fakeItemRepo) AnswerQuestion(ctx context.Context, question *entities.ClarificationQuestion) error {
	r.questions[question.ID] = question
	return nil
}

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *fakeMeetingRepo) CreateWithItems(ctx context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return r.meetings[id], nil
}

func (r *fakeMeetingRepo) List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

func setup(t *testing.T) (Service, *fakeItemRepo, *fakeMeetingRepo, *entities.ActionItem) {
	t.Helper()

	itemRepo := newFakeItemRepo()
	meetingRepo := newFakeMeetingRepo()

	meeting := entities.NewMeeting("transcript", []string{"Mike Johnson"}, nil, time.Now().UTC())
	meetingRepo.meetings[meeting.ID] = meeting

	item := entities.NewActionItem(meeting.ID, "Prepare the migration guide")
	item.SetScore(0.85)
	item.ClarificationQuestions = []entities.ClarificationQuestion{
		{
			ID:           1,
			ActionItemID: item.ID,
			Question:     "Who reviews the guide?",
			Field:        entities.FieldOwner,
			Priority:     entities.PriorityHigh,
		},
	}
	itemRepo.items[item.ID] = item
	itemRepo.questions[1] = &item.ClarificationQuestions[0]

	return NewService(itemRepo, meetingRepo, zap.NewNop()), itemRepo, meetingRepo, item
}

func TestGet(t *testing.T) {
	svc, _, _, item := setup(t)

	found, err := svc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrActionItemNotFound)
}

func TestListForMeeting_MissingMeeting(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.ListForMeeting(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestListForMeeting(t *testing.T) {
	svc, _, _, item := setup(t)

	items, err := svc.ListForMeeting(context.Background(), item.MeetingID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdate_ValidatesPriorityAndDeadline(t *testing.T) {
	svc, _, _, item := setup(t)

	bad := "urgent"
	_, err := svc.Update(context.Background(), item.ID, UpdateInput{Priority: &bad})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidPriority)

	badDate := "tomorrow"
	_, err = svc.Update(context.Background(), item.ID, UpdateInput{Deadline: &badDate})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidDeadline)

	good := "critical"
	date := "2026-02-01"
	updated, err := svc.Update(context.Background(), item.ID, UpdateInput{Priority: &good, Deadline: &date})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityCritical, updated.Priority)
	require.NotNil(t, updated.Deadline)
	assert.Equal(t, "2026-02-01", time.Time(*updated.Deadline).Format("2006-01-02"))
}

func TestUpdate_MissingItem(t *testing.T) {
	svc, _, _, _ := setup(t)

	complete := true
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{IsComplete: &complete})
	assert.ErrorIs(t, err, usecaseErrors.ErrActionItemNotFound)
}

func TestAnswerClarification(t *testing.T) {
	svc, _, _, item := setup(t)

	question, err := svc.AnswerClarification(context.Background(), item.ID, 1, "Sarah reviews it")
	require.NoError(t, err)
	require.NotNil(t, question.Answer)
	assert.Equal(t, "Sarah reviews it", *question.Answer)
	assert.NotNil(t, question.AnsweredAt)

	// A question accepts exactly one answer.
	_, err = svc.AnswerClarification(context.Background(), item.ID, 1, "changed my mind")
	assert.ErrorIs(t, err, usecaseErrors.ErrClarificationAnswered)
}

func TestAnswerClarification_WrongItem(t *testing.T) {
	svc, itemRepo, _, item := setup(t)

	other := entities.NewActionItem(item.MeetingID, "Another task")
	itemRepo.items[other.ID] = other

	_, err := svc.AnswerClarification(context.Background(), other.ID, 1, "answer")
	assert.ErrorIs(t, err, usecaseErrors.ErrClarificationWrongItem)
}

func TestAnswerClarification_MissingQuestion(t *testing.T) {
	svc, _, _, item := setup(t)

	_, err := svc.AnswerClarification(context.Background(), item.ID, 99, "answer")
	assert.ErrorIs(t, err, usecaseErrors.ErrClarificationNotFound)

	_, err = svc.AnswerClarification(context.Background(), uuid.New(), 1, "answer")
	assert.ErrorIs(t, err, usecaseErrors.ErrActionItemNotFound)
}
