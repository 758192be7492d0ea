package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/internal/domain/entities"
	usecaseErrors "github.com/taskledger/taskledger/internal/usecase/errors"
	meetingUsecase "github.com/taskledger/taskledger/internal/usecase/meeting"
	pkgvalidator "github.com/taskledger/taskledger/pkg/validator"
)

type stubMeetingService struct {
	meeting *entities.Meeting
	stats   *entities.MeetingStatistics
	err     error
}

func (s *stubMeetingService) Create(ctx context.Context, input meetingUsecase.CreateInput) (*entities.Meeting, error) {
	return s.meeting, s.err
}

func (s *stubMeetingService) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, *entities.MeetingStatistics, error) {
	return s.meeting, s.stats, s.err
}

func (s *stubMeetingService) List(ctx context.Context, skip, limit int) ([]*entities.Meeting, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	if s.meeting == nil {
		return nil, 0, nil
	}
	return []*entities.Meeting{s.meeting}, 1, nil
}

func (s *stubMeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func sampleMeeting() *entities.Meeting {
	title := "Weekly Sync"
	meeting := entities.NewMeeting(
		"Mike, prepare the migration guide by February 1st.",
		[]string{"Mike Johnson"},
		&title,
		time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
	)
	item := entities.NewActionItem(meeting.ID, "Prepare the migration guide")
	item.SetScore(0.85)
	meeting.ActionItems = []entities.ActionItem{*item}
	meeting.TotalConfidence = 0.85
	return meeting
}

func TestMeetingCreate_Success(t *testing.T) {
	e := newEcho()
	meeting := sampleMeeting()
	h := NewMeetingHandler(&stubMeetingService{meeting: meeting}, zap.NewNop())

	body := `{"meeting_text": "Mike, prepare the migration guide.", "participants": ["Mike Johnson"]}`
	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, meeting.ID.String(), resp["id"])
	assert.EqualValues(t, 1, resp["action_items_count"])
	assert.InDelta(t, 0.85, resp["total_confidence"].(float64), 1e-9)
}

func TestMeetingCreate_MissingTranscript(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(`{"participants": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetingCreate_InvalidDate(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{}, zap.NewNop())

	body := `{"meeting_text": "notes", "meeting_date": "January 25"}`
	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetingCreate_ExtractionFailureMapsToBadGateway(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{err: usecaseErrors.ErrExtractionFailed}, zap.NewNop())

	body := `{"meeting_text": "Mike, prepare the migration guide."}`
	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMeetingCreate_ExtractionUnavailableMapsTo503(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{err: usecaseErrors.ErrExtractionUnavailable}, zap.NewNop())

	body := `{"meeting_text": "Mike, prepare the migration guide."}`
	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMeetingGet_InvalidUUID(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetingGet_NotFound(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{err: usecaseErrors.ErrMeetingNotFound}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeetingGet_Success(t *testing.T) {
	e := newEcho()
	meeting := sampleMeeting()
	stats := entities.ComputeStatistics(meeting.ActionItems)
	h := NewMeetingHandler(&stubMeetingService{meeting: meeting, stats: &stats}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues(meeting.ID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-25", resp["meeting_date"])
	assert.NotNil(t, resp["statistics"])
}

func TestMeetingList_Success(t *testing.T) {
	e := newEcho()
	meeting := sampleMeeting()
	h := NewMeetingHandler(&stubMeetingService{meeting: meeting}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/meetings?skip=0&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["count"])
	assert.EqualValues(t, 1, resp["total"])
}

func TestMeetingDelete_NoContent(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/meetings:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMeetingDelete_NotFound(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{err: usecaseErrors.ErrMeetingNotFound}, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
