package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/errors"
	meetingDto "github.com/taskledger/taskledger/internal/adapter/dto/meeting"
	"github.com/taskledger/taskledger/internal/adapter/presenter"
	meetingUsecase "github.com/taskledger/taskledger/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Create handles POST /meetings. The transcript is run through the
// extraction pipeline synchronously; nothing is persisted on failure.
func (h *Meeting) Create(c echo.Context) error {
	var req meetingDto.CreateMeetingRequest
	if appErr := bindAndValidate(c, &req); appErr != nil {
		return RespondAppError(c, *appErr)
	}

	input := meetingUsecase.CreateInput{
		MeetingText:  req.MeetingText,
		Participants: req.Participants,
		Title:        req.MeetingTitle,
	}
	if req.MeetingDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.MeetingDate)
		if err != nil {
			return RespondAppError(c, errors.ErrInvalidArgument("meeting_date must be YYYY-MM-DD"))
		}
		input.MeetingDate = &parsed
	}

	meeting, err := h.meetingService.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	h.logger.Info("meeting processed",
		zap.String("meeting_id", meeting.ID.String()),
		zap.Int("action_items", len(meeting.ActionItems)),
		zap.Float64("total_confidence", meeting.TotalConfidence),
	)
	return c.JSON(http.StatusCreated, presenter.ToCreateMeetingResponse(meeting))
}

// List handles GET /meetings with skip/limit pagination
func (h *Meeting) List(c echo.Context) error {
	var req meetingDto.ListMeetingsRequest
	if appErr := bindAndValidate(c, &req); appErr != nil {
		return RespondAppError(c, *appErr)
	}

	meetings, total, err := h.meetingService.List(c.Request().Context(), req.Skip, req.Limit)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	// Echo the clamped values the service actually used.
	skip := req.Skip
	if skip < 0 {
		skip = 0
	}
	limit := req.Limit
	if limit <= 0 {
		limit = meetingUsecase.DefaultListLimit
	} else if limit > meetingUsecase.MaxListLimit {
		limit = meetingUsecase.MaxListLimit
	}
	return c.JSON(http.StatusOK, presenter.ToListMeetingsResponse(meetings, total, skip, limit))
}

// Get handles GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	meeting, stats, err := h.meetingService.Get(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingDetailResponse(meeting, *stats))
}

// Delete handles DELETE /meetings/:id. Action items, risk flags and
// clarification questions go with the meeting.
func (h *Meeting) Delete(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	if err := h.meetingService.Delete(c.Request().Context(), meetingID); err != nil {
		return HandleError(c, h.logger, err)
	}

	h.logger.Info("meeting deleted", zap.String("meeting_id", meetingID.String()))
	return c.NoContent(http.StatusNoContent)
}
