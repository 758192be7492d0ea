package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/errors"
	actionItemDto "github.com/taskledger/taskledger/internal/adapter/dto/actionitem"
	"github.com/taskledger/taskledger/internal/adapter/presenter"
	actionItemUsecase "github.com/taskledger/taskledger/internal/usecase/actionitem"
)

// ActionItem handles action item HTTP requests
type ActionItem struct {
	itemService actionItemUsecase.Service
	logger      *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(itemService actionItemUsecase.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{
		itemService: itemService,
		logger:      logger,
	}
}

// ListForMeeting handles GET /meetings/:id/action-items
func (h *ActionItem) ListForMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	items, err := h.itemService.ListForMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, presenter.ToActionItemListResponse(meetingID.String(), items))
}

// Get handles GET /action-items/:id
func (h *ActionItem) Get(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("action item ID must be a valid UUID"))
	}

	item, err := h.itemService.Get(c.Request().Context(), itemID)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, presenter.ToActionItemResponse(item))
}

// Update handles PUT /action-items/:id. Only the fields present in the
// body change; repeating the same update is safe.
func (h *ActionItem) Update(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("action item ID must be a valid UUID"))
	}

	var req actionItemDto.UpdateActionItemRequest
	if appErr := bindAndValidate(c, &req); appErr != nil {
		return RespondAppError(c, *appErr)
	}

	input := actionItemUsecase.UpdateInput{
		Owner:      req.Owner,
		Deadline:   req.Deadline,
		Priority:   req.Priority,
		IsComplete: req.IsComplete,
	}

	item, err := h.itemService.Update(c.Request().Context(), itemID, input)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, presenter.ToActionItemResponse(item))
}

// Clarify handles POST /action-items/:id/clarify. A question accepts
// exactly one answer; a second attempt gets a conflict response.
func (h *ActionItem) Clarify(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return RespondAppError(c, errors.ErrInvalidArgument("action item ID must be a valid UUID"))
	}

	var req actionItemDto.AnswerClarificationRequest
	if appErr := bindAndValidate(c, &req); appErr != nil {
		return RespondAppError(c, *appErr)
	}

	question, err := h.itemService.AnswerClarification(c.Request().Context(), itemID, req.QuestionID, req.Answer)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	h.logger.Info("clarification answered",
		zap.String("action_item_id", itemID.String()),
		zap.Uint("question_id", question.ID),
	)
	return c.JSON(http.StatusOK, actionItemDto.ClarificationQuestionResponse{
		ID:         question.ID,
		Question:   question.Question,
		Field:      string(question.Field),
		Priority:   string(question.Priority),
		Answer:     question.Answer,
		AnsweredAt: question.AnsweredAt,
	})
}
