package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskledger/taskledger/errors"
	usecaseErrors "github.com/taskledger/taskledger/internal/usecase/errors"
)

// HandleError maps a usecase error to the JSON error envelope.
// Unknown errors are logged and surfaced as 500s without leaking internals.
func HandleError(c echo.Context, logger *zap.Logger, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return RespondAppError(c, appErr)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEmptyTranscript):
		return RespondAppError(c, errors.ErrEmptyTranscript())
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return RespondAppError(c, errors.ErrMeetingNotFound(c.Param("id")))
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return RespondAppError(c, errors.ErrActionItemNotFound(c.Param("id")))
	case stdErrors.Is(err, usecaseErrors.ErrClarificationNotFound),
		stdErrors.Is(err, usecaseErrors.ErrClarificationWrongItem):
		return RespondAppError(c, errors.ErrClarificationNotFound(""))
	case stdErrors.Is(err, usecaseErrors.ErrClarificationAnswered):
		return RespondAppError(c, errors.ErrClarificationAlreadyAnswered(""))
	case stdErrors.Is(err, usecaseErrors.ErrInvalidPriority),
		stdErrors.Is(err, usecaseErrors.ErrInvalidDeadline),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return RespondAppError(c, errors.ErrInvalidArgument(err.Error()))
	case stdErrors.Is(err, usecaseErrors.ErrExtractionUnavailable):
		logger.Warn("extraction service unavailable", zap.Error(err))
		return RespondAppError(c, errors.ErrExtractionUnavailable())
	case stdErrors.Is(err, usecaseErrors.ErrExtractionFailed):
		logger.Error("extraction pipeline failed", zap.Error(err))
		return RespondAppError(c, errors.ErrExtractionFailed(err))
	default:
		logger.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
		return RespondAppError(c, errors.ErrInternal(err))
	}
}

// RespondAppError writes an AppError as the JSON error envelope
func RespondAppError(c echo.Context, appErr errors.AppError) error {
	body := map[string]interface{}{
		"error":   appErr.Code.String(),
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	return c.JSON(appErr.HTTPCode, body)
}

// bindAndValidate binds the request body or query and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) *errors.AppError {
	if err := c.Bind(req); err != nil {
		appErr := errors.ErrInvalidArgument("malformed request body")
		return &appErr
	}
	if err := c.Validate(req); err != nil {
		appErr := errors.ErrInvalidArgument(err.Error())
		return &appErr
	}
	return nil
}
