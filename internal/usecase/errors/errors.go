package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrEmptyTranscript = errors.New("meeting transcript is empty")
)

// Action item errors
var (
	ErrActionItemNotFound     = errors.New("action item not found")
	ErrClarificationNotFound  = errors.New("clarification question not found")
	ErrClarificationAnswered  = errors.New("clarification question already answered")
	ErrClarificationWrongItem = errors.New("clarification question belongs to another action item")
	ErrInvalidPriority        = errors.New("invalid priority level")
	ErrInvalidDeadline        = errors.New("invalid deadline format, expected YYYY-MM-DD")
)

// Extraction errors
var (
	ErrExtractionFailed      = errors.New("extraction failed after retries")
	ErrExtractionUnavailable = errors.New("extraction client not configured")
	ErrMalformedPayload      = errors.New("model returned a non-conforming payload")
)
