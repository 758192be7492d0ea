package actionitem

// UpdateActionItemRequest carries partial field updates for a single action item.
// Omitted fields are left untouched.
type UpdateActionItemRequest struct {
	Owner      *string `json:"owner,omitempty"`
	Deadline   *string `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	IsComplete *bool   `json:"is_complete,omitempty"`
}

// AnswerClarificationRequest records an answer to one open clarification question
type AnswerClarificationRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required,min=1"`
}
