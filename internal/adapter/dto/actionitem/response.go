package actionitem

import "time"

// RiskFlagResponse describes one risk attached to an action item
type RiskFlagResponse struct {
	ID                     uint    `json:"id"`
	RiskType               string  `json:"risk_type"`
	Description            string  `json:"description"`
	Severity               string  `json:"severity"`
	SuggestedClarification *string `json:"suggested_clarification,omitempty"`
}

// ClarificationQuestionResponse describes one clarification question and its answer state
type ClarificationQuestionResponse struct {
	ID         uint       `json:"id"`
	Question   string     `json:"question"`
	Field      string     `json:"field"`
	Priority   string     `json:"priority"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// ActionItemResponse is the full action item view
type ActionItemResponse struct {
	ID                     string                          `json:"id"`
	MeetingID              string                          `json:"meeting_id"`
	Description            string                          `json:"description"`
	Owner                  *string                         `json:"owner,omitempty"`
	Deadline               *string                         `json:"deadline,omitempty"`
	Priority               string                          `json:"priority"`
	Confidence             string                          `json:"confidence"`
	ConfidenceScore        float64                         `json:"confidence_score"`
	Dependencies           []string                        `json:"dependencies"`
	Context                *string                         `json:"context,omitempty"`
	IsComplete             bool                            `json:"is_complete"`
	NeedsClarification     bool                            `json:"needs_clarification"`
	RiskFlags              []RiskFlagResponse              `json:"risk_flags"`
	ClarificationQuestions []ClarificationQuestionResponse `json:"clarification_questions"`
	CreatedAt              time.Time                       `json:"created_at"`
	UpdatedAt              time.Time                       `json:"updated_at"`
}

// ListActionItemsResponse wraps a meeting's action items
type ListActionItemsResponse struct {
	MeetingID   string               `json:"meeting_id"`
	ActionItems []ActionItemResponse `json:"action_items"`
	Count       int                  `json:"count"`
}
