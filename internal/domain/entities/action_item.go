package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionItem is a task extracted from a meeting transcript
type ActionItem struct {
	ID                     uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID              uuid.UUID                   `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description            string                      `json:"description" gorm:"type:text;not null"`
	Owner                  *string                     `json:"owner,omitempty" gorm:"type:varchar(255)"`
	Deadline               *datatypes.Date             `json:"deadline,omitempty"`
	Priority               Priority                    `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Confidence             ConfidenceLevel             `json:"confidence" gorm:"type:varchar(20);not null"`
	ConfidenceScore        float64                     `json:"confidence_score" gorm:"not null"`
	Dependencies           datatypes.JSONSlice[string] `json:"dependencies" gorm:"type:jsonb"`
	Context                *string                     `json:"context,omitempty" gorm:"type:text"`
	IsComplete             bool                        `json:"is_complete" gorm:"not null;default:false"`
	RiskFlags              []RiskFlag                  `json:"risk_flags,omitempty" gorm:"foreignKey:ActionItemID;constraint:OnDelete:CASCADE"`
	ClarificationQuestions []ClarificationQuestion     `json:"clarification_questions,omitempty" gorm:"foreignKey:ActionItemID;constraint:OnDelete:CASCADE"`
	CreatedAt              time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a new action item attached to a meeting
func NewActionItem(meetingID uuid.UUID, description string) *ActionItem {
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Priority:    PriorityMedium,
	}
}

// SetScore stores a clamped confidence score and its derived label together
func (a *ActionItem) SetScore(score float64) {
	a.ConfidenceScore = ClampScore(score)
	a.Confidence = ConfidenceLevelForScore(a.ConfidenceScore)
}

// NeedsClarification reports whether the item carries risk flags or was
// extracted with low confidence
func (a *ActionItem) NeedsClarification() bool {
	return len(a.RiskFlags) > 0 || a.Confidence == ConfidenceLow
}
