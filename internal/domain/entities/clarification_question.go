package entities

import (
	"time"

	"github.com/google/uuid"
)

// ClarificationQuestion is a model-generated question meant to resolve an
// action item's ambiguity. The answer is settable once by the user.
type ClarificationQuestion struct {
	ID           uint               `json:"id" gorm:"primary_key;autoIncrement"`
	ActionItemID uuid.UUID          `json:"action_item_id" gorm:"type:uuid;not null;index"`
	Question     string             `json:"question" gorm:"type:text;not null"`
	Field        ClarificationField `json:"field" gorm:"type:varchar(50);not null"`
	Priority     Priority           `json:"priority" gorm:"type:varchar(20);not null"`
	Answer       *string            `json:"answer,omitempty" gorm:"type:text"`
	AnsweredAt   *time.Time         `json:"answered_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ClarificationQuestion) TableName() string {
	return "clarification_questions"
}

// Answered reports whether the question already carries a user answer
func (q *ClarificationQuestion) Answered() bool {
	return q.Answer != nil
}
