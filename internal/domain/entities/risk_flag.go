package entities

import (
	"time"

	"github.com/google/uuid"
)

// RiskFlag is a model-identified concern about an action item. Risk flags
// are written once at extraction time and never updated.
type RiskFlag struct {
	ID                     uint      `json:"id" gorm:"primary_key;autoIncrement"`
	ActionItemID           uuid.UUID `json:"action_item_id" gorm:"type:uuid;not null;index"`
	RiskType               RiskType  `json:"risk_type" gorm:"type:varchar(50);not null"`
	Description            string    `json:"description" gorm:"type:text;not null"`
	Severity               Priority  `json:"severity" gorm:"type:varchar(20);not null"`
	SuggestedClarification *string   `json:"suggested_clarification,omitempty" gorm:"type:text"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (RiskFlag) TableName() string {
	return "risk_flags"
}
