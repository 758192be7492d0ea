package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting is the stored record of a processed transcript submission
type Meeting struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title           *string                     `json:"meeting_title,omitempty" gorm:"type:varchar(255)"`
	MeetingDate     datatypes.Date              `json:"meeting_date" gorm:"not null"`
	MeetingText     string                      `json:"meeting_text" gorm:"type:text;not null"`
	Participants    datatypes.JSONSlice[string] `json:"participants" gorm:"type:jsonb"`
	TotalConfidence float64                     `json:"total_confidence" gorm:"not null"`
	ProcessedAt     time.Time                   `json:"processed_at" gorm:"not null"`
	ActionItems     []ActionItem                `json:"action_items,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting from a transcript submission
func NewMeeting(text string, participants []string, title *string, meetingDate time.Time) *Meeting {
	return &Meeting{
		ID:           uuid.New(),
		Title:        title,
		MeetingDate:  datatypes.Date(meetingDate),
		MeetingText:  text,
		Participants: datatypes.NewJSONSlice(participants),
		ProcessedAt:  time.Now().UTC(),
	}
}

// MeetingStatistics summarizes a meeting's action items for the dashboard
type MeetingStatistics struct {
	TotalItems               int            `json:"total_items"`
	CompleteItems            int            `json:"complete_items"`
	ItemsWithOwner           int            `json:"items_with_owner"`
	ItemsWithDeadline        int            `json:"items_with_deadline"`
	TotalRisks               int            `json:"total_risks"`
	ItemsNeedingClarification int           `json:"items_needing_clarification"`
	PriorityBreakdown        map[string]int `json:"priority_breakdown"`
}

// ComputeStatistics derives dashboard statistics from loaded action items
func ComputeStatistics(items []ActionItem) MeetingStatistics {
	stats := MeetingStatistics{
		PriorityBreakdown: map[string]int{
			string(PriorityCritical): 0,
			string(PriorityHigh):     0,
			string(PriorityMedium):   0,
			string(PriorityLow):      0,
		},
	}

	stats.TotalItems = len(items)
	for _, item := range items {
		if item.IsComplete {
			stats.CompleteItems++
		}
		if item.Owner != nil && *item.Owner != "" {
			stats.ItemsWithOwner++
		}
		if item.Deadline != nil {
			stats.ItemsWithDeadline++
		}
		stats.TotalRisks += len(item.RiskFlags)
		if item.NeedsClarification() {
			stats.ItemsNeedingClarification++
		}
		stats.PriorityBreakdown[string(item.Priority)]++
	}

	return stats
}

// OverallConfidence averages the confidence scores of items; 0 when empty
func OverallConfidence(items []ActionItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += item.ConfidenceScore
	}
	return sum / float64(len(items))
}
