package meeting

import (
	"time"

	"github.com/taskledger/taskledger/internal/adapter/dto/actionitem"
	"github.com/taskledger/taskledger/internal/domain/entities"
)

// CreateMeetingResponse confirms a processed submission
type CreateMeetingResponse struct {
	ID               string    `json:"id"`
	MeetingTitle     *string   `json:"meeting_title,omitempty"`
	MeetingDate      string    `json:"meeting_date"`
	ProcessedAt      time.Time `json:"processed_at"`
	TotalConfidence  float64   `json:"total_confidence"`
	ActionItemsCount int       `json:"action_items_count"`
}

// MeetingSummaryResponse is a list entry for the dashboard
type MeetingSummaryResponse struct {
	ID               string    `json:"id"`
	MeetingTitle     *string   `json:"meeting_title,omitempty"`
	MeetingDate      string    `json:"meeting_date"`
	ProcessedAt      time.Time `json:"processed_at"`
	TotalConfidence  float64   `json:"total_confidence"`
	ActionItemsCount int       `json:"action_items_count"`
	Participants     []string  `json:"participants"`
}

// ListMeetingsResponse wraps a paginated meeting list
type ListMeetingsResponse struct {
	Meetings []MeetingSummaryResponse `json:"meetings"`
	Skip     int                      `json:"skip"`
	Limit    int                      `json:"limit"`
	Count    int                      `json:"count"`
	Total    int64                    `json:"total"`
}

// MeetingDetailResponse is the full meeting view with statistics
type MeetingDetailResponse struct {
	ID              string                          `json:"id"`
	MeetingTitle    *string                         `json:"meeting_title,omitempty"`
	MeetingText     string                          `json:"meeting_text"`
	MeetingDate     string                          `json:"meeting_date"`
	Participants    []string                        `json:"participants"`
	ProcessedAt     time.Time                       `json:"processed_at"`
	TotalConfidence float64                         `json:"total_confidence"`
	ActionItems     []actionitem.ActionItemResponse `json:"action_items"`
	Statistics      entities.MeetingStatistics      `json:"statistics"`
}
