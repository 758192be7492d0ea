package presenter

import (
	"time"

	"github.com/taskledger/taskledger/internal/adapter/dto/actionitem"
	"github.com/taskledger/taskledger/internal/adapter/dto/meeting"
	"github.com/taskledger/taskledger/internal/domain/entities"
)

// ToCreateMeetingResponse converts a freshly processed Meeting to CreateMeetingResponse
func ToCreateMeetingResponse(m *entities.Meeting) *meeting.CreateMeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.CreateMeetingResponse{
		ID:               m.ID.String(),
		MeetingTitle:     m.Title,
		MeetingDate:      time.Time(m.MeetingDate).Format(dateLayout),
		ProcessedAt:      m.ProcessedAt,
		TotalConfidence:  m.TotalConfidence,
		ActionItemsCount: len(m.ActionItems),
	}
}

// ToMeetingSummaryResponse converts a Meeting entity to a list entry
func ToMeetingSummaryResponse(m *entities.Meeting) *meeting.MeetingSummaryResponse {
	if m == nil {
		return nil
	}

	participants := []string(m.Participants)
	if participants == nil {
		participants = []string{}
	}

	return &meeting.MeetingSummaryResponse{
		ID:               m.ID.String(),
		MeetingTitle:     m.Title,
		MeetingDate:      time.Time(m.MeetingDate).Format(dateLayout),
		ProcessedAt:      m.ProcessedAt,
		TotalConfidence:  m.TotalConfidence,
		ActionItemsCount: len(m.ActionItems),
		Participants:     participants,
	}
}

// ToListMeetingsResponse converts a page of meetings to ListMeetingsResponse
func ToListMeetingsResponse(meetings []*entities.Meeting, total int64, skip, limit int) *meeting.ListMeetingsResponse {
	summaries := make([]meeting.MeetingSummaryResponse, 0, len(meetings))
	for _, m := range meetings {
		summaries = append(summaries, *ToMeetingSummaryResponse(m))
	}

	return &meeting.ListMeetingsResponse{
		Meetings: summaries,
		Skip:     skip,
		Limit:    limit,
		Count:    len(summaries),
		Total:    total,
	}
}

// ToMeetingDetailResponse converts a Meeting with loaded associations to the detail view
func ToMeetingDetailResponse(m *entities.Meeting, stats entities.MeetingStatistics) *meeting.MeetingDetailResponse {
	if m == nil {
		return nil
	}

	participants := []string(m.Participants)
	if participants == nil {
		participants = []string{}
	}

	items := make([]actionitem.ActionItemResponse, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, *ToActionItemResponse(&m.ActionItems[i]))
	}

	return &meeting.MeetingDetailResponse{
		ID:              m.ID.String(),
		MeetingTitle:    m.Title,
		MeetingText:     m.MeetingText,
		MeetingDate:     time.Time(m.MeetingDate).Format(dateLayout),
		Participants:    participants,
		ProcessedAt:     m.ProcessedAt,
		TotalConfidence: m.TotalConfidence,
		ActionItems:     items,
		Statistics:      stats,
	}
}
