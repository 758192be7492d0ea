package presenter

import (
	"time"

	"github.com/taskledger/taskledger/internal/adapter/dto/actionitem"
	"github.com/taskledger/taskledger/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// ToActionItemResponse converts an ActionItem entity to ActionItemResponse DTO
func ToActionItemResponse(item *entities.ActionItem) *actionitem.ActionItemResponse {
	if item == nil {
		return nil
	}

	response := &actionitem.ActionItemResponse{
		ID:                     item.ID.String(),
		MeetingID:              item.MeetingID.String(),
		Description:            item.Description,
		Owner:                  item.Owner,
		Priority:               string(item.Priority),
		Confidence:             string(item.Confidence),
		ConfidenceScore:        item.ConfidenceScore,
		Dependencies:           item.Dependencies,
		Context:                item.Context,
		IsComplete:             item.IsComplete,
		NeedsClarification:     item.NeedsClarification(),
		RiskFlags:              make([]actionitem.RiskFlagResponse, 0, len(item.RiskFlags)),
		ClarificationQuestions: make([]actionitem.ClarificationQuestionResponse, 0, len(item.ClarificationQuestions)),
		CreatedAt:              item.CreatedAt,
		UpdatedAt:              item.UpdatedAt,
	}

	if item.Deadline != nil {
		deadline := time.Time(*item.Deadline).Format(dateLayout)
		response.Deadline = &deadline
	}
	if response.Dependencies == nil {
		response.Dependencies = []string{}
	}

	for _, flag := range item.RiskFlags {
		response.RiskFlags = append(response.RiskFlags, actionitem.RiskFlagResponse{
			ID:                     flag.ID,
			RiskType:               string(flag.RiskType),
			Description:            flag.Description,
			Severity:               string(flag.Severity),
			SuggestedClarification: flag.SuggestedClarification,
		})
	}

	for _, question := range item.ClarificationQuestions {
		response.ClarificationQuestions = append(response.ClarificationQuestions, actionitem.ClarificationQuestionResponse{
			ID:         question.ID,
			Question:   question.Question,
			Field:      string(question.Field),
			Priority:   string(question.Priority),
			Answer:     question.Answer,
			AnsweredAt: question.AnsweredAt,
		})
	}

	return response
}

// ToActionItemListResponse converts a meeting's action items to ListActionItemsResponse
func ToActionItemListResponse(meetingID string, items []*entities.ActionItem) *actionitem.ListActionItemsResponse {
	responses := make([]actionitem.ActionItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *ToActionItemResponse(item))
	}

	return &actionitem.ListActionItemsResponse{
		MeetingID:   meetingID,
		ActionItems: responses,
		Count:       len(responses),
	}
}
