package extraction

import (
	"google.golang.org/genai"
)

// Wire payload returned by the model. The response schema below constrains
// generation to this shape; parser.go still validates field semantics
// (enum membership, date format, score bounds) before anything is accepted.

type riskFlagPayload struct {
	RiskType               string `json:"risk_type"`
	Description            string `json:"description"`
	Severity               string `json:"severity"`
	SuggestedClarification string `json:"suggested_clarification,omitempty"`
}

type questionPayload struct {
	Question string `json:"question"`
	Field    string `json:"field"`
	Priority string `json:"priority"`
}

type actionItemPayload struct {
	Description            string            `json:"description"`
	Owner                  string            `json:"owner,omitempty"`
	Deadline               string            `json:"deadline,omitempty"`
	Priority               string            `json:"priority"`
	ConfidenceScore        float64           `json:"confidence_score"`
	Context                string            `json:"context,omitempty"`
	Dependencies           []string          `json:"dependencies,omitempty"`
	RiskFlags              []riskFlagPayload `json:"risk_flags"`
	ClarificationQuestions []questionPayload `json:"clarification_questions"`
}

type extractionPayload struct {
	ActionItems       []actionItemPayload `json:"action_items"`
	OverallConfidence float64             `json:"overall_confidence"`
}

var (
	priorityEnum = []string{"low", "medium", "high", "critical"}
	riskTypeEnum = []string{
		"vague_description", "missing_owner", "missing_deadline",
		"unclear_dependency", "scope_too_broad", "conflicting_assignment",
	}
	fieldEnum = []string{"owner", "deadline", "description", "dependencies"}
)

// responseSchema is the typed contract the model is held to.
func responseSchema() *genai.Schema {
	riskFlagSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"risk_type":               {Type: genai.TypeString, Enum: riskTypeEnum},
			"description":             {Type: genai.TypeString},
			"severity":                {Type: genai.TypeString, Enum: priorityEnum},
			"suggested_clarification": {Type: genai.TypeString},
		},
		Required: []string{"risk_type", "description", "severity"},
	}

	questionSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"field":    {Type: genai.TypeString, Enum: fieldEnum},
			"priority": {Type: genai.TypeString, Enum: priorityEnum},
		},
		Required: []string{"question", "field", "priority"},
	}

	actionItemSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description":      {Type: genai.TypeString},
			"owner":            {Type: genai.TypeString},
			"deadline":         {Type: genai.TypeString, Description: "Calendar date in YYYY-MM-DD format"},
			"priority":         {Type: genai.TypeString, Enum: priorityEnum},
			"confidence_score": {Type: genai.TypeNumber},
			"context":          {Type: genai.TypeString},
			"dependencies":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"risk_flags":       {Type: genai.TypeArray, Items: riskFlagSchema},
			"clarification_questions": {
				Type:  genai.TypeArray,
				Items: questionSchema,
			},
		},
		Required: []string{"description", "priority", "confidence_score", "risk_flags", "clarification_questions"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"action_items":       {Type: genai.TypeArray, Items: actionItemSchema},
			"overall_confidence": {Type: genai.TypeNumber},
		},
		Required: []string{"action_items", "overall_confidence"},
	}
}
