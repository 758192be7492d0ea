package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/taskledger/taskledger/internal/domain/entities"
)

// Parser validates the model's JSON payload and converts it into domain
// entities. Any violation is reported as an error so the caller can treat
// the payload as non-conforming and retry.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Result is a validated extraction outcome ready for persistence
type Result struct {
	Items             []entities.ActionItem
	OverallConfidence float64
}

// Parse decodes and validates raw model output. meetingID stamps every
// item; participants drive owner resolution.
func (p *Parser) Parse(raw string, meetingID uuid.UUID, participants []string) (*Result, error) {
	raw = extractJSON(raw)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	items := make([]entities.ActionItem, 0, len(payload.ActionItems))
	for i, ip := range payload.ActionItems {
		item, err := p.parseItem(ip, meetingID, participants)
		if err != nil {
			return nil, fmt.Errorf("action item %d: %w", i+1, err)
		}
		items = append(items, *item)
	}

	return &Result{
		Items:             items,
		OverallConfidence: entities.OverallConfidence(items),
	}, nil
}

func (p *Parser) parseItem(ip actionItemPayload, meetingID uuid.UUID, participants []string) (*entities.ActionItem, error) {
	if strings.TrimSpace(ip.Description) == "" {
		return nil, fmt.Errorf("missing description")
	}

	priority := entities.Priority(ip.Priority)
	if !entities.ValidPriority(priority) {
		return nil, fmt.Errorf("unknown priority %q", ip.Priority)
	}

	if ip.ConfidenceScore < 0 || ip.ConfidenceScore > 1 {
		return nil, fmt.Errorf("confidence score %v out of range", ip.ConfidenceScore)
	}

	item := entities.NewActionItem(meetingID, strings.TrimSpace(ip.Description))
	item.Priority = priority
	item.SetScore(ip.ConfidenceScore)
	item.Owner = ResolveOwner(ip.Owner, participants)

	if ip.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", ip.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline %q: %w", ip.Deadline, err)
		}
		d := datatypes.Date(deadline)
		item.Deadline = &d
	}

	if ip.Context != "" {
		ctx := ip.Context
		item.Context = &ctx
	}
	if len(ip.Dependencies) > 0 {
		item.Dependencies = datatypes.NewJSONSlice(ip.Dependencies)
	}

	for _, rp := range ip.RiskFlags {
		risk, err := p.parseRiskFlag(rp, item.ID)
		if err != nil {
			return nil, err
		}
		item.RiskFlags = append(item.RiskFlags, *risk)
	}

	for _, qp := range ip.ClarificationQuestions {
		question, err := p.parseQuestion(qp, item.ID)
		if err != nil {
			return nil, err
		}
		item.ClarificationQuestions = append(item.ClarificationQuestions, *question)
	}

	return item, nil
}

func (p *Parser) parseRiskFlag(rp riskFlagPayload, actionItemID uuid.UUID) (*entities.RiskFlag, error) {
	riskType := entities.RiskType(rp.RiskType)
	if !entities.ValidRiskType(riskType) {
		return nil, fmt.Errorf("unknown risk type %q", rp.RiskType)
	}

	severity := entities.Priority(rp.Severity)
	if !entities.ValidPriority(severity) {
		return nil, fmt.Errorf("unknown risk severity %q", rp.Severity)
	}

	if strings.TrimSpace(rp.Description) == "" {
		return nil, fmt.Errorf("risk flag missing description")
	}

	risk := &entities.RiskFlag{
		ActionItemID: actionItemID,
		RiskType:     riskType,
		Description:  rp.Description,
		Severity:     severity,
	}
	if rp.SuggestedClarification != "" {
		s := rp.SuggestedClarification
		risk.SuggestedClarification = &s
	}
	return risk, nil
}

func (p *Parser) parseQuestion(qp questionPayload, actionItemID uuid.UUID) (*entities.ClarificationQuestion, error) {
	field := entities.ClarificationField(qp.Field)
	if !entities.ValidClarificationField(field) {
		return nil, fmt.Errorf("unknown clarification field %q", qp.Field)
	}

	priority := entities.Priority(qp.Priority)
	if !entities.ValidPriority(priority) {
		return nil, fmt.Errorf("unknown question priority %q", qp.Priority)
	}

	if strings.TrimSpace(qp.Question) == "" {
		return nil, fmt.Errorf("clarification question missing text")
	}

	return &entities.ClarificationQuestion{
		ActionItemID: actionItemID,
		Question:     qp.Question,
		Field:        field,
		Priority:     priority,
	}, nil
}

// ResolveOwner maps a model-reported owner onto the participant roster.
// Short forms upgrade to the full roster name ("Mike" -> "Mike Johnson");
// an owner with no roster match is kept as reported.
func ResolveOwner(owner string, participants []string) *string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil
	}

	for _, participant := range participants {
		if strings.EqualFold(participant, owner) {
			name := participant
			return &name
		}
	}

	lowerOwner := strings.ToLower(owner)
	for _, participant := range participants {
		lowerParticipant := strings.ToLower(participant)
		first, _, _ := strings.Cut(lowerParticipant, " ")
		if first == lowerOwner || strings.HasPrefix(lowerParticipant, lowerOwner+" ") {
			name := participant
			return &name
		}
	}

	return &owner
}

// extractJSON strips markdown code fences the model may wrap around the
// payload despite the JSON response type.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	return s
}
