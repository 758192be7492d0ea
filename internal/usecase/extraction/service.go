package extraction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/taskledger/taskledger/internal/usecase/errors"
	"github.com/taskledger/taskledger/pkg/config"
	"github.com/taskledger/taskledger/pkg/retry"
)

// LLM is the boundary to the structured-output model client
type LLM interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error)
	IsConfigured() bool
	Model() string
}

// Input is a transcript submission to run through extraction
type Input struct {
	MeetingID    uuid.UUID
	MeetingText  string
	Participants []string
	Title        *string
	MeetingDate  time.Time
}

// Service runs the transcript-to-action-items extraction pipeline
type Service interface {
	Extract(ctx context.Context, input Input) (*Result, error)
}

type service struct {
	llm           LLM
	parser        *Parser
	policy        retry.Policy
	maxTranscript int
	logger        *zap.Logger
}

// NewService constructs the extraction service from config
func NewService(llm LLM, cfg *config.Config, logger *zap.Logger) Service {
	policy := retry.DefaultPolicy()
	maxTranscript := 10000
	if cfg != nil {
		policy = retry.Policy{
			MaxAttempts:     cfg.Extraction.MaxAttempts,
			InitialInterval: cfg.Extraction.InitialInterval,
			MaxInterval:     cfg.Extraction.MaxInterval,
		}
		maxTranscript = cfg.Extraction.MaxTranscript
	}

	return &service{
		llm:           llm,
		parser:        NewParser(),
		policy:        policy,
		maxTranscript: maxTranscript,
		logger:        logger,
	}
}

// Extract calls the model and returns validated action item drafts.
// Transient upstream failures and non-conforming payloads are retried with
// exponential backoff; each retry is a fresh, independent model call with
// no partial-result merging. After the attempt budget is spent the error
// surfaces to the caller.
func (s *service) Extract(ctx context.Context, input Input) (*Result, error) {
	if s.llm == nil || !s.llm.IsConfigured() {
		return nil, errors.ErrExtractionUnavailable
	}

	transcript := sanitizeTranscript(input.MeetingText, s.maxTranscript)
	if transcript == "" {
		return nil, errors.ErrEmptyTranscript
	}

	userPrompt := buildUserPrompt(transcript, input.Participants, input.Title, input.MeetingDate)
	schema := responseSchema()

	if s.logger != nil {
		s.logger.Info("starting extraction",
			zap.String("meeting_id", input.MeetingID.String()),
			zap.Int("transcript_length", len(transcript)),
			zap.Int("participant_count", len(input.Participants)),
			zap.String("model", s.llm.Model()),
		)
	}

	var result *Result
	attempt := 0
	operation := func() error {
		attempt++

		raw, err := s.llm.GenerateJSON(ctx, systemPrompt, userPrompt, schema)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(ctx.Err())
			}
			if !retry.IsRetryableError(err) {
				return retry.Permanent(err)
			}
			if s.logger != nil {
				s.logger.Warn("model call failed, will retry",
					zap.String("meeting_id", input.MeetingID.String()),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
			}
			return err
		}

		parsed, err := s.parser.Parse(raw, input.MeetingID, input.Participants)
		if err != nil {
			// Non-conforming payloads count as transient: the next
			// attempt is a fresh model call.
			if s.logger != nil {
				s.logger.Warn("non-conforming payload, will retry",
					zap.String("meeting_id", input.MeetingID.String()),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
			}
			return fmt.Errorf("%w: %v", errors.ErrMalformedPayload, err)
		}

		result = parsed
		return nil
	}

	if err := retry.Do(ctx, s.policy, operation); err != nil {
		if s.logger != nil {
			s.logger.Error("extraction failed after retries",
				zap.String("meeting_id", input.MeetingID.String()),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("%w: %v", errors.ErrExtractionFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("extraction completed",
			zap.String("meeting_id", input.MeetingID.String()),
			zap.Int("items_extracted", len(result.Items)),
			zap.Float64("overall_confidence", result.OverallConfidence),
			zap.Int("attempts", attempt),
		)
	}

	return result, nil
}
