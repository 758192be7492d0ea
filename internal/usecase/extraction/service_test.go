package extraction

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	usecaseErrors "github.com/taskledger/taskledger/internal/usecase/errors"
	"github.com/taskledger/taskledger/pkg/config"
	"github.com/taskledger/taskledger/pkg/retry"
)

// fakeLLM returns scripted responses in order. An entry with a non-nil
// error simulates a failed model call.
type fakeLLM struct {
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	raw string
	err error
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	if f.calls >= len(f.responses) {
		return "", stdErrors.New("fakeLLM: no more scripted responses")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp.raw, resp.err
}

func (f *fakeLLM) IsConfigured() bool { return true }
func (f *fakeLLM) Model() string      { return "fake-model" }

func testConfig() *config.Config {
	return &config.Config{
		Extraction: config.ExtractionConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxTranscript:   10000,
		},
	}
}

const validPayload = `{
	"action_items": [
		{
			"description": "Prepare the migration guide",
			"owner": "Mike",
			"deadline": "2026-02-01",
			"priority": "high",
			"confidence_score": 0.9,
			"risk_flags": [],
			"clarification_questions": []
		}
	],
	"overall_confidence": 0.9
}`

func testInput() Input {
	return Input{
		MeetingID:    uuid.New(),
		MeetingText:  "Mike, prepare the migration guide by February 1st.",
		Participants: []string{"Mike Johnson", "Sarah Chen"},
		MeetingDate:  time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
	}
}

func TestExtract_Success(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{{raw: validPayload}}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	result, err := svc.Extract(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	require.NotNil(t, item.Owner)
	assert.Equal(t, "Mike Johnson", *item.Owner)
	require.NotNil(t, item.Deadline)
	assert.Equal(t, "2026-02-01", time.Time(*item.Deadline).Format("2006-01-02"))
	assert.InDelta(t, 0.9, result.OverallConfidence, 1e-9)
	assert.Equal(t, 1, llm.calls)
}

func TestExtract_RetriesTransientFailures(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{
		{err: stdErrors.New("503 service unavailable")},
		{err: stdErrors.New("rate limit exceeded")},
		{raw: validPayload},
	}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	result, err := svc.Extract(context.Background(), testInput())
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 3, llm.calls)
}

func TestExtract_RetriesNonConformingPayload(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{
		{raw: "sorry, here is some prose about action items"},
		{raw: validPayload},
	}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	result, err := svc.Extract(context.Background(), testInput())
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 2, llm.calls)
}

func TestExtract_FailsAfterAttemptBudget(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{
		{err: stdErrors.New("503 service unavailable")},
		{err: stdErrors.New("503 service unavailable")},
		{err: stdErrors.New("503 service unavailable")},
		{raw: validPayload}, // never reached
	}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	_, err := svc.Extract(context.Background(), testInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecaseErrors.ErrExtractionFailed)
	assert.Equal(t, 3, llm.calls)
}

func TestExtract_PermanentErrorSkipsRetries(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{
		{err: stdErrors.New("400 invalid request: api key not valid")},
		{raw: validPayload}, // never reached
	}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	_, err := svc.Extract(context.Background(), testInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecaseErrors.ErrExtractionFailed)
	assert.Equal(t, 1, llm.calls)
}

func TestExtract_EmptyTranscript(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{{raw: validPayload}}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	input := testInput()
	input.MeetingText = "   \n\t  "
	_, err := svc.Extract(context.Background(), input)
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptyTranscript)
	assert.Zero(t, llm.calls)
}

func TestExtract_ContextCancellation(t *testing.T) {
	llm := &fakeLLM{responses: []fakeResponse{
		{err: stdErrors.New("503 service unavailable")},
		{raw: validPayload},
	}}
	svc := NewService(llm, testConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Extract(ctx, testInput())
	require.Error(t, err)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, retry.IsRetryableError(stdErrors.New("connection refused")))
	assert.True(t, retry.IsRetryableError(stdErrors.New("429 too many requests")))
	assert.True(t, retry.IsRetryableError(stdErrors.New("bad gateway")))
	assert.False(t, retry.IsRetryableError(stdErrors.New("api key not valid")))
	assert.False(t, retry.IsRetryableError(context.Canceled))
	assert.False(t, retry.IsRetryableError(nil))
}
