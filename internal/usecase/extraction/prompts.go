package extraction

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// systemPrompt instructs the model on extraction, attribution, validation
// and clarification-question rules in a single structured-output call.
const systemPrompt = `You are an expert at converting meeting transcripts into validated action items.

EXTRACTION RULES:
- Identify ALL actionable tasks mentioned in the meeting.
- Each action item is a single, clear task. Keep descriptions concise but complete.
- Do NOT include discussion points without action, general observations, or questions unless they require specific action.

ATTRIBUTION RULES:
- ONLY assign an owner if EXPLICITLY mentioned in the transcript (phrases like "Alice will...", "Bob is responsible for...", "assigned to Charlie"). Prefer the full name from the participant list when the transcript uses a short form.
- ONLY assign a deadline if EXPLICITLY stated. Normalize natural-language dates ("by Jan 30", "next Friday", "end of week") to a calendar date in YYYY-MM-DD format relative to the meeting date.
- Do NOT guess owners or deadlines from context. When in doubt, omit the field.

VALIDATION RULES:
- Flag risks per item: vague_description, missing_owner, missing_deadline, unclear_dependency, scope_too_broad, conflicting_assignment.
- For each risk flag provide a specific description, a severity, and a suggested clarification question.
- Assign a confidence_score between 0.0 and 1.0 per item: high (0.71-1.0) for a clear task with explicit owner and deadline, medium (0.41-0.70) when minor clarification is needed, low (0.0-0.40) when significant information is missing.
- Assign priority: critical for urgent or blocking work, high for important work with a near deadline, medium for standard items, low for nice-to-haves.

CLARIFICATION RULES:
- For flagged or low-confidence items, generate specific questions that resolve the ambiguity, one piece of information per question, targeting the field that is missing (owner, deadline, description, dependencies).

Set overall_confidence to the average of the item confidence scores. Be thorough but fair; do not flag minor issues.`

// buildUserPrompt formats the transcript and meeting metadata for the model
func buildUserPrompt(transcript string, participants []string, title *string, meetingDate time.Time) string {
	var b strings.Builder

	roster := "Unknown"
	if len(participants) > 0 {
		roster = strings.Join(participants, ", ")
	}
	fmt.Fprintf(&b, "Meeting Participants: %s\n", roster)

	if title != nil && *title != "" {
		fmt.Fprintf(&b, "Meeting Title: %s\n", *title)
	}
	fmt.Fprintf(&b, "Meeting Date: %s\n\n", meetingDate.Format("2006-01-02"))

	fmt.Fprintf(&b, "Extract action items from this meeting transcript:\n\n%s", transcript)

	return b.String()
}

// sanitizeTranscript collapses whitespace, strips NUL bytes and truncates
// overlong input before it reaches the model.
func sanitizeTranscript(text string, maxLength int) string {
	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "\x00", "")

	if maxLength > 0 && utf8.RuneCountInString(text) > maxLength {
		runes := []rune(text)
		text = string(runes[:maxLength]) + "... [truncated]"
	}

	return text
}
