package tutor

import (
	"fmt"

	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/pkg/types"
)

// ValidationMessage is returned for empty or too-short questions.
const ValidationMessage = "Please ask a complete question."

// relatedDisclaimer prefixes answers that did not clear the acceptance
// threshold.
const relatedDisclaimer = "Related information (not an exact match):\n\n"

// assembleExact formats an accepted strategy result into a final response.
func assembleExact(a *types.ScoredAnswer) *types.Response {
	return &types.Response{
		AnswerText:      a.AnswerText,
		Confidence:      a.Confidence,
		Tier:            types.TierFor(a.Confidence),
		Source:          a.Source,
		Subject:         a.Subject,
		TopicID:         a.TopicID,
		MatchedQuestion: a.MatchedQuestion,
	}
}

// assembleRelated wraps the best sub-threshold candidate: disclaimer
// prefix, "(related)" source suffix, confidence discounted by
// RelatedDiscount.
func assembleRelated(a *types.ScoredAnswer) *types.Response {
	confidence := a.Confidence * RelatedDiscount
	if confidence > 1 {
		confidence = 1
	}
	return &types.Response{
		AnswerText:      relatedDisclaimer + a.AnswerText,
		Confidence:      confidence,
		Tier:            types.TierFor(confidence),
		Source:          a.Source.Related(),
		Subject:         a.Subject,
		TopicID:         a.TopicID,
		MatchedQuestion: a.MatchedQuestion,
	}
}

// assembleNoMatch builds the terminal no-match response with subject
// suggestions (or the generic cross-subject list).
func assembleNoMatch(subject types.Subject) *types.Response {
	text := fmt.Sprintf(`I couldn't find specific information on that topic.

Try asking about:
%s

Tips for better results:
- Be specific (e.g., "What is Newton's first law?" instead of "Tell me about physics")
- Use standard terminology
- Break complex questions into smaller parts`, knowledge.Suggestions(subject))

	return &types.Response{
		AnswerText: text,
		Confidence: 0,
		Tier:       types.TierNone,
		Subject:    subject,
	}
}

// assembleInvalid builds the terminal response for invalid input.
func assembleInvalid() *types.Response {
	return &types.Response{
		AnswerText: ValidationMessage,
		Confidence: 0,
		Tier:       types.TierNone,
	}
}
