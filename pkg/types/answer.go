package types

// AnswerSource identifies which retrieval strategy produced an answer.
type AnswerSource string

// Known answer sources. The "(related)" variants mark sub-threshold
// fallback answers whose confidence has been discounted.
const (
	SourceLocalKB   AnswerSource = "Local Knowledge Base"
	SourceScienceQA AnswerSource = "ScienceQA"
	SourceMMLU      AnswerSource = "MMLU"
	SourceSciQ      AnswerSource = "SciQ"
	SourceNone      AnswerSource = ""
)

// Related returns the "(related)" variant of the source label.
func (s AnswerSource) Related() AnswerSource {
	return s + " (related)"
}

// ConfidenceTier buckets a confidence value for display purposes.
type ConfidenceTier string

// Confidence tiers.
const (
	TierHigh     ConfidenceTier = "high"
	TierModerate ConfidenceTier = "moderate"
	TierLow      ConfidenceTier = "low"
	TierNone     ConfidenceTier = "none"
)

// Confidence boundaries for display tiering.
const (
	HighTierThreshold     = 0.8
	ModerateTierThreshold = 0.5
)

// TierFor returns the display tier for a confidence value.
func TierFor(confidence float64) ConfidenceTier {
	switch {
	case confidence <= 0:
		return TierNone
	case confidence >= HighTierThreshold:
		return TierHigh
	case confidence >= ModerateTierThreshold:
		return TierModerate
	default:
		return TierLow
	}
}

// ScoredAnswer is the result of a single retrieval strategy. It lives for
// one request only.
type ScoredAnswer struct {
	AnswerText      string
	Source          AnswerSource
	Confidence      float64 // in [0, 1]
	MatchedQuestion string  // corpus question that matched, if any
	Subject         Subject // empty when unknown
	TopicID         string  // knowledge-base topic, if the KB answered
}

// Validate checks the scored answer invariants.
func (a *ScoredAnswer) Validate() error {
	if a.AnswerText == "" {
		return ErrEmptyAnswer
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return ErrInvalidConfidence
	}
	if a.Subject != "" && !a.Subject.Valid() {
		return ErrUnknownSubject
	}
	return nil
}

// Response is the final answer object returned to callers. AnswerText is
// always non-empty; the no-match path fills it with suggestion text.
type Response struct {
	AnswerText      string         `json:"response"`
	Confidence      float64        `json:"confidence"`
	Tier            ConfidenceTier `json:"tier"`
	Source          AnswerSource   `json:"source,omitempty"`
	Subject         Subject        `json:"subject,omitempty"`
	TopicID         string         `json:"topic,omitempty"`
	MatchedQuestion string         `json:"matched_question,omitempty"`
}
