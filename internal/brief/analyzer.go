package brief

import "strings"

// maxKeywords caps the keyword list so long descriptions stay tractable.
const maxKeywords = 12

// Analysis is the deterministic signal set the generators consume.
type Analysis struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
	Tone     Tone     `json:"tone_class"`
	Audience Audience `json:"audience_class"`
	Pacing   Pacing   `json:"pacing"`
}

// Analyze extracts keywords and classification signals from a brief.
// Identical briefs always yield identical results.
func Analyze(b Brief) (Analysis, error) {
	if err := Validate(b); err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Topic:    strings.TrimSpace(b.Topic),
		Keywords: extractKeywords(b.Topic + " " + b.Description),
		Tone:     ClassifyTone(b.Tone),
		Audience: ClassifyAudience(b.Audience),
		Pacing:   PacingForDuration(b.DurationMinutes),
	}, nil
}

// stopwords is the fixed filter list applied during keyword extraction.
// It is part of the packaged template data, not inferred behavior.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "get": {}, "has": {},
	"have": {}, "how": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "of": {}, "on": {}, "or": {}, "our": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "they": {}, "this": {}, "to": {},
	"was": {}, "what": {}, "when": {}, "which": {}, "will": {}, "with": {},
	"you": {}, "your": {},
}

// extractKeywords lowercases, strips punctuation, drops stopwords and short
// tokens, and deduplicates while preserving first-appearance order.
func extractKeywords(text string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxKeywords)
	for _, token := range tokenize(text) {
		if len(token) < 3 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
