package brief

import "strings"

// Tone is the normalized category a free-text tone field resolves to.
type Tone string

const (
	ToneUpbeat   Tone = "upbeat"
	ToneCalm     Tone = "calm"
	ToneDramatic Tone = "dramatic"
	ToneNeutral  Tone = "neutral"
)

// Audience is the normalized category a free-text audience field resolves to.
type Audience string

const (
	AudienceProfessionals Audience = "professionals"
	AudienceStudents      Audience = "students"
	AudienceGeneral       Audience = "general"
)

// Pacing is the delivery speed hint derived from the target duration.
type Pacing string

const (
	PacingFast   Pacing = "fast"
	PacingMedium Pacing = "medium"
	PacingSlow   Pacing = "slow"
)

var toneVocabulary = map[string]Tone{
	"upbeat":    ToneUpbeat,
	"energetic": ToneUpbeat,
	"fun":       ToneUpbeat,
	"playful":   ToneUpbeat,
	"excited":   ToneUpbeat,
	"calm":      ToneCalm,
	"soothing":  ToneCalm,
	"relaxed":   ToneCalm,
	"gentle":    ToneCalm,
	"mindful":   ToneCalm,
	"dramatic":  ToneDramatic,
	"serious":   ToneDramatic,
	"intense":   ToneDramatic,
	"bold":      ToneDramatic,
	"urgent":    ToneDramatic,
}

var audienceVocabulary = map[string]Audience{
	"professional":  AudienceProfessionals,
	"professionals": AudienceProfessionals,
	"business":      AudienceProfessionals,
	"executives":    AudienceProfessionals,
	"founders":      AudienceProfessionals,
	"managers":      AudienceProfessionals,
	"student":       AudienceStudents,
	"students":      AudienceStudents,
	"learners":      AudienceStudents,
	"beginners":     AudienceStudents,
	"kids":          AudienceStudents,
	"teens":         AudienceStudents,
}

// ClassifyTone matches a free-text tone against the fixed vocabulary.
// Unrecognized values fall back to the neutral category.
func ClassifyTone(value string) Tone {
	for _, token := range tokenize(value) {
		if tone, ok := toneVocabulary[token]; ok {
			return tone
		}
	}
	return ToneNeutral
}

// ClassifyAudience matches a free-text audience against the fixed vocabulary.
// Unrecognized values fall back to the general category.
func ClassifyAudience(value string) Audience {
	for _, token := range tokenize(value) {
		if audience, ok := audienceVocabulary[token]; ok {
			return audience
		}
	}
	return AudienceGeneral
}

// PacingForDuration maps a duration to a pacing hint: shorter videos get
// faster pacing.
func PacingForDuration(durationMinutes float64) Pacing {
	switch {
	case durationMinutes < 2:
		return PacingFast
	case durationMinutes <= 5:
		return PacingMedium
	default:
		return PacingSlow
	}
}

// Tones returns every tone class the template tables must cover.
func Tones() []Tone {
	return []Tone{ToneUpbeat, ToneCalm, ToneDramatic, ToneNeutral}
}

// Audiences returns every audience class the template tables must cover.
func Audiences() []Audience {
	return []Audience{AudienceProfessionals, AudienceStudents, AudienceGeneral}
}

func tokenize(value string) []string {
	fields := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !isWordRune(r)
	})
	return fields
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
