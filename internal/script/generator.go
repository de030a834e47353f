package script

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"storyreel/internal/brief"
)

const slotToken = "{slot}"

// titleCaser is safe for concurrent use; cases.Caser itself is not.
func titleCaser() cases.Caser {
	return cases.Title(language.English)
}

var roleTitlePhrases = map[Role]string{
	RoleHook:   "opening hook",
	RoleBody:   "key insight",
	RoleClimax: "big reveal",
	RoleCTA:    "call to action",
}

// Generator produces scripts from analyzed briefs using the embedded
// narration template table.
type Generator struct {
	templates templateTable
}

// NewGenerator loads and verifies the narration template table.
func NewGenerator() (*Generator, error) {
	table, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Generator{templates: table}, nil
}

// Generate builds the ordered scene sequence for a project. The same analysis
// and duration always produce an identical script.
func (g *Generator) Generate(projectID string, analysis brief.Analysis, durationMinutes float64) (*Script, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive, got %v", brief.ErrInvalidBrief, durationMinutes)
	}

	count := SceneCount(durationMinutes)
	totalSeconds := int(math.Round(durationMinutes * 60))
	perScene := int(math.Round(float64(totalSeconds) / float64(count)))

	slots := newSlotFiller(analysis.Keywords, analysis.Topic)
	caser := titleCaser()

	scenes := make([]Scene, 0, count)
	for i := 0; i < count; i++ {
		role := roleForScene(i, count)
		template, err := g.templates.lookup(role, analysis.Tone, analysis.Audience)
		if err != nil {
			return nil, err
		}

		seconds := perScene
		if i == count-1 {
			// The rounding remainder lands on the final scene so the
			// total reproduces the requested duration exactly.
			seconds = totalSeconds - perScene*(count-1)
		}

		scenes = append(scenes, Scene{
			Index:            i,
			Role:             role,
			Title:            fmt.Sprintf("Scene %d: %s", i+1, caser.String(roleTitlePhrases[role])),
			Narration:        slots.fill(template),
			EstimatedSeconds: seconds,
		})
	}

	return &Script{
		ProjectID: projectID,
		Summary:   summarize(scenes),
		Scenes:    scenes,
	}, nil
}

// slotFiller hands out keywords in first-unused order, falling back to the
// raw topic once the keyword list is exhausted.
type slotFiller struct {
	keywords []string
	next     int
	fallback string
}

func newSlotFiller(keywords []string, topic string) *slotFiller {
	return &slotFiller{keywords: keywords, fallback: topic}
}

// fill substitutes each slot exactly once. Substituted text is never
// rescanned, so a topic or keyword containing the slot token passes through
// as a literal.
func (f *slotFiller) fill(template string) string {
	parts := strings.Split(template, slotToken)
	if len(parts) == 1 {
		return template
	}
	var out strings.Builder
	out.WriteString(parts[0])
	for _, part := range parts[1:] {
		out.WriteString(f.take())
		out.WriteString(part)
	}
	return out.String()
}

func (f *slotFiller) take() string {
	if f.next < len(f.keywords) {
		value := f.keywords[f.next]
		f.next++
		return value
	}
	return f.fallback
}

const summaryClipLength = 60

func summarize(scenes []Scene) string {
	points := make([]string, 0, len(scenes))
	for _, scene := range scenes {
		points = append(points, clip(scene.Narration, summaryClipLength))
	}
	return strings.Join(points, " | ")
}

func clip(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	cut := strings.LastIndex(value[:limit], " ")
	if cut <= 0 {
		cut = limit
	}
	return value[:cut] + "…"
}
