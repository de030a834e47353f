package storyboard

import (
	"fmt"
	"strings"

	"storyreel/internal/brief"
	"storyreel/internal/script"
)

// AspectRatio is the frame geometry handed to the downstream renderer.
type AspectRatio string

const (
	AspectPortrait  AspectRatio = "9:16"
	AspectLandscape AspectRatio = "16:9"
	AspectSquare    AspectRatio = "1:1"
)

// Mood is the visual mood cue derived from the brief's tone class.
type Mood string

const (
	MoodBright   Mood = "bright"
	MoodSoft     Mood = "soft"
	MoodMoody    Mood = "moody"
	MoodBalanced Mood = "balanced"
)

// Frame is the visual counterpart to one script scene.
type Frame struct {
	SceneIndex  int         `json:"scene_index"`
	VisualBrief string      `json:"visual_brief"`
	Mood        Mood        `json:"mood"`
	AspectRatio AspectRatio `json:"aspect_ratio"`
}

// Storyboard pairs one frame with every scene of a script, in order.
type Storyboard struct {
	ProjectID string  `json:"project_id"`
	Frames    []Frame `json:"frames"`
}

var moodByTone = map[brief.Tone]Mood{
	brief.ToneUpbeat:   MoodBright,
	brief.ToneCalm:     MoodSoft,
	brief.ToneDramatic: MoodMoody,
	brief.ToneNeutral:  MoodBalanced,
}

var aspectByPlatform = map[string]AspectRatio{
	"tiktok":    AspectPortrait,
	"shorts":    AspectPortrait,
	"reels":     AspectPortrait,
	"youtube":   AspectLandscape,
	"vimeo":     AspectLandscape,
	"instagram": AspectSquare,
	"square":    AspectSquare,
}

// shotByRole is the fixed shot vocabulary used to compose visual briefs.
var shotByRole = map[script.Role]string{
	script.RoleHook:   "Wide establishing shot",
	script.RoleBody:   "Medium tracking shot",
	script.RoleClimax: "Close-up reaction shot",
	script.RoleCTA:    "Direct-to-camera shot",
}

// MoodForTone maps a tone class to its visual mood cue.
func MoodForTone(tone brief.Tone) Mood {
	if mood, ok := moodByTone[tone]; ok {
		return mood
	}
	return MoodBalanced
}

// AspectForPlatform resolves the brief's platform hint. Portrait is the
// default when the hint is absent or unrecognized.
func AspectForPlatform(platform string) AspectRatio {
	if ratio, ok := aspectByPlatform[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return ratio
	}
	return AspectPortrait
}

// Synthesize produces one frame per scene, in scene order. It re-derives the
// brief analysis, which is deterministic, so identical inputs always yield an
// identical storyboard.
func Synthesize(s *script.Script, b brief.Brief) (*Storyboard, error) {
	if s == nil || len(s.Scenes) == 0 {
		return nil, fmt.Errorf("%w: script has no scenes", script.ErrGeneration)
	}

	analysis, err := brief.Analyze(b)
	if err != nil {
		return nil, err
	}

	mood := MoodForTone(analysis.Tone)
	ratio := AspectForPlatform(b.Platform)

	frames := make([]Frame, 0, len(s.Scenes))
	for _, scene := range s.Scenes {
		frames = append(frames, Frame{
			SceneIndex:  scene.Index,
			VisualBrief: visualBrief(scene, analysis),
			Mood:        mood,
			AspectRatio: ratio,
		})
	}

	return &Storyboard{ProjectID: s.ProjectID, Frames: frames}, nil
}

// visualBrief composes a shot description from the scene role and a rotating
// keyword pair. The wording is visual, distinct from the spoken narration.
func visualBrief(scene script.Scene, analysis brief.Analysis) string {
	subjects := keywordPair(analysis, scene.Index)
	shot, ok := shotByRole[scene.Role]
	if !ok {
		shot = shotByRole[script.RoleBody]
	}
	return fmt.Sprintf("%s featuring %s, %s lighting", shot, subjects, string(MoodForTone(analysis.Tone)))
}

func keywordPair(analysis brief.Analysis, sceneIndex int) string {
	keywords := analysis.Keywords
	if len(keywords) == 0 {
		return analysis.Topic
	}
	first := keywords[(sceneIndex*2)%len(keywords)]
	second := keywords[(sceneIndex*2+1)%len(keywords)]
	if first == second {
		return first
	}
	return first + " and " + second
}
