package script

import "math"

// Role names the narrative function of a scene within the script.
type Role string

const (
	RoleHook   Role = "hook"
	RoleBody   Role = "body"
	RoleClimax Role = "climax"
	RoleCTA    Role = "cta"
)

// Scene count bounds and the duration-to-count slope. These constants are
// part of the packaged generation data; changing them changes every script.
const (
	MinScenes       = 3
	MaxScenes       = 12
	scenesPerMinute = 1.5
)

// Scene is one narrative unit of a generated script.
type Scene struct {
	Index            int    `json:"index"`
	Role             Role   `json:"role"`
	Title            string `json:"title"`
	Narration        string `json:"narration"`
	EstimatedSeconds int    `json:"estimated_seconds"`
}

// Script is the ordered scene sequence generated for a project.
type Script struct {
	ProjectID string  `json:"project_id"`
	Summary   string  `json:"summary"`
	Scenes    []Scene `json:"scenes"`
}

// TotalSeconds sums the estimated seconds across all scenes.
func (s *Script) TotalSeconds() int {
	total := 0
	for _, scene := range s.Scenes {
		total += scene.EstimatedSeconds
	}
	return total
}

// SceneCount maps a target duration to the number of scenes to generate.
func SceneCount(durationMinutes float64) int {
	count := int(math.Round(durationMinutes * scenesPerMinute))
	if count < MinScenes {
		return MinScenes
	}
	if count > MaxScenes {
		return MaxScenes
	}
	return count
}

// roleForScene assigns the fixed deterministic role pattern: the first scene
// hooks, the last calls to action, and the climax lands at the 80% position
// clamped into the interior.
func roleForScene(index, count int) Role {
	switch index {
	case 0:
		return RoleHook
	case count - 1:
		return RoleCTA
	}
	if index == climaxIndex(count) {
		return RoleClimax
	}
	return RoleBody
}

func climaxIndex(count int) int {
	idx := int(math.Round(0.8 * float64(count-1)))
	if idx < 1 {
		idx = 1
	}
	if idx > count-2 {
		idx = count - 2
	}
	return idx
}
