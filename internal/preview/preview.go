// Package preview merges a script and storyboard into the exportable preview
// package handed to downstream rendering tooling. Assembly is a structural
// merge: it verifies scene/frame pairing, adds a timestamp, and generates no
// new content.
package preview

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storyreel/internal/brief"
	"storyreel/internal/fileutil"
	"storyreel/internal/project"
	"storyreel/internal/script"
	"storyreel/internal/storyboard"
)

// ErrConsistency marks cross-artifact invariant violations between the script
// and the storyboard. These indicate an upstream contract bug and always halt
// assembly; nothing is patched silently.
var ErrConsistency = errors.New("consistency error")

// Package is the final merged artifact for one render invocation.
type Package struct {
	ProjectID   string                `json:"project_id"`
	Brief       brief.Brief           `json:"brief"`
	Script      script.Script         `json:"script"`
	Storyboard  storyboard.Storyboard `json:"storyboard"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Assemble packages a project's script and storyboard. Apart from the
// provided timestamp, identical inputs always produce identical content.
func Assemble(p *project.Project, s *script.Script, sb *storyboard.Storyboard, generatedAt time.Time) (*Package, error) {
	if p == nil || s == nil || sb == nil {
		return nil, fmt.Errorf("%w: assemble requires project, script, and storyboard", ErrConsistency)
	}
	if s.ProjectID != p.ID || sb.ProjectID != p.ID {
		return nil, fmt.Errorf("%w: artifact project ids %q/%q do not match project %q", ErrConsistency, s.ProjectID, sb.ProjectID, p.ID)
	}
	if len(s.Scenes) != len(sb.Frames) {
		return nil, fmt.Errorf("%w: %d scenes but %d frames", ErrConsistency, len(s.Scenes), len(sb.Frames))
	}
	for i := range s.Scenes {
		if s.Scenes[i].Index != sb.Frames[i].SceneIndex {
			return nil, fmt.Errorf("%w: frame %d pairs scene_index %d with scene index %d", ErrConsistency, i, sb.Frames[i].SceneIndex, s.Scenes[i].Index)
		}
	}

	return &Package{
		ProjectID:   p.ID,
		Brief:       p.Brief,
		Script:      *s,
		Storyboard:  *sb,
		GeneratedAt: generatedAt.UTC(),
	}, nil
}

// WriteFile exports the package as indented JSON. The file appears atomically
// via temp file and rename; a failed render leaves no partial artifact.
func (p *Package) WriteFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preview package: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("export preview package: %w", err)
	}
	return nil
}
