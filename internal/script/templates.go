package script

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"storyreel/internal/brief"
)

// ErrGeneration marks internal template-table failures. A lookup miss means
// the packaged data is incomplete and is treated as fatal, never repaired.
var ErrGeneration = errors.New("generation error")

//go:embed templates.yaml
var templatesYAML []byte

// templateTable holds the narration templates keyed by role, tone class,
// and audience class. It is loaded once and never mutated afterwards.
type templateTable map[Role]map[brief.Tone]map[brief.Audience]string

func loadTemplates() (templateTable, error) {
	var raw map[string]map[string]map[string]string
	if err := yaml.Unmarshal(templatesYAML, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse narration templates: %v", ErrGeneration, err)
	}

	table := make(templateTable, len(raw))
	for role, tones := range raw {
		byTone := make(map[brief.Tone]map[brief.Audience]string, len(tones))
		for tone, audiences := range tones {
			byAudience := make(map[brief.Audience]string, len(audiences))
			for audience, template := range audiences {
				if template == "" {
					return nil, fmt.Errorf("%w: empty narration template for role=%s tone=%s audience=%s", ErrGeneration, role, tone, audience)
				}
				byAudience[brief.Audience(audience)] = template
			}
			byTone[brief.Tone(tone)] = byAudience
		}
		table[Role(role)] = byTone
	}

	if err := table.verify(); err != nil {
		return nil, err
	}
	return table, nil
}

// verify checks the table is total over the role, tone, and audience enums so
// a lookup miss at generation time can only mean corrupted packaged data.
func (t templateTable) verify() error {
	for _, role := range []Role{RoleHook, RoleBody, RoleClimax, RoleCTA} {
		for _, tone := range brief.Tones() {
			for _, audience := range brief.Audiences() {
				if _, err := t.lookup(role, tone, audience); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (t templateTable) lookup(role Role, tone brief.Tone, audience brief.Audience) (string, error) {
	template, ok := t[role][tone][audience]
	if !ok {
		return "", fmt.Errorf("%w: no narration template for role=%s tone=%s audience=%s", ErrGeneration, role, tone, audience)
	}
	return template, nil
}
