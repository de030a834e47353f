package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"storyreel/internal/brief"
	"storyreel/internal/history"
	"storyreel/internal/logging"
	"storyreel/internal/preview"
	"storyreel/internal/project"
	"storyreel/internal/script"
	"storyreel/internal/storyboard"
)

// Service wires the project store and the generation stages together.
type Service struct {
	store     *project.Store
	history   *history.Store
	generator *script.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService builds a service around a project store. The history store is
// optional; pass nil to skip render-history recording.
func NewService(store *project.Store, hist *history.Store, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("project store is required")
	}
	generator, err := script.NewGenerator()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:     store,
		history:   hist,
		generator: generator,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// CreateProject validates the brief and persists a new project record.
func (s *Service) CreateProject(b brief.Brief) (*project.Project, error) {
	p, err := s.store.Create(b)
	if err != nil {
		return nil, err
	}
	s.logger.Info("project created",
		slog.String(logging.FieldProjectID, p.ID),
		slog.String("topic", p.Brief.Topic))
	return p, nil
}

// LoadProject returns the stored record for a project id.
func (s *Service) LoadProject(id string) (*project.Project, error) {
	return s.store.Load(id)
}

// ListProjects returns all stored projects ordered by creation time.
func (s *Service) ListProjects() ([]*project.Project, error) {
	return s.store.List()
}

// GenerateScript produces the script for a stored project.
func (s *Service) GenerateScript(id string) (*script.Script, error) {
	p, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	return s.generateScript(p)
}

func (s *Service) generateScript(p *project.Project) (*script.Script, error) {
	analysis, err := brief.Analyze(p.Brief)
	if err != nil {
		return nil, err
	}
	generated, err := s.generator.Generate(p.ID, analysis, p.Brief.DurationMinutes)
	if err != nil {
		return nil, err
	}
	s.logger.Info("script generated",
		slog.String(logging.FieldProjectID, p.ID),
		slog.Int(logging.FieldSceneCount, len(generated.Scenes)),
		slog.Int("total_seconds", generated.TotalSeconds()))
	return generated, nil
}

// SynthesizeStoryboard produces the storyboard for a stored project.
func (s *Service) SynthesizeStoryboard(id string) (*storyboard.Storyboard, error) {
	p, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	generated, err := s.generateScript(p)
	if err != nil {
		return nil, err
	}
	sb, err := storyboard.Synthesize(generated, p.Brief)
	if err != nil {
		return nil, err
	}
	s.logger.Info("storyboard synthesized",
		slog.String(logging.FieldProjectID, p.ID),
		slog.Int("frame_count", len(sb.Frames)))
	return sb, nil
}

// Render assembles and exports the preview package for a project. When
// outPath is empty the export lands next to the project records. Rendering is
// all-or-nothing: a failure leaves no partial artifact behind.
func (s *Service) Render(ctx context.Context, id, outPath string) (*preview.Package, string, error) {
	p, err := s.store.Load(id)
	if err != nil {
		return nil, "", err
	}
	generated, err := s.generateScript(p)
	if err != nil {
		return nil, "", err
	}
	sb, err := storyboard.Synthesize(generated, p.Brief)
	if err != nil {
		return nil, "", err
	}

	pkg, err := preview.Assemble(p, generated, sb, s.now())
	if err != nil {
		return nil, "", err
	}

	if outPath == "" {
		outPath = filepath.Join(s.store.Root(), p.ID+"_preview.json")
	}
	if err := pkg.WriteFile(outPath); err != nil {
		return nil, "", err
	}
	s.logger.Info("preview rendered",
		slog.String(logging.FieldProjectID, p.ID),
		slog.String(logging.FieldOutputPath, outPath))

	if s.history != nil {
		_, err := s.history.Record(ctx, history.Entry{
			ProjectID:       p.ID,
			OutputPath:      outPath,
			SceneCount:      len(generated.Scenes),
			DurationSeconds: generated.TotalSeconds(),
			GeneratedAt:     pkg.GeneratedAt,
		})
		if err != nil {
			// The export already succeeded; a history miss is not fatal.
			s.logger.Warn("record render history", logging.Error(err))
		}
	}

	return pkg, outPath, nil
}

// RenderHistory returns recorded render invocations, optionally filtered by
// project id.
func (s *Service) RenderHistory(ctx context.Context, projectID string) ([]*history.Entry, error) {
	if s.history == nil {
		return nil, nil
	}
	if projectID != "" {
		return s.history.ForProject(ctx, projectID)
	}
	return s.history.List(ctx)
}

// ClearRenderHistory removes all recorded render invocations.
func (s *Service) ClearRenderHistory(ctx context.Context) (int64, error) {
	if s.history == nil {
		return 0, nil
	}
	return s.history.Clear(ctx)
}
