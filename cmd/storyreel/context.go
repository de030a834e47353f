package main

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"storyreel/internal/config"
	"storyreel/internal/history"
	"storyreel/internal/logging"
	"storyreel/internal/pipeline"
	"storyreel/internal/project"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withService builds the pipeline service from the loaded config, runs fn and
// releases the history store afterwards.
func (c *commandContext) withService(fn func(*pipeline.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	store, err := project.NewStore(cfg.Paths.ProjectsDir)
	if err != nil {
		return err
	}
	var hist *history.Store
	if cfg.History.Enabled {
		hist, err = history.Open(cfg.HistoryPath())
		if err != nil {
			return err
		}
		defer hist.Close()
	}
	svc, err := pipeline.NewService(store, hist, logger)
	if err != nil {
		return err
	}
	return fn(svc)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// emitArtifact prints a generated artifact (script, storyboard) to the
// command's stdout as indented JSON, matching the persisted preview format so
// output can be piped into downstream tooling.
func emitArtifact(cmd *cobra.Command, artifact any) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

var errMissingProjectID = errors.New("project id is required")

func projectIDArg(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", errMissingProjectID
	}
	return strings.TrimSpace(args[0]), nil
}
