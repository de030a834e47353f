package main

import (
	"github.com/spf13/cobra"

	"storyreel/internal/pipeline"
)

func newScriptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "script <project-id>",
		Short: "Generate the scene-by-scene script for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := projectIDArg(args)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *pipeline.Service) error {
				s, err := svc.GenerateScript(id)
				if err != nil {
					return err
				}
				return emitArtifact(cmd, s)
			})
		},
	}
}
