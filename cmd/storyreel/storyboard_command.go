package main

import (
	"github.com/spf13/cobra"

	"storyreel/internal/pipeline"
)

func newStoryboardCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "storyboard <project-id>",
		Short: "Synthesize the storyboard frames for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := projectIDArg(args)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *pipeline.Service) error {
				sb, err := svc.SynthesizeStoryboard(id)
				if err != nil {
					return err
				}
				return emitArtifact(cmd, sb)
			})
		},
	}
}
