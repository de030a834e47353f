package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"storyreel/internal/pipeline"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render <project-id>",
		Short: "Assemble and export the preview package for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := projectIDArg(args)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *pipeline.Service) error {
				pkg, written, err := svc.Render(cmd.Context(), id, strings.TrimSpace(outPath))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Preview written to %s\n", written)
				fmt.Fprintf(out, "Scenes: %d  Total: %ds\n", len(pkg.Script.Scenes), pkg.Script.TotalSeconds())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination for the preview package JSON")

	return cmd
}
