package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"storyreel/internal/brief"
	"storyreel/internal/pipeline"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var description string
	var tone string
	var audience string
	var platform string
	var duration float64

	cmd := &cobra.Command{
		Use:   "init <topic>",
		Short: "Create a new project from a creative brief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := brief.Brief{
				Topic:           strings.TrimSpace(args[0]),
				Description:     strings.TrimSpace(description),
				Tone:            strings.TrimSpace(tone),
				Audience:        strings.TrimSpace(audience),
				Platform:        strings.TrimSpace(platform),
				DurationMinutes: duration,
			}
			return ctx.withService(func(svc *pipeline.Service) error {
				p, err := svc.CreateProject(b)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created project %s\n", p.ID)
				fmt.Fprintf(out, "Topic: %s\n", p.Brief.Topic)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What the video should cover")
	cmd.Flags().StringVar(&tone, "tone", "", "Desired tone, e.g. upbeat or dramatic")
	cmd.Flags().StringVar(&audience, "audience", "", "Who the video is for")
	cmd.Flags().StringVar(&platform, "platform", "", "Target platform, e.g. tiktok or youtube")
	cmd.Flags().Float64Var(&duration, "duration", 1, "Target duration in minutes")

	return cmd
}
