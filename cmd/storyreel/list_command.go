package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storyreel/internal/pipeline"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *pipeline.Service) error {
				projects, err := svc.ListProjects()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(projects) == 0 {
					fmt.Fprintln(out, "No projects found")
					return nil
				}
				headers := []string{"ID", "Topic", "Tone", "Duration", "Created"}
				rows := make([][]string, 0, len(projects))
				for _, p := range projects {
					rows = append(rows, []string{
						p.ID,
						p.Brief.Topic,
						p.Brief.Tone,
						strconv.FormatFloat(p.Brief.DurationMinutes, 'f', -1, 64) + " min",
						p.CreatedAt.Format("2006-01-02 15:04"),
					})
				}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}
