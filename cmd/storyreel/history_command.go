package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storyreel/internal/pipeline"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage render history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var projectFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded render invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *pipeline.Service) error {
				entries, err := svc.RenderHistory(cmd.Context(), projectFilter)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No render history")
					return nil
				}
				headers := []string{"ID", "Project", "Scenes", "Seconds", "Output", "Generated"}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						strconv.FormatInt(e.ID, 10),
						e.ProjectID,
						strconv.Itoa(e.SceneCount),
						strconv.Itoa(e.DurationSeconds),
						e.OutputPath,
						e.GeneratedAt.Format("2006-01-02 15:04:05"),
					})
				}
				aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&projectFilter, "project", "p", "", "Only show history for the given project id")

	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all render history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *pipeline.Service) error {
				removed, err := svc.ClearRenderHistory(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history entries\n", removed)
				return nil
			})
		},
	}
}
