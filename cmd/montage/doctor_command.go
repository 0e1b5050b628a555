package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment the rendered command will run in",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)

			if ctx.jsonOutput() {
				return writeJSON(cmd, doctorDocument(results))
			}

			colorize := shouldColorize(cmd.OutOrStdout())
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				status := "OK"
				if !result.Passed {
					status = "FAIL"
					failed++
				}
				rows = append(rows, []string{
					result.Name,
					colorizeStatus(status, result.Passed, colorize),
					result.Detail,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows))

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}

type doctorRow struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func doctorDocument(results []preflight.Result) []doctorRow {
	rows := make([]doctorRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, doctorRow{Name: result.Name, Passed: result.Passed, Detail: result.Detail})
	}
	return rows
}
