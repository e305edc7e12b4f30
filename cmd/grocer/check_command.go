package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grocer/internal/menu"
	"grocer/internal/preflight"
)

var errChecksFailed = errors.New("one or more checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the input file and output locations are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := menu.ShouldColorize(out)

			var lines []string
			lines = append(lines, renderSectionHeader("Configuration", colorize)...)
			configLabel := "(defaults)"
			if ctx.configExists {
				configLabel = ctx.configPath
			}
			lines = append(lines,
				renderStatusLine("Config", statusInfo, configLabel, colorize),
				renderStatusLine("Input", statusInfo, cfg.Paths.InputFile, colorize),
				renderStatusLine("Backup", statusInfo, cfg.Paths.BackupFile, colorize),
			)
			historyLabel := "disabled"
			if cfg.History.Enabled {
				historyLabel = cfg.History.Path
			}
			lines = append(lines, renderStatusLine("History", statusInfo, historyLabel, colorize), "")

			results := preflight.RunAll(cfg)
			lines = append(lines, renderSectionHeader("Checks", colorize)...)
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				lines = append(lines, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			fmt.Fprintln(out, strings.Join(lines, "\n"))
			if !preflight.Passed(results) {
				return errChecksFailed
			}
			return nil
		},
	}
}
