package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"grocer/internal/menu"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "grocer",
		Short:         "Count item frequencies and explore them interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.stderr = cmd.ErrOrStderr()
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Corner Grocer Item Tracker")
			fmt.Fprintf(out, "(Loaded input and created '%s')\n\n", filepath.Base(sess.cfg.Paths.BackupFile))

			m := menu.New(sess.tracker, cmd.InOrStdin(), out,
				menu.WithSymbol(sess.cfg.HistogramSymbol()),
				menu.WithColor(menu.ShouldColorize(out)),
				menu.WithLogger(sess.logger),
			)
			return m.Run(sess.ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.input, "input", "i", "", "Input file to count (overrides paths.input_file)")
	pf.StringVarP(&flags.backup, "backup", "b", "", "Backup file to write (overrides paths.backup_file)")
	pf.StringVar(&flags.symbol, "symbol", "", "Histogram symbol (overrides histogram.symbol)")
	pf.BoolVar(&flags.noHistory, "no-history", false, "Do not record this run in the history database")

	rootCmd.AddCommand(newQueryCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newHistogramCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
