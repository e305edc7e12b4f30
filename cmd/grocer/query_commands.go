package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const noDataMessage = "(No data loaded)"

func newQueryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "query <item>",
		Short: "Print the frequency of a single item",
		Long: "Print the frequency of a single item. Matching ignores case and only the\n" +
			"first word of the item is used.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.tracker.Query(strings.Join(args, " ")))
			return nil
		},
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every item with its frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			entries := sess.tracker.ListAll()
			if len(entries) == 0 {
				fmt.Fprintln(out, noDataMessage)
				return nil
			}
			if asTable {
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{entry.Key, strconv.Itoa(entry.Count)})
				}
				fmt.Fprintln(out, renderTable([]string{"Item", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s %d\n", entry.Key, entry.Count)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Render as a table")
	return cmd
}

func newHistogramCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "histogram",
		Short: "Print a text histogram of item frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rows := sess.tracker.HistogramRows(sess.cfg.HistogramSymbol())
			if len(rows) == 0 {
				fmt.Fprintln(out, noDataMessage)
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s %s\n", row.Key, row.Bar)
			}
			return nil
		},
	}
}
