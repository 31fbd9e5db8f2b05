package cmd

import (
	"fmt"
	"sort"
	"strings"

	"referral-reconciler/core/config"
	"referral-reconciler/core/logger"
	"referral-reconciler/feature/members"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectEncoding string

// inspectCmd prints basic statistics about CSV files.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Show rows, columns, and empty cells of CSV exports",
	Long: `Load one or more CSV exports with the configured encoding and print their
row count, column names, and the number of empty cells per column. Useful to
check an export before reconciling it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectEncoding, "encoding", "", "Character encoding of the files")
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Input.Encoding = inspectEncoding
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	infos, err := members.NewService(cfg, l).Inspect(args)
	if err != nil {
		return err
	}
	l.Debug("Inspected files", zap.Int("count", len(infos)))

	w := cmd.OutOrStdout()
	for _, info := range infos {
		fmt.Fprintf(w, "\n=== %s ===\n", info.Name)
		fmt.Fprintf(w, "Rows: %d\n", info.Rows)
		fmt.Fprintf(w, "Columns: %d\n", info.Columns)
		fmt.Fprintf(w, "Column Names: %s\n", strings.Join(info.ColumnNames, ", "))

		names := make([]string, 0, len(info.MissingValues))
		for name, count := range info.MissingValues {
			if count > 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		if len(names) == 0 {
			fmt.Fprintln(w, "Missing Values: none")
			continue
		}
		fmt.Fprintln(w, "Missing Values:")
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, info.MissingValues[name])
		}
	}
	return nil
}
