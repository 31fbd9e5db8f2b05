package cmd

import (
	"fmt"
	"io"
	"strings"

	"referral-reconciler/core/config"
	"referral-reconciler/core/logger"
	"referral-reconciler/core/tabular"
	"referral-reconciler/feature/members"

	"github.com/spf13/cobra"
)

var (
	// Flags for reconcile members command
	membersPath   string
	advocatesPath string
	outputDir     string
	outputFile    string
	inputEncoding string
	dryRunMembers bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile exports against the referrals platform",
}

// membersReconcileCmd exports members that are missing from the referrals platform.
var membersReconcileCmd = &cobra.Command{
	Use:   "members",
	Short: "Export members missing from the referrals platform",
	Long: `Compare the membership export (first_name, last_name, email) with the
advocate export (ADVOCATE_EMAIL) and write every member whose email is not an
advocate yet to the import CSV. Emails are compared trimmed and case-insensitively.

Paths default to the configuration (INPUT_MEMBERS_PATH, INPUT_ADVOCATES_PATH,
OUTPUT_DIR, OUTPUT_FILENAME); flags override it.

Examples:
  # Use configured paths
  reconcile members

  # Report only, write nothing
  reconcile members --dry-run

  # Explicit inputs and a latin-1 membership export
  reconcile members --members exports/members.csv --advocates exports/advocates.csv --encoding latin-1`,
	Args: cobra.NoArgs,
	RunE: runMembersReconcile,
}

func init() {
	reconcileCmd.AddCommand(membersReconcileCmd)

	membersReconcileCmd.Flags().StringVar(&membersPath, "members", "", "Membership export CSV")
	membersReconcileCmd.Flags().StringVar(&advocatesPath, "advocates", "", "Referrals platform advocate export CSV")
	membersReconcileCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the import CSV")
	membersReconcileCmd.Flags().StringVar(&outputFile, "output-file", "", "File name of the import CSV")
	membersReconcileCmd.Flags().StringVar(&inputEncoding, "encoding", "", "Character encoding of both exports")
	membersReconcileCmd.Flags().BoolVar(&dryRunMembers, "dry-run", false, "Report missing members without writing the import CSV")

	RootCmd.AddCommand(reconcileCmd)
}

func runMembersReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	report, err := members.NewService(cfg, l).Export(members.ExportOptions{DryRun: dryRunMembers})
	if err != nil {
		return err
	}

	printExportReport(cmd.OutOrStdout(), report)
	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("members") {
		cfg.Input.MembersPath = membersPath
	}
	if flags.Changed("advocates") {
		cfg.Input.AdvocatesPath = advocatesPath
	}
	if flags.Changed("encoding") {
		cfg.Input.Encoding = inputEncoding
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("output-file") {
		cfg.Output.Filename = outputFile
	}
}

// printExportReport prints the human-readable run summary.
func printExportReport(w io.Writer, report *members.Report) {
	if len(report.Rows) == 0 {
		fmt.Fprintln(w, "All members already exist in the referrals platform. No export created.")
		return
	}

	fmt.Fprintf(w, "Found %d members missing from the referrals platform.\n", len(report.Rows))
	fmt.Fprintln(w, "Members that will be added:")
	for _, row := range report.Rows {
		fmt.Fprintf(w, " - %s %s <%s>\n",
			safeTrim(row.FirstName()),
			safeTrim(row.LastName()),
			safeTrim(row.Email()))
	}
	if !report.Written {
		fmt.Fprintln(w, "Dry-run mode: no export created.")
		return
	}
	fmt.Fprintf(w, "Missing members export saved to %s\n", report.OutputPath)
}

// safeTrim converts a possibly absent value to a trimmed string.
func safeTrim(v tabular.Value) string {
	if v.IsNull() {
		return ""
	}
	return strings.TrimSpace(v.Text())
}
