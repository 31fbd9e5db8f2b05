package members

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"referral-reconciler/core/config"
	"referral-reconciler/core/logger"
	"referral-reconciler/core/reconcile"
	"referral-reconciler/core/tabular"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service exports members that are missing from the referrals platform.
type Service struct {
	input  config.InputConfig
	output config.OutputConfig
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		input:  cfg.Input,
		output: cfg.Output,
		logger: logger,
	}
}

// Report describes one export run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`

	// MembersPath is the membership export that was read.
	MembersPath string `json:"members_path"`

	// AdvocatesPath is the advocate export that was read.
	AdvocatesPath string `json:"advocates_path"`

	// OutputPath is where the import file is (or would be) written.
	OutputPath string `json:"output_path"`

	// Written is false when no file was created.
	Written bool `json:"written"`

	// Summary provides aggregate counts.
	Summary reconcile.Summary `json:"summary"`

	// Rows holds the exported rows in membership order.
	Rows []reconcile.OutputRow `json:"-"`
}

// ExportOptions controls an export run.
type ExportOptions struct {
	// DryRun reconciles and reports without writing the import file.
	DryRun bool
}

// Export loads both exports, finds the missing members, and writes the import
// file. When nobody is missing, or on a dry run, the file is not written.
func (s *Service) Export(opts ExportOptions) (*Report, error) {
	report := &Report{
		RunID:         uuid.NewString(),
		MembersPath:   s.input.MembersPath,
		AdvocatesPath: s.input.AdvocatesPath,
		OutputPath:    s.output.Path(),
	}
	l := logger.WithRunID(s.logger, report.RunID)

	if err := ensureFileExists("membership", report.MembersPath); err != nil {
		return nil, err
	}
	if err := ensureFileExists("advocate", report.AdvocatesPath); err != nil {
		return nil, err
	}

	members, err := tabular.Load(report.MembersPath, s.input.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership export: %w", err)
	}
	l.Debug("Loaded membership export", zap.String("path", report.MembersPath), zap.Int("rows", members.Len()))

	advocates, err := tabular.Load(report.AdvocatesPath, s.input.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load advocate export: %w", err)
	}
	l.Debug("Loaded advocate export", zap.String("path", report.AdvocatesPath), zap.Int("rows", advocates.Len()))

	result, err := reconcile.Reconcile(members, advocates)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile exports: %w", err)
	}
	report.Summary = result.Summary
	report.Rows = result.Rows

	l.Info("Reconciliation finished",
		zap.Int("total_members", result.Summary.TotalMembers),
		zap.Int("advocate_rows", result.Summary.AdvocateRows),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("missing", result.Summary.Missing),
		zap.Int("blank_emails", result.Summary.BlankEmails),
	)
	if result.Summary.BlankEmails > 0 {
		l.Warn("Members without an email address", zap.Int("count", result.Summary.BlankEmails))
	}

	if len(result.Rows) == 0 {
		return report, nil
	}
	if opts.DryRun {
		l.Info("Dry-run mode: no file written", zap.String("file", report.OutputPath))
		return report, nil
	}

	table, err := result.Table()
	if err != nil {
		return nil, fmt.Errorf("failed to build export table: %w", err)
	}
	if err := os.MkdirAll(s.output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := tabular.WriteFile(report.OutputPath, table); err != nil {
		return nil, err
	}
	report.Written = true

	l.Info("Missing members export saved", zap.String("file", report.OutputPath), zap.Int("rows", table.Len()))
	return report, nil
}

// FileInfo pairs a file name with its table statistics.
type FileInfo struct {
	Name string
	tabular.Info
}

// Inspect loads each file and returns its statistics, sorted by file name.
func (s *Service) Inspect(paths []string) ([]FileInfo, error) {
	tables, err := tabular.LoadMany(paths, s.input.Encoding)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(tables))
	for name, t := range tables {
		infos = append(infos, FileInfo{Name: name, Info: tabular.Describe(t)})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// ensureFileExists validates that a required export is available before processing.
func ensureFileExists(label, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return fmt.Errorf("required %s export: %w", label, &tabular.NotFoundError{Path: path})
	}
	return nil
}
