package members

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"referral-reconciler/core/config"
	"referral-reconciler/core/reconcile"
	"referral-reconciler/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	membersCSV = "first_name,last_name,email\n" +
		"Alice,Smith,alice@example.com\n" +
		"Bob,Brown,bob@example.com\n" +
		"Carol,Jones,carol@example.com\n"
	advocatesCSV = "ADVOCATE_ID,ADVOCATE_EMAIL\n" +
		"1,bob@example.com\n" +
		"2,CAROL@EXAMPLE.COM\n"
)

// setupService writes the fixtures into a temp dir and returns a service
// configured to read them.
func setupService(t *testing.T, members, advocates string) (*Service, *config.Config, *observer.ObservedLogs) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		Input: config.InputConfig{
			MembersPath:   filepath.Join(dir, "data", "memberpress.csv"),
			AdvocatesPath: filepath.Join(dir, "data", "genius-referrals.csv"),
			Encoding:      "utf-8",
		},
		Output: config.OutputConfig{
			Dir:      filepath.Join(dir, "output"),
			Filename: "missing-memberpress-users.csv",
		},
	}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	if members != "" {
		require.NoError(t, os.WriteFile(cfg.Input.MembersPath, []byte(members), 0o644))
	}
	if advocates != "" {
		require.NoError(t, os.WriteFile(cfg.Input.AdvocatesPath, []byte(advocates), 0o644))
	}

	core, logs := observer.New(zap.DebugLevel)
	return NewService(cfg, zap.New(core)), cfg, logs
}

func TestExport_WritesImportFile(t *testing.T) {
	svc, cfg, logs := setupService(t, membersCSV, advocatesCSV)

	report, err := svc.Export(ExportOptions{})
	require.NoError(t, err)

	assert.True(t, report.Written)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, cfg.Output.Path(), report.OutputPath)
	assert.Equal(t, 1, report.Summary.Missing)
	assert.Equal(t, 2, report.Summary.Matched)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Alice", report.Rows[0].FirstName().Text())

	data, err := os.ReadFile(report.OutputPath)
	require.NoError(t, err)
	assert.Equal(t,
		"First Name,Last name ,Email,\" Payout threshold\",\" Currency code\",Member type,"+
			"Campaign slug  (optional),Referrer’s email (optional),\" note (optional)\"\n"+
			"Alice,Smith,alice@example.com,1,USD,ADVOCATE,,,\n",
		string(data))

	written, err := tabular.Load(report.OutputPath, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutputColumns(), written.Columns())

	// Every line of the run carries the same run id.
	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, report.RunID, entry.ContextMap()["run_id"], entry.Message)
	}
	assert.Equal(t, 1, logs.FilterMessage("Missing members export saved").Len())
}

func TestExport_NoMissingMembersWritesNothing(t *testing.T) {
	svc, cfg, _ := setupService(t,
		"first_name,last_name,email\nBob,Brown,Bob@Example.com\n",
		"ADVOCATE_EMAIL\n bob@example.com \n")

	report, err := svc.Export(ExportOptions{})
	require.NoError(t, err)

	assert.False(t, report.Written)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.Summary.Missing)

	_, err = os.Stat(cfg.Output.Dir)
	assert.True(t, errors.Is(err, os.ErrNotExist), "output directory should not be created")
}

func TestExport_MissingInput(t *testing.T) {
	t.Run("Membership", func(t *testing.T) {
		svc, cfg, _ := setupService(t, "", advocatesCSV)

		_, err := svc.Export(ExportOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, tabular.ErrNotFound)
		assert.Contains(t, err.Error(), "required membership export")
		assert.Contains(t, err.Error(), cfg.Input.MembersPath)
	})

	t.Run("Advocate", func(t *testing.T) {
		svc, cfg, _ := setupService(t, membersCSV, "")

		_, err := svc.Export(ExportOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, tabular.ErrNotFound)
		assert.Contains(t, err.Error(), cfg.Input.AdvocatesPath)
	})
}

func TestExport_SchemaError(t *testing.T) {
	svc, cfg, _ := setupService(t,
		"first_name,email\nAlice,alice@example.com\n",
		"MEMBER_EMAIL\nbob@example.com\n")

	_, err := svc.Export(ExportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrSchema)
	assert.Contains(t, err.Error(), "last_name")
	assert.Contains(t, err.Error(), "ADVOCATE_EMAIL")

	_, statErr := os.Stat(cfg.Output.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestExport_ParseError(t *testing.T) {
	svc, _, _ := setupService(t, "first_name,last_name,email\nAlice,Smith\n", advocatesCSV)

	_, err := svc.Export(ExportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrParse)
	assert.Contains(t, err.Error(), "failed to load membership export")
}

func TestExport_UsesConfiguredEncoding(t *testing.T) {
	svc, cfg, _ := setupService(t, "first_name,last_name,email\nJos\xe9,Pe\xf1a,jose@example.com\n", advocatesCSV)
	cfg.Input.Encoding = "latin-1"
	svc = NewService(cfg, zap.NewNop())

	report, err := svc.Export(ExportOptions{})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "José", report.Rows[0].FirstName().Text())
	assert.Equal(t, "Peña", report.Rows[0].LastName().Text())
}

func TestInspect(t *testing.T) {
	svc, cfg, _ := setupService(t, "first_name,last_name,email\nAlice,,a@example.com\nBob,Brown,\n", advocatesCSV)

	infos, err := svc.Inspect([]string{cfg.Input.MembersPath, cfg.Input.AdvocatesPath})
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "genius-referrals.csv", infos[0].Name)
	assert.Equal(t, 2, infos[0].Rows)

	assert.Equal(t, "memberpress.csv", infos[1].Name)
	assert.Equal(t, 2, infos[1].Rows)
	assert.Equal(t, 3, infos[1].Columns)
	assert.Equal(t, 1, infos[1].MissingValues["last_name"])
	assert.Equal(t, 1, infos[1].MissingValues["email"])
	assert.Equal(t, 0, infos[1].MissingValues["first_name"])
}

func TestExport_DryRun(t *testing.T) {
	svc, cfg, logs := setupService(t, membersCSV, advocatesCSV)

	report, err := svc.Export(ExportOptions{DryRun: true})
	require.NoError(t, err)

	assert.False(t, report.Written)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1, logs.FilterMessage("Dry-run mode: no file written").Len())

	_, err = os.Stat(cfg.Output.Dir)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExport_SpreadsheetHeaderQuirks(t *testing.T) {
	svc, _, _ := setupService(t,
		"first_name,last_name,email,\n"+
			"Alice,Smith,alice@example.com,\n"+
			"Bob,Brown,bob@example.com,\n",
		"ADVOCATE_EMAIL,notes,notes\n"+
			"bob@example.com,vip,2024\n")

	report, err := svc.Export(ExportOptions{DryRun: true})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "alice@example.com", report.Rows[0].Email().Text())
	assert.Equal(t, 1, report.Summary.Matched)
}
