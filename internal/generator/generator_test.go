package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/outreach-merger/internal/config"
	"github.com/ginjaninja78/outreach-merger/internal/exporter"
	"github.com/ginjaninja78/outreach-merger/internal/generator"
	"github.com/ginjaninja78/outreach-merger/internal/merge"
)

// writeLeads creates the spreadsheet used by the end-to-end tests.
func writeLeads(tb testing.TB) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "leads.csv")
	content := "First Name,Niche,Email\n" +
		"John,IT,john.doe@example.com\n" +
		"Jane,\"Retail, luxury\",jane@example.com\n" +
		"Ada,Analytics,ada@example.com\n" +
		"Grace,Compilers,grace@example.com\n"
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// testConfig returns a quiet configuration writing into a temp dir.
func testConfig(tb testing.TB) *config.Config {
	tb.Helper()

	cfg, err := config.LoadOrDefault(filepath.Join(tb.TempDir(), "absent.yaml"))
	require.NoError(tb, err)

	cfg.OutputDir = tb.TempDir()
	cfg.OutputNameFormat = "merged.{ext}"
	cfg.LogLevel = "error"

	return cfg
}

func TestRun_csv_end_to_end(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Templates.Copy = []config.TemplateSource{
		{Text: "A: hi {{first_name}} ({{niche}})"},
		{Text: "B: hi {{first_name}} ({{niche}})"},
		{Text: "C: hi {{first_name}}"},
	}

	result := generator.New(writeLeads(t), cfg).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	assert.Equal(t, 4, result.Stats.RowsProcessed)
	assert.Equal(t, 3, result.Stats.CopyTemplates)
	assert.Equal(t, 0, result.Stats.UnmappedPlaceholders)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)

	// 4 rows against templates A, B, C rotate A, B, C, A. The quoted
	// comma in Jane's niche survives, and row order is input order.
	assert.Equal(t,
		"Email,Email Copy\n"+
			"john.doe@example.com,A: hi John (IT)\n"+
			"jane@example.com,\"B: hi Jane (Retail, luxury)\"\n"+
			"ada@example.com,C: hi Ada\n"+
			"grace@example.com,A: hi Grace (Compilers)\n",
		string(data))
}

func TestRun_empty_templates_fails_before_output(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	result := generator.New(writeLeads(t), cfg).Run()
	require.ErrorIs(t, result.Error, merge.ErrNoTemplates)
	assert.False(t, result.Success)
	assert.Empty(t, result.OutputFile)

	// Fail fast: nothing was written.
	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_unmapped_placeholder_is_not_fatal(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Templates.Copy = []config.TemplateSource{
		{Text: "hi {{first_name}} re {{company_name}}"},
	}

	result := generator.New(writeLeads(t), cfg).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	assert.Equal(t, 1, result.Stats.UnmappedPlaceholders)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hi John re \n")
}

func TestRun_no_email_column(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte("First Name\nJohn\n"), 0o600))

	cfg := testConfig(t)
	cfg.Templates.Copy = []config.TemplateSource{{Text: "hi {{first_name}}"}}

	result := generator.New(path, cfg).Run()
	require.NoError(t, result.Error)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "Email Copy\nhi John\n", string(data))
}

func TestRun_blank_fill(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("First Name,Company,Email\nJohn,,j@example.com\n"), 0o600))

	cfg := testConfig(t)
	cfg.BlankFill = "[MISSING]"
	cfg.Templates.Copy = []config.TemplateSource{{Text: "{{first_name}} at {{company}}"}}

	result := generator.New(path, cfg).Run()
	require.NoError(t, result.Error)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "John at [MISSING]")
}

func TestRun_xlsx_end_to_end(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.OutputFormat = config.FormatXLSX
	cfg.Templates.Subject = []config.TemplateSource{{Text: "S1 {{first_name}}"}, {Text: "S2 {{first_name}}"}}
	cfg.Templates.Copy = []config.TemplateSource{{Text: "copy for {{first_name}}"}}
	cfg.Templates.Chaser = []config.TemplateSource{{Text: "chaser for {{first_name}}"}}

	result := generator.New(writeLeads(t), cfg).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	f, err := excelize.OpenFile(result.OutputFile)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exporter.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Subjects rotate S1, S2, S1, S2 while the single copy repeats.
	assert.Equal(t, "S1 John", rows[1][1])
	assert.Equal(t, "S2 Jane", rows[2][1])
	assert.Equal(t, "S1 Ada", rows[3][1])
	assert.Equal(t, "S2 Grace", rows[4][1])
	assert.Equal(t, "copy for John", rows[1][2])
	assert.Equal(t, "chaser for Ada", rows[3][4])
}

func TestRun_xlsx_requires_subject_templates(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.OutputFormat = config.FormatXLSX
	cfg.Templates.Copy = []config.TemplateSource{{Text: "copy"}}

	result := generator.New(writeLeads(t), cfg).Run()
	require.ErrorIs(t, result.Error, merge.ErrNoTemplates)
}

func TestRun_missing_input_file(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Templates.Copy = []config.TemplateSource{{Text: "copy"}}

	result := generator.New(filepath.Join(t.TempDir(), "missing.csv"), cfg).Run()
	require.Error(t, result.Error)
	assert.False(t, result.Success)
}
