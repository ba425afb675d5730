package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rshade/coolroof/internal/cli"
)

func TestValidateExportFlags(t *testing.T) {
	tests := []struct {
		name    string
		params  cli.ExportParams
		errText string
	}{
		{name: "csv to stdout", params: cli.ExportParams{Format: "csv"}},
		{name: "xlsx to file", params: cli.ExportParams{Format: "xlsx", Out: "a.xlsx"}},
		{name: "pdf needs file", params: cli.ExportParams{Format: "pdf", Out: "-"}, errText: "--out FILE is required"},
		{name: "xlsx needs file", params: cli.ExportParams{Format: "xlsx"}, errText: "--out FILE is required"},
		{name: "unknown format", params: cli.ExportParams{Format: "docx"}, errText: "unsupported export format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.ValidateExportFlags(&tt.params)
			if tt.errText == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestExport_CSVToStdout(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "export", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "area_m2,roof_type"))
	assert.True(t, strings.HasPrefix(lines[1], "1000,metal,none,none,11,"))
}

func TestExport_XLSX(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "savings.xlsx")

	out, errOut, err := executeCmd(t, "export", "--format", "xlsx", "--out", path, "--name", "Hall A")
	require.NoError(t, err)
	assert.Contains(t, out+errOut, "Exported xlsx report to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Series", "Equivalents"}, f.GetSheetList())

	name, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Hall A", name)
}

func TestExport_PDF(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "savings.pdf")

	_, _, err := executeCmd(t, "export", "--format", "pdf", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestExport_InvalidConfigurationLeavesNoFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "savings.xlsx")

	_, _, err := executeCmd(t, "export", "--format", "xlsx", "--out", path, "--area", "-5")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
