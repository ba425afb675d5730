package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/report"
)

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatTable, referenceReport(t)))

	out := buf.String()
	assert.Contains(t, out, "Cool Roof Coating Savings")
	assert.Contains(t, out, "Roof type:        metal")
	assert.Contains(t, out, "5,708 kWh")
	assert.Contains(t, out, "4,852 PLN")
	assert.Contains(t, out, "Payback: 10.3 years")
	assert.Contains(t, out, "trees planted (per year)")
}

func TestRender_JSON(t *testing.T) {
	r := referenceReport(t)
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatJSON, r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.ID, decoded["id"])

	cfg, ok := decoded["configuration"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "metal", cfg["roof_type"])
	assert.Equal(t, "none", cfg["roof_insulation"])
}

func TestRenderMany_NDJSON(t *testing.T) {
	reports := []*report.Report{referenceReport(t), referenceReport(t)}
	var buf bytes.Buffer
	require.NoError(t, report.RenderMany(&buf, report.FormatNDJSON, reports))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)))
	}
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatCSV, referenceReport(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, report.SummaryHeader, records[0])

	row := records[1]
	assert.Equal(t, "1000", row[0])
	assert.Equal(t, "metal", row[1])
	assert.Equal(t, "none", row[2])
	assert.Equal(t, "none", row[3])
	assert.Equal(t, "11", row[4])
	assert.Equal(t, "4.395", row[11])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.Render(&buf, "yaml", referenceReport(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestRenderMany_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderMany(&buf, report.FormatTable, nil))
	assert.Equal(t, "No scenarios\n", buf.String())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", report.Bar(50, 100, 10))
	assert.Equal(t, "██████████", report.Bar(500, 100, 10))
	assert.Equal(t, "░░░░░░░░░░", report.Bar(0, 100, 10))
	assert.Empty(t, report.Bar(1, 1, 0))
}
