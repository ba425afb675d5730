package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/report"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WritePDF(&buf, referenceReport(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWritePDF_ZeroSavings(t *testing.T) {
	cfg := calculator.DefaultConfiguration()
	cfg.AreaM2 = 0

	r, err := report.New(cfg, report.Options{Name: "empty roof", Charts: report.DefaultChartSettings()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WritePDF(&buf, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
