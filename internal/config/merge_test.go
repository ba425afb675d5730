package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/config"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleSection(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
	assert.InDelta(t, 0.85, target.Defaults.EnergyPrice, 1e-12)
}

func TestShallowMergeYAML_SectionIsReplaced(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
defaults:
  area_m2: 250
  roof_type: concrete
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 250.0, target.Defaults.AreaM2, 1e-12)
	assert.Equal(t, "concrete", target.Defaults.RoofType)
	// Keys missing from the overlay section are zeroed, not kept.
	assert.Zero(t, target.Defaults.EnergyPrice)
	assert.True(t, target.Charts.AutoScale)
}

func TestShallowMergeYAML_UnknownSectionIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
charts:
  auto_scale: false
  overrides:
    trees: 1000
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.False(t, target.Charts.AutoScale)
	assert.InDelta(t, 1000.0, target.Charts.Overrides.Trees, 1e-12)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	require.Error(t, config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeOverlay(t, "defaults: [1, 2")
	require.Error(t, config.ShallowMergeYAML(config.Default(), bad))
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, "# nothing\n")))
	assert.Equal(t, config.Default(), target)
}
