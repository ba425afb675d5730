package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/coolroof/internal/cli"
	"github.com/rshade/coolroof/internal/config"
)

// setupCLITest isolates the configuration home and environment overrides
// and resets the global configuration.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv("COOLROOF_LOG_LEVEL", "error")
	for _, env := range []string{
		"COOLROOF_ENERGY_PRICE", "COOLROOF_EMISSION_FACTOR", "COOLROOF_CURRENCY", "COOLROOF_OUTPUT_FORMAT",
	} {
		t.Setenv(env, "")
	}
	config.SetGlobalConfig(nil)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })
	return home
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}
