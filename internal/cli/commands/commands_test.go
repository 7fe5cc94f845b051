package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aki/dircontents/internal/cli/ui"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args against an isolated
// configuration file and returns what it printed.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	if os.Getenv(ConfigEnv) == "" {
		t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "config.yaml"))
	}

	origOut, origErr := ui.Stdout, ui.Stderr
	t.Cleanup(func() {
		ui.Stdout, ui.Stderr = origOut, origErr
	})

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func canonical(t *testing.T, path string) string {
	t.Helper()

	abs, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return abs
}
