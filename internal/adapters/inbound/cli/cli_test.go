package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/adapters/inbound/cli"
)

// workspace points a command at a data file and config file in a temp dir.
type workspace struct {
	dataFile   string
	configFile string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	return workspace{
		dataFile:   filepath.Join(dir, "data.csv"),
		configFile: filepath.Join(dir, ".ordertrack.yaml"),
	}
}

// run executes the root command with args plus the workspace flags and
// returns stdout and stderr.
func (w workspace) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append(args, "--file", w.dataFile, "--config", w.configFile))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (w workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := w.run(t, args...)
	require.NoError(t, err)
	return out
}

func (w workspace) data(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(w.dataFile)
	require.NoError(t, err)
	return string(b)
}

func (w workspace) addOrder(t *testing.T, client, number, amount, status string) {
	t.Helper()
	w.mustRun(t, "add",
		"--client", client,
		"--number", number,
		"--date", "2026-03-01",
		"--amount", amount,
		"--status", status,
	)
}
