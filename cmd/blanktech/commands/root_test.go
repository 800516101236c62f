package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/blanktech/internal/config"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRoot(strings.NewReader(input), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func quietConfig(t *testing.T) string {
	t.Helper()
	cfg := config.Default()
	cfg.Pause = config.PauseConfig{}
	cfg.UI.ClearScreen = false
	path := filepath.Join(t.TempDir(), "blanktech.toml")
	require.NoError(t, config.Save(cfg, path))
	return path
}

func TestRootRunsMenu(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "q\n", "--config", quietConfig(t), "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "Select an option (1-20) or Q to quit:")
	require.Contains(t, out, "Goodbye!")
	require.NotContains(t, out, "\x1b[")
	require.Empty(t, errOut)
}

func TestRootLogsWhenAsked(t *testing.T) {
	t.Parallel()

	_, errOut, err := execute(t, "q\n", "--config", quietConfig(t), "--log-level", "info")
	require.NoError(t, err)
	require.Contains(t, errOut, "msg=\"menu started\"")
}

func TestRootFailures(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, _, err = execute(t, "", "--config", quietConfig(t), "--log-level", "loud")
	require.ErrorContains(t, err, "unknown log level")

	_, _, err = execute(t, "", "stray")
	require.Error(t, err)
}

func TestConfigWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.toml")
	out, _, err := execute(t, "", "--no-color", "config", "write", path)
	require.NoError(t, err)
	require.Equal(t, "Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "x100blank")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, cfg.UI.Color)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "blanktech dev\n", out)
}
