package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/jask/blanktech/internal/config"
	"github.com/jask/blanktech/internal/placeholder"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Pause = config.PauseConfig{}
	cfg.UI.ClearScreen = false
	return cfg
}

func run(t *testing.T, ctx context.Context, cfg config.Config, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithGenerator(placeholder.NewSeeded(42))}, opts...)
	a, err := New(cfg, strings.NewReader(input), &out, opts...)
	require.NoError(t, err)
	require.NoError(t, a.Run(ctx))
	return out.String()
}

func TestQuit(t *testing.T) {
	t.Parallel()

	out := run(t, context.Background(), testConfig(), "q\n")
	require.Contains(t, out, "BlankTech - RedBox Edition")
	require.Contains(t, out, "Exiting BlankTech RedBox Edition. Goodbye!")
	require.NotContains(t, out, "\x1b[")
}

func TestInterruptIsNotAnError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := run(t, ctx, testConfig(), "")
	require.Contains(t, out, "Interrupted. Exiting BlankTech demo.")
	require.NotContains(t, out, "Goodbye!")
}

func TestUnlockCodeFromConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.UnlockCode = "open-sesame"
	out := run(t, context.Background(), cfg, "12\nbob\nOPEN-SESAME\n3\n\nq\n")
	require.Contains(t, out, "Max followers allowed: 1000")
	require.Equal(t, 3, strings.Count(out, "Bot Follower sent to @bob"))

	out = run(t, context.Background(), cfg, "12\nbob\nx100blank\n3\n\nq\n")
	require.Contains(t, out, "Max followers allowed: 200")
}

func TestColorProfile(t *testing.T) {
	t.Parallel()

	out := run(t, context.Background(), testConfig(), "q\n", WithColorProfile(termenv.ANSI))
	require.Contains(t, out, "\x1b[31m")

	cfg := testConfig()
	cfg.UI.Color = false
	out = run(t, context.Background(), cfg, "q\n", WithColorProfile(termenv.ANSI))
	require.NotContains(t, out, "\x1b[")
}

func TestClearScreen(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.UI.ClearScreen = true
	out := run(t, context.Background(), cfg, "q\n")
	require.True(t, strings.HasPrefix(out, "\x1b[H\x1b[2J"))
}

func TestUnknownPalette(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.UI.Palette = "neon"
	_, err := New(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorContains(t, err, "palette")
}
