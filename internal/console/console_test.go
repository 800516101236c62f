package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/blanktech/internal/theme"
)

func TestAskTrimsAndSequencesLines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(strings.NewReader("  Target One \n\tB\nlast"), &out, nil)
	ctx := context.Background()

	got, err := c.ReadLine(ctx, "\nTarget > ")
	require.NoError(t, err)
	require.Equal(t, "Target One", got)

	got, err = c.ReadLine(ctx, "Again > ")
	require.NoError(t, err)
	require.Equal(t, "B", got)

	got, err = c.ReadLine(ctx, "Last > ")
	require.NoError(t, err)
	require.Equal(t, "last", got)

	_, err = c.ReadLine(ctx, "Gone > ")
	require.ErrorIs(t, err, io.EOF)
	_, err = c.ReadLine(ctx, "Still gone > ")
	require.ErrorIs(t, err, io.EOF)

	require.Equal(t, "\nTarget > Again > Last > Gone > Still gone > ", out.String())
}

func TestAskReturnsInterruptedWhenCancelled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	c := New(pr, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, ErrInterrupted)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPause(t *testing.T) {
	t.Parallel()

	c := New(strings.NewReader(""), io.Discard, nil)
	require.NoError(t, c.Pause(context.Background(), 0))
	require.NoError(t, c.Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, c.Pause(ctx, time.Hour), ErrInterrupted)
	require.ErrorIs(t, c.Pause(ctx, 0), ErrInterrupted)
}

func TestWaitEnterTreatsEOFAsAcknowledgment(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, nil)
	require.NoError(t, c.WaitEnter(context.Background()))
	require.Contains(t, out.String(), "Press Enter to continue...")
}

func TestClearRespectsOption(t *testing.T) {
	t.Parallel()

	var on, off bytes.Buffer
	New(nil, &on, nil).Clear()
	New(nil, &off, nil, WithClearScreen(false)).Clear()
	require.Equal(t, clearScreen, on.String())
	require.Empty(t, off.String())
}

func TestPrintlnPaintsEachLine(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(nil, &out, theme.NewPlain())
	c.Println(theme.Info, "\nDone.")
	c.Printf(theme.Success, "[%03d] Attack Sent to %s", 7, "host")
	c.Lines(theme.Frame, []string{"a", "b"})
	require.Equal(t, "\nDone.\n[007] Attack Sent to host\na\nb\n", out.String())
}

func TestInterruptedWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("sigint")
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(cause)
	err := New(nil, io.Discard, nil).Pause(ctx, time.Second)
	require.ErrorIs(t, err, ErrInterrupted)
	require.ErrorIs(t, err, cause)
}
