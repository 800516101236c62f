package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewLogger("", &buf)
	require.NoError(t, err)
	l.Error("hidden")
	require.Zero(t, buf.Len())

	l, err = NewLogger("WARN", &buf)
	require.NoError(t, err)
	require.False(t, l.Enabled(context.Background(), -4))
	l.Info("hidden")
	l.Warn("shown", "k", "v")
	require.Contains(t, buf.String(), "level=WARN msg=shown k=v")
	require.NotContains(t, buf.String(), "hidden")

	_, err = NewLogger("loud", &buf)
	require.ErrorContains(t, err, `unknown log level "loud"`)
}
