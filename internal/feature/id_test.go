package feature

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want ID
		ok   bool
	}{
		{"1", DDoSAttack, true},
		{"4", NitroCodeGenerator, true},
		{"12", FollowBot, true},
		{"20", PhishingMockUI, true},
		{"0", 0, false},
		{"21", 0, false},
		{"01", 0, false},
		{"+4", 0, false},
		{"q", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.key)
		assert.Equal(t, tt.ok, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got, "key %q", tt.key)
	}
}

func TestIDLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Nitro Code Generator", NitroCodeGenerator.Label())
	require.Equal(t, "TikTok Follow Bot", FollowBot.String())
	require.Equal(t, "Feature 42", ID(42).Label())
	require.False(t, ID(0).Valid())
	for _, id := range All() {
		require.NotEmpty(t, id.Label())
		require.LessOrEqual(t, len("[20] ")+len(id.Label()), 30, "label %q overflows a menu column", id.Label())
	}
}

func TestCatalogCoversEveryID(t *testing.T) {
	t.Parallel()

	entries := Catalog(Settings{UnlockCode: testUnlockCode})
	require.Len(t, entries, Count)
	for i, e := range entries {
		require.Equal(t, ID(i+1), e.ID)
		require.NotNil(t, e.Handler)
	}
}

func TestHandlerFunc(t *testing.T) {
	t.Parallel()

	called := false
	var h Handler = HandlerFunc(func(context.Context, *Env) error {
		called = true
		return nil
	})
	require.NoError(t, h.Run(context.Background(), nil))
	require.True(t, called)
}
