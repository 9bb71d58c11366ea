package runbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderResolve(t *testing.T) {
	provider := NewStaticProvider("# Generic Troubleshooting Guide")

	t.Run("no URL returns static content", func(t *testing.T) {
		content, err := provider.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "# Generic Troubleshooting Guide", content)
	})

	t.Run("alert URL is ignored, static content still served", func(t *testing.T) {
		content, err := provider.Resolve(context.Background(), "https://github.com/org/runbooks/blob/main/pod-crash.md")
		require.NoError(t, err)
		assert.Equal(t, "# Generic Troubleshooting Guide", content)
	})

	t.Run("empty content is allowed", func(t *testing.T) {
		empty := NewStaticProvider("")
		content, err := empty.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, content)
	})
}
