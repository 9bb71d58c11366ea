package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeInstructions_TierOrder(t *testing.T) {
	b := NewBuilder(testRegistry())
	composed := b.ComposeInstructions(testExecCtx())

	general := strings.Index(composed, "General SRE Agent Instructions")
	server := strings.Index(composed, "kubernetes-server Instructions")
	custom := strings.Index(composed, "Agent-Specific Instructions")
	assert.True(t, general >= 0 && server > general && custom > server,
		"expected general < server < custom ordering, got %d/%d/%d", general, server, custom)
}

func TestComposeInstructions_SkipsServersWithoutInstructions(t *testing.T) {
	b := NewBuilder(testRegistry())
	composed := b.ComposeInstructions(testExecCtx())
	assert.NotContains(t, composed, "silent-server Instructions")
}

func TestComposeInstructions_SkipsUnknownServers(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.Config.MCPServers = []string{"not-registered"}

	composed := b.ComposeInstructions(execCtx)
	assert.NotContains(t, composed, "not-registered")
}

func TestComposeInstructions_NoCustomInstructions(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.Config.CustomInstructions = ""

	composed := b.ComposeInstructions(execCtx)
	assert.NotContains(t, composed, "Agent-Specific Instructions")
}

func TestComposeInstructions_FailedServerWarnings(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.FailedServers = map[string]string{
		"kubernetes-server": "stdio process exited during initialize",
		"argocd-server":     "missing ARGOCD_API_KEY",
	}

	composed := b.ComposeInstructions(execCtx)
	assert.Contains(t, composed, "Degraded Tooling Warning")
	assert.Contains(t, composed, "stdio process exited during initialize")

	// Deterministic ordering by server id.
	argocd := strings.Index(composed, "argocd-server")
	kubernetes := strings.Index(composed, "**kubernetes-server**")
	assert.True(t, argocd >= 0 && kubernetes > argocd)
}

func TestFormatFailedServerWarnings_Empty(t *testing.T) {
	assert.Empty(t, formatFailedServerWarnings(nil))
	assert.Empty(t, formatFailedServerWarnings(map[string]string{}))
}
