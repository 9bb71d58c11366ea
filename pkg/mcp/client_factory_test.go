package mcp

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
)

func TestTestClientFactory_CreateClientUsesInjectFn(t *testing.T) {
	registry := config.NewMCPServerRegistry(nil)

	injected := 0
	factory := NewTestClientFactory(registry, func(c *Client) {
		injected++
	})

	// The injection path must bypass Initialize entirely — server IDs that
	// have no registry entry would otherwise fail transport creation.
	client, err := factory.CreateClient(context.Background(), []string{"unconfigured-server"})
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 1, injected)
	assert.Empty(t, client.FailedServers())
}

func TestTestClientFactory_CreateToolExecutorWiresInjectedSessions(t *testing.T) {
	ts := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "ok"}}}, nil
		},
	})

	registry := config.NewMCPServerRegistry(nil)
	factory := NewTestClientFactory(registry, func(c *Client) {
		sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "test"}, nil)
		session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
		require.NoError(t, err)
		c.InjectSession("test-server", sdkClient, session)
	})

	executor, client, err := factory.CreateToolExecutor(context.Background(), []string{"test-server"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	result, err := executor.Execute(context.Background(), agent.ToolCall{
		ID:        "call-1",
		Name:      "test-server.get_pods",
		Arguments: "{}",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "ok", result.Content)
}
