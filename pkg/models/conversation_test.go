package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRoundTrip(t *testing.T) {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: "You are an SRE agent."},
		{Role: RoleUser, Content: "Investigate the alert."},
		{
			Role:    RoleAssistant,
			Content: "",
			ToolCalls: []ToolCall{
				{ID: "call-1", Name: "kubernetes-server__pods_get", Arguments: `{"namespace":"prod"}`},
			},
			ThoughtSignature: "sig-abc",
		},
		{Role: RoleTool, Content: "pod list...", ToolCallID: "call-1"},
	}

	maps, err := ConversationToMaps(messages)
	require.NoError(t, err)
	require.Len(t, maps, 4)
	assert.Equal(t, "system", maps[0]["role"])
	assert.NotContains(t, maps[0], "tool_calls")
	assert.Equal(t, "sig-abc", maps[2]["thought_signature"])

	got, err := ConversationFromMaps(maps)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestConversationFromMapsNil(t *testing.T) {
	got, err := ConversationFromMaps(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
