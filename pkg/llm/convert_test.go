package llm

import (
	"encoding/base64"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/tarsy-project/tarsy/pkg/models"
)

func sampleConversation() []models.ConversationMessage {
	return []models.ConversationMessage{
		{Role: "system", Content: "You are an SRE agent."},
		{Role: "user", Content: "Pod crashloop in prod."},
		{
			Role:    "assistant",
			Content: "Checking the pod.",
			ToolCalls: []models.ToolCall{
				{ID: "call_1", Name: "kubernetes__get_pod", Arguments: `{"namespace":"prod"}`},
			},
			ThoughtSignature: base64.StdEncoding.EncodeToString([]byte("sig")),
		},
		{Role: "tool", Content: `{"status":"CrashLoopBackOff"}`, ToolCallID: "call_1"},
		{Role: "assistant", Content: "Final Answer: OOMKilled."},
	}
}

func TestConvertGoogleMessages(t *testing.T) {
	contents, system := convertGoogleMessages(sampleConversation())

	assert.Equal(t, "You are an SRE agent.", system)
	require.Len(t, contents, 4)

	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, "Pod crashloop in prod.", contents[0].Parts[0].Text)

	// Assistant turn: text part plus function call carrying the replayed
	// thought signature.
	assert.Equal(t, genai.RoleModel, contents[1].Role)
	require.Len(t, contents[1].Parts, 2)
	call := contents[1].Parts[1].FunctionCall
	require.NotNil(t, call)
	assert.Equal(t, "kubernetes__get_pod", call.Name)
	assert.Equal(t, "prod", call.Args["namespace"])
	assert.Equal(t, []byte("sig"), contents[1].Parts[1].ThoughtSignature)

	// Tool result becomes a user-side function response named after the call.
	resp := contents[2].Parts[0].FunctionResponse
	require.NotNil(t, resp)
	assert.Equal(t, "call_1", resp.ID)
	assert.Equal(t, "kubernetes__get_pod", resp.Name)
	assert.Equal(t, "CrashLoopBackOff", resp.Response["status"])

	assert.Equal(t, genai.RoleModel, contents[3].Role)
}

func TestConvertGoogleMessages_NonJSONToolResult(t *testing.T) {
	contents, _ := convertGoogleMessages([]models.ConversationMessage{
		{
			Role:      "assistant",
			ToolCalls: []models.ToolCall{{ID: "c1", Name: "srv__tool", Arguments: "{}"}},
		},
		{Role: "tool", Content: "plain text output", ToolCallID: "c1"},
	})

	require.Len(t, contents, 2)
	resp := contents[1].Parts[0].FunctionResponse
	require.NotNil(t, resp)
	assert.Equal(t, "plain text output", resp.Response["result"])
}

func TestConvertAnthropicMessages(t *testing.T) {
	result := convertAnthropicMessages(sampleConversation())

	// System message is excluded; it travels in params.System.
	require.Len(t, result, 4)

	assert.NotNil(t, result[0].Content[0].OfText)
	assert.Equal(t, "Pod crashloop in prod.", result[0].Content[0].OfText.Text)

	require.Len(t, result[1].Content, 2)
	toolUse := result[1].Content[1].OfToolUse
	require.NotNil(t, toolUse)
	assert.Equal(t, "call_1", toolUse.ID)
	assert.Equal(t, "kubernetes__get_pod", toolUse.Name)

	toolResult := result[2].Content[0].OfToolResult
	require.NotNil(t, toolResult)
	assert.Equal(t, "call_1", toolResult.ToolUseID)
}

func TestConvertOpenAIMessages(t *testing.T) {
	result := convertOpenAIMessages(sampleConversation())
	require.Len(t, result, 5)

	assert.Equal(t, openai.ChatMessageRoleSystem, result[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, result[1].Role)

	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, "call_1", result[2].ToolCalls[0].ID)
	assert.Equal(t, "kubernetes__get_pod", result[2].ToolCalls[0].Function.Name)
	assert.Equal(t, `{"namespace":"prod"}`, result[2].ToolCalls[0].Function.Arguments)

	assert.Equal(t, openai.ChatMessageRoleTool, result[3].Role)
	assert.Equal(t, "call_1", result[3].ToolCallID)

	assert.Equal(t, openai.ChatMessageRoleAssistant, result[4].Role)
	assert.Equal(t, "Final Answer: OOMKilled.", result[4].Content)
}
