package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/pkg/models"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func TestInteractionService_CreateLLMInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, sessionService)
	execution := createTestStageExecution(t, stageService, session.ID, 0)

	t.Run("records the full conversation snapshot", func(t *testing.T) {
		conversation := []models.ConversationMessage{
			{Role: "system", Content: "You are an SRE investigating alerts."},
			{Role: "user", Content: "Pod crashloop in namespace prod."},
			{
				Role:    "assistant",
				Content: "I need to inspect the pod.",
				ToolCalls: []models.ToolCall{
					{ID: "call_1", Name: "kubernetes__get_pod", Arguments: `{"namespace":"prod"}`},
				},
				ThoughtSignature: "sig-abc",
			},
			{Role: "tool", Content: `{"status":"CrashLoopBackOff"}`, ToolCallID: "call_1"},
		}

		thinking := "The pod is likely OOMKilled."
		inputTokens, outputTokens, totalTokens := 1200, 340, 1540
		durationMs := 2150

		interaction, err := service.CreateLLMInteraction(ctx, models.CreateLLMInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: llminteraction.InteractionTypeInvestigation,
			ModelName:       "gemini-2.5-pro",
			Provider:        "google",
			Conversation:    conversation,
			ThinkingContent: &thinking,
			InputTokens:     &inputTokens,
			OutputTokens:    &outputTokens,
			TotalTokens:     &totalTokens,
			DurationMs:      &durationMs,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, interaction.ID)
		assert.Equal(t, session.ID, interaction.SessionID)
		assert.Equal(t, execution.ID, interaction.ExecutionID)
		assert.Equal(t, llminteraction.InteractionTypeInvestigation, interaction.InteractionType)
		assert.Equal(t, "gemini-2.5-pro", interaction.ModelName)
		assert.Equal(t, "google", interaction.Provider)
		assert.Len(t, interaction.Conversation, 4)
		require.NotNil(t, interaction.ThinkingContent)
		assert.Equal(t, thinking, *interaction.ThinkingContent)
		require.NotNil(t, interaction.TotalTokens)
		assert.Equal(t, 1540, *interaction.TotalTokens)

		// The stored snapshot must round-trip back to typed messages.
		restored, err := models.ConversationFromMaps(interaction.Conversation)
		require.NoError(t, err)
		assert.Equal(t, conversation, restored)
	})

	t.Run("records a failed call with its error", func(t *testing.T) {
		errMsg := "provider returned 429"
		interaction, err := service.CreateLLMInteraction(ctx, models.CreateLLMInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: llminteraction.InteractionTypeFinalAnalysis,
			ModelName:       "claude-sonnet-4-5",
			Provider:        "anthropic",
			ErrorMessage:    &errMsg,
		})
		require.NoError(t, err)
		require.NotNil(t, interaction.ErrorMessage)
		assert.Equal(t, errMsg, *interaction.ErrorMessage)
		assert.Empty(t, interaction.Conversation)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateLLMInteractionRequest
			field string
		}{
			{
				name:  "missing session_id",
				req:   models.CreateLLMInteractionRequest{ExecutionID: execution.ID, ModelName: "m", Provider: "p"},
				field: "session_id",
			},
			{
				name:  "missing execution_id",
				req:   models.CreateLLMInteractionRequest{SessionID: session.ID, ModelName: "m", Provider: "p"},
				field: "execution_id",
			},
			{
				name:  "missing model_name",
				req:   models.CreateLLMInteractionRequest{SessionID: session.ID, ExecutionID: execution.ID, Provider: "p"},
				field: "model_name",
			},
			{
				name:  "missing provider",
				req:   models.CreateLLMInteractionRequest{SessionID: session.ID, ExecutionID: execution.ID, ModelName: "m"},
				field: "provider",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateLLMInteraction(ctx, tt.req)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.field, validationErr.Field)
			})
		}
	})
}

func TestInteractionService_CreateMCPInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, sessionService)
	execution := createTestStageExecution(t, stageService, session.ID, 0)

	t.Run("records a tool call with masked result", func(t *testing.T) {
		toolName := "kubernetes__get_secret"
		toolResult := `{"token":"__MASKED_API_KEY__"}`
		durationMs := 84

		interaction, err := service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: mcpinteraction.InteractionTypeToolCall,
			ServerName:      "kubernetes",
			ToolName:        &toolName,
			ToolArguments:   map[string]any{"namespace": "prod", "name": "db-creds"},
			ToolResult:      &toolResult,
			Masked:          true,
			DurationMs:      &durationMs,
		})
		require.NoError(t, err)

		assert.Equal(t, mcpinteraction.InteractionTypeToolCall, interaction.InteractionType)
		assert.Equal(t, "kubernetes", interaction.ServerName)
		require.NotNil(t, interaction.ToolName)
		assert.Equal(t, toolName, *interaction.ToolName)
		assert.Equal(t, "prod", interaction.ToolArguments["namespace"])
		require.NotNil(t, interaction.ToolResult)
		assert.Contains(t, *interaction.ToolResult, "__MASKED_API_KEY__")
		assert.True(t, interaction.Masked)
	})

	t.Run("records a tool listing with available tools", func(t *testing.T) {
		interaction, err := service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: mcpinteraction.InteractionTypeToolList,
			ServerName:      "kubernetes",
			AvailableTools: []any{
				map[string]any{"name": "get_pod", "description": "Fetch a pod"},
				map[string]any{"name": "get_events", "description": "Fetch events"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, mcpinteraction.InteractionTypeToolList, interaction.InteractionType)
		assert.Len(t, interaction.AvailableTools, 2)
		assert.Nil(t, interaction.ToolName)
		assert.False(t, interaction.Masked)
	})

	t.Run("records a failed tool call", func(t *testing.T) {
		toolName := "kubernetes__get_pod"
		errMsg := "server disconnected"

		interaction, err := service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: mcpinteraction.InteractionTypeToolCall,
			ServerName:      "kubernetes",
			ToolName:        &toolName,
			ErrorMessage:    &errMsg,
		})
		require.NoError(t, err)
		require.NotNil(t, interaction.ErrorMessage)
		assert.Equal(t, errMsg, *interaction.ErrorMessage)
		assert.Nil(t, interaction.ToolResult)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			ExecutionID: execution.ID,
			ServerName:  "kubernetes",
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "session_id", validationErr.Field)

		_, err = service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:  session.ID,
			ServerName: "kubernetes",
		})
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "execution_id", validationErr.Field)

		_, err = service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:   session.ID,
			ExecutionID: execution.ID,
		})
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "server_name", validationErr.Field)
	})
}

func TestInteractionService_RestoreConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, sessionService)
	execution := createTestStageExecution(t, stageService, session.ID, 0)

	t.Run("returns nil when the stage has no interactions", func(t *testing.T) {
		restored, err := service.RestoreConversation(ctx, execution.ID)
		require.NoError(t, err)
		assert.Nil(t, restored)

		_, err = service.GetLatestLLMInteraction(ctx, execution.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("restores the latest cumulative snapshot", func(t *testing.T) {
		first := []models.ConversationMessage{
			{Role: "system", Content: "instructions"},
			{Role: "assistant", Content: "Thought: inspect the pod"},
		}
		second := append(first,
			models.ConversationMessage{Role: "user", Content: "Observation: CrashLoopBackOff"},
			models.ConversationMessage{Role: "assistant", Content: "Final Answer: raise the memory limit"},
		)

		for _, conv := range [][]models.ConversationMessage{first, second} {
			_, err := service.CreateLLMInteraction(ctx, models.CreateLLMInteractionRequest{
				SessionID:       session.ID,
				ExecutionID:     execution.ID,
				InteractionType: llminteraction.InteractionTypeInvestigation,
				ModelName:       "gpt-5",
				Provider:        "openai",
				Conversation:    conv,
			})
			require.NoError(t, err)
		}

		restored, err := service.RestoreConversation(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, second, restored)
	})
}

func TestInteractionService_SessionScopedLists(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, sessionService)
	other := createTestSession(t, sessionService)
	execution := createTestStageExecution(t, stageService, session.ID, 0)
	otherExecution := createTestStageExecution(t, stageService, other.ID, 0)

	for _, target := range []struct {
		sessionID   string
		executionID string
	}{
		{session.ID, execution.ID},
		{other.ID, otherExecution.ID},
	} {
		llm, err := service.CreateLLMInteraction(ctx, models.CreateLLMInteractionRequest{
			SessionID:       target.sessionID,
			ExecutionID:     target.executionID,
			InteractionType: llminteraction.InteractionTypeInvestigation,
			ModelName:       "gpt-5",
			Provider:        "openai",
		})
		require.NoError(t, err)

		detail, err := service.GetLLMInteractionDetail(ctx, llm.ID)
		require.NoError(t, err)
		assert.Equal(t, target.sessionID, detail.SessionID)

		mcp, err := service.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:       target.sessionID,
			ExecutionID:     target.executionID,
			InteractionType: mcpinteraction.InteractionTypeToolList,
			ServerName:      "kubernetes",
		})
		require.NoError(t, err)

		mcpDetail, err := service.GetMCPInteractionDetail(ctx, mcp.ID)
		require.NoError(t, err)
		assert.Equal(t, target.sessionID, mcpDetail.SessionID)
	}

	llmList, err := service.GetLLMInteractionsList(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, llmList, 1)
	assert.Equal(t, session.ID, llmList[0].SessionID)

	mcpList, err := service.GetMCPInteractionsList(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, mcpList, 1)
	assert.Equal(t, session.ID, mcpList[0].SessionID)

	_, err = service.GetLLMInteractionDetail(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetMCPInteractionDetail(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}
