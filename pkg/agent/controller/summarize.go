package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// defaultSummaryMaxTokens bounds the summary length when the server config
// does not set summary_max_token_limit.
const defaultSummaryMaxTokens = 1000

// SummarizationResult holds the outcome of a summarization attempt.
type SummarizationResult struct {
	Content       string            // Summary text (or original if not summarized)
	WasSummarized bool              // Whether summarization was performed
	Usage         *agent.TokenUsage // Token usage from the summarization call (nil if not summarized)
}

// maybeSummarize checks if a tool result needs summarization and performs it
// if so. Summarization is enabled by default per server and skipped only when
// explicitly disabled. Every failure path is fail-open: the raw result is
// returned and investigation continues.
//
// mcpEventID is the llm_tool_call timeline event that produced the result;
// summarization stream chunks are tagged with it so the dashboard can attach
// the summary to the right tool call.
func maybeSummarize(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	serverID, toolName string,
	rawContent string,
	conversationContext string,
	mcpEventID string,
) (*SummarizationResult, error) {
	if execCtx.PromptBuilder == nil || execCtx.MCPRegistry == nil {
		return &SummarizationResult{Content: rawContent}, nil
	}

	serverConfig, err := execCtx.MCPRegistry.Get(serverID)
	if err != nil {
		return &SummarizationResult{Content: rawContent}, nil
	}
	if serverConfig.Summarization != nil && serverConfig.Summarization.SummarizationDisabled() {
		return &SummarizationResult{Content: rawContent}, nil
	}

	threshold := config.DefaultSizeThresholdTokens
	maxSummaryTokens := defaultSummaryMaxTokens
	if serverConfig.Summarization != nil {
		if serverConfig.Summarization.SizeThresholdTokens > 0 {
			threshold = serverConfig.Summarization.SizeThresholdTokens
		}
		if serverConfig.Summarization.SummaryMaxTokenLimit > 0 {
			maxSummaryTokens = serverConfig.Summarization.SummaryMaxTokenLimit
		}
	}

	estimatedTokens := mcp.EstimateTokens(rawContent)
	if estimatedTokens <= threshold {
		return &SummarizationResult{Content: rawContent}, nil
	}

	slog.Info("Tool result exceeds summarization threshold",
		"server", serverID, "tool", toolName,
		"estimated_tokens", estimatedTokens, "threshold", threshold)

	// Safety-net truncate the summarization input itself.
	truncatedForLLM := mcp.TruncateForSummarization(rawContent)

	systemPrompt := execCtx.PromptBuilder.BuildSummarizationSystemPrompt(serverID, toolName, maxSummaryTokens)
	userPrompt := execCtx.PromptBuilder.BuildSummarizationUserPrompt(conversationContext, serverID, toolName, truncatedForLLM)

	summary, usage, err := callSummarizationLLM(ctx, execCtx, systemPrompt, userPrompt, mcpEventID)
	if err != nil {
		slog.Warn("Summarization failed, using raw result",
			"server", serverID, "tool", toolName, "error", err)
		return &SummarizationResult{Content: rawContent}, nil
	}

	wrappedSummary := fmt.Sprintf(
		"[NOTE: The output from %s.%s was %d tokens (estimated) and has been summarized to preserve context window. "+
			"The full output is available in the tool call event above.]\n\n%s",
		serverID, toolName, estimatedTokens, summary)

	return &SummarizationResult{
		Content:       wrappedSummary,
		WasSummarized: true,
		Usage:         usage,
	}, nil
}

// callSummarizationLLM performs the dedicated summarization call, streaming
// chunks as mcp_tool_summary / summarization tagged with the tool call
// event, and records the self-contained conversation.
func callSummarizationLLM(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	systemPrompt, userPrompt string,
	mcpEventID string,
) (string, *agent.TokenUsage, error) {
	startTime := time.Now()

	messages := []models.ConversationMessage{
		{Role: models.RoleSystem, Content: systemPrompt},
		{Role: models.RoleUser, Content: userPrompt},
	}

	call, err := callLLMWithStreaming(ctx, execCtx, &agent.GenerateInput{
		SessionID:       execCtx.SessionID,
		ExecutionID:     execCtx.ExecutionID,
		InteractionType: llminteraction.InteractionTypeSummarization,
		Messages:        messages,
		Config:          execCtx.Config.LLMProvider,
	}, streamModeSummarization, mcpEventID)
	if err != nil {
		return "", nil, fmt.Errorf("summarization LLM call failed: %w", err)
	}

	summary := strings.TrimSpace(call.Response.Text)
	if summary == "" {
		return "", nil, fmt.Errorf("summarization produced empty result")
	}

	// Summarization conversations are self-contained (system + user +
	// assistant) and don't extend the investigation conversation.
	conversation := append(messages, models.ConversationMessage{
		Role:    models.RoleAssistant,
		Content: summary,
	})
	interactionID := recordLLMInteraction(ctx, execCtx,
		llminteraction.InteractionTypeSummarization, conversation, call.Response, startTime, nil)

	completeStreamingEvent(ctx, execCtx, call.EventID, timelineevent.EventTypeMcpToolSummary,
		timelineevent.StatusCompleted, summary, interactionID)

	return summary, call.Response.Usage, nil
}

// buildConversationContext formats the conversation so far for the
// summarization prompt. The system prompt is skipped: it is long and the
// summarizer only needs the investigation trail.
func buildConversationContext(messages []models.ConversationMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			continue
		}
		sb.WriteByte('[')
		sb.WriteString(msg.Role)
		sb.WriteString("]: ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
