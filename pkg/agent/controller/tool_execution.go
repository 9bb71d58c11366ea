package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// toolCallResult holds the outcome of executeToolCall for the caller to
// integrate into its conversation format (ReAct observation vs native
// tool-result message).
type toolCallResult struct {
	// Content is the tool result content to feed back to the LLM.
	// May be summarized if summarization was triggered.
	Content string
	// IsError is true if the tool execution itself failed.
	IsError bool
	// Err is the original error from tool execution (non-nil only when
	// ToolExecutor.Execute returned an error). Callers that need to inspect
	// the error type (e.g. context.DeadlineExceeded) should use this field
	// instead of parsing Content.
	Err error
	// Usage is non-nil when summarization produced token usage to accumulate.
	Usage *agent.TokenUsage
}

// executeToolCall runs a single tool call through the full lifecycle:
//  1. Normalize and split the tool name for events and summarization
//  2. Create a streaming llm_tool_call event (dashboard spinner)
//  3. Execute the tool via ToolExecutor (selection, args, masking inside)
//  4. Record the MCPInteraction with the storage-truncated result
//  5. Complete the tool call event, linking the interaction
//  6. Optionally summarize large non-error results
//
// Callers are responsible for appending the result to their conversation and
// recording iteration state changes.
func executeToolCall(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	call agent.ToolCall,
	conversationContext string,
) toolCallResult {
	normalizedName := mcp.NormalizeToolName(call.Name)
	serverID, toolName, splitErr := mcp.SplitToolName(normalizedName)
	if splitErr != nil {
		serverID = ""
		toolName = call.Name
	}

	toolCallEventID := createToolCallEvent(ctx, execCtx, serverID, toolName, call.Arguments)

	startTime := time.Now()
	result, toolErr := execCtx.ToolExecutor.Execute(ctx, call)
	if toolErr != nil {
		errContent := fmt.Sprintf("Error executing tool: %s", toolErr.Error())
		interactionID := recordMCPInteraction(ctx, execCtx, serverID, toolName, call.Arguments, nil, startTime, toolErr)
		completeToolCallEvent(ctx, execCtx, toolCallEventID, errContent, true, interactionID)
		return toolCallResult{Content: errContent, IsError: true, Err: toolErr}
	}

	interactionID := recordMCPInteraction(ctx, execCtx, serverID, toolName, call.Arguments, result, startTime, nil)

	storageTruncated := mcp.TruncateForStorage(result.Content)
	completeToolCallEvent(ctx, execCtx, toolCallEventID, storageTruncated, result.IsError, interactionID)

	// Summarize oversized results; the raw masked result stays in the
	// interaction record and tool call event, only the conversation gets
	// the summary.
	content := result.Content
	var usage *agent.TokenUsage
	if !result.IsError {
		sumResult, sumErr := maybeSummarize(ctx, execCtx, serverID, toolName,
			result.Content, conversationContext, toolCallEventID)
		if sumErr == nil && sumResult.WasSummarized {
			content = sumResult.Content
			usage = sumResult.Usage
		}
	}

	return toolCallResult{Content: content, IsError: result.IsError, Usage: usage}
}

// recordMCPInteraction persists the tool call record. Returns the interaction
// ID for timeline linking, or nil when the write failed. Logs on failure but
// does not abort, mirroring recordLLMInteraction.
func recordMCPInteraction(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	serverID string,
	toolName string,
	arguments string,
	result *agent.ToolResult,
	startTime time.Time,
	toolErr error,
) *string {
	durationMs := int(time.Since(startTime).Milliseconds())

	// Arguments arrive as a JSON string; store structured when possible.
	var toolArgs map[string]any
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &toolArgs); err != nil {
			toolArgs = map[string]any{"raw": arguments}
		}
	}

	req := models.CreateMCPInteractionRequest{
		SessionID:       execCtx.SessionID,
		ExecutionID:     execCtx.ExecutionID,
		InteractionType: mcpinteraction.InteractionTypeToolCall,
		ServerName:      serverID,
		ToolName:        &toolName,
		ToolArguments:   toolArgs,
		DurationMs:      &durationMs,
	}
	if result != nil {
		truncated := mcp.TruncateForStorage(result.Content)
		req.ToolResult = &truncated
		req.Masked = result.Masked
	}
	if toolErr != nil {
		msg := toolErr.Error()
		req.ErrorMessage = &msg
	}

	interaction, err := execCtx.Services.Interaction.CreateMCPInteraction(ctx, req)
	if err != nil {
		slog.Error("Failed to record MCP interaction",
			"session_id", execCtx.SessionID, "server", serverID, "tool", toolName, "error", err)
		return nil
	}
	return &interaction.ID
}
