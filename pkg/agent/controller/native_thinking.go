package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/llm"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// NativeThinkingController drives the native function calling loop (Gemini).
// Tool calls arrive as structured chunks instead of parsed text; thinking
// parts are streamed as native_thinking and the thought signature is echoed
// back with the tool calls on the next turn. Completion signal: a response
// with text and no tool calls.
type NativeThinkingController struct{}

// NewNativeThinkingController creates a new native thinking controller.
func NewNativeThinkingController() *NativeThinkingController {
	return &NativeThinkingController{}
}

// Run executes the native function calling loop. Like ReAct, exhaustion
// pauses the stage; an empty response that survived the adapter's retries
// is converted into an error-text final answer rather than burning the
// remaining budget on a broken model.
func (c *NativeThinkingController) Run(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) (*agent.ExecutionResult, error) {
	cfg := execCtx.Config
	totalUsage := agent.TokenUsage{}
	state := &agent.IterationState{
		MaxIterations:    cfg.MaxIterations,
		CurrentIteration: execCtx.StartIteration,
	}

	messages := execCtx.RestoredConversation
	if len(messages) == 0 {
		if execCtx.PromptBuilder == nil {
			return nil, fmt.Errorf("prompt builder is required for native thinking execution")
		}
		messages = execCtx.PromptBuilder.BuildNativeThinkingMessages(execCtx, prevStageContext)
	}

	tools, err := execCtx.ToolExecutor.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	nativeTools := nativeToolDefinitions(tools)

	for iteration := execCtx.StartIteration; iteration < cfg.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state.CurrentIteration = iteration + 1
		markIteration(ctx, execCtx, state.CurrentIteration)
		publishIterationProgress(ctx, execCtx, state.CurrentIteration)

		if state.ShouldAbortOnTimeouts() {
			return failedResult(state, totalUsage), nil
		}

		startTime := time.Now()
		call, err := callLLMWithStreaming(ctx, execCtx, &agent.GenerateInput{
			SessionID:       execCtx.SessionID,
			ExecutionID:     execCtx.ExecutionID,
			InteractionType: llminteraction.InteractionTypeInvestigation,
			Messages:        messages,
			Config:          cfg.LLMProvider,
			Tools:           nativeTools,
		}, streamModeNative, "")
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, llm.ErrEmptyResponse) {
				// The adapter already retried; conclude with an error-text
				// answer instead of looping on a broken model.
				return c.emptyResponseResult(ctx, execCtx, messages, totalUsage, state, startTime, err), nil
			}
			state.RecordFailure(err.Error(), isTimeoutError(err))
			recordLLMInteraction(ctx, execCtx, llminteraction.InteractionTypeInvestigation,
				messages, nil, startTime, err)
			createTimelineEvent(ctx, execCtx, timelineevent.EventTypeError, err.Error(), nil, nil)
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleUser,
				Content: fmt.Sprintf("Error from previous attempt: %s. Please try again.", err.Error()),
			})
			continue
		}

		resp := call.Response
		state.RecordSuccess()
		accumulateUsage(&totalUsage, resp)

		if len(resp.ToolCalls) > 0 {
			messages = append(messages, models.ConversationMessage{
				Role:             models.RoleAssistant,
				Content:          resp.Text,
				ToolCalls:        toModelToolCalls(resp.ToolCalls),
				ThoughtSignature: resp.ThinkingSignature,
			})

			for _, tc := range resp.ToolCalls {
				result := executeToolCall(ctx, execCtx, tc, buildConversationContext(messages))
				if result.Usage != nil {
					totalUsage.Add(result.Usage.InputTokens, result.Usage.OutputTokens, result.Usage.TotalTokens)
				}
				if result.Err != nil {
					state.RecordFailure(result.Err.Error(), isTimeoutError(result.Err))
				}
				messages = append(messages, models.ConversationMessage{
					Role:       models.RoleTool,
					Content:    result.Content,
					ToolCallID: tc.ID,
				})
			}

			interactionID := recordLLMInteraction(ctx, execCtx,
				llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
			completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
				timelineevent.StatusCompleted, resp.ThinkingText, interactionID)
			continue
		}

		if strings.TrimSpace(resp.Text) != "" {
			// No tool calls and non-empty text: final answer.
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleAssistant,
				Content: resp.Text,
			})
			interactionID := recordLLMInteraction(ctx, execCtx,
				llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
			completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
				timelineevent.StatusCompleted, resp.ThinkingText, interactionID)
			createTimelineEvent(ctx, execCtx, timelineevent.EventTypeFinalAnalysis,
				resp.Text, nil, interactionID)
			return &agent.ExecutionResult{
				Status:           agent.ExecutionStatusCompleted,
				FinalAnalysis:    resp.Text,
				TokensUsed:       totalUsage,
				CurrentIteration: state.CurrentIteration,
			}, nil
		}

		// Thinking only, no text and no calls: nudge the model to conclude.
		messages = append(messages, models.ConversationMessage{
			Role:    models.RoleUser,
			Content: "Your last response contained no text and no tool calls. Provide your final analysis as text.",
		})
		interactionID := recordLLMInteraction(ctx, execCtx,
			llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
		completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
			timelineevent.StatusCompleted, resp.ThinkingText, interactionID)
	}

	markIteration(ctx, execCtx, state.CurrentIteration)
	return pausedResult(state, totalUsage), nil
}

// emptyResponseResult converts a persistent empty response into a completed
// result with explanatory text so the chain can continue to later stages.
func (c *NativeThinkingController) emptyResponseResult(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	messages []models.ConversationMessage,
	totalUsage agent.TokenUsage,
	state *agent.IterationState,
	startTime time.Time,
	callErr error,
) *agent.ExecutionResult {
	text := fmt.Sprintf(
		"The model returned an empty response after multiple retries at iteration %d/%d. "+
			"The investigation could not be concluded normally.",
		state.CurrentIteration, state.MaxIterations)

	interactionID := recordLLMInteraction(ctx, execCtx,
		llminteraction.InteractionTypeInvestigation, messages, nil, startTime, callErr)
	createTimelineEvent(ctx, execCtx, timelineevent.EventTypeFinalAnalysis, text, nil, interactionID)

	return &agent.ExecutionResult{
		Status:           agent.ExecutionStatusCompleted,
		FinalAnalysis:    text,
		TokensUsed:       totalUsage,
		CurrentIteration: state.CurrentIteration,
	}
}

// nativeToolDefinitions rewrites canonical server.tool names to the
// server__tool form required by function declaration naming rules (dots are
// not allowed in genai function names).
func nativeToolDefinitions(tools []agent.ToolDefinition) []agent.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	converted := make([]agent.ToolDefinition, len(tools))
	for i, tool := range tools {
		converted[i] = tool
		converted[i].Name = strings.Replace(tool.Name, ".", "__", 1)
	}
	return converted
}

// toModelToolCalls converts streamed tool calls into the persisted
// conversation representation.
func toModelToolCalls(calls []agent.ToolCall) []models.ToolCall {
	out := make([]models.ToolCall, len(calls))
	for i, c := range calls {
		out[i] = models.ToolCall{ID: c.ID, Name: c.Name, Arguments: c.Arguments}
	}
	return out
}
