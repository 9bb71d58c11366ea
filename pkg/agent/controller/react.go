package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// maxConsecutiveMalformed is how many format-broken responses in a row the
// loop tolerates before failing the stage.
const maxConsecutiveMalformed = 3

// ReActController drives the text-based Thought/Action/Observation loop.
// Used by both the react and react-tools strategies; the only difference is
// the prompt (react-tools asks for a structured data summary as the final
// answer), which the prompt builder reads from the resolved config.
type ReActController struct{}

// NewReActController creates a new ReAct iteration controller.
func NewReActController() *ReActController {
	return &ReActController{}
}

// Run executes the ReAct loop until a Final Answer, a terminal failure, or
// the iteration budget runs out. Exhaustion pauses the stage instead of
// forcing a conclusion; the session can be resumed with a higher budget.
func (c *ReActController) Run(
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

	// A resumed stage continues from the conversation snapshot of its last
	// recorded interaction; a fresh stage builds the opening prompt.
	messages := execCtx.RestoredConversation
	if len(messages) == 0 {
		if execCtx.PromptBuilder == nil {
			return nil, fmt.Errorf("prompt builder is required for ReAct execution")
		}
		messages = execCtx.PromptBuilder.BuildReActMessages(execCtx, prevStageContext)
	}

	tools, err := execCtx.ToolExecutor.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	toolSet := buildToolNameSet(tools)

	consecutiveMalformed := 0

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
		}, streamModeReAct, "")
		if err != nil {
			// Session-level cancellation/timeout aborts the whole stage;
			// per-call failures feed back into the conversation.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			state.RecordFailure(err.Error(), isTimeoutError(err))
			recordLLMInteraction(ctx, execCtx, llminteraction.InteractionTypeInvestigation,
				messages, nil, startTime, err)
			createTimelineEvent(ctx, execCtx, timelineevent.EventTypeError, err.Error(), nil, nil)
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleUser,
				Content: FormatErrorObservation(err),
			})
			continue
		}

		resp := call.Response
		state.RecordSuccess()
		accumulateUsage(&totalUsage, resp)

		messages = append(messages, models.ConversationMessage{
			Role:    models.RoleAssistant,
			Content: resp.Text,
		})
		parsed := ParseReActResponse(resp.Text)

		switch {
		case parsed.IsUnknownTool:
			consecutiveMalformed = 0
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleUser,
				Content: FormatUnknownToolError(parsed.Action, parsed.ErrorMessage, tools),
			})

		case parsed.HasAction:
			consecutiveMalformed = 0
			canonical := mcp.NormalizeToolName(parsed.Action)
			var observation string
			if _, known := toolSet[canonical]; !known {
				observation = FormatUnknownToolError(parsed.Action,
					fmt.Sprintf("Unknown tool '%s'.", parsed.Action), tools)
			} else {
				result := executeToolCall(ctx, execCtx, agent.ToolCall{
					ID:        generateCallID(),
					Name:      canonical,
					Arguments: parsed.ActionInput,
				}, buildConversationContext(messages))
				if result.Usage != nil {
					totalUsage.Add(result.Usage.InputTokens, result.Usage.OutputTokens, result.Usage.TotalTokens)
				}
				if result.Err != nil {
					state.RecordFailure(result.Err.Error(), isTimeoutError(result.Err))
				}
				observation = FormatObservation(canonical, result.Content, result.IsError)
			}
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleUser,
				Content: observation,
			})

		case parsed.IsFinalAnswer:
			interactionID := recordLLMInteraction(ctx, execCtx,
				llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
			completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
				timelineevent.StatusCompleted, resp.Text, interactionID)
			createTimelineEvent(ctx, execCtx, timelineevent.EventTypeFinalAnalysis,
				parsed.FinalAnswer, nil, interactionID)
			return &agent.ExecutionResult{
				Status:           agent.ExecutionStatusCompleted,
				FinalAnalysis:    parsed.FinalAnswer,
				TokensUsed:       totalUsage,
				CurrentIteration: state.CurrentIteration,
			}, nil

		default: // malformed
			consecutiveMalformed++
			if consecutiveMalformed >= maxConsecutiveMalformed {
				interactionID := recordLLMInteraction(ctx, execCtx,
					llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
				completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
					timelineevent.StatusCompleted, resp.Text, interactionID)
				return &agent.ExecutionResult{
					Status: agent.ExecutionStatusFailed,
					Error: fmt.Errorf("%d consecutive malformed responses at iteration %d/%d",
						consecutiveMalformed, state.CurrentIteration, cfg.MaxIterations),
					TokensUsed:       totalUsage,
					CurrentIteration: state.CurrentIteration,
				}, nil
			}
			messages = append(messages, models.ConversationMessage{
				Role:    models.RoleUser,
				Content: "Observation: " + GetFormatErrorFeedback(parsed),
			})
		}

		// Snapshot includes the observation appended above, so the latest
		// interaction row alone rebuilds the conversation on resume.
		interactionID := recordLLMInteraction(ctx, execCtx,
			llminteraction.InteractionTypeInvestigation, messages, resp, startTime, nil)
		completeStreamingEvent(ctx, execCtx, call.EventID, call.EventType,
			timelineevent.StatusCompleted, resp.Text, interactionID)
	}

	markIteration(ctx, execCtx, state.CurrentIteration)
	return pausedResult(state, totalUsage), nil
}
