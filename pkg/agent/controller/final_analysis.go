package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// FinalAnalysisController performs a single tool-less LLM call over the
// accumulated stage outputs (react-final-analysis strategy). Chains end with
// a stage using this controller; its text becomes the session's final
// analysis.
type FinalAnalysisController struct{}

// NewFinalAnalysisController creates a new final analysis controller.
func NewFinalAnalysisController() *FinalAnalysisController {
	return &FinalAnalysisController{}
}

// Run performs the synthesis call. No tools are bound and no iteration loop
// runs: a single empty or failed response fails the stage.
func (c *FinalAnalysisController) Run(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) (*agent.ExecutionResult, error) {
	if execCtx.PromptBuilder == nil {
		return nil, fmt.Errorf("prompt builder is required for final analysis")
	}

	messages := execCtx.RestoredConversation
	if len(messages) == 0 {
		messages = execCtx.PromptBuilder.BuildFinalAnalysisMessages(execCtx, prevStageContext)
	}

	markIteration(ctx, execCtx, 1)
	publishIterationProgress(ctx, execCtx, 1)

	startTime := time.Now()
	call, err := callLLMWithStreaming(ctx, execCtx, &agent.GenerateInput{
		SessionID:       execCtx.SessionID,
		ExecutionID:     execCtx.ExecutionID,
		InteractionType: llminteraction.InteractionTypeFinalAnalysis,
		Messages:        messages,
		Config:          execCtx.Config.LLMProvider,
	}, streamModeFinalAnalysis, "")
	if err != nil {
		recordLLMInteraction(ctx, execCtx, llminteraction.InteractionTypeFinalAnalysis,
			messages, nil, startTime, err)
		createTimelineEvent(ctx, execCtx, timelineevent.EventTypeError, err.Error(), nil, nil)
		return nil, err
	}

	analysis := strings.TrimSpace(call.Response.Text)
	conversation := append(messages, models.ConversationMessage{
		Role:    models.RoleAssistant,
		Content: call.Response.Text,
	})
	interactionID := recordLLMInteraction(ctx, execCtx,
		llminteraction.InteractionTypeFinalAnalysis, conversation, call.Response, startTime, nil)

	if analysis == "" {
		completeStreamingEvent(ctx, execCtx, call.EventID, timelineevent.EventTypeFinalAnalysis,
			timelineevent.StatusFailed, "final analysis produced no text", interactionID)
		return &agent.ExecutionResult{
			Status:     agent.ExecutionStatusFailed,
			Error:      fmt.Errorf("final analysis produced no text"),
			TokensUsed: usageOf(call.Response),
		}, nil
	}

	if call.EventID != "" {
		completeStreamingEvent(ctx, execCtx, call.EventID, timelineevent.EventTypeFinalAnalysis,
			timelineevent.StatusCompleted, analysis, interactionID)
	} else {
		// No publisher or a stream that produced no deltas: record the
		// analysis as a durable event directly.
		createTimelineEvent(ctx, execCtx, timelineevent.EventTypeFinalAnalysis,
			analysis, nil, interactionID)
	}

	return &agent.ExecutionResult{
		Status:           agent.ExecutionStatusCompleted,
		FinalAnalysis:    analysis,
		TokensUsed:       usageOf(call.Response),
		CurrentIteration: 1,
	}, nil
}

func usageOf(resp *LLMResponse) agent.TokenUsage {
	usage := agent.TokenUsage{}
	if resp != nil && resp.Usage != nil {
		usage = *resp.Usage
	}
	return usage
}
