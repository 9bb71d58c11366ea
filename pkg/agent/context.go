package agent

import (
	"context"
	"time"

	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// ExecutionContext carries all dependencies and state needed by an agent
// during execution. Created by the session executor for each stage run.
type ExecutionContext struct {
	// Identity
	SessionID   string
	StageID     string
	StageIndex  int
	ExecutionID string
	AgentName   string

	// Alert data (pulled from AlertSession by executor).
	// Arbitrary text — not parsed, not assumed to be JSON.
	AlertData string

	// Alert type (from session/chain config)
	AlertType string

	// Runbook content (resolved by executor, passed as text)
	RunbookContent string

	// Configuration (resolved from hierarchy)
	Config *ResolvedAgentConfig

	// Dependencies (injected by executor)
	LLMClient      LLMClient
	ToolExecutor   ToolExecutor
	EventPublisher EventPublisher // Real-time event delivery to WebSocket clients
	Services       *ServiceBundle

	// Prompt builder (injected by executor, stateless, shared across executions).
	// Implemented by prompt.Builder; interface avoids agent↔prompt import cycle.
	PromptBuilder PromptBuilder

	// Resume state. When a paused stage is re-run, the executor restores the
	// conversation from the stage's last recorded LLM interaction and the
	// iteration counter from the stage execution record. Both are zero for
	// fresh executions.
	RestoredConversation []models.ConversationMessage
	StartIteration       int

	// FailedServers maps serverID → error message for MCP servers that
	// failed to initialize. Used by the prompt builder to warn the LLM.
	// nil when all servers initialized successfully.
	FailedServers map[string]string

	// AvailableTools is the tool catalogue listed from the stage's
	// ToolExecutor, populated by the executor before the agent runs. The
	// prompt builder renders it into ReAct prompts; native-thinking passes
	// tools as function declarations instead.
	AvailableTools []ToolDefinition

	// MCPRegistry provides per-server settings (summarization thresholds,
	// instructions). nil in tests that never touch tool results.
	MCPRegistry *config.MCPServerRegistry

	// TotalStages is the chain length, for progress events.
	TotalStages int
}

// ServiceBundle groups the service dependencies needed during execution.
type ServiceBundle struct {
	Timeline    *services.TimelineService
	Interaction *services.InteractionService
	Stage       *services.StageService
}

// ResolvedAgentConfig is the fully-resolved configuration for a stage
// execution. All hierarchy levels (defaults → agent definition → chain →
// stage) have been applied.
type ResolvedAgentConfig struct {
	AgentName          string
	IterationStrategy  config.IterationStrategy
	LLMProvider        *config.LLMProviderConfig
	LLMProviderName    string // The resolved provider key (for observability / DB records)
	MaxIterations      int
	LLMTimeout         time.Duration // Per-LLM-call timeout (default: 210s)
	MCPServers         []string
	CustomInstructions string

	// NativeTools is the merged Google native-tool switches: agent keys
	// override provider keys, missing keys fall through to the provider.
	NativeTools map[config.GoogleNativeTool]bool
}

// PromptBuilder builds all prompt text for iteration controllers.
// Implemented by prompt.Builder; defined as interface here to avoid a
// circular import between pkg/agent and pkg/agent/prompt.
type PromptBuilder interface {
	// BuildReActMessages builds the initial conversation for the react and
	// react-tools strategies. The strategy is read from execCtx.Config.
	BuildReActMessages(execCtx *ExecutionContext, prevStageContext string) []models.ConversationMessage

	// BuildNativeThinkingMessages builds the initial conversation for the
	// native-thinking strategy (no ReAct format instructions).
	BuildNativeThinkingMessages(execCtx *ExecutionContext, prevStageContext string) []models.ConversationMessage

	// BuildFinalAnalysisMessages builds the single tool-less synthesis call
	// over accumulated stage outputs (react-final-analysis strategy).
	BuildFinalAnalysisMessages(execCtx *ExecutionContext, prevStageContext string) []models.ConversationMessage

	// Summarization prompts for oversized MCP tool results.
	BuildSummarizationSystemPrompt(serverName, toolName string, maxSummaryTokens int) string
	BuildSummarizationUserPrompt(conversationContext, serverName, toolName, resultText string) string
}

// EventPublisher publishes events for WebSocket delivery.
// Implemented by events.EventPublisher; defined as interface here to
// avoid a circular import between pkg/agent and pkg/events and to
// enable testing with mocks.
//
// Each method accepts a specific typed payload struct — no untyped maps or any.
type EventPublisher interface {
	PublishTimelineCreated(ctx context.Context, sessionID string, payload events.TimelineCreatedPayload) error
	PublishTimelineCompleted(ctx context.Context, sessionID string, payload events.TimelineCompletedPayload) error
	PublishStreamChunk(ctx context.Context, sessionID string, payload events.StreamChunkPayload) error
	PublishStageStatus(ctx context.Context, sessionID string, payload events.StageStatusPayload) error
	PublishSessionLifecycle(ctx context.Context, sessionID string, payload events.SessionLifecyclePayload) error
	PublishSessionProgress(ctx context.Context, payload events.SessionProgressPayload) error
	PublishCancellation(ctx context.Context, payload events.CancellationPayload) error
}
