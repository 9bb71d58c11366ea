package prompt

import (
	"fmt"
	"strings"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// Builder builds all prompt text for iteration controllers. It composes
// system messages, user messages, instruction hierarchies, and
// strategy-specific formatting. Stateless — all state comes from
// parameters. Thread-safe — no mutable state.
//
// Implements agent.PromptBuilder.
type Builder struct {
	mcpRegistry *config.MCPServerRegistry
}

// NewBuilder creates a Builder with access to MCP server configs.
// Panics if mcpRegistry is nil — callers must provide a valid registry.
func NewBuilder(mcpRegistry *config.MCPServerRegistry) *Builder {
	if mcpRegistry == nil {
		panic("prompt.NewBuilder: mcpRegistry must not be nil")
	}
	return &Builder{
		mcpRegistry: mcpRegistry,
	}
}

const taskFocus = "Focus on investigation and providing recommendations for human operators to execute."

// BuildReActMessages builds the initial conversation for the react and
// react-tools strategies. The strategies share the loop; react-tools asks
// for a structured data summary as the final answer instead of a full
// incident analysis.
func (b *Builder) BuildReActMessages(
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) []models.ConversationMessage {
	formatInstr := reactFormatInstructions
	task := analysisTask
	if execCtx.Config.IterationStrategy == config.IterationStrategyReactTools {
		formatInstr = reactToolsFormatInstructions
		task = dataCollectionTask
	}

	systemContent := b.ComposeInstructions(execCtx) + "\n\n" + formatInstr + "\n\n" + taskFocus

	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: systemContent},
		{Role: models.RoleUser, Content: b.buildInvestigationUserMessage(execCtx, prevStageContext, execCtx.AvailableTools, task)},
	}
}

// BuildNativeThinkingMessages builds the initial conversation for the
// native-thinking strategy. No ReAct format instructions and no tool
// descriptions in text — tools go to the provider as function declarations.
func (b *Builder) BuildNativeThinkingMessages(
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) []models.ConversationMessage {
	systemContent := b.ComposeInstructions(execCtx) + "\n\n" + taskFocus

	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: systemContent},
		{Role: models.RoleUser, Content: b.buildInvestigationUserMessage(execCtx, prevStageContext, nil, analysisTask)},
	}
}

// BuildFinalAnalysisMessages builds the conversation for a final synthesis
// stage: a tool-less, single-shot call that combines prior stage outputs.
// It uses finalAnalysisGeneralInstructions (no tool references) instead of
// the standard generalInstructions. No taskFocus — the synthesis agent's
// own CustomInstructions already define its focus.
func (b *Builder) BuildFinalAnalysisMessages(
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) []models.ConversationMessage {
	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: b.composeFinalAnalysisInstructions(execCtx)},
		{Role: models.RoleUser, Content: b.buildFinalAnalysisUserMessage(execCtx, prevStageContext)},
	}
}

// BuildSummarizationSystemPrompt builds the system prompt for MCP result summarization.
func (b *Builder) BuildSummarizationSystemPrompt(serverName, toolName string, maxSummaryTokens int) string {
	return fmt.Sprintf(mcpSummarizationSystemTemplate, serverName, toolName, maxSummaryTokens)
}

// BuildSummarizationUserPrompt builds the user prompt for MCP result summarization.
func (b *Builder) BuildSummarizationUserPrompt(conversationContext, serverName, toolName, resultText string) string {
	return fmt.Sprintf(mcpSummarizationUserTemplate, conversationContext, serverName, toolName, resultText)
}

// buildInvestigationUserMessage builds the user message for an investigation.
func (b *Builder) buildInvestigationUserMessage(
	execCtx *agent.ExecutionContext,
	prevStageContext string,
	tools []agent.ToolDefinition,
	task string,
) string {
	var sb strings.Builder

	// Available tools (ReAct only)
	if len(tools) > 0 {
		sb.WriteString("Answer the following question using the available tools.\n\n")
		sb.WriteString("Available tools:\n\n")
		sb.WriteString(FormatToolDescriptions(tools))
		sb.WriteString("\n\n")
	}

	// Alert section
	sb.WriteString(FormatAlertSection(execCtx.AlertType, execCtx.AlertData))
	sb.WriteString("\n")

	// Runbook section
	sb.WriteString(FormatRunbookSection(execCtx.RunbookContent))
	sb.WriteString("\n")

	// Chain context
	sb.WriteString(FormatChainContext(prevStageContext))
	sb.WriteString("\n")

	// Analysis task
	sb.WriteString(task)

	return sb.String()
}

// buildFinalAnalysisUserMessage builds the user message for final synthesis.
func (b *Builder) buildFinalAnalysisUserMessage(
	execCtx *agent.ExecutionContext,
	prevStageContext string,
) string {
	var sb strings.Builder

	sb.WriteString("Synthesize the investigation results and provide recommendations.\n\n")

	// Alert section — alertType intentionally omitted for synthesis; the
	// synthesizer combines prior results, it does not re-analyze alert metadata.
	sb.WriteString(FormatAlertSection("", execCtx.AlertData))
	sb.WriteString("\n")

	// Runbook section
	sb.WriteString(FormatRunbookSection(execCtx.RunbookContent))
	sb.WriteString("\n")

	// Previous stage results (the main content for synthesis)
	sb.WriteString(FormatChainContext(prevStageContext))
	sb.WriteString("\n")

	sb.WriteString(finalAnalysisTask)

	return sb.String()
}
