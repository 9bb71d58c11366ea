package prompt

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/tarsy-project/tarsy/pkg/agent"
)

// generalInstructions is Tier 1 for investigation agents.
const generalInstructions = `## General SRE Agent Instructions

You are an expert Site Reliability Engineer (SRE) with deep knowledge of:
- Kubernetes and container orchestration
- Cloud infrastructure and services
- Incident response and troubleshooting
- System monitoring and alerting
- GitOps and deployment practices

Analyze alerts thoroughly and provide actionable insights based on:
1. Alert information and context
2. Associated runbook procedures
3. Real-time system data from available tools

Always be specific, reference actual data, and provide clear next steps.
Focus on root cause analysis and sustainable solutions.`

// finalAnalysisGeneralInstructions is Tier 1 for final synthesis stages.
// Unlike generalInstructions, this does not mention tools since synthesis
// is a tool-less stage that analyzes results from prior investigations.
const finalAnalysisGeneralInstructions = `## General SRE Analysis Instructions

You are an expert Site Reliability Engineer (SRE) with deep knowledge of:
- Kubernetes and container orchestration
- Cloud infrastructure and services
- Incident response and troubleshooting
- System monitoring and alerting
- GitOps and deployment practices

Analyze investigation results thoroughly and provide actionable insights based on:
1. The original alert information and context
2. Findings from the investigation stages
3. Associated runbook procedures

Always be specific, reference actual data from the investigations, and provide clear next steps.
Focus on root cause analysis and sustainable solutions.`

// ComposeInstructions builds the three-tier instruction set for an investigation agent.
func (b *Builder) ComposeInstructions(execCtx *agent.ExecutionContext) string {
	var sections []string

	// Tier 1: General SRE instructions
	sections = append(sections, generalInstructions)

	// Tier 2: MCP server instructions (from registry, keyed by server IDs in config)
	sections = b.appendMCPInstructions(sections, execCtx)

	// Tier 3: Custom agent instructions
	if execCtx.Config.CustomInstructions != "" {
		sections = append(sections, "## Agent-Specific Instructions\n\n"+execCtx.Config.CustomInstructions)
	}

	// Degraded-server warnings so the LLM doesn't burn iterations on tools
	// that cannot work.
	if warning := formatFailedServerWarnings(execCtx.FailedServers); warning != "" {
		sections = append(sections, warning)
	}

	return strings.Join(sections, "\n\n")
}

// composeFinalAnalysisInstructions builds the system prompt for final
// synthesis stages. Uses finalAnalysisGeneralInstructions (Tier 1, no tool
// references) + custom instructions (Tier 3). Skips MCP instructions
// (Tier 2) since synthesis is a tool-less stage.
func (b *Builder) composeFinalAnalysisInstructions(execCtx *agent.ExecutionContext) string {
	sections := []string{finalAnalysisGeneralInstructions}

	// Tier 3: Agent-specific custom instructions
	if execCtx.Config.CustomInstructions != "" {
		sections = append(sections, "## Agent-Specific Instructions\n\n"+execCtx.Config.CustomInstructions)
	}

	return strings.Join(sections, "\n\n")
}

// appendMCPInstructions adds Tier 2 MCP server instructions to a sections slice.
func (b *Builder) appendMCPInstructions(sections []string, execCtx *agent.ExecutionContext) []string {
	for _, serverID := range execCtx.Config.MCPServers {
		serverConfig, err := b.mcpRegistry.Get(serverID)
		if err != nil {
			slog.Debug("MCP server not found in registry, skipping instructions",
				"serverID", serverID, "error", err)
			continue
		}
		if serverConfig.Instructions != "" {
			sections = append(sections, "## "+serverID+" Instructions\n\n"+serverConfig.Instructions)
		}
	}
	return sections
}

// formatFailedServerWarnings renders a warning section for MCP servers that
// failed to initialize. Returns "" when there are none.
func formatFailedServerWarnings(failedServers map[string]string) string {
	if len(failedServers) == 0 {
		return ""
	}

	serverIDs := make([]string, 0, len(failedServers))
	for serverID := range failedServers {
		serverIDs = append(serverIDs, serverID)
	}
	sort.Strings(serverIDs)

	var sb strings.Builder
	sb.WriteString("## Degraded Tooling Warning\n\n")
	sb.WriteString("The following tool servers failed to initialize and their tools are unavailable:\n")
	for _, serverID := range serverIDs {
		sb.WriteString("- **")
		sb.WriteString(serverID)
		sb.WriteString("**: ")
		sb.WriteString(failedServers[serverID])
		sb.WriteString("\n")
	}
	sb.WriteString("\nDo not attempt to use tools from these servers. ")
	sb.WriteString("State explicitly in your analysis which data you could not gather because of this.")
	return sb.String()
}
