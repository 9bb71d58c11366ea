// Package prompt provides the centralized prompt builder framework for all
// agent controllers. It composes system messages, user messages, instruction
// hierarchies, and strategy-specific formatting.
package prompt

// reactFormatInstructions teaches the Thought/Action/Observation loop. The
// wording must stay aligned with the response parser: it recognizes exactly
// the "Thought:", "Action:", "Action Input:" and "Final Answer:" headers.
const reactFormatInstructions = `## Response Format

Answer using this exact format. Never deviate from it:

Thought: your reasoning about what to do next
Action: the tool to use, as server.tool (exactly one of the available tools)
Action Input: the tool parameters
Observation: the tool result (provided by the system - NEVER write this yourself)

Repeat Thought/Action/Action Input/Observation as many times as needed.
When you have enough information to answer, finish with:

Thought: I now know the final answer
Final Answer: your complete analysis

Rules:
- Every response must contain either an Action (with Action Input) or a Final Answer, never both.
- Stop after "Action Input:" and wait for the Observation. Do not fabricate observations.
- Action Input takes JSON matching the tool's parameters, for example: {"namespace": "prod"}`

// reactToolsFormatInstructions is the react-tools variant: same loop, but
// the final answer is a structured data summary handed to later stages
// instead of a full incident analysis.
const reactToolsFormatInstructions = reactFormatInstructions + `

Your Final Answer must be a structured summary of the data you collected:
what was queried, what was found, and notable observations. Do not provide
root cause analysis or remediation steps - a later stage does that.`

// analysisTask is the investigation task instruction appended to the user message.
const analysisTask = `## Your Task
Use the available tools to investigate this alert and provide:
1. Root cause analysis
2. Current system state assessment
3. Specific remediation steps for human operators
4. Prevention recommendations

Be thorough in your investigation before providing the final answer.`

// dataCollectionTask is the react-tools task instruction. The stage gathers
// data for later analysis stages rather than producing conclusions.
const dataCollectionTask = `## Your Task
Use the available tools to collect the system data relevant to this alert.
Your final answer should be a structured summary of what you gathered:
queried resources, their current state, and anything unusual you noticed.
Later stages analyze this data - do not draw final conclusions yourself.`

// finalAnalysisTask is the synthesis task instruction for combining prior stage results.
const finalAnalysisTask = `Synthesize the investigation results and provide your comprehensive analysis.`

// mcpSummarizationSystemTemplate is the system prompt for MCP result summarization.
// %s = server name, %s = tool name, %d = max summary tokens.
const mcpSummarizationSystemTemplate = `You are an expert at summarizing technical output from system administration and monitoring tools for ongoing incident investigation.

Your specific task is to summarize output from **%s.%s** in a way that:

1. **Preserves Critical Information**: Keep all details essential for troubleshooting and investigation
2. **Maintains Investigation Context**: Focus on information relevant to what the investigator was looking for
3. **Reduces Verbosity**: Remove redundant details while preserving technical accuracy
4. **Highlights Key Findings**: Emphasize errors, warnings, unusual patterns, and actionable insights
5. **Stays Concise**: Keep summary under %d tokens while preserving meaning

## Summarization Guidelines:

- **Always Preserve**: Error messages, warnings, status indicators, resource metrics, timestamps
- **Intelligently Summarize**: Large lists by showing patterns, counts, and notable exceptions
- **Focus On**: Non-default configurations, problematic settings, resource utilization issues
- **Maintain**: Technical accuracy and context about what the data represents
- **Format**: Clean, structured text suitable for continued technical investigation
- **Be Conclusive**: Explicitly state what was found AND what was NOT found to prevent re-queries
- **Answer Questions**: If the investigation context suggests the investigator was looking for something specific, explicitly confirm whether it was present or absent

Your summary will be inserted as an observation in the ongoing investigation conversation.`

// mcpSummarizationUserTemplate is the user prompt for MCP result summarization.
// %s = conversation context, %s = server name, %s = tool name, %s = result text.
const mcpSummarizationUserTemplate = `Below is the ongoing investigation conversation that provides context for what the investigator has been looking for:

## Investigation Context:
=== CONVERSATION START ===
%s
=== CONVERSATION END ===

## Tool Result to Summarize:
The investigator just executed ` + "`%s.%s`" + ` and got the following output:

=== TOOL OUTPUT START ===
%s
=== TOOL OUTPUT END ===

## Your Task:
Based on the investigation context above, provide a concise summary of the tool result that:
- Preserves information most relevant to what the investigator was looking for
- Removes verbose or redundant details that don't impact the investigation
- Maintains technical accuracy and actionable insights
- Fits naturally as the next observation in the investigation conversation

CRITICAL INSTRUCTION: Return ONLY the summary text. Do NOT include "Final Answer:", "Thought:", "Action:", or any other formatting.`
