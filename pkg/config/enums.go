package config

// IterationStrategy defines available agent iteration strategies
type IterationStrategy string

const (
	// IterationStrategyReact uses the classic Reason-Act-Observe text loop
	IterationStrategyReact IterationStrategy = "react"
	// IterationStrategyReactTools is the ReAct loop tuned for data collection;
	// the agent terminates with a structured data summary instead of a diagnosis
	IterationStrategyReactTools IterationStrategy = "react-tools"
	// IterationStrategyReactFinalAnalysis is a single tool-less call that
	// synthesizes accumulated stage outputs into the final analysis
	IterationStrategyReactFinalAnalysis IterationStrategy = "react-final-analysis"
	// IterationStrategyNativeThinking uses provider-native function calling
	// with thinking/reasoning content where the provider exposes it
	IterationStrategyNativeThinking IterationStrategy = "native-thinking"
)

// IsValid checks if the iteration strategy is valid
func (s IterationStrategy) IsValid() bool {
	switch s {
	case IterationStrategyReact,
		IterationStrategyReactTools,
		IterationStrategyReactFinalAnalysis,
		IterationStrategyNativeThinking:
		return true
	default:
		return false
	}
}

// UsesTools reports whether the strategy dispatches MCP tools.
// react-final-analysis only reads accumulated stage outputs.
func (s IterationStrategy) UsesTools() bool {
	return s != IterationStrategyReactFinalAnalysis
}

// TransportType defines MCP server transport types
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses HTTP/HTTPS JSON-RPC
	TransportTypeHTTP TransportType = "http"
	// TransportTypeSSE uses Server-Sent Events
	TransportTypeSSE TransportType = "sse"
)

// IsValid checks if the transport type is valid
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP || t == TransportTypeSSE
}

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeGoogle is Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeXAI is xAI Grok API (OpenAI-compatible wire format)
	LLMProviderTypeXAI LLMProviderType = "xai"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeGoogle,
		LLMProviderTypeOpenAI,
		LLMProviderTypeAnthropic,
		LLMProviderTypeXAI:
		return true
	default:
		return false
	}
}

// GoogleNativeTool defines Google/Gemini native tools
type GoogleNativeTool string

const (
	// GoogleNativeToolGoogleSearch enables Google Search grounding
	GoogleNativeToolGoogleSearch GoogleNativeTool = "google_search"
	// GoogleNativeToolCodeExecution enables code execution
	GoogleNativeToolCodeExecution GoogleNativeTool = "code_execution"
	// GoogleNativeToolURLContext enables URL context fetching
	GoogleNativeToolURLContext GoogleNativeTool = "url_context"
)

// IsValid checks if the Google native tool is valid
func (t GoogleNativeTool) IsValid() bool {
	return t == GoogleNativeToolGoogleSearch ||
		t == GoogleNativeToolCodeExecution ||
		t == GoogleNativeToolURLContext
}
