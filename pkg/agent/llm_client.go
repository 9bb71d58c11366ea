package agent

import (
	"context"

	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// LLMClient is the interface controllers use to call an LLM provider.
// Implementations stream the response as a channel of chunks; the channel
// is closed when the stream completes. Provider errors are delivered as
// ErrorChunk values, not as Go errors from Generate.
type LLMClient interface {
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases provider connections.
	Close() error
}

// GenerateInput is one LLM call: the conversation so far, the provider to
// use, and the tools available (nil = tool-less call).
type GenerateInput struct {
	SessionID       string
	ExecutionID     string
	InteractionType llminteraction.InteractionType
	Messages        []models.ConversationMessage
	Config          *config.LLMProviderConfig
	Tools           []ToolDefinition
}

// ToolDefinition describes a tool exposed to the LLM as a native function
// declaration. Names use the server__tool convention.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a delta of the LLM's text response.
type TextChunk struct{ Text string }

// ThinkingChunk is a delta of the LLM's internal reasoning. Signature, when
// present, is the opaque provider token that must be echoed back alongside
// tool calls on the next turn (Gemini thought signatures).
type ThinkingChunk struct {
	Text      string
	Signature string
}

// ToolCallChunk signals the LLM wants to call a tool. Emitted once per call
// with complete arguments; adapters accumulate partial deltas internally.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
