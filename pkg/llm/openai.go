package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// openaiAdapter streams chat completions through the OpenAI wire format.
// xAI uses the same adapter with its base URL pointed at the Grok API.
type openaiAdapter struct {
	client *openai.Client
	logger *slog.Logger
}

func newOpenAIAdapter(apiKey, baseURL string, logger *slog.Logger) (*openaiAdapter, error) {
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = baseURL
	}
	return &openaiAdapter{
		client: openai.NewClientWithConfig(cfg),
		logger: logger,
	}, nil
}

func (a *openaiAdapter) generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	req := a.buildRequest(input)

	out := make(chan agent.Chunk, 16)
	go func() {
		defer close(out)

		stream, err := a.client.CreateChatCompletionStream(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			sendChunk(ctx, out, &agent.ErrorChunk{Message: err.Error(), Retryable: isRetryableMessage(err.Error())})
			return
		}
		defer stream.Close()

		a.processStream(ctx, stream, out)
	}()

	return out, nil
}

func (a *openaiAdapter) buildRequest(input *agent.GenerateInput) openai.ChatCompletionRequest {
	cfg := input.Config

	req := openai.ChatCompletionRequest{
		Model:    cfg.Model,
		Messages: convertOpenAIMessages(input.Messages),
		Stream:   true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	}

	if cfg.Temperature != nil {
		req.Temperature = float32(*cfg.Temperature)
	}
	if cfg.MaxTokens > 0 {
		req.MaxCompletionTokens = cfg.MaxTokens
	}

	for _, tool := range input.Tools {
		req.Tools = append(req.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  json.RawMessage(tool.ParametersSchema),
			},
		})
	}

	return req
}

func (a *openaiAdapter) processStream(ctx context.Context, stream *openai.ChatCompletionStream, out chan<- agent.Chunk) {
	// Tool calls stream as fragments keyed by index; emitted once complete.
	toolCalls := make(map[int]*agent.ToolCallChunk)
	toolOrder := []int{}

	flushToolCalls := func() bool {
		for _, idx := range toolOrder {
			tc := toolCalls[idx]
			if tc.CallID == "" || tc.Name == "" {
				continue
			}
			if tc.Arguments == "" {
				tc.Arguments = "{}"
			}
			if !sendChunk(ctx, out, tc) {
				return false
			}
		}
		toolCalls = make(map[int]*agent.ToolCallChunk)
		toolOrder = toolOrder[:0]
		return true
	}

	for {
		response, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				flushToolCalls()
				return
			}
			if ctx.Err() != nil {
				return
			}
			sendChunk(ctx, out, &agent.ErrorChunk{Message: err.Error(), Retryable: isRetryableMessage(err.Error())})
			return
		}

		if response.Usage != nil {
			if !sendChunk(ctx, out, &agent.UsageChunk{
				InputTokens:  response.Usage.PromptTokens,
				OutputTokens: response.Usage.CompletionTokens,
				TotalTokens:  response.Usage.TotalTokens,
			}) {
				return
			}
		}

		if len(response.Choices) == 0 {
			continue
		}
		choice := response.Choices[0]
		delta := choice.Delta

		if delta.ReasoningContent != "" {
			if !sendChunk(ctx, out, &agent.ThinkingChunk{Text: delta.ReasoningContent}) {
				return
			}
		}
		if delta.Content != "" {
			if !sendChunk(ctx, out, &agent.TextChunk{Text: delta.Content}) {
				return
			}
		}

		for _, tc := range delta.ToolCalls {
			index := 0
			if tc.Index != nil {
				index = *tc.Index
			}
			if toolCalls[index] == nil {
				toolCalls[index] = &agent.ToolCallChunk{}
				toolOrder = append(toolOrder, index)
			}
			if tc.ID != "" {
				toolCalls[index].CallID = tc.ID
			}
			if tc.Function.Name != "" {
				toolCalls[index].Name = tc.Function.Name
			}
			if tc.Function.Arguments != "" {
				toolCalls[index].Arguments += tc.Function.Arguments
			}
		}

		if choice.FinishReason == openai.FinishReasonToolCalls {
			if !flushToolCalls() {
				return
			}
		}
	}
}

func (a *openaiAdapter) close() error {
	return nil
}

// convertOpenAIMessages maps the conversation to chat completion messages.
// Roles carry over directly; tool results become role "tool" messages tied
// to their call id.
func convertOpenAIMessages(messages []models.ConversationMessage) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))

	for _, msg := range messages {
		oaiMsg := openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}

		if msg.Role == "tool" {
			oaiMsg.Role = openai.ChatMessageRoleTool
			oaiMsg.ToolCallID = msg.ToolCallID
		}

		for _, tc := range msg.ToolCalls {
			oaiMsg.ToolCalls = append(oaiMsg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}

		result = append(result, oaiMsg)
	}

	return result
}
