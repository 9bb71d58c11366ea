package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// Anthropic requires max_tokens on every request.
const anthropicDefaultMaxTokens = 8192

// anthropicAdapter streams Claude responses over the SDK's SSE stream,
// mapping text, thinking and tool-use blocks into the shared chunk types.
type anthropicAdapter struct {
	client anthropic.Client
	logger *slog.Logger
}

func newAnthropicAdapter(apiKey, baseURL string, logger *slog.Logger) (*anthropicAdapter, error) {
	options := []option.RequestOption{option.WithAPIKey(apiKey)}
	if strings.TrimSpace(baseURL) != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	return &anthropicAdapter{
		client: anthropic.NewClient(options...),
		logger: logger,
	}, nil
}

func (a *anthropicAdapter) generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	params, err := a.buildParams(input)
	if err != nil {
		return nil, err
	}

	out := make(chan agent.Chunk, 16)
	go func() {
		defer close(out)
		a.processStream(ctx, params, out)
	}()

	return out, nil
}

func (a *anthropicAdapter) buildParams(input *agent.GenerateInput) (anthropic.MessageNewParams, error) {
	cfg := input.Config

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(cfg.Model),
		Messages:  convertAnthropicMessages(input.Messages),
		MaxTokens: maxTokens,
	}

	if system := collectSystemPrompt(input.Messages); system != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: system}}
	}
	if cfg.Temperature != nil {
		params.Temperature = anthropic.Float(*cfg.Temperature)
	}

	for _, tool := range input.Tools {
		var schema anthropic.ToolInputSchemaParam
		if tool.ParametersSchema != "" {
			if err := json.Unmarshal([]byte(tool.ParametersSchema), &schema); err != nil {
				return params, fmt.Errorf("llm: invalid tool schema for %s: %w", tool.Name, err)
			}
		}
		toolParam := anthropic.ToolUnionParamOfTool(schema, tool.Name)
		if toolParam.OfTool == nil {
			return params, fmt.Errorf("llm: invalid tool schema for %s", tool.Name)
		}
		toolParam.OfTool.Description = anthropic.String(tool.Description)
		params.Tools = append(params.Tools, toolParam)
	}

	return params, nil
}

func (a *anthropicAdapter) processStream(ctx context.Context, params anthropic.MessageNewParams, out chan<- agent.Chunk) {
	stream := a.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	var currentToolID, currentToolName string
	var currentToolInput strings.Builder
	var inputTokens, outputTokens int

	for stream.Next() {
		event := stream.Current()

		switch event.Type {
		case "message_start":
			messageStart := event.AsMessageStart()
			inputTokens = int(messageStart.Message.Usage.InputTokens)

		case "content_block_start":
			contentBlockStart := event.AsContentBlockStart()
			if contentBlockStart.ContentBlock.Type == "tool_use" {
				toolUse := contentBlockStart.ContentBlock.AsToolUse()
				currentToolID = toolUse.ID
				currentToolName = toolUse.Name
				currentToolInput.Reset()
			}

		case "content_block_delta":
			delta := event.AsContentBlockDelta().Delta
			switch delta.Type {
			case "text_delta":
				if delta.Text != "" {
					if !sendChunk(ctx, out, &agent.TextChunk{Text: delta.Text}) {
						return
					}
				}
			case "thinking_delta":
				if delta.Thinking != "" {
					if !sendChunk(ctx, out, &agent.ThinkingChunk{Text: delta.Thinking}) {
						return
					}
				}
			case "input_json_delta":
				currentToolInput.WriteString(delta.PartialJSON)
			}

		case "content_block_stop":
			if currentToolID != "" {
				args := currentToolInput.String()
				if args == "" {
					args = "{}"
				}
				if !sendChunk(ctx, out, &agent.ToolCallChunk{CallID: currentToolID, Name: currentToolName, Arguments: args}) {
					return
				}
				currentToolID, currentToolName = "", ""
			}

		case "message_delta":
			messageDelta := event.AsMessageDelta()
			if messageDelta.Usage.OutputTokens > 0 {
				outputTokens = int(messageDelta.Usage.OutputTokens)
			}

		case "message_stop":
			sendChunk(ctx, out, &agent.UsageChunk{
				InputTokens:  inputTokens,
				OutputTokens: outputTokens,
				TotalTokens:  inputTokens + outputTokens,
			})
			return
		}
	}

	if err := stream.Err(); err != nil {
		if ctx.Err() != nil {
			return
		}
		sendChunk(ctx, out, &agent.ErrorChunk{Message: err.Error(), Retryable: isRetryableMessage(err.Error())})
	}
}

func (a *anthropicAdapter) close() error {
	return nil
}

// convertAnthropicMessages maps the conversation to Anthropic messages.
// System messages are pulled out separately; tool results become user-side
// tool_result blocks tied to the originating call id.
func convertAnthropicMessages(messages []models.ConversationMessage) []anthropic.MessageParam {
	var result []anthropic.MessageParam

	for _, msg := range messages {
		if msg.Role == "system" {
			continue
		}

		var content []anthropic.ContentBlockParamUnion

		if msg.Role == "tool" {
			content = append(content, anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false))
		} else if msg.Content != "" {
			content = append(content, anthropic.NewTextBlock(msg.Content))
		}

		for _, tc := range msg.ToolCalls {
			var args map[string]any
			if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
				args = map[string]any{}
			}
			content = append(content, anthropic.NewToolUseBlock(tc.ID, args, tc.Name))
		}

		if len(content) == 0 {
			continue
		}

		if msg.Role == "assistant" {
			result = append(result, anthropic.NewAssistantMessage(content...))
		} else {
			result = append(result, anthropic.NewUserMessage(content...))
		}
	}

	return result
}

// collectSystemPrompt concatenates system messages for providers that take
// the system prompt out of band.
func collectSystemPrompt(messages []models.ConversationMessage) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role == "system" && msg.Content != "" {
			parts = append(parts, msg.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
