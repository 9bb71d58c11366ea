package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

const (
	// Gemini occasionally returns a response with no text, no thinking and
	// no function calls. Such calls are retried here before the controller
	// ever sees them.
	emptyResponseRetries = 3
	emptyResponseWait    = 3 * time.Second
)

// googleAdapter streams Gemini responses through the genai SDK. It carries
// thinking parts (with thought signatures) and native function calls into
// the shared chunk types.
type googleAdapter struct {
	client *genai.Client
	logger *slog.Logger
}

func newGoogleAdapter(ctx context.Context, apiKey string, logger *slog.Logger) (*googleAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create google client: %w", err)
	}
	return &googleAdapter{client: client, logger: logger}, nil
}

func (a *googleAdapter) generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	contents, system := convertGoogleMessages(input.Messages)
	genCfg := a.buildConfig(input, system)

	out := make(chan agent.Chunk, 16)
	go func() {
		defer close(out)

		for attempt := 0; ; attempt++ {
			emitted, err := a.streamOnce(ctx, input.Config.Model, contents, genCfg, out)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				sendChunk(ctx, out, &agent.ErrorChunk{Message: err.Error(), Retryable: isRetryableMessage(err.Error())})
				return
			}
			if emitted {
				return
			}
			if attempt >= emptyResponseRetries {
				a.logger.Warn("empty LLM response after retries",
					"provider", "google", "session_id", input.SessionID, "attempts", attempt+1)
				sendChunk(ctx, out, &agent.ErrorChunk{Message: ErrEmptyResponse.Error(), Retryable: false})
				return
			}
			a.logger.Info("empty LLM response, retrying",
				"provider", "google", "session_id", input.SessionID, "attempt", attempt+1)
			select {
			case <-time.After(emptyResponseWait):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// streamOnce runs a single streaming call. Returns whether any content
// chunk (text, thinking or tool call) was emitted; usage alone does not
// count, so a fully empty response can be retried without the consumer
// having observed anything.
func (a *googleAdapter) streamOnce(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig, out chan<- agent.Chunk) (bool, error) {
	emitted := false
	var usage *agent.UsageChunk

	for resp, err := range a.client.Models.GenerateContentStream(ctx, model, contents, cfg) {
		if err != nil {
			return emitted, err
		}
		if resp == nil {
			continue
		}

		if resp.UsageMetadata != nil {
			usage = &agent.UsageChunk{
				InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
				OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
				TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
			}
		}

		for _, candidate := range resp.Candidates {
			if candidate == nil || candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part == nil {
					continue
				}

				var signature string
				if len(part.ThoughtSignature) > 0 {
					signature = base64.StdEncoding.EncodeToString(part.ThoughtSignature)
				}

				switch {
				case part.Thought:
					if part.Text == "" && signature == "" {
						continue
					}
					if !sendChunk(ctx, out, &agent.ThinkingChunk{Text: part.Text, Signature: signature}) {
						return emitted, ctx.Err()
					}
					emitted = true

				case part.FunctionCall != nil:
					args, jsonErr := json.Marshal(part.FunctionCall.Args)
					if jsonErr != nil {
						args = []byte("{}")
					}
					callID := part.FunctionCall.ID
					if callID == "" {
						callID = fmt.Sprintf("call_%s_%d", part.FunctionCall.Name, time.Now().UnixNano())
					}
					// A signature attached to a function-call part still has
					// to be replayed on the next turn.
					if signature != "" {
						if !sendChunk(ctx, out, &agent.ThinkingChunk{Signature: signature}) {
							return emitted, ctx.Err()
						}
					}
					if !sendChunk(ctx, out, &agent.ToolCallChunk{CallID: callID, Name: part.FunctionCall.Name, Arguments: string(args)}) {
						return emitted, ctx.Err()
					}
					emitted = true

				case part.Text != "":
					if !sendChunk(ctx, out, &agent.TextChunk{Text: part.Text}) {
						return emitted, ctx.Err()
					}
					emitted = true
				}
			}
		}
	}

	if emitted && usage != nil {
		if !sendChunk(ctx, out, usage) {
			return emitted, ctx.Err()
		}
	}
	return emitted, nil
}

func (a *googleAdapter) buildConfig(input *agent.GenerateInput, system string) *genai.GenerateContentConfig {
	cfg := input.Config
	genCfg := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{IncludeThoughts: true},
	}

	if system != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if cfg.Temperature != nil {
		temp := float32(*cfg.Temperature)
		genCfg.Temperature = &temp
	}
	if cfg.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(cfg.MaxTokens)
	}

	if len(input.Tools) > 0 {
		declarations := make([]*genai.FunctionDeclaration, 0, len(input.Tools))
		for _, tool := range input.Tools {
			decl := &genai.FunctionDeclaration{
				Name:        tool.Name,
				Description: tool.Description,
			}
			if tool.ParametersSchema != "" {
				var schema map[string]any
				if err := json.Unmarshal([]byte(tool.ParametersSchema), &schema); err == nil {
					decl.ParametersJsonSchema = schema
				}
			}
			declarations = append(declarations, decl)
		}
		genCfg.Tools = append(genCfg.Tools, &genai.Tool{FunctionDeclarations: declarations})
	}

	for nativeTool, enabled := range cfg.NativeTools {
		if !enabled {
			continue
		}
		switch nativeTool {
		case config.GoogleNativeToolGoogleSearch:
			genCfg.Tools = append(genCfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		case config.GoogleNativeToolCodeExecution:
			genCfg.Tools = append(genCfg.Tools, &genai.Tool{CodeExecution: &genai.ToolCodeExecution{}})
		case config.GoogleNativeToolURLContext:
			genCfg.Tools = append(genCfg.Tools, &genai.Tool{URLContext: &genai.URLContext{}})
		}
	}

	return genCfg
}

func (a *googleAdapter) close() error {
	// The genai client has no explicit close.
	return nil
}

// convertGoogleMessages maps the conversation to genai contents. System
// messages are extracted into the system instruction; tool results become
// function-response parts named after the originating call.
func convertGoogleMessages(messages []models.ConversationMessage) ([]*genai.Content, string) {
	var contents []*genai.Content
	var system string

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			if system != "" {
				system += "\n\n"
			}
			system += msg.Content
			continue

		case "assistant":
			content := &genai.Content{Role: genai.RoleModel}
			if msg.Content != "" {
				content.Parts = append(content.Parts, &genai.Part{Text: msg.Content})
			}
			for i, tc := range msg.ToolCalls {
				var args map[string]any
				if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
					args = map[string]any{}
				}
				part := &genai.Part{
					FunctionCall: &genai.FunctionCall{ID: tc.ID, Name: tc.Name, Args: args},
				}
				// The thought signature rides on the first function call of
				// the turn it was produced in.
				if i == 0 && msg.ThoughtSignature != "" {
					if sig, err := base64.StdEncoding.DecodeString(msg.ThoughtSignature); err == nil {
						part.ThoughtSignature = sig
					}
				}
				content.Parts = append(content.Parts, part)
			}
			if len(content.Parts) > 0 {
				contents = append(contents, content)
			}

		case "tool":
			var response map[string]any
			if err := json.Unmarshal([]byte(msg.Content), &response); err != nil {
				response = map[string]any{"result": msg.Content}
			}
			contents = append(contents, &genai.Content{
				Role: genai.RoleUser,
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						ID:       msg.ToolCallID,
						Name:     toolNameForCallID(messages, msg.ToolCallID),
						Response: response,
					},
				}},
			})

		default: // user
			if msg.Content != "" {
				contents = append(contents, &genai.Content{
					Role:  genai.RoleUser,
					Parts: []*genai.Part{{Text: msg.Content}},
				})
			}
		}
	}

	return contents, system
}

// toolNameForCallID finds the name of the tool call a result answers.
func toolNameForCallID(messages []models.ConversationMessage, callID string) string {
	for _, msg := range messages {
		for _, tc := range msg.ToolCalls {
			if tc.ID == callID {
				return tc.Name
			}
		}
	}
	return ""
}
