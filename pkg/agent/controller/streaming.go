package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/llm"
)

// Stream types carried on stream.chunk payloads. The dashboard renders
// thought and final_answer chunks differently, so the ReAct publisher
// switches mid-stream once "Final Answer:" appears in the accumulated text.
const (
	StreamTypeThought        = "thought"
	StreamTypeFinalAnswer    = "final_answer"
	StreamTypeNativeThinking = "native_thinking"
	StreamTypeSummarization  = "summarization"
)

// finalAnswerMarker flips the ReAct stream type.
const finalAnswerMarker = "Final Answer:"

// LLMResponse is the fully-collected result of one streamed LLM call.
type LLMResponse struct {
	Text              string
	ThinkingText      string
	ThinkingSignature string
	ToolCalls         []agent.ToolCall
	Usage             *agent.TokenUsage
}

// streamMode selects which deltas are streamed to the bus and under which
// timeline event type.
type streamMode int

const (
	// streamModeReAct streams text deltas as thought/final_answer on an
	// llm_thinking event. Thinking deltas (providers that expose reasoning
	// even in ReAct mode) stream as native_thinking on the same event.
	streamModeReAct streamMode = iota

	// streamModeNative streams thinking deltas as native_thinking on an
	// llm_thinking event. Text is collected but not streamed; the final
	// answer is published as a durable final_analysis event by the caller.
	streamModeNative

	// streamModeFinalAnalysis streams text deltas as final_answer on a
	// final_analysis event (single synthesis call, no tools).
	streamModeFinalAnalysis

	// streamModeSummarization streams text deltas as summarization on an
	// mcp_tool_summary event tagged with the originating tool call event.
	streamModeSummarization
)

// streamedCall is the outcome of callLLMWithStreaming. EventID is the
// streaming timeline event created on the first delta ("" when no delta
// arrived or no publisher is configured); the caller finalizes it.
type streamedCall struct {
	Response  *LLMResponse
	EventID   string
	EventType timelineevent.EventType
}

// callLLMWithStreaming performs one LLM call with the configured per-call
// timeout, streaming deltas to the event bus as they arrive:
//
//   - first delta → durable timeline.created (status streaming)
//   - each delta → transient stream.chunk (is_complete false)
//   - completion → one stream.chunk with is_complete true
//
// The durable timeline.completed is published by the caller via
// completeStreamingEvent once the interaction record exists to link.
// Publish and persistence failures are logged and never fail the call.
func callLLMWithStreaming(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	input *agent.GenerateInput,
	mode streamMode,
	mcpEventID string,
) (*streamedCall, error) {
	callCtx, cancel := context.WithTimeout(ctx, execCtx.Config.LLMTimeout)
	defer cancel()

	stream, err := execCtx.LLMClient.Generate(callCtx, input)
	if err != nil {
		return nil, err
	}

	pub := &streamPublisher{ctx: ctx, execCtx: execCtx, mode: mode, mcpEventID: mcpEventID}
	resp, err := collectStream(callCtx, stream, pub.onChunk)
	if err != nil {
		if pub.eventID != "" {
			completeStreamingEvent(ctx, execCtx, pub.eventID, pub.eventType,
				timelineevent.StatusFailed, "LLM streaming failed: "+err.Error(), nil)
		}
		return nil, err
	}

	pub.finish()
	return &streamedCall{Response: resp, EventID: pub.eventID, EventType: pub.eventType}, nil
}

// collectStream drains the chunk channel into an LLMResponse. Each chunk is
// also handed to onChunk (may be nil) for live publishing. ErrorChunk values
// terminate collection; an empty-response error is surfaced as
// llm.ErrEmptyResponse so controllers can special-case it.
func collectStream(
	ctx context.Context,
	stream <-chan agent.Chunk,
	onChunk func(agent.Chunk),
) (*LLMResponse, error) {
	resp := &LLMResponse{}
	var text, thinking strings.Builder

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				resp.Text = text.String()
				resp.ThinkingText = thinking.String()
				return resp, nil
			}
			switch c := chunk.(type) {
			case *agent.TextChunk:
				text.WriteString(c.Text)
			case *agent.ThinkingChunk:
				thinking.WriteString(c.Text)
				if c.Signature != "" {
					resp.ThinkingSignature = c.Signature
				}
			case *agent.ToolCallChunk:
				resp.ToolCalls = append(resp.ToolCalls, agent.ToolCall{
					ID:        c.CallID,
					Name:      c.Name,
					Arguments: c.Arguments,
				})
			case *agent.UsageChunk:
				resp.Usage = &agent.TokenUsage{
					InputTokens:  c.InputTokens,
					OutputTokens: c.OutputTokens,
					TotalTokens:  c.TotalTokens,
				}
			case *agent.ErrorChunk:
				if c.Message == llm.ErrEmptyResponse.Error() {
					return nil, llm.ErrEmptyResponse
				}
				return nil, errors.New(c.Message)
			}
			if onChunk != nil {
				onChunk(chunk)
			}
		}
	}
}

// streamPublisher pushes deltas to the event bus as they arrive. The
// timeline event is created lazily on the first publishable delta so failed
// calls that never produce output leave no empty events behind.
type streamPublisher struct {
	ctx        context.Context
	execCtx    *agent.ExecutionContext
	mode       streamMode
	mcpEventID string

	eventID      string
	eventType    timelineevent.EventType
	createFailed bool
	accumulated  strings.Builder
	streamType   string
}

func (p *streamPublisher) onChunk(chunk agent.Chunk) {
	if p.execCtx.EventPublisher == nil {
		return
	}
	switch c := chunk.(type) {
	case *agent.TextChunk:
		if c.Text == "" {
			return
		}
		switch p.mode {
		case streamModeReAct:
			p.accumulated.WriteString(c.Text)
			if p.streamType != StreamTypeFinalAnswer &&
				strings.Contains(p.accumulated.String(), finalAnswerMarker) {
				p.streamType = StreamTypeFinalAnswer
			} else if p.streamType == "" {
				p.streamType = StreamTypeThought
			}
			p.publish(c.Text)
		case streamModeFinalAnalysis:
			p.streamType = StreamTypeFinalAnswer
			p.publish(c.Text)
		case streamModeSummarization:
			p.streamType = StreamTypeSummarization
			p.publish(c.Text)
		}
	case *agent.ThinkingChunk:
		if c.Text == "" {
			return
		}
		switch p.mode {
		case streamModeReAct, streamModeNative:
			p.streamType = StreamTypeNativeThinking
			p.publish(c.Text)
		}
	}
}

// publish lazily creates the streaming timeline event, then sends the delta.
func (p *streamPublisher) publish(delta string) {
	if p.createFailed {
		return
	}
	if p.eventID == "" {
		p.eventType = timelineevent.EventTypeLlmThinking
		switch p.mode {
		case streamModeFinalAnalysis:
			p.eventType = timelineevent.EventTypeFinalAnalysis
		case streamModeSummarization:
			p.eventType = timelineevent.EventTypeMcpToolSummary
		}
		eventID, err := createStreamingTimelineEvent(p.ctx, p.execCtx, p.eventType, nil)
		if err != nil {
			slog.Warn("Failed to create streaming timeline event",
				"session_id", p.execCtx.SessionID, "event_type", p.eventType, "error", err)
			p.createFailed = true
			return
		}
		p.eventID = eventID
	}
	p.sendChunk(delta, false)
}

// finish publishes the terminal stream.chunk with is_complete set. The
// durable timeline.completed follows from the caller.
func (p *streamPublisher) finish() {
	if p.eventID == "" {
		return
	}
	p.sendChunk("", true)
}

func (p *streamPublisher) sendChunk(delta string, complete bool) {
	payload := events.StreamChunkPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeStreamChunk,
			SessionID: p.execCtx.SessionID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		EventID:    p.eventID,
		StreamType: p.streamType,
		Chunk:      delta,
		IsComplete: complete,
		MCPEventID: p.mcpEventID,
	}
	if err := p.execCtx.EventPublisher.PublishStreamChunk(p.ctx, p.execCtx.SessionID, payload); err != nil {
		slog.Warn("Failed to publish stream chunk",
			"event_id", p.eventID, "session_id", p.execCtx.SessionID, "error", err)
	}
}
