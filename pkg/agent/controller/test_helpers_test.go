package controller

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

// mockLLMResponse is one scripted Generate outcome.
type mockLLMResponse struct {
	chunks []agent.Chunk
	err    error
}

// mockLLMClient replays scripted responses in order. Not safe for concurrent
// use; controllers call Generate sequentially.
type mockLLMClient struct {
	responses []mockLLMResponse
	callCount int
	inputs    []*agent.GenerateInput
}

func (m *mockLLMClient) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	idx := m.callCount
	m.callCount++
	m.inputs = append(m.inputs, input)

	if idx >= len(m.responses) {
		return nil, fmt.Errorf("no more mock responses (call %d)", idx+1)
	}
	r := m.responses[idx]
	if r.err != nil {
		return nil, r.err
	}

	out := make(chan agent.Chunk, len(r.chunks))
	for _, c := range r.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func (m *mockLLMClient) Close() error { return nil }

// textChunks splits text into a few TextChunk deltas plus a usage chunk, to
// exercise accumulation the way a real stream would.
func textChunks(text string) []agent.Chunk {
	mid := len(text) / 2
	return []agent.Chunk{
		&agent.TextChunk{Text: text[:mid]},
		&agent.TextChunk{Text: text[mid:]},
		&agent.UsageChunk{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

// mockToolExecutor returns scripted results keyed by canonical tool name.
type mockToolExecutor struct {
	tools   []agent.ToolDefinition
	results map[string]*agent.ToolResult
	errs    map[string]error
	calls   []agent.ToolCall
}

func (m *mockToolExecutor) Execute(_ context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	m.calls = append(m.calls, call)
	if err, ok := m.errs[call.Name]; ok {
		return nil, err
	}
	if result, ok := m.results[call.Name]; ok {
		r := *result
		r.CallID = call.ID
		return &r, nil
	}
	return &agent.ToolResult{CallID: call.ID, Name: call.Name, Content: "default result"}, nil
}

func (m *mockToolExecutor) ListTools(_ context.Context) ([]agent.ToolDefinition, error) {
	return m.tools, nil
}

func (m *mockToolExecutor) Close() error { return nil }

// mockPromptBuilder returns minimal but realistic conversations.
type mockPromptBuilder struct{}

func (b *mockPromptBuilder) BuildReActMessages(execCtx *agent.ExecutionContext, prevStageContext string) []models.ConversationMessage {
	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: "You are an SRE agent. Use ReAct format."},
		{Role: models.RoleUser, Content: "Investigate: " + execCtx.AlertData + "\n" + prevStageContext},
	}
}

func (b *mockPromptBuilder) BuildNativeThinkingMessages(execCtx *agent.ExecutionContext, prevStageContext string) []models.ConversationMessage {
	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: "You are an SRE agent with native tools."},
		{Role: models.RoleUser, Content: "Investigate: " + execCtx.AlertData + "\n" + prevStageContext},
	}
}

func (b *mockPromptBuilder) BuildFinalAnalysisMessages(execCtx *agent.ExecutionContext, prevStageContext string) []models.ConversationMessage {
	return []models.ConversationMessage{
		{Role: models.RoleSystem, Content: "Synthesize the investigation."},
		{Role: models.RoleUser, Content: "Stage outputs:\n" + prevStageContext},
	}
}

func (b *mockPromptBuilder) BuildSummarizationSystemPrompt(serverName, toolName string, maxSummaryTokens int) string {
	return fmt.Sprintf("Summarize %s.%s output in at most %d tokens.", serverName, toolName, maxSummaryTokens)
}

func (b *mockPromptBuilder) BuildSummarizationUserPrompt(conversationContext, serverName, toolName, resultText string) string {
	return "Context:\n" + conversationContext + "\nResult:\n" + resultText
}

// capturingPublisher records every published payload for assertions.
type capturingPublisher struct {
	mu        sync.Mutex
	created   []events.TimelineCreatedPayload
	completed []events.TimelineCompletedPayload
	chunks    []events.StreamChunkPayload
	progress  []events.SessionProgressPayload
}

func (p *capturingPublisher) PublishTimelineCreated(_ context.Context, _ string, payload events.TimelineCreatedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, payload)
	return nil
}

func (p *capturingPublisher) PublishTimelineCompleted(_ context.Context, _ string, payload events.TimelineCompletedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = append(p.completed, payload)
	return nil
}

func (p *capturingPublisher) PublishStreamChunk(_ context.Context, _ string, payload events.StreamChunkPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chunks = append(p.chunks, payload)
	return nil
}

func (p *capturingPublisher) PublishStageStatus(_ context.Context, _ string, _ events.StageStatusPayload) error {
	return nil
}

func (p *capturingPublisher) PublishSessionLifecycle(_ context.Context, _ string, _ events.SessionLifecyclePayload) error {
	return nil
}

func (p *capturingPublisher) PublishSessionProgress(_ context.Context, payload events.SessionProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, payload)
	return nil
}

func (p *capturingPublisher) PublishCancellation(_ context.Context, _ events.CancellationPayload) error {
	return nil
}

// testFixture bundles everything a controller run needs against a real
// database-backed service layer.
type testFixture struct {
	execCtx   *agent.ExecutionContext
	llm       *mockLLMClient
	tools     *mockToolExecutor
	publisher *capturingPublisher
	bundle    *agent.ServiceBundle
}

// newTestFixture creates a session + pending stage execution and wires an
// ExecutionContext with mocks for LLM, tools, prompts and events.
func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessionService := services.NewSessionService(client.Client)
	bundle := &agent.ServiceBundle{
		Timeline:    services.NewTimelineService(client.Client),
		Interaction: services.NewInteractionService(client.Client),
		Stage:       services.NewStageService(client.Client),
	}

	session, err := sessionService.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID:   uuid.New().String(),
		AlertData:   `{"alert":"PodCrashLooping","namespace":"payments"}`,
		AlertType:   "kubernetes",
		Fingerprint: uuid.New().String(),
		ChainID:     "k8s-analysis",
	})
	require.NoError(t, err)

	execution, err := bundle.Stage.CreateStageExecution(context.Background(), models.CreateStageExecutionRequest{
		SessionID:  session.ID,
		StageID:    "investigation",
		StageIndex: 0,
		AgentName:  "KubernetesAgent",
	})
	require.NoError(t, err)
	require.NoError(t, bundle.Stage.StartStageExecution(context.Background(), execution.ID))

	llmClient := &mockLLMClient{}
	toolExecutor := &mockToolExecutor{
		tools: []agent.ToolDefinition{
			{Name: "kubernetes-server.get_pods", Description: "List pods"},
			{Name: "kubernetes-server.get_logs", Description: "Fetch pod logs"},
		},
	}
	publisher := &capturingPublisher{}

	execCtx := &agent.ExecutionContext{
		SessionID:      session.ID,
		StageID:        "investigation",
		StageIndex:     0,
		ExecutionID:    execution.ID,
		AgentName:      "KubernetesAgent",
		AlertData:      session.AlertData,
		AlertType:      "kubernetes",
		RunbookContent: "1. Check pod status\n2. Check logs",
		Config: &agent.ResolvedAgentConfig{
			AgentName:         "KubernetesAgent",
			IterationStrategy: config.IterationStrategyReact,
			LLMProvider: &config.LLMProviderConfig{
				Type:  config.LLMProviderTypeGoogle,
				Model: "gemini-2.5-pro",
			},
			LLMProviderName: "google-default",
			MaxIterations:   20,
			LLMTimeout:      30 * time.Second,
			MCPServers:      []string{"kubernetes-server"},
		},
		LLMClient:      llmClient,
		ToolExecutor:   toolExecutor,
		EventPublisher: publisher,
		Services:       bundle,
		PromptBuilder:  &mockPromptBuilder{},
		TotalStages:    1,
	}

	return &testFixture{
		execCtx:   execCtx,
		llm:       llmClient,
		tools:     toolExecutor,
		publisher: publisher,
		bundle:    bundle,
	}
}
