package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// InteractionService records LLM and MCP interactions: the full technical
// trace behind each timeline event, and the conversation snapshots that
// make paused sessions resumable.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// CreateLLMInteraction records an LLM call with its complete cumulative
// conversation. Each interaction's conversation extends the previous one,
// so the latest row alone can rebuild agent state on resume.
func (s *InteractionService) CreateLLMInteraction(httpCtx context.Context, req models.CreateLLMInteractionRequest) (*ent.LLMInteraction, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.ModelName == "" {
		return nil, NewValidationError("model_name", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}

	conversation, err := models.ConversationToMaps(req.Conversation)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetExecutionID(req.ExecutionID).
		SetInteractionType(req.InteractionType).
		SetModelName(req.ModelName).
		SetProvider(req.Provider).
		SetConversation(conversation)

	if req.ThinkingContent != nil {
		builder = builder.SetThinkingContent(*req.ThinkingContent)
	}
	if req.InputTokens != nil {
		builder = builder.SetInputTokens(*req.InputTokens)
	}
	if req.OutputTokens != nil {
		builder = builder.SetOutputTokens(*req.OutputTokens)
	}
	if req.TotalTokens != nil {
		builder = builder.SetTotalTokens(*req.TotalTokens)
	}
	if req.DurationMs != nil {
		builder = builder.SetDurationMs(*req.DurationMs)
	}
	if req.ErrorMessage != nil {
		builder = builder.SetErrorMessage(*req.ErrorMessage)
	}

	interaction, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM interaction: %w", err)
	}

	return interaction, nil
}

// CreateMCPInteraction records an MCP tool call or tool listing.
// Tool results must already be masked and truncated by the caller.
func (s *InteractionService) CreateMCPInteraction(httpCtx context.Context, req models.CreateMCPInteractionRequest) (*ent.MCPInteraction, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.ServerName == "" {
		return nil, NewValidationError("server_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.MCPInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetExecutionID(req.ExecutionID).
		SetInteractionType(req.InteractionType).
		SetServerName(req.ServerName).
		SetMasked(req.Masked)

	if req.ToolName != nil {
		builder = builder.SetToolName(*req.ToolName)
	}
	if req.ToolArguments != nil {
		builder = builder.SetToolArguments(req.ToolArguments)
	}
	if req.ToolResult != nil {
		builder = builder.SetToolResult(*req.ToolResult)
	}
	if req.AvailableTools != nil {
		builder = builder.SetAvailableTools(req.AvailableTools)
	}
	if req.DurationMs != nil {
		builder = builder.SetDurationMs(*req.DurationMs)
	}
	if req.ErrorMessage != nil {
		builder = builder.SetErrorMessage(*req.ErrorMessage)
	}

	interaction, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP interaction: %w", err)
	}

	return interaction, nil
}

// GetLatestLLMInteraction returns the most recent LLM interaction for a
// stage execution, or ErrNotFound. Resume rebuilds the agent conversation
// from its stored snapshot.
func (s *InteractionService) GetLatestLLMInteraction(ctx context.Context, executionID string) (*ent.LLMInteraction, error) {
	interaction, err := s.client.LLMInteraction.Query().
		Where(llminteraction.ExecutionIDEQ(executionID)).
		Order(ent.Desc(llminteraction.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest LLM interaction: %w", err)
	}
	return interaction, nil
}

// RestoreConversation decodes the latest recorded conversation for a stage
// execution. Returns nil (no error) when the stage has no interactions yet.
func (s *InteractionService) RestoreConversation(ctx context.Context, executionID string) ([]models.ConversationMessage, error) {
	interaction, err := s.GetLatestLLMInteraction(ctx, executionID)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return models.ConversationFromMaps(interaction.Conversation)
}

// GetLLMInteractionsList retrieves a session's LLM interactions chronologically
func (s *InteractionService) GetLLMInteractionsList(ctx context.Context, sessionID string) ([]*ent.LLMInteraction, error) {
	interactions, err := s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(llminteraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get LLM interactions: %w", err)
	}

	return interactions, nil
}

// GetLLMInteractionDetail retrieves full interaction details
func (s *InteractionService) GetLLMInteractionDetail(ctx context.Context, interactionID string) (*ent.LLMInteraction, error) {
	interaction, err := s.client.LLMInteraction.Get(ctx, interactionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get LLM interaction: %w", err)
	}

	return interaction, nil
}

// GetMCPInteractionsList retrieves a session's MCP interactions chronologically
func (s *InteractionService) GetMCPInteractionsList(ctx context.Context, sessionID string) ([]*ent.MCPInteraction, error) {
	interactions, err := s.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(mcpinteraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get MCP interactions: %w", err)
	}

	return interactions, nil
}

// GetMCPInteractionDetail retrieves full interaction details
func (s *InteractionService) GetMCPInteractionDetail(ctx context.Context, interactionID string) (*ent.MCPInteraction, error) {
	interaction, err := s.client.MCPInteraction.Get(ctx, interactionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get MCP interaction: %w", err)
	}

	return interaction, nil
}
