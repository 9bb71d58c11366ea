// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/schema"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertsessionFields := schema.AlertSession{}.Fields()
	_ = alertsessionFields
	// alertsessionDescCreatedAt is the schema descriptor for created_at field.
	alertsessionDescCreatedAt := alertsessionFields[5].Descriptor()
	// alertsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	alertsession.DefaultCreatedAt = alertsessionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	llminteractionFields := schema.LLMInteraction{}.Fields()
	_ = llminteractionFields
	// llminteractionDescCreatedAt is the schema descriptor for created_at field.
	llminteractionDescCreatedAt := llminteractionFields[3].Descriptor()
	// llminteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	llminteraction.DefaultCreatedAt = llminteractionDescCreatedAt.Default.(func() time.Time)
	mcpinteractionFields := schema.MCPInteraction{}.Fields()
	_ = mcpinteractionFields
	// mcpinteractionDescCreatedAt is the schema descriptor for created_at field.
	mcpinteractionDescCreatedAt := mcpinteractionFields[3].Descriptor()
	// mcpinteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	mcpinteraction.DefaultCreatedAt = mcpinteractionDescCreatedAt.Default.(func() time.Time)
	// mcpinteractionDescMasked is the schema descriptor for masked field.
	mcpinteractionDescMasked := mcpinteractionFields[10].Descriptor()
	// mcpinteraction.DefaultMasked holds the default value on creation for the masked field.
	mcpinteraction.DefaultMasked = mcpinteractionDescMasked.Default.(bool)
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescCreatedAt is the schema descriptor for created_at field.
	stageexecutionDescCreatedAt := stageexecutionFields[13].Descriptor()
	// stageexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageexecution.DefaultCreatedAt = stageexecutionDescCreatedAt.Default.(func() time.Time)
	timelineeventFields := schema.TimelineEvent{}.Fields()
	_ = timelineeventFields
	// timelineeventDescCreatedAt is the schema descriptor for created_at field.
	timelineeventDescCreatedAt := timelineeventFields[4].Descriptor()
	// timelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineevent.DefaultCreatedAt = timelineeventDescCreatedAt.Default.(func() time.Time)
	// timelineeventDescUpdatedAt is the schema descriptor for updated_at field.
	timelineeventDescUpdatedAt := timelineeventFields[5].Descriptor()
	// timelineevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timelineevent.DefaultUpdatedAt = timelineeventDescUpdatedAt.Default.(func() time.Time)
	// timelineevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timelineevent.UpdateDefaultUpdatedAt = timelineeventDescUpdatedAt.UpdateDefault.(func() time.Time)
}
