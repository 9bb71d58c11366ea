// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-project/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldSessionID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageIndex, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgentName, v))
}

// IterationStrategy applies equality check predicate on the "iteration_strategy" field. It's identical to IterationStrategyEQ.
func IterationStrategy(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldIterationStrategy, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldDurationMs, v))
}

// CurrentIteration applies equality check predicate on the "current_iteration" field. It's identical to CurrentIterationEQ.
func CurrentIteration(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCurrentIteration, v))
}

// StageOutput applies equality check predicate on the "stage_output" field. It's identical to StageOutputEQ.
func StageOutput(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageOutput, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageID, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageIndex, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldAgentName, v))
}

// IterationStrategyEQ applies the EQ predicate on the "iteration_strategy" field.
func IterationStrategyEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldIterationStrategy, v))
}

// IterationStrategyNEQ applies the NEQ predicate on the "iteration_strategy" field.
func IterationStrategyNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldIterationStrategy, v))
}

// IterationStrategyIn applies the In predicate on the "iteration_strategy" field.
func IterationStrategyIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldIterationStrategy, vs...))
}

// IterationStrategyNotIn applies the NotIn predicate on the "iteration_strategy" field.
func IterationStrategyNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldIterationStrategy, vs...))
}

// IterationStrategyGT applies the GT predicate on the "iteration_strategy" field.
func IterationStrategyGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldIterationStrategy, v))
}

// IterationStrategyGTE applies the GTE predicate on the "iteration_strategy" field.
func IterationStrategyGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldIterationStrategy, v))
}

// IterationStrategyLT applies the LT predicate on the "iteration_strategy" field.
func IterationStrategyLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldIterationStrategy, v))
}

// IterationStrategyLTE applies the LTE predicate on the "iteration_strategy" field.
func IterationStrategyLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldIterationStrategy, v))
}

// IterationStrategyContains applies the Contains predicate on the "iteration_strategy" field.
func IterationStrategyContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldIterationStrategy, v))
}

// IterationStrategyHasPrefix applies the HasPrefix predicate on the "iteration_strategy" field.
func IterationStrategyHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldIterationStrategy, v))
}

// IterationStrategyHasSuffix applies the HasSuffix predicate on the "iteration_strategy" field.
func IterationStrategyHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldIterationStrategy, v))
}

// IterationStrategyEqualFold applies the EqualFold predicate on the "iteration_strategy" field.
func IterationStrategyEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldIterationStrategy, v))
}

// IterationStrategyContainsFold applies the ContainsFold predicate on the "iteration_strategy" field.
func IterationStrategyContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldIterationStrategy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldDurationMs))
}

// CurrentIterationEQ applies the EQ predicate on the "current_iteration" field.
func CurrentIterationEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCurrentIteration, v))
}

// CurrentIterationNEQ applies the NEQ predicate on the "current_iteration" field.
func CurrentIterationNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCurrentIteration, v))
}

// CurrentIterationIn applies the In predicate on the "current_iteration" field.
func CurrentIterationIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCurrentIteration, vs...))
}

// CurrentIterationNotIn applies the NotIn predicate on the "current_iteration" field.
func CurrentIterationNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCurrentIteration, vs...))
}

// CurrentIterationGT applies the GT predicate on the "current_iteration" field.
func CurrentIterationGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCurrentIteration, v))
}

// CurrentIterationGTE applies the GTE predicate on the "current_iteration" field.
func CurrentIterationGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCurrentIteration, v))
}

// CurrentIterationLT applies the LT predicate on the "current_iteration" field.
func CurrentIterationLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCurrentIteration, v))
}

// CurrentIterationLTE applies the LTE predicate on the "current_iteration" field.
func CurrentIterationLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCurrentIteration, v))
}

// CurrentIterationIsNil applies the IsNil predicate on the "current_iteration" field.
func CurrentIterationIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCurrentIteration))
}

// CurrentIterationNotNil applies the NotNil predicate on the "current_iteration" field.
func CurrentIterationNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCurrentIteration))
}

// StageOutputEQ applies the EQ predicate on the "stage_output" field.
func StageOutputEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageOutput, v))
}

// StageOutputNEQ applies the NEQ predicate on the "stage_output" field.
func StageOutputNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageOutput, v))
}

// StageOutputIn applies the In predicate on the "stage_output" field.
func StageOutputIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageOutput, vs...))
}

// StageOutputNotIn applies the NotIn predicate on the "stage_output" field.
func StageOutputNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageOutput, vs...))
}

// StageOutputGT applies the GT predicate on the "stage_output" field.
func StageOutputGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageOutput, v))
}

// StageOutputGTE applies the GTE predicate on the "stage_output" field.
func StageOutputGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageOutput, v))
}

// StageOutputLT applies the LT predicate on the "stage_output" field.
func StageOutputLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageOutput, v))
}

// StageOutputLTE applies the LTE predicate on the "stage_output" field.
func StageOutputLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageOutput, v))
}

// StageOutputContains applies the Contains predicate on the "stage_output" field.
func StageOutputContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageOutput, v))
}

// StageOutputHasPrefix applies the HasPrefix predicate on the "stage_output" field.
func StageOutputHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageOutput, v))
}

// StageOutputHasSuffix applies the HasSuffix predicate on the "stage_output" field.
func StageOutputHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageOutput, v))
}

// StageOutputIsNil applies the IsNil predicate on the "stage_output" field.
func StageOutputIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldStageOutput))
}

// StageOutputNotNil applies the NotNil predicate on the "stage_output" field.
func StageOutputNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldStageOutput))
}

// StageOutputEqualFold applies the EqualFold predicate on the "stage_output" field.
func StageOutputEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageOutput, v))
}

// StageOutputContainsFold applies the ContainsFold predicate on the "stage_output" field.
func StageOutputContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageOutput, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AlertSession) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.NotPredicates(p))
}
