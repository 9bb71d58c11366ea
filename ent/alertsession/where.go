// Code generated by ent, DO NOT EDIT.

package alertsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-project/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldID, id))
}

// AlertData applies equality check predicate on the "alert_data" field. It's identical to AlertDataEQ.
func AlertData(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertData, v))
}

// AlertType applies equality check predicate on the "alert_type" field. It's identical to AlertTypeEQ.
func AlertType(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertType, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldErrorMessage, v))
}

// FinalAnalysis applies equality check predicate on the "final_analysis" field. It's identical to FinalAnalysisEQ.
func FinalAnalysis(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFinalAnalysis, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAuthor, v))
}

// RunbookURL applies equality check predicate on the "runbook_url" field. It's identical to RunbookURLEQ.
func RunbookURL(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldRunbookURL, v))
}

// ChainID applies equality check predicate on the "chain_id" field. It's identical to ChainIDEQ.
func ChainID(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldChainID, v))
}

// CurrentStageIndex applies equality check predicate on the "current_stage_index" field. It's identical to CurrentStageIndexEQ.
func CurrentStageIndex(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// CurrentStageID applies equality check predicate on the "current_stage_id" field. It's identical to CurrentStageIDEQ.
func CurrentStageID(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCurrentStageID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldDeletedAt, v))
}

// AlertDataEQ applies the EQ predicate on the "alert_data" field.
func AlertDataEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertData, v))
}

// AlertDataNEQ applies the NEQ predicate on the "alert_data" field.
func AlertDataNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAlertData, v))
}

// AlertDataIn applies the In predicate on the "alert_data" field.
func AlertDataIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAlertData, vs...))
}

// AlertDataNotIn applies the NotIn predicate on the "alert_data" field.
func AlertDataNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAlertData, vs...))
}

// AlertDataGT applies the GT predicate on the "alert_data" field.
func AlertDataGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAlertData, v))
}

// AlertDataGTE applies the GTE predicate on the "alert_data" field.
func AlertDataGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAlertData, v))
}

// AlertDataLT applies the LT predicate on the "alert_data" field.
func AlertDataLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAlertData, v))
}

// AlertDataLTE applies the LTE predicate on the "alert_data" field.
func AlertDataLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAlertData, v))
}

// AlertDataContains applies the Contains predicate on the "alert_data" field.
func AlertDataContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAlertData, v))
}

// AlertDataHasPrefix applies the HasPrefix predicate on the "alert_data" field.
func AlertDataHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAlertData, v))
}

// AlertDataHasSuffix applies the HasSuffix predicate on the "alert_data" field.
func AlertDataHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAlertData, v))
}

// AlertDataEqualFold applies the EqualFold predicate on the "alert_data" field.
func AlertDataEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAlertData, v))
}

// AlertDataContainsFold applies the ContainsFold predicate on the "alert_data" field.
func AlertDataContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAlertData, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAlertType, vs...))
}

// AlertTypeGT applies the GT predicate on the "alert_type" field.
func AlertTypeGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAlertType, v))
}

// AlertTypeGTE applies the GTE predicate on the "alert_type" field.
func AlertTypeGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAlertType, v))
}

// AlertTypeLT applies the LT predicate on the "alert_type" field.
func AlertTypeLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAlertType, v))
}

// AlertTypeLTE applies the LTE predicate on the "alert_type" field.
func AlertTypeLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAlertType, v))
}

// AlertTypeContains applies the Contains predicate on the "alert_type" field.
func AlertTypeContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAlertType, v))
}

// AlertTypeHasPrefix applies the HasPrefix predicate on the "alert_type" field.
func AlertTypeHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAlertType, v))
}

// AlertTypeHasSuffix applies the HasSuffix predicate on the "alert_type" field.
func AlertTypeHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAlertType, v))
}

// AlertTypeEqualFold applies the EqualFold predicate on the "alert_type" field.
func AlertTypeEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAlertType, v))
}

// AlertTypeContainsFold applies the ContainsFold predicate on the "alert_type" field.
func AlertTypeContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAlertType, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldFingerprint, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FinalAnalysisEQ applies the EQ predicate on the "final_analysis" field.
func FinalAnalysisEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisNEQ applies the NEQ predicate on the "final_analysis" field.
func FinalAnalysisNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisIn applies the In predicate on the "final_analysis" field.
func FinalAnalysisIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisNotIn applies the NotIn predicate on the "final_analysis" field.
func FinalAnalysisNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisGT applies the GT predicate on the "final_analysis" field.
func FinalAnalysisGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldFinalAnalysis, v))
}

// FinalAnalysisGTE applies the GTE predicate on the "final_analysis" field.
func FinalAnalysisGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldFinalAnalysis, v))
}

// FinalAnalysisLT applies the LT predicate on the "final_analysis" field.
func FinalAnalysisLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldFinalAnalysis, v))
}

// FinalAnalysisLTE applies the LTE predicate on the "final_analysis" field.
func FinalAnalysisLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldFinalAnalysis, v))
}

// FinalAnalysisContains applies the Contains predicate on the "final_analysis" field.
func FinalAnalysisContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldFinalAnalysis, v))
}

// FinalAnalysisHasPrefix applies the HasPrefix predicate on the "final_analysis" field.
func FinalAnalysisHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldFinalAnalysis, v))
}

// FinalAnalysisHasSuffix applies the HasSuffix predicate on the "final_analysis" field.
func FinalAnalysisHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldFinalAnalysis, v))
}

// FinalAnalysisIsNil applies the IsNil predicate on the "final_analysis" field.
func FinalAnalysisIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldFinalAnalysis))
}

// FinalAnalysisNotNil applies the NotNil predicate on the "final_analysis" field.
func FinalAnalysisNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldFinalAnalysis))
}

// FinalAnalysisEqualFold applies the EqualFold predicate on the "final_analysis" field.
func FinalAnalysisEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldFinalAnalysis, v))
}

// FinalAnalysisContainsFold applies the ContainsFold predicate on the "final_analysis" field.
func FinalAnalysisContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldFinalAnalysis, v))
}

// PauseMetadataIsNil applies the IsNil predicate on the "pause_metadata" field.
func PauseMetadataIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldPauseMetadata))
}

// PauseMetadataNotNil applies the NotNil predicate on the "pause_metadata" field.
func PauseMetadataNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldPauseMetadata))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAuthor, v))
}

// RunbookURLEQ applies the EQ predicate on the "runbook_url" field.
func RunbookURLEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldRunbookURL, v))
}

// RunbookURLNEQ applies the NEQ predicate on the "runbook_url" field.
func RunbookURLNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldRunbookURL, v))
}

// RunbookURLIn applies the In predicate on the "runbook_url" field.
func RunbookURLIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldRunbookURL, vs...))
}

// RunbookURLNotIn applies the NotIn predicate on the "runbook_url" field.
func RunbookURLNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldRunbookURL, vs...))
}

// RunbookURLGT applies the GT predicate on the "runbook_url" field.
func RunbookURLGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldRunbookURL, v))
}

// RunbookURLGTE applies the GTE predicate on the "runbook_url" field.
func RunbookURLGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldRunbookURL, v))
}

// RunbookURLLT applies the LT predicate on the "runbook_url" field.
func RunbookURLLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldRunbookURL, v))
}

// RunbookURLLTE applies the LTE predicate on the "runbook_url" field.
func RunbookURLLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldRunbookURL, v))
}

// RunbookURLContains applies the Contains predicate on the "runbook_url" field.
func RunbookURLContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldRunbookURL, v))
}

// RunbookURLHasPrefix applies the HasPrefix predicate on the "runbook_url" field.
func RunbookURLHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldRunbookURL, v))
}

// RunbookURLHasSuffix applies the HasSuffix predicate on the "runbook_url" field.
func RunbookURLHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldRunbookURL, v))
}

// RunbookURLIsNil applies the IsNil predicate on the "runbook_url" field.
func RunbookURLIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldRunbookURL))
}

// RunbookURLNotNil applies the NotNil predicate on the "runbook_url" field.
func RunbookURLNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldRunbookURL))
}

// RunbookURLEqualFold applies the EqualFold predicate on the "runbook_url" field.
func RunbookURLEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldRunbookURL, v))
}

// RunbookURLContainsFold applies the ContainsFold predicate on the "runbook_url" field.
func RunbookURLContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldRunbookURL, v))
}

// McpSelectionIsNil applies the IsNil predicate on the "mcp_selection" field.
func McpSelectionIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldMcpSelection))
}

// McpSelectionNotNil applies the NotNil predicate on the "mcp_selection" field.
func McpSelectionNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldMcpSelection))
}

// ChainIDEQ applies the EQ predicate on the "chain_id" field.
func ChainIDEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldChainID, v))
}

// ChainIDNEQ applies the NEQ predicate on the "chain_id" field.
func ChainIDNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldChainID, v))
}

// ChainIDIn applies the In predicate on the "chain_id" field.
func ChainIDIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldChainID, vs...))
}

// ChainIDNotIn applies the NotIn predicate on the "chain_id" field.
func ChainIDNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldChainID, vs...))
}

// ChainIDGT applies the GT predicate on the "chain_id" field.
func ChainIDGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldChainID, v))
}

// ChainIDGTE applies the GTE predicate on the "chain_id" field.
func ChainIDGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldChainID, v))
}

// ChainIDLT applies the LT predicate on the "chain_id" field.
func ChainIDLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldChainID, v))
}

// ChainIDLTE applies the LTE predicate on the "chain_id" field.
func ChainIDLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldChainID, v))
}

// ChainIDContains applies the Contains predicate on the "chain_id" field.
func ChainIDContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldChainID, v))
}

// ChainIDHasPrefix applies the HasPrefix predicate on the "chain_id" field.
func ChainIDHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldChainID, v))
}

// ChainIDHasSuffix applies the HasSuffix predicate on the "chain_id" field.
func ChainIDHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldChainID, v))
}

// ChainIDEqualFold applies the EqualFold predicate on the "chain_id" field.
func ChainIDEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldChainID, v))
}

// ChainIDContainsFold applies the ContainsFold predicate on the "chain_id" field.
func ChainIDContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldChainID, v))
}

// CurrentStageIndexEQ applies the EQ predicate on the "current_stage_index" field.
func CurrentStageIndexEQ(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexNEQ applies the NEQ predicate on the "current_stage_index" field.
func CurrentStageIndexNEQ(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexIn applies the In predicate on the "current_stage_index" field.
func CurrentStageIndexIn(vs ...int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexNotIn applies the NotIn predicate on the "current_stage_index" field.
func CurrentStageIndexNotIn(vs ...int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexGT applies the GT predicate on the "current_stage_index" field.
func CurrentStageIndexGT(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexGTE applies the GTE predicate on the "current_stage_index" field.
func CurrentStageIndexGTE(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLT applies the LT predicate on the "current_stage_index" field.
func CurrentStageIndexLT(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLTE applies the LTE predicate on the "current_stage_index" field.
func CurrentStageIndexLTE(v int) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldCurrentStageIndex, v))
}

// CurrentStageIndexIsNil applies the IsNil predicate on the "current_stage_index" field.
func CurrentStageIndexIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldCurrentStageIndex))
}

// CurrentStageIndexNotNil applies the NotNil predicate on the "current_stage_index" field.
func CurrentStageIndexNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldCurrentStageIndex))
}

// CurrentStageIDEQ applies the EQ predicate on the "current_stage_id" field.
func CurrentStageIDEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCurrentStageID, v))
}

// CurrentStageIDNEQ applies the NEQ predicate on the "current_stage_id" field.
func CurrentStageIDNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldCurrentStageID, v))
}

// CurrentStageIDIn applies the In predicate on the "current_stage_id" field.
func CurrentStageIDIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldCurrentStageID, vs...))
}

// CurrentStageIDNotIn applies the NotIn predicate on the "current_stage_id" field.
func CurrentStageIDNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldCurrentStageID, vs...))
}

// CurrentStageIDGT applies the GT predicate on the "current_stage_id" field.
func CurrentStageIDGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldCurrentStageID, v))
}

// CurrentStageIDGTE applies the GTE predicate on the "current_stage_id" field.
func CurrentStageIDGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldCurrentStageID, v))
}

// CurrentStageIDLT applies the LT predicate on the "current_stage_id" field.
func CurrentStageIDLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldCurrentStageID, v))
}

// CurrentStageIDLTE applies the LTE predicate on the "current_stage_id" field.
func CurrentStageIDLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldCurrentStageID, v))
}

// CurrentStageIDContains applies the Contains predicate on the "current_stage_id" field.
func CurrentStageIDContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldCurrentStageID, v))
}

// CurrentStageIDHasPrefix applies the HasPrefix predicate on the "current_stage_id" field.
func CurrentStageIDHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldCurrentStageID, v))
}

// CurrentStageIDHasSuffix applies the HasSuffix predicate on the "current_stage_id" field.
func CurrentStageIDHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldCurrentStageID, v))
}

// CurrentStageIDIsNil applies the IsNil predicate on the "current_stage_id" field.
func CurrentStageIDIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldCurrentStageID))
}

// CurrentStageIDNotNil applies the NotNil predicate on the "current_stage_id" field.
func CurrentStageIDNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldCurrentStageID))
}

// CurrentStageIDEqualFold applies the EqualFold predicate on the "current_stage_id" field.
func CurrentStageIDEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldCurrentStageID, v))
}

// CurrentStageIDContainsFold applies the ContainsFold predicate on the "current_stage_id" field.
func CurrentStageIDContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldCurrentStageID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasStageExecutions applies the HasEdge predicate on the "stage_executions" edge.
func HasStageExecutions() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageExecutionsWith applies the HasEdge predicate on the "stage_executions" edge with a given conditions (other predicates).
func HasStageExecutionsWith(preds ...predicate.StageExecution) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newStageExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.NotPredicates(p))
}
