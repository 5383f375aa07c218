package model

import (
	"risk-engine/internal/jsonpatch"
	"risk-engine/internal/riskprofile"
)

type AssessmentResponse struct {
	AssessmentMetadata AssessmentMetadata `json:"assessment_metadata"`
	AssessmentResult   AssessmentResult   `json:"assessment_result"`
}

type AssessmentMetadata struct {
	AssessmentID          string `json:"assessment_id"`
	TenantID              string `json:"tenant_id"`
	AssessmentStartedAt   string `json:"assessment_started_at"`
	AssessmentCompletedAt string `json:"assessment_completed_at"`
	AssessmentDurationMs  int64  `json:"assessment_duration_ms"`
	AssessmentOutcome     string `json:"assessment_outcome"`
}

type AssessmentResult struct {
	Messages         []AssessmentMessage     `json:"messages"`
	Events           []ProcessedEvent        `json:"events"`
	EndSituation     SituationEnvelope       `json:"end_situation"`
	InitialSituation InitialSituation        `json:"initial_situation"`
	Profile          riskprofile.TierProfile `json:"profile"`
	Advice           AdviceView              `json:"advice"`
}

type ProcessedEvent struct {
	Event                    Event          `json:"event"`
	AssessmentMessageIndexes []int          `json:"assessment_message_indexes,omitempty"`
	ForwardPatch             []jsonpatch.Op `json:"forward_patch_to_situation_after_this_event,omitempty"`
	BackwardPatch            []jsonpatch.Op `json:"backward_patch_to_previous_situation,omitempty"`
}

type SituationEnvelope struct {
	EventID    string     `json:"event_id"`
	EventIndex int        `json:"event_index"`
	OccurredAt string     `json:"occurred_at"`
	Assessment Assessment `json:"assessment"`
}

type InitialSituation struct {
	OccurredAt string     `json:"occurred_at"`
	Assessment Assessment `json:"assessment"`
}

// EvaluateResponse answers an EvaluateRequest.
type EvaluateResponse struct {
	RiskLevel int                     `json:"risk_level"`
	Profile   riskprofile.TierProfile `json:"profile"`
	Advice    AdviceView              `json:"advice"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
