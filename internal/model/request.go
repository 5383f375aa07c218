package model

import json "github.com/goccy/go-json"

type AssessmentRequest struct {
	TenantID               string                 `json:"tenant_id"`
	AssessmentInstructions AssessmentInstructions `json:"assessment_instructions"`
}

type AssessmentInstructions struct {
	Events []Event `json:"events"`
}

// Event is a single Portfolio View interaction, replayed in order.
type Event struct {
	EventID         string          `json:"event_id"`
	EventName       string          `json:"event_name"`
	OccurredAt      string          `json:"occurred_at,omitempty"`
	EventProperties json.RawMessage `json:"event_properties,omitempty"`
}

// EvaluateRequest asks for a one-shot evaluation of the two text inputs.
type EvaluateRequest struct {
	RetirementAge string `json:"retirement_age"`
	WealthGoal    string `json:"wealth_goal"`
}
