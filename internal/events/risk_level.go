package events

import (
	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

type setRiskLevelProps struct {
	Level *int `json:"level"`
}

// SetRiskLevelHandler moves the slider directly.
type SetRiskLevelHandler struct {
	policy OverridePolicy
}

func (h *SetRiskLevelHandler) Validate(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	var props setRiskLevelProps
	if msg := decodeProps(event, &props); msg != nil {
		return []model.AssessmentMessage{*msg}
	}
	if props.Level == nil {
		return []model.AssessmentMessage{critical("INVALID_PROPERTIES", "set_risk_level requires a level")}
	}
	if _, err := riskprofile.ParseTier(*props.Level); err != nil {
		return []model.AssessmentMessage{critical("OUT_OF_RANGE", "Risk level %d is outside 0..4", *props.Level)}
	}
	return nil
}

func (h *SetRiskLevelHandler) Apply(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	var props setRiskLevelProps
	decodeProps(event, &props)

	state.RiskLevel = *props.Level
	state.Pinned = h.policy == PolicyPin
	return nil
}

// ReleaseRiskLevelHandler drops a manual choice and goes back to the
// computed tier.
type ReleaseRiskLevelHandler struct{}

func (h *ReleaseRiskLevelHandler) Validate(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	return nil
}

func (h *ReleaseRiskLevelHandler) Apply(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	state.Pinned = false
	state.RiskLevel = int(riskprofile.ComputeTier(riskprofile.ParseInput(state.RetirementAge, state.WealthGoal)))
	return nil
}

// ClearInputsHandler resets the form as if the view was remounted.
type ClearInputsHandler struct{}

func (h *ClearInputsHandler) Validate(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	return nil
}

func (h *ClearInputsHandler) Apply(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	*state = NewAssessment()
	return nil
}
