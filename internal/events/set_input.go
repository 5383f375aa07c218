package events

import (
	"strings"

	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

type inputField int

const (
	fieldRetirementAge inputField = iota
	fieldWealthGoal
)

type setInputProps struct {
	Value *string `json:"value"`
}

// setInputHandler stores the raw text of one of the two numeric inputs and
// recomputes the tier, exactly like a keystroke in the Portfolio View.
type setInputHandler struct {
	field  inputField
	policy OverridePolicy
}

func (h *setInputHandler) Validate(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	var props setInputProps
	if msg := decodeProps(event, &props); msg != nil {
		return []model.AssessmentMessage{*msg}
	}
	if props.Value == nil {
		return []model.AssessmentMessage{critical("INVALID_PROPERTIES", "%s requires a value", event.EventName)}
	}
	return nil
}

func (h *setInputHandler) Apply(state *model.Assessment, event *model.Event) []model.AssessmentMessage {
	var props setInputProps
	decodeProps(event, &props)
	text := *props.Value

	var msgs []model.AssessmentMessage
	switch h.field {
	case fieldRetirementAge:
		state.RetirementAge = text
		if strings.TrimSpace(text) != "" && riskprofile.ParseAge(text) == nil {
			msgs = append(msgs, warning("INVALID_RETIREMENT_AGE", "Retirement age %q is not a positive number", text))
		}
	case fieldWealthGoal:
		state.WealthGoal = text
		if strings.TrimSpace(text) != "" && riskprofile.ParseGoal(text) == nil {
			msgs = append(msgs, warning("INVALID_WEALTH_GOAL", "Wealth goal %q is not a positive number", text))
		}
	}

	// Under overwrite, an empty field leaves the tier where it was, just as
	// the form only recomputed when both fields held text.
	if h.policy == PolicyOverwrite && (state.RetirementAge == "" || state.WealthGoal == "") {
		return msgs
	}

	in := riskprofile.ParseInput(state.RetirementAge, state.WealthGoal)
	if state.Pinned && h.policy == PolicyPin {
		if in.Complete() {
			msgs = append(msgs, warning("TIER_PINNED",
				"Risk level %d was chosen manually and is kept; computed level would be %d",
				state.RiskLevel, int(riskprofile.ComputeTier(in))))
			return msgs
		}
		state.Pinned = false
	}
	state.RiskLevel = int(riskprofile.ComputeTier(in))
	return msgs
}
