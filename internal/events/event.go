package events

import (
	"fmt"

	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

// EventHandler defines the contract for every Portfolio View interaction.
// Validate must not touch state; Apply is only called when Validate
// produced no critical message.
type EventHandler interface {
	Validate(state *model.Assessment, event *model.Event) []model.AssessmentMessage
	Apply(state *model.Assessment, event *model.Event) []model.AssessmentMessage
}

// OverridePolicy decides what an input edit does to a tier the user picked
// on the slider.
type OverridePolicy string

const (
	// PolicyPin keeps a manually chosen tier until the inputs become
	// incomplete, the inputs are cleared or the tier is released.
	PolicyPin OverridePolicy = "pin"
	// PolicyOverwrite recomputes the tier on every input edit, discarding
	// any manual choice.
	PolicyOverwrite OverridePolicy = "overwrite"
)

// ParsePolicy validates a policy name. The empty string selects PolicyPin.
func ParsePolicy(s string) (OverridePolicy, error) {
	switch OverridePolicy(s) {
	case "", PolicyPin:
		return PolicyPin, nil
	case PolicyOverwrite:
		return PolicyOverwrite, nil
	}
	return "", fmt.Errorf("unknown override policy %q (want %q or %q)", s, PolicyPin, PolicyOverwrite)
}

// NewAssessment returns the state of a freshly mounted Portfolio View.
func NewAssessment() model.Assessment {
	return model.Assessment{RiskLevel: int(riskprofile.DefaultTier)}
}

func critical(code, format string, args ...interface{}) model.AssessmentMessage {
	return model.AssessmentMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func warning(code, format string, args ...interface{}) model.AssessmentMessage {
	return model.AssessmentMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// decodeProps unmarshals event properties into v. Missing properties decode
// as an empty object.
func decodeProps(event *model.Event, v interface{}) *model.AssessmentMessage {
	raw := event.EventProperties
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		msg := critical("INVALID_PROPERTIES", "Invalid properties for %s: %v", event.EventName, err)
		return &msg
	}
	return nil
}
