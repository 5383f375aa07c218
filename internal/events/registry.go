package events

// Registry maps event names to their handlers. A Registry is immutable
// once built and safe for concurrent use.
type Registry struct {
	policy   OverridePolicy
	handlers map[string]EventHandler
}

// NewRegistry builds the handler set for the given override policy.
func NewRegistry(policy OverridePolicy) *Registry {
	return &Registry{
		policy: policy,
		handlers: map[string]EventHandler{
			"set_retirement_age": &setInputHandler{field: fieldRetirementAge, policy: policy},
			"set_wealth_goal":    &setInputHandler{field: fieldWealthGoal, policy: policy},
			"set_risk_level":     &SetRiskLevelHandler{policy: policy},
			"release_risk_level": &ReleaseRiskLevelHandler{},
			"clear_inputs":       &ClearInputsHandler{},
		},
	}
}

func (r *Registry) Get(name string) (EventHandler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Policy() OverridePolicy {
	return r.policy
}
