package model

// Assessment is the transient state of the Portfolio View's risk form.
type Assessment struct {
	RetirementAge string `json:"retirement_age"`
	WealthGoal    string `json:"wealth_goal"`
	RiskLevel     int    `json:"risk_level"`
	Pinned        bool   `json:"pinned"`
}

// AdviceView is the rendered allocation advice.
type AdviceView struct {
	Kind              string `json:"kind"`
	Message           string `json:"message"`
	MonthlyAmount     string `json:"monthly_amount,omitempty"`
	Currency          string `json:"currency,omitempty"`
	YearsToRetirement int    `json:"years_to_retirement,omitempty"`
}
