package riskprofile

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a tier index falls outside [0,4].
var ErrOutOfRange = errors.New("risk tier out of range")

// Tier is one of five risk levels ordered from capital preservation to
// aggressive growth.
type Tier int

const (
	TierVeryLow Tier = iota
	TierLow
	TierMedium
	TierHigh
	TierVeryHigh
)

// DefaultTier is used whenever the inputs are insufficient.
const DefaultTier = TierMedium

// TierProfile is the static display record for a tier.
type TierProfile struct {
	Level           Tier     `json:"level"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
	Returns         string   `json:"returns"`
	Volatility      string   `json:"volatility"`
	Horizon         string   `json:"horizon"`
	Color           string   `json:"color"`
}

var profiles = [...]TierProfile{
	{
		Level:       TierVeryLow,
		Name:        "Very Low Risk",
		Description: "Preserve capital with minimal growth and risk.",
		Recommendations: []string{
			"Money Market Funds",
			"Treasury Bonds",
			"CDs",
			"High-Yield Savings",
		},
		Returns:    "1-3%",
		Volatility: "Very Low",
		Horizon:    "1-2 Yrs",
		Color:      "#10B981",
	},
	{
		Level:       TierLow,
		Name:        "Low Risk",
		Description: "Cautious growth with limited exposure to risk.",
		Recommendations: []string{
			"Government Bonds",
			"Municipal Bonds",
			"Dividend Stocks",
		},
		Returns:    "3-6%",
		Volatility: "Low",
		Horizon:    "2-4 Yrs",
		Color:      "#34D399",
	},
	{
		Level:       TierMedium,
		Name:        "Medium Risk",
		Description: "Balanced growth with moderate volatility.",
		Recommendations: []string{
			"Index Funds",
			"Balanced Funds",
			"Corporate Bonds",
			"REITs",
		},
		Returns:    "6-10%",
		Volatility: "Medium",
		Horizon:    "3-7 Yrs",
		Color:      "#F59E0B",
	},
	{
		Level:           TierHigh,
		Name:            "High Risk",
		Description:     "Higher return potential with increased risk.",
		Recommendations: []string{"Growth Stocks", "Small Caps", "Emerging Markets"},
		Returns:         "8-15%",
		Volatility:      "High",
		Horizon:         "5-10 Yrs",
		Color:           "#F97316",
	},
	{
		Level:           TierVeryHigh,
		Name:            "Very High Risk",
		Description:     "Aggressive strategy with high reward and risk.",
		Recommendations: []string{"Crypto", "Tech Stocks", "Private Equity"},
		Returns:         "10-25%+",
		Volatility:      "Very High",
		Horizon:         "7-15+ Yrs",
		Color:           "#EF4444",
	},
}

// Valid reports whether t is one of the five defined tiers.
func (t Tier) Valid() bool {
	return t >= TierVeryLow && t <= TierVeryHigh
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return profiles[t].Name
}

// ParseTier converts a slider position into a Tier.
func ParseTier(index int) (Tier, error) {
	t := Tier(index)
	if !t.Valid() {
		return 0, fmt.Errorf("tier %d: %w", index, ErrOutOfRange)
	}
	return t, nil
}

// DescribeTier returns the profile of the tier at index. Indexes outside
// [0,4] are a caller bug and fail with ErrOutOfRange; they are never clamped.
func DescribeTier(index int) (TierProfile, error) {
	t, err := ParseTier(index)
	if err != nil {
		return TierProfile{}, err
	}
	return t.Profile(), nil
}

// Profile returns a copy of the tier's profile. t must be valid.
func (t Tier) Profile() TierProfile {
	p := profiles[t]
	p.Recommendations = append([]string(nil), p.Recommendations...)
	return p
}

// Tiers returns all profiles in tier order.
func Tiers() []TierProfile {
	out := make([]TierProfile, 0, len(profiles))
	for i := range profiles {
		out = append(out, Tier(i).Profile())
	}
	return out
}
