// Package riskprofile maps a retirement age and a wealth goal to a risk tier
// and a monthly contribution suggestion.
//
// Every function in this package is pure and safe for concurrent use.
package riskprofile

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxDigits bounds both the integer and fractional digits of a parsed
// number. Larger inputs are rejected before any arithmetic sees them.
const maxDigits = 64

// maxAge stands in for any retirement age that does not fit an int32.
const maxAge = math.MaxInt32

var (
	maxAgeDecimal = decimal.NewFromInt(maxAge)

	goalVeryHigh = decimal.NewFromInt(1_000_000)
	goalHigh     = decimal.NewFromInt(500_000)
	goalMedium   = decimal.NewFromInt(250_000)
)

// Input holds the two assessment fields. A nil field is unset.
type Input struct {
	RetirementAge *int
	WealthGoal    *decimal.Decimal
}

// ParseInput builds an Input from raw text fields. Empty, non-numeric and
// non-positive values leave the field unset. The age is truncated to whole
// years.
func ParseInput(ageText, goalText string) Input {
	return Input{
		RetirementAge: ParseAge(ageText),
		WealthGoal:    ParseGoal(goalText),
	}
}

// ParseAge parses a retirement age, truncating fractions. It returns nil
// when text is not a positive number. Ages beyond math.MaxInt32 are clamped
// to it so they still compare as old.
func ParseAge(text string) *int {
	d, ok := parsePositive(text)
	if !ok {
		return nil
	}
	if d.GreaterThan(maxAgeDecimal) {
		d = maxAgeDecimal
	}
	age := int(d.IntPart())
	if age <= 0 {
		return nil
	}
	return &age
}

// ParseGoal parses a wealth goal. It returns nil when text is not a
// positive number.
func ParseGoal(text string) *decimal.Decimal {
	d, ok := parsePositive(text)
	if !ok {
		return nil
	}
	return &d
}

// parsePositive rejects text longer than maxDigits characters and numbers
// whose exponent puts more than maxDigits digits on either side of the
// decimal point, so "1e50000000" never reaches big.Int arithmetic.
func parsePositive(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxDigits {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	exp := int64(d.Exponent())
	if exp < -maxDigits || int64(d.NumDigits())+exp > maxDigits {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Complete reports whether both fields are set.
func (in Input) Complete() bool {
	return in.RetirementAge != nil && in.WealthGoal != nil
}

// ComputeTier derives the risk tier from the inputs. Rules are evaluated in
// order and the first match wins; the brackets overlap, so the order is
// part of the contract. Incomplete input yields DefaultTier.
func ComputeTier(in Input) Tier {
	if !in.Complete() {
		return DefaultTier
	}
	age, goal := *in.RetirementAge, *in.WealthGoal

	switch {
	case age < 40 && goal.GreaterThan(goalVeryHigh):
		return TierVeryHigh
	case age < 50 && goal.GreaterThan(goalHigh):
		return TierHigh
	case age < 60 && goal.GreaterThan(goalMedium):
		return TierMedium
	case age >= 60:
		return TierLow
	default:
		return DefaultTier
	}
}
