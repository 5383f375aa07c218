package riskprofile

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AdviceKind tags the variant held by an Advice.
type AdviceKind string

const (
	AdviceInsufficientInput   AdviceKind = "insufficient_input"
	AdviceConservative        AdviceKind = "conservative"
	AdviceMonthlyContribution AdviceKind = "monthly_contribution"
)

const (
	msgInsufficientInput = "Please enter your retirement age and wealth goal"
	msgConservative      = "Consider a conservative portfolio focused on capital preservation"
)

// Advice is the allocation suggestion derived from the inputs. Amount and
// YearsToRetirement are only meaningful for AdviceMonthlyContribution.
type Advice struct {
	Kind              AdviceKind
	Amount            decimal.Decimal
	YearsToRetirement int
}

// AllocationAdvice is ComputeAllocationAdvice against the current calendar
// year.
func AllocationAdvice(in Input) Advice {
	return ComputeAllocationAdvice(in, time.Now().Year())
}

// ComputeAllocationAdvice suggests a monthly contribution that reaches the
// wealth goal by retirement.
//
// The horizon is retirement age minus currentYear. This mixes an age with a
// calendar year and is kept as is for compatibility with existing clients: a
// retirement "age" of 2050 in 2025 yields a 25 year horizon, while any
// realistic age yields a conservative recommendation.
func ComputeAllocationAdvice(in Input, currentYear int) Advice {
	if !in.Complete() {
		return Advice{Kind: AdviceInsufficientInput}
	}

	years := max(0, *in.RetirementAge-currentYear)
	if years <= 0 {
		return Advice{Kind: AdviceConservative}
	}

	months := decimal.NewFromInt(int64(years) * 12)
	return Advice{
		Kind:              AdviceMonthlyContribution,
		Amount:            in.WealthGoal.DivRound(months, 2),
		YearsToRetirement: years,
	}
}

// Message renders the advice for display. The monthly amount is formatted in
// the given ISO 4217 currency; unknown codes fall back to a plain number.
func (a Advice) Message(currency string) string {
	switch a.Kind {
	case AdviceConservative:
		return msgConservative
	case AdviceMonthlyContribution:
		return "Recommended monthly contribution: " + FormatAmount(a.Amount, currency)
	default:
		return msgInsufficientInput
	}
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FormatAmount formats d as money in currency. Amounts whose minor units do
// not fit an int64 are printed as a plain number with the currency code.
func FormatAmount(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return plainAmount(d, currency)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return plainAmount(d, currency)
	}
	return cur.Formatter().Format(minor.IntPart())
}

func plainAmount(d decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", d.StringFixed(2), currency)
}

// KnownCurrency reports whether code is an ISO 4217 currency known to the
// formatter.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
