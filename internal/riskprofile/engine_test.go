package riskprofile

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTier(t *testing.T) {
	tests := []struct {
		name string
		age  string
		goal string
		want Tier
	}{
		{"young with large goal", "35", "1500000", TierVeryHigh},
		{"middle age with significant goal", "45", "600000", TierHigh},
		{"approaching retirement", "55", "300000", TierMedium},
		{"at retirement age", "65", "100000", TierLow},
		{"young with small goal falls through", "30", "100000", TierMedium},
		{"young with mid goal hits second rule", "35", "600000", TierHigh},
		{"goal exactly at threshold is not above it", "35", "1000000", TierHigh},
		{"fractional goal above threshold", "35", "1000000.01", TierVeryHigh},
		{"age 60 is low even with large goal", "60", "5000000", TierLow},
		{"age above 120 is evaluated as given", "130", "100", TierLow},
		{"fractional age truncates", "39.9", "2000000", TierVeryHigh},
		{"whitespace is ignored", " 45 ", " 600000 ", TierHigh},
		{"age past int64 is clamped, not wrapped", "18446744073709551656", "2000000", TierLow},
		{"age past int64 near a young wrap", "18446744073709551651", "2000000", TierLow},
		{"age in exponent form", "1e30", "2000000", TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTier(ParseInput(tt.age, tt.goal)))
		})
	}
}

func TestComputeTierInsufficientInput(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"45", ""},
		{"", "600000"},
		{"abc", "600000"},
		{"45", "lots"},
		{"-5", "2000000"},
		{"0", "2000000"},
		{"0.5", "2000000"},
		{"35", "-1500000"},
		{"35", "0"},
		{"35", "1e50000000"},
		{"35", "1e-50000000"},
		{"1e50000000", "2000000"},
	}
	for _, p := range pairs {
		assert.Equal(t, DefaultTier, ComputeTier(ParseInput(p[0], p[1])), "age=%q goal=%q", p[0], p[1])
	}
	assert.Equal(t, TierMedium, ComputeTier(Input{}))
}

func TestComputeTierIsIdempotent(t *testing.T) {
	in := ParseInput("45", "600000")
	first := ComputeTier(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTier(in))
	}
}

func TestComputeTierAlwaysInRange(t *testing.T) {
	for age := -10; age <= 150; age += 7 {
		for _, goal := range []int64{-1, 1, 250_001, 500_001, 1_000_001, 50_000_000} {
			a := age
			g := decimal.NewFromInt(goal)
			tier := ComputeTier(Input{RetirementAge: &a, WealthGoal: &g})
			assert.True(t, tier.Valid(), "age=%d goal=%d tier=%d", age, goal, tier)
		}
	}
}

func TestParseInput(t *testing.T) {
	in := ParseInput("45.7", "1234.56")
	require.NotNil(t, in.RetirementAge)
	require.NotNil(t, in.WealthGoal)
	assert.Equal(t, 45, *in.RetirementAge)
	assert.Equal(t, "1234.56", in.WealthGoal.String())
	assert.True(t, in.Complete())

	in = ParseInput("45", "")
	assert.NotNil(t, in.RetirementAge)
	assert.Nil(t, in.WealthGoal)
	assert.False(t, in.Complete())
}

func TestParseAgeClampsHugeValues(t *testing.T) {
	age := ParseAge("18446744073709551656")
	require.NotNil(t, age)
	assert.Equal(t, math.MaxInt32, *age)

	age = ParseAge("2147483647")
	require.NotNil(t, age)
	assert.Equal(t, math.MaxInt32, *age)
}

func TestParseGoalRejectsOversizedNumbers(t *testing.T) {
	for _, text := range []string{
		"1e50000000",
		"1e-50000000",
		"1e65",
		"0.1e-64",
		strings.Repeat("9", 65),
	} {
		start := time.Now()
		assert.Nil(t, ParseGoal(text), text)
		assert.Less(t, time.Since(start), time.Second, text)
	}

	goal := ParseGoal("1e25")
	require.NotNil(t, goal)
	assert.Equal(t, "10000000000000000000000000", goal.String())
	assert.NotNil(t, ParseGoal(strings.Repeat("9", 64)))
}
