package riskprofile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeTier(t *testing.T) {
	p, err := DescribeTier(0)
	require.NoError(t, err)
	assert.Equal(t, "Very Low Risk", p.Name)
	assert.Equal(t, "1-3%", p.Returns)
	assert.Equal(t, TierVeryLow, p.Level)

	p, err = DescribeTier(4)
	require.NoError(t, err)
	assert.Equal(t, "Very High Risk", p.Name)
	assert.Contains(t, p.Recommendations, "Crypto")
	assert.Equal(t, "10-25%+", p.Returns)
	assert.Equal(t, "7-15+ Yrs", p.Horizon)
}

func TestDescribeTierOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 5, 100} {
		_, err := DescribeTier(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange), "index %d", idx)
	}
}

func TestDescribeTierReturnsCopy(t *testing.T) {
	p, err := DescribeTier(2)
	require.NoError(t, err)
	p.Recommendations[0] = "Lottery Tickets"

	again, err := DescribeTier(2)
	require.NoError(t, err)
	assert.Equal(t, "Index Funds", again.Recommendations[0])
}

func TestTiers(t *testing.T) {
	all := Tiers()
	require.Len(t, all, 5)
	names := []string{"Very Low Risk", "Low Risk", "Medium Risk", "High Risk", "Very High Risk"}
	for i, p := range all {
		assert.Equal(t, Tier(i), p.Level)
		assert.Equal(t, names[i], p.Name)
		assert.NotEmpty(t, p.Recommendations)
		assert.Equal(t, names[i], Tier(i).String())
	}
	assert.Equal(t, "Tier(7)", Tier(7).String())
}
