package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPricingBaseline(t *testing.T) {
	t.Parallel()

	got := Pricing(DefaultTable(), "USA", 80)

	require.Equal(t, 16.0, got.Min)
	require.Equal(t, 37.33, got.Max)
	require.Equal(t, 26.67, got.Recommended)
	require.Equal(t, "USD", got.Currency)
}

func TestPricingLocalAdjustment(t *testing.T) {
	t.Parallel()

	// India's 0.9 adjustment applies on top of the score multiplier.
	got := Pricing(DefaultTable(), "India", 75)

	require.Equal(t, 4.5, got.Min)
	require.Equal(t, 13.5, got.Max)
	require.Equal(t, 9.0, got.Recommended)
	require.Equal(t, "INR", got.Currency)
}

func TestPricingMonotonicInScore(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	low := Pricing(table, "Germany", 40)
	high := Pricing(table, "Germany", 90)

	require.Less(t, low.Min, high.Min)
	require.Less(t, low.Max, high.Max)
	require.Less(t, low.Recommended, high.Recommended)
}

func TestPricingUnknownLocationFallsBackToUSA(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	unknown := Pricing(table, "Atlantis", 80)
	usa := Pricing(table, "USA", 80)

	require.Equal(t, usa, unknown)
}

func TestPricingRecommendedBetweenBounds(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	for _, code := range table.Codes() {
		got := Pricing(table, code, 65)
		require.GreaterOrEqual(t, got.Recommended, got.Min, code)
		require.LessOrEqual(t, got.Recommended, got.Max, code)
	}
}
