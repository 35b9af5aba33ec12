package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.01, "$0.01"},
		{1, "$1.00"},
		{500, "$500.00"},
		{750, "$750"},
		{1000, "$1,000"},
		{75000.0005, "$75,000"},
		{1000000, "$1,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.value))
	}
}

func TestAdviceSummary(t *testing.T) {
	t.Run("Deal", func(t *testing.T) {
		eval := Evaluate([]float64{100, 200, 300}, 190, 15)
		summary := AdviceSummary(eval, 190)
		assert.Contains(t, summary, "Expected Value: $200.00")
		assert.Contains(t, summary, "Bank Offer: $190.00")
		assert.Contains(t, summary, "Offer vs Expected: 95.0%")
		assert.Contains(t, summary, "RECOMMENDATION: DEAL! The offer is favorable.")
	})

	t.Run("No Deal", func(t *testing.T) {
		eval := Evaluate([]float64{100, 200, 300}, 100, 15)
		summary := AdviceSummary(eval, 100)
		assert.Contains(t, summary, "RECOMMENDATION: NO DEAL! You can likely do better.")
	})

	t.Run("Nothing Left", func(t *testing.T) {
		eval := Evaluation{Recommendation: domain.RecommendationAccept}
		assert.Equal(t, "RECOMMENDATION: DEAL! Accept the offer.", AdviceSummary(eval, 0))
	})
}

func TestPrizeBuckets(t *testing.T) {
	// Input sorted descending the way the board reports it
	hidden := []float64{1000000, 750, 500, 100, 0.01}

	low, high := PrizeBuckets(hidden)

	assert.Equal(t, []string{"$0.01", "$100.00", "$500.00"}, low)
	assert.Equal(t, []string{"$1,000,000", "$750"}, high)
}
