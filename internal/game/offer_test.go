package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffer(t *testing.T) {
	t.Run("Round One", func(t *testing.T) {
		// mean 500000.0033..., percentage 0.15
		offer := ComputeOffer([]float64{1000000, 500000, 0.01}, 1)
		assert.InDelta(t, 75000.0005, offer, 0.0001)
	})

	t.Run("Empty Board", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeOffer(nil, 3))
		assert.Equal(t, 0.0, ComputeOffer([]float64{}, 3))
	})

	t.Run("Single Prize", func(t *testing.T) {
		offer := ComputeOffer([]float64{1000}, 2)
		assert.InDelta(t, 1000*0.20, offer, 1e-9)
	})

	t.Run("Percentage Grows With Round", func(t *testing.T) {
		prizes := []float64{100, 200, 300}
		prev := 0.0
		for round := 1; round <= 20; round++ {
			offer := ComputeOffer(prizes, round)
			assert.GreaterOrEqual(t, offer, prev, "round %d", round)
			prev = offer
		}
	})

	t.Run("Percentage Capped", func(t *testing.T) {
		prizes := []float64{100, 200, 300}
		capped := 200 * OfferPercentageCap
		assert.InDelta(t, capped, ComputeOffer(prizes, 16), 1e-9)
		assert.InDelta(t, capped, ComputeOffer(prizes, 100), 1e-9)
	})

	t.Run("Never Negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, ComputeOffer([]float64{0.01}, 1), 0.0)
	})
}
