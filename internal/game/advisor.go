package game

import (
	"math"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// Evaluation is the advisor's risk assessment of a pending offer.
type Evaluation struct {
	ExpectedValue  float64
	StdDeviation   float64
	Recommendation domain.Recommendation
}

// Evaluate computes the expected value, dispersion, and a risk-adjusted
// accept/reject recommendation for the given offer. The same function backs
// both the human-facing advice and the scripted player's own decisions, so
// the two paths can never disagree.
//
// The tiers key on casesRemaining: early game demands at least 90% of
// expected value, mid game 85%, and the late game switches to a risk factor
// that weighs the chance of beating the offer against the spread of what is
// left on the board.
func Evaluate(hiddenPrizes []float64, offer float64, casesRemaining int) Evaluation {
	if len(hiddenPrizes) == 0 {
		// Nothing left to gain by waiting.
		return Evaluation{Recommendation: domain.RecommendationAccept}
	}

	ev := mean(hiddenPrizes)
	stdDev := populationStdDev(hiddenPrizes, ev)

	eval := Evaluation{
		ExpectedValue:  ev,
		StdDeviation:   stdDev,
		Recommendation: domain.RecommendationReject,
	}

	switch {
	case casesRemaining > EarlyTierMinCases:
		if offer >= ev*EarlyAcceptRatio {
			eval.Recommendation = domain.RecommendationAccept
		}
	case casesRemaining > LateTierMaxCases:
		if offer >= ev*MidAcceptRatio {
			eval.Recommendation = domain.RecommendationAccept
		}
	default:
		risk := riskFactor(hiddenPrizes, offer, ev, stdDev)
		if risk < RiskFactorThreshold || offer >= ev*LateAcceptRatio {
			eval.Recommendation = domain.RecommendationAccept
		}
	}

	return eval
}

// riskFactor is the late-game heuristic: the fraction of hidden prizes that
// strictly beat the offer, discounted by a normalized dispersion penalty.
func riskFactor(hiddenPrizes []float64, offer, ev, stdDev float64) float64 {
	better := 0
	for _, prize := range hiddenPrizes {
		if prize > offer {
			better++
		}
	}
	probBetter := float64(better) / float64(len(hiddenPrizes))

	return probBetter - RiskAdjustmentWeight*(stdDev/(ev+1))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by count, not count-1. Zero when fewer than two
// values remain.
func populationStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
