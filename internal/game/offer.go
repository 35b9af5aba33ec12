package game

// ComputeOffer returns the banker's buyout offer for the given hidden prize
// distribution and round number. The offer is a round-scaled fraction of the
// mean hidden prize: min(0.9, 0.10 + 0.05*round). Returns 0 when no prizes
// remain.
func ComputeOffer(hiddenPrizes []float64, round int) float64 {
	if len(hiddenPrizes) == 0 {
		return 0
	}

	sum := 0.0
	for _, prize := range hiddenPrizes {
		sum += prize
	}
	mean := sum / float64(len(hiddenPrizes))

	return mean * offerPercentage(round)
}

// offerPercentage is monotonically non-decreasing in round and capped at
// OfferPercentageCap no matter how large round grows.
func offerPercentage(round int) float64 {
	pct := OfferBasePercentage + OfferRoundIncrement*float64(round)
	if pct > OfferPercentageCap {
		return OfferPercentageCap
	}
	return pct
}
