package game

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// printer formats dollar amounts with thousands separators for the advisor
// report and the prize board.
var printer = message.NewPrinter(language.English)

// FormatMoney renders a prize or offer as a dollar amount. Whole-dollar
// prizes above the low/high boundary drop the cents, matching the board
// display convention.
func FormatMoney(value float64) string {
	if value > HighPrizeBoundary {
		return printer.Sprintf("$%.0f", value)
	}
	return printer.Sprintf("$%.2f", value)
}

// AdviceSummary renders the advisor's report for a pending offer as
// human-readable text.
func AdviceSummary(eval Evaluation, offer float64) string {
	var b strings.Builder

	if eval.ExpectedValue <= 0 {
		b.WriteString("RECOMMENDATION: DEAL! Accept the offer.")
		return b.String()
	}

	printer.Fprintf(&b, "Expected Value: %s\n", FormatMoney(eval.ExpectedValue))
	printer.Fprintf(&b, "Bank Offer: %s\n", FormatMoney(offer))
	printer.Fprintf(&b, "Offer vs Expected: %.1f%%\n", offer/eval.ExpectedValue*100)
	printer.Fprintf(&b, "Risk Level: %.1f%%\n", eval.StdDeviation/eval.ExpectedValue*100)

	if eval.Recommendation == domain.RecommendationAccept {
		b.WriteString("RECOMMENDATION: DEAL! The offer is favorable.")
	} else {
		b.WriteString("RECOMMENDATION: NO DEAL! You can likely do better.")
	}
	return b.String()
}

// PrizeBuckets splits the hidden prizes into low and high groups around the
// display boundary. Input is sorted descending; the low bucket is returned
// ascending the way the board prints it.
func PrizeBuckets(hiddenPrizes []float64) (low, high []string) {
	for _, prize := range hiddenPrizes {
		if prize > HighPrizeBoundary {
			high = append(high, FormatMoney(prize))
		}
	}
	for i := len(hiddenPrizes) - 1; i >= 0; i-- {
		if hiddenPrizes[i] <= HighPrizeBoundary {
			low = append(low, FormatMoney(hiddenPrizes[i]))
		}
	}
	return low, high
}
