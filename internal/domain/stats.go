package domain

// StatsSummary holds the aggregate statistics across all concluded games.
// AverageWinning and WinRate are derived, never stored.
type StatsSummary struct {
	GamesPlayed    int     `json:"games_played"`
	GamesWon       int     `json:"games_won"`
	TotalWinnings  float64 `json:"total_winnings"`
	BestWinning    float64 `json:"best_winning"`
	AverageWinning float64 `json:"average_winning"`
	WinRate        float64 `json:"win_rate"` // percentage, 0-100
}

// Derive fills in the computed fields from the stored ones.
func (s *StatsSummary) Derive() {
	if s.GamesPlayed > 0 {
		s.AverageWinning = s.TotalWinnings / float64(s.GamesPlayed)
		s.WinRate = float64(s.GamesWon) / float64(s.GamesPlayed) * 100
	} else {
		s.AverageWinning = 0
		s.WinRate = 0
	}
}

// Record folds one game outcome into the aggregates.
func (s *StatsSummary) Record(outcome GameOutcome) {
	s.GamesPlayed++
	s.TotalWinnings += outcome.Payout
	if outcome.Payout > s.BestWinning {
		s.BestWinning = outcome.Payout
	}
	if outcome.Won() {
		s.GamesWon++
	}
	s.Derive()
}
