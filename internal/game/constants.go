package game

// TotalCases is the number of cases on the board.
const TotalCases = 26

// NoCase marks the player's case before one has been chosen.
const NoCase = -1

// Offer schedule parameters. The banker starts at 15% of the mean in round 1
// and climbs 5 points per round, capped below the true expected value so that
// blind acceptance stays suboptimal.
const (
	OfferBasePercentage = 0.10
	OfferRoundIncrement = 0.05
	OfferPercentageCap  = 0.90
)

// Advisor tier boundaries, keyed on how many cases remain hidden.
const (
	EarlyTierMinCases = 10 // early tier: casesRemaining > 10
	LateTierMaxCases  = 5  // late tier: casesRemaining <= 5
)

// Advisor accept thresholds as a fraction of expected value.
const (
	EarlyAcceptRatio = 0.90
	MidAcceptRatio   = 0.85
	LateAcceptRatio  = 0.80
)

// Late-tier risk heuristic parameters.
const (
	RiskAdjustmentWeight = 0.3
	RiskFactorThreshold  = 0.4
)

// HighPrizeBoundary splits the board display into low and high buckets.
const HighPrizeBoundary = 500.0

// Log message constants
const (
	LogMsgGameStarted    = "Game started"
	LogMsgCaseChosen     = "Player case chosen"
	LogMsgCasesOpened    = "Cases opened"
	LogMsgOfferComputed  = "Banker offer computed"
	LogMsgDealAccepted   = "Deal accepted"
	LogMsgDealRejected   = "Deal rejected"
	LogMsgGameConcluded  = "Game concluded"
	LogMsgSessionEvicted = "Game session evicted before conclusion"
	LogMsgPublishFailed  = "Failed to publish game event"
)
