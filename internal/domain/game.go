package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameState represents the current state of a game instance
type GameState string

const (
	GameStateNotStarted  GameState = "NotStarted"
	GameStateInProgress  GameState = "InProgress"
	GameStateDeal        GameState = "Deal"
	GameStateFinalReveal GameState = "FinalReveal"
)

// Concluded reports whether the state is terminal.
func (s GameState) Concluded() bool {
	return s == GameStateDeal || s == GameStateFinalReveal
}

// Actor identifies who is playing the game instance
type Actor string

const (
	ActorHuman    Actor = "human"
	ActorComputer Actor = "computer"
)

// Recommendation is the advisor's verdict on a pending offer
type Recommendation string

const (
	RecommendationAccept Recommendation = "Accept"
	RecommendationReject Recommendation = "Reject"
)

// Event types
const (
	EventGameStarted   = "GameStarted"
	EventGameConcluded = "GameConcluded"
)

// Game is a snapshot of one game instance as exposed to callers
type Game struct {
	ID             uuid.UUID `json:"id"`
	Actor          Actor     `json:"actor"`
	State          GameState `json:"state"`
	Round          int       `json:"round"`
	PlayerCase     int       `json:"player_case"` // -1 until chosen
	CasesToOpen    int       `json:"cases_to_open"`
	OpenedCases    []int     `json:"opened_cases"`
	HiddenPrizes   []float64 `json:"hidden_prizes"` // sorted descending
	CasesRemaining int       `json:"cases_remaining"`
	CurrentOffer   float64   `json:"current_offer,omitempty"`
	OfferPending   bool      `json:"offer_pending"`
	Payout         float64   `json:"payout,omitempty"`
	PlayerValue    float64   `json:"player_value,omitempty"` // revealed only once concluded
	CreatedAt      time.Time `json:"created_at"`
}

// Reveal is a single opened case and the prize behind it
type Reveal struct {
	CaseID int     `json:"case_id"`
	Value  float64 `json:"value"`
}

// OpenResult reports a batch of openings and the resulting game state
type OpenResult struct {
	Reveals []Reveal `json:"reveals"`
	Game    *Game    `json:"game"`
}

// Advice is the advisor's report for a pending offer
type Advice struct {
	ExpectedValue  float64        `json:"expected_value"`
	StdDeviation   float64        `json:"std_deviation"`
	Offer          float64        `json:"offer"`
	OfferRatio     float64        `json:"offer_ratio"` // offer / expected value
	Recommendation Recommendation `json:"recommendation"`
	Summary        string         `json:"summary"`
}

// GameOutcome describes a concluded game for stats recording
type GameOutcome struct {
	GameID      uuid.UUID `json:"game_id"`
	Actor       Actor     `json:"actor"`
	State       GameState `json:"state"` // Deal or FinalReveal
	Payout      float64   `json:"payout"`
	Rounds      int       `json:"rounds"`
	ConcludedAt time.Time `json:"concluded_at"`
}

// Won reports whether the outcome counts as a win (positive payout).
func (o GameOutcome) Won() bool {
	return o.Payout > 0
}

// GameConcludedPayloadV1 is the typed payload for game concluded events
type GameConcludedPayloadV1 struct {
	GameID    string    `json:"game_id"`
	Actor     string    `json:"actor"`
	State     string    `json:"state"`
	Payout    float64   `json:"payout"`
	Rounds    int       `json:"rounds"`
	Timestamp time.Time `json:"timestamp"`
}
