package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/utils"
)

// RoundSchedule is the fixed number of cases opened in each round. Rejecting
// every offer opens 24 cases, leaving the player's case and one other for the
// final reveal.
var RoundSchedule = []int{6, 5, 4, 3, 2, 1, 1, 1, 1}

// session is the state machine for one game instance:
// NotStarted -> InProgress(round N) -> Deal | FinalReveal.
// All transitions go through the methods below; the service serializes access
// through mu.
type session struct {
	mu sync.Mutex

	id         uuid.UUID
	actor      domain.Actor
	board      *Board
	rng        utils.RandomSource
	state      domain.GameState
	playerCase int

	round       int // 1-based once play starts
	scheduleIdx int
	toOpen      int // cases left to open in the current round's batch

	offer        float64
	offerPending bool

	payout      float64
	recorded    bool // outcome published, guards double-recording
	createdAt   time.Time
	concludedAt time.Time
}

func newSession(actor domain.Actor, rng utils.RandomSource) (*session, error) {
	board, err := NewBoard(rng)
	if err != nil {
		return nil, err
	}
	return &session{
		id:         uuid.New(),
		actor:      actor,
		board:      board,
		rng:        rng,
		state:      domain.GameStateNotStarted,
		playerCase: NoCase,
		createdAt:  time.Now(),
	}, nil
}

// chooseCase reserves the player's case and starts round 1.
func (s *session) chooseCase(id int) error {
	if s.state != domain.GameStateNotStarted {
		if s.state.Concluded() {
			return domain.ErrGameConcluded
		}
		return domain.ErrCaseAlreadyChosen
	}
	if id < 0 || id >= TotalCases {
		return fmt.Errorf("%w: %d", domain.ErrCaseOutOfRange, id)
	}

	s.playerCase = id
	s.state = domain.GameStateInProgress
	s.round = 1
	s.scheduleIdx = 0
	s.toOpen = RoundSchedule[0]
	return nil
}

// openCase opens a single case within the current round's batch.
func (s *session) openCase(id int) (float64, error) {
	if err := s.requireInProgress(); err != nil {
		return 0, err
	}
	if s.offerPending {
		return 0, domain.ErrOfferPending
	}
	if id == s.playerCase {
		return 0, fmt.Errorf("%w: %d", domain.ErrCaseReserved, id)
	}

	value, err := s.board.OpenCase(id)
	if err != nil {
		return 0, err
	}
	s.toOpen--
	return value, nil
}

// maybeAdvance moves the machine forward after openings: a board down to the
// player's last case concludes with the final reveal without an offer, and a
// completed batch produces the round's offer.
func (s *session) maybeAdvance() {
	if s.state != domain.GameStateInProgress {
		return
	}
	if s.board.RemainingCount() <= 1 {
		s.concludeFinalReveal()
		return
	}
	if s.toOpen <= 0 {
		s.offer = ComputeOffer(s.board.HiddenPrizes(), s.round)
		s.offerPending = true
	}
}

// forceBatchComplete ends the round's opening phase even if fewer cases were
// opened than scheduled. The scripted player hits this when the random sample
// included its own reserved case and the caller filtered it out.
func (s *session) forceBatchComplete() {
	s.toOpen = 0
	s.maybeAdvance()
}

// decide resolves a pending offer. Accepting concludes with the offer as
// payout; rejecting advances to the next scheduled round, or to the final
// reveal when the schedule is exhausted.
func (s *session) decide(accept bool) error {
	if err := s.requireInProgress(); err != nil {
		return err
	}
	if !s.offerPending {
		return domain.ErrNoOfferPending
	}

	if accept {
		s.payout = s.offer
		s.conclude(domain.GameStateDeal)
		return nil
	}

	s.offerPending = false
	s.round++
	s.scheduleIdx++
	if s.scheduleIdx >= len(RoundSchedule) {
		s.concludeFinalReveal()
		return nil
	}
	s.toOpen = RoundSchedule[s.scheduleIdx]
	return nil
}

func (s *session) concludeFinalReveal() {
	// playerCase is valid whenever the game is in progress
	s.payout, _ = s.board.CaseValue(s.playerCase)
	s.conclude(domain.GameStateFinalReveal)
}

func (s *session) conclude(state domain.GameState) {
	s.state = state
	s.offerPending = false
	s.concludedAt = time.Now()
}

func (s *session) requireInProgress() error {
	switch {
	case s.state == domain.GameStateNotStarted:
		return domain.ErrNoCaseChosen
	case s.state.Concluded():
		return domain.ErrGameConcluded
	}
	return nil
}

// snapshot renders the session as a caller-facing Game.
func (s *session) snapshot() *domain.Game {
	g := &domain.Game{
		ID:             s.id,
		Actor:          s.actor,
		State:          s.state,
		Round:          s.round,
		PlayerCase:     s.playerCase,
		CasesToOpen:    s.toOpen,
		OpenedCases:    s.board.OpenedCases(),
		HiddenPrizes:   s.board.HiddenPrizes(),
		CasesRemaining: s.board.RemainingCount(),
		OfferPending:   s.offerPending,
		CreatedAt:      s.createdAt,
	}
	if s.offerPending {
		g.CurrentOffer = s.offer
	}
	if s.state.Concluded() {
		g.Payout = s.payout
		g.PlayerValue, _ = s.board.CaseValue(s.playerCase)
	}
	return g
}

// outcome reports the concluded game for stats recording.
func (s *session) outcome() domain.GameOutcome {
	return domain.GameOutcome{
		GameID:      s.id,
		Actor:       s.actor,
		State:       s.state,
		Payout:      s.payout,
		Rounds:      s.round,
		ConcludedAt: s.concludedAt,
	}
}
