package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/event"
	"github.com/osse101/BankerBot_Go/internal/logger"
	"github.com/osse101/BankerBot_Go/internal/metrics"
	"github.com/osse101/BankerBot_Go/internal/utils"
)

// Service defines the interface for game operations
type Service interface {
	StartGame(ctx context.Context, actor domain.Actor, seed *int64) (*domain.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	ChooseCase(ctx context.Context, id uuid.UUID, caseID int) (*domain.Game, error)
	OpenCases(ctx context.Context, id uuid.UUID, caseIDs []int) (*domain.OpenResult, error)
	Advice(ctx context.Context, id uuid.UUID) (*domain.Advice, error)
	Decide(ctx context.Context, id uuid.UUID, accept bool) (*domain.Game, error)
	AutoPlay(ctx context.Context, seed *int64) (*domain.Game, error)
}

type service struct {
	registry *Registry
	eventBus event.Bus
	newRNG   func(seed int64) utils.RandomSource
}

// NewService creates a new game service
func NewService(registry *Registry, eventBus event.Bus) Service {
	return &service{
		registry: registry,
		eventBus: eventBus,
		newRNG:   utils.NewSeededSource,
	}
}

// StartGame creates a fresh game instance with a shuffled board. A nil seed
// seeds from the wall clock; an explicit seed makes the whole game
// reproducible.
func (s *service) StartGame(ctx context.Context, actor domain.Actor, seed *int64) (*domain.Game, error) {
	log := logger.FromContext(ctx)

	if actor != domain.ActorHuman && actor != domain.ActorComputer {
		return nil, fmt.Errorf("%w: unknown actor %q", domain.ErrInvalidInput, actor)
	}

	sess, err := s.newSessionFor(actor, seed)
	if err != nil {
		return nil, err
	}

	s.registry.Add(sess)
	metrics.GamesStarted.WithLabelValues(string(actor)).Inc()
	metrics.ActiveSessions.Set(float64(s.registry.Len()))

	if err := s.eventBus.Publish(ctx, event.NewGameStartedEvent(sess.id.String(), string(actor))); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err, "game_id", sess.id)
	}

	log.Info(LogMsgGameStarted, "game_id", sess.id, "actor", actor)
	return sess.snapshot(), nil
}

// GetGame returns a snapshot of the game's current state.
func (s *service) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// ChooseCase reserves the player's case and begins round 1.
func (s *service) ChooseCase(ctx context.Context, id uuid.UUID, caseID int) (*domain.Game, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.chooseCase(caseID); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCaseChosen, "game_id", id, "case", caseID)
	return sess.snapshot(), nil
}

// OpenCases opens a batch of cases within the current round. The whole batch
// is validated before any case opens, so a bad id never leaves a partial
// batch behind.
func (s *service) OpenCases(ctx context.Context, id uuid.UUID, caseIDs []int) (*domain.OpenResult, error) {
	log := logger.FromContext(ctx)

	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireInProgress(); err != nil {
		return nil, err
	}
	if sess.offerPending {
		return nil, domain.ErrOfferPending
	}
	if err := validateBatch(sess, caseIDs); err != nil {
		return nil, err
	}

	reveals := make([]domain.Reveal, 0, len(caseIDs))
	for _, caseID := range caseIDs {
		value, err := sess.openCase(caseID)
		if err != nil {
			// validateBatch already cleared the input; this is a sequencing defect
			return nil, err
		}
		reveals = append(reveals, domain.Reveal{CaseID: caseID, Value: value})
	}

	log.Info(LogMsgCasesOpened, "game_id", id, "count", len(reveals), "round", sess.round)

	sess.maybeAdvance()
	s.observeAdvance(ctx, sess)

	return &domain.OpenResult{Reveals: reveals, Game: sess.snapshot()}, nil
}

// validateBatch checks every id of a batch up front: range, the reserved
// case, already-open cases, duplicates within the batch, and batch size.
// All failures here are input errors the actor can correct and resubmit.
func validateBatch(sess *session, caseIDs []int) error {
	if len(caseIDs) == 0 {
		return fmt.Errorf("%w: no cases given", domain.ErrInvalidInput)
	}
	if len(caseIDs) > sess.toOpen {
		return fmt.Errorf("%w: %d given, %d allowed", domain.ErrTooManyCases, len(caseIDs), sess.toOpen)
	}

	seen := make(map[int]bool, len(caseIDs))
	for _, caseID := range caseIDs {
		if caseID < 0 || caseID >= TotalCases {
			return fmt.Errorf("%w: %d", domain.ErrCaseOutOfRange, caseID)
		}
		if caseID == sess.playerCase {
			return fmt.Errorf("%w: %d", domain.ErrCaseReserved, caseID)
		}
		if sess.board.IsOpened(caseID) {
			return fmt.Errorf("%w: case %d already opened", domain.ErrInvalidInput, caseID)
		}
		if seen[caseID] {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateCase, caseID)
		}
		seen[caseID] = true
	}
	return nil
}

// Advice evaluates the pending offer for the player. Advisory for a human,
// and the same arithmetic the scripted player acts on.
func (s *service) Advice(ctx context.Context, id uuid.UUID) (*domain.Advice, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireInProgress(); err != nil {
		return nil, err
	}
	if !sess.offerPending {
		return nil, domain.ErrNoOfferPending
	}

	hidden := sess.board.HiddenPrizes()
	eval := Evaluate(hidden, sess.offer, sess.board.RemainingCount())

	advice := &domain.Advice{
		ExpectedValue:  eval.ExpectedValue,
		StdDeviation:   eval.StdDeviation,
		Offer:          sess.offer,
		Recommendation: eval.Recommendation,
		Summary:        AdviceSummary(eval, sess.offer),
	}
	if eval.ExpectedValue > 0 {
		advice.OfferRatio = sess.offer / eval.ExpectedValue
	}
	return advice, nil
}

// Decide resolves the pending offer: Deal concludes the game with the offer
// as payout, No Deal advances to the next round.
func (s *service) Decide(ctx context.Context, id uuid.UUID, accept bool) (*domain.Game, error) {
	log := logger.FromContext(ctx)

	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.decide(accept); err != nil {
		return nil, err
	}

	if accept {
		log.Info(LogMsgDealAccepted, "game_id", id, "payout", sess.payout)
	} else {
		log.Info(LogMsgDealRejected, "game_id", id, "round", sess.round)
	}

	s.observeAdvance(ctx, sess)
	return sess.snapshot(), nil
}

// AutoPlay runs one complete game with the scripted player: it reserves a
// random case, opens the scheduled batches via the selection policy, and
// accepts or rejects offers on the advisor's recommendation alone.
func (s *service) AutoPlay(ctx context.Context, seed *int64) (*domain.Game, error) {
	log := logger.FromContext(ctx)

	sess, err := s.newSessionFor(domain.ActorComputer, seed)
	if err != nil {
		return nil, err
	}

	s.registry.Add(sess)
	metrics.GamesStarted.WithLabelValues(string(domain.ActorComputer)).Inc()
	metrics.ActiveSessions.Set(float64(s.registry.Len()))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.chooseCase(sess.rng.Intn(TotalCases)); err != nil {
		return nil, err
	}
	log.Info(LogMsgGameStarted, "game_id", sess.id, "actor", domain.ActorComputer, "case", sess.playerCase)

	for sess.state == domain.GameStateInProgress {
		// The policy samples from all unopened cases; excluding the reserved
		// case is this caller's job, so a round can open one short of its
		// scheduled count.
		selected := SelectCasesToOpen(sess.board.OpenedSet(), sess.toOpen, sess.rng)
		for _, caseID := range selected {
			if caseID == sess.playerCase {
				continue
			}
			if _, err := sess.openCase(caseID); err != nil {
				return nil, err
			}
		}
		sess.forceBatchComplete()
		s.observeAdvance(ctx, sess)

		if !sess.offerPending {
			continue
		}

		eval := Evaluate(sess.board.HiddenPrizes(), sess.offer, sess.board.RemainingCount())
		accept := eval.Recommendation == domain.RecommendationAccept
		if err := sess.decide(accept); err != nil {
			return nil, err
		}
		log.Debug(LogMsgOfferComputed, "game_id", sess.id, "offer", sess.offer, "accepted", accept)
		s.observeAdvance(ctx, sess)
	}

	return sess.snapshot(), nil
}

// newSessionFor builds a session with a seeded or wall-clock random source.
func (s *service) newSessionFor(actor domain.Actor, seed *int64) (*session, error) {
	var rng utils.RandomSource
	if seed != nil {
		rng = s.newRNG(*seed)
	} else {
		rng = utils.NewTimeSource()
	}
	return newSession(actor, rng)
}

// observeAdvance records metrics and publishes events for whatever the last
// transition produced: a fresh offer or a concluded game. Callers hold the
// session lock.
func (s *service) observeAdvance(ctx context.Context, sess *session) {
	log := logger.FromContext(ctx)

	if sess.offerPending {
		metrics.OffersComputed.Inc()
		metrics.OfferAmounts.Observe(sess.offer)
		log.Info(LogMsgOfferComputed, "game_id", sess.id, "offer", sess.offer, "round", sess.round)
		return
	}

	if sess.state.Concluded() && !sess.recorded {
		sess.recorded = true
		outcome := sess.outcome()
		if err := s.eventBus.Publish(ctx, event.NewGameConcludedEvent(outcome)); err != nil {
			// Stats trouble never fails the game
			log.Warn(LogMsgPublishFailed, "error", err, "game_id", sess.id)
		}
		log.Info(LogMsgGameConcluded,
			"game_id", sess.id,
			"state", sess.state,
			"payout", sess.payout,
			"rounds", sess.round)
	}
}
