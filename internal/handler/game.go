package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/game"
	"github.com/osse101/BankerBot_Go/internal/logger"
)

type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

type StartGameRequest struct {
	Actor string `json:"actor" validate:"required,actor"`
	Seed  *int64 `json:"seed,omitempty"`
}

func (h *GameHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
		return
	}

	g, err := h.service.StartGame(r.Context(), domain.Actor(req.Actor), req.Seed)
	if err != nil {
		respondServiceError(w, r, "start game", err)
		return
	}

	respondJSON(w, http.StatusCreated, g)
}

func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	g, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "get game", err)
		return
	}

	respondJSON(w, http.StatusOK, g)
}

type ChooseCaseRequest struct {
	Case *int `json:"case" validate:"required,min=0,max=25"`
}

func (h *GameHandler) HandleChooseCase(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	var req ChooseCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Choose case"); err != nil {
		return
	}

	g, err := h.service.ChooseCase(r.Context(), gameID, *req.Case)
	if err != nil {
		respondServiceError(w, r, "choose case", err)
		return
	}

	respondJSON(w, http.StatusOK, g)
}

type OpenCasesRequest struct {
	Cases []int `json:"cases" validate:"required,min=1,dive,min=0,max=25"`
}

func (h *GameHandler) HandleOpenCases(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	var req OpenCasesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open cases"); err != nil {
		return
	}

	result, err := h.service.OpenCases(r.Context(), gameID, req.Cases)
	if err != nil {
		respondServiceError(w, r, "open cases", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// OfferResponse reports the banker's current offer for a game
type OfferResponse struct {
	GameID       string  `json:"game_id"`
	Round        int     `json:"round"`
	Offer        float64 `json:"offer"`
	OfferPending bool    `json:"offer_pending"`
	Display      string  `json:"display"`
}

func (h *GameHandler) HandleGetOffer(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	g, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "get offer", err)
		return
	}

	respondJSON(w, http.StatusOK, OfferResponse{
		GameID:       g.ID.String(),
		Round:        g.Round,
		Offer:        g.CurrentOffer,
		OfferPending: g.OfferPending,
		Display:      game.FormatMoney(g.CurrentOffer),
	})
}

func (h *GameHandler) HandleGetAdvice(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	advice, err := h.service.Advice(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "get advice", err)
		return
	}

	respondJSON(w, http.StatusOK, advice)
}

type DecideRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

func (h *GameHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	var req DecideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Decide"); err != nil {
		return
	}

	g, err := h.service.Decide(r.Context(), gameID, *req.Accept)
	if err != nil {
		respondServiceError(w, r, "decide", err)
		return
	}

	respondJSON(w, http.StatusOK, g)
}

// HandleAutoPlay runs a full computer-driven game. The optional seed query
// parameter makes the run reproducible.
func (h *GameHandler) HandleAutoPlay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var seed *int64
	if seedStr := GetOptionalQueryParam(r, "seed", ""); seedStr != "" {
		parsed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			log.Warn("Invalid seed parameter", "seed", seedStr)
			http.Error(w, ErrMsgInvalidSeed, http.StatusBadRequest)
			return
		}
		seed = &parsed
	}

	g, err := h.service.AutoPlay(r.Context(), seed)
	if err != nil {
		respondServiceError(w, r, "auto play", err)
		return
	}

	respondJSON(w, http.StatusCreated, g)
}

// BoardResponse is the display-oriented view of a game board: which cases
// are open and the hidden prizes split into low and high buckets.
type BoardResponse struct {
	GameID         string   `json:"game_id"`
	State          string   `json:"state"`
	Round          int      `json:"round"`
	OpenedCases    []int    `json:"opened_cases"`
	CasesRemaining int      `json:"cases_remaining"`
	LowPrizes      []string `json:"low_prizes"`
	HighPrizes     []string `json:"high_prizes"`
}

func (h *GameHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFromQuery(w, r)
	if !ok {
		return
	}

	g, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "get board", err)
		return
	}

	low, high := game.PrizeBuckets(g.HiddenPrizes)

	respondJSON(w, http.StatusOK, BoardResponse{
		GameID:         g.ID.String(),
		State:          string(g.State),
		Round:          g.Round,
		OpenedCases:    g.OpenedCases,
		CasesRemaining: g.CasesRemaining,
		LowPrizes:      low,
		HighPrizes:     high,
	})
}

// gameIDFromQuery extracts and parses the required id query parameter
func gameIDFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	gameID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidGameID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return gameID, true
}
