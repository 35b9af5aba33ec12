package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors (recoverable, surfaced to the actor for re-entry)
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgCaseOutOfRange = "case id out of range"
	ErrMsgCaseReserved   = "cannot open your own case"
	ErrMsgDuplicateCase  = "case selected more than once"
	ErrMsgTooManyCases   = "more cases than the round allows"

	// State errors (caller defect, the game instance is abandoned)
	ErrMsgInvalidState      = "invalid game state"
	ErrMsgCaseAlreadyOpened = "case already opened"
	ErrMsgWrongCatalogSize  = "prize catalog must contain exactly 26 values"
	ErrMsgGameConcluded     = "game already concluded"
	ErrMsgNoCaseChosen      = "no case has been chosen yet"
	ErrMsgCaseAlreadyChosen = "a case has already been chosen"
	ErrMsgNoOfferPending    = "no offer is pending"
	ErrMsgOfferPending      = "an offer is pending a decision"

	// Session errors
	ErrMsgGameNotFound = "game not found"
)

// Common domain errors
// ErrInvalidInput and ErrInvalidState are the two roots of the error taxonomy:
// input errors are recoverable and surfaced to the actor for re-entry, state
// errors indicate a sequencing defect and abandon the game instance. Specific
// errors wrap one of the roots so callers can match either the specific error
// or the whole family with errors.Is.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidState = errors.New(ErrMsgInvalidState)

	// Input errors
	ErrCaseOutOfRange = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgCaseOutOfRange)
	ErrCaseReserved   = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgCaseReserved)
	ErrDuplicateCase  = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgDuplicateCase)
	ErrTooManyCases   = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgTooManyCases)

	// State errors
	ErrCaseAlreadyOpened = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgCaseAlreadyOpened)
	ErrWrongCatalogSize  = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgWrongCatalogSize)
	ErrGameConcluded     = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgGameConcluded)
	ErrNoCaseChosen      = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgNoCaseChosen)
	ErrCaseAlreadyChosen = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgCaseAlreadyChosen)
	ErrNoOfferPending    = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgNoOfferPending)
	ErrOfferPending      = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgOfferPending)

	// Session errors
	ErrGameNotFound = errors.New(ErrMsgGameNotFound)
)
