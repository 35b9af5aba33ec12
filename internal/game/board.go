package game

import (
	"fmt"
	"sort"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/utils"
)

// Board tracks which cases have been opened and derives the hidden prize
// distribution on demand. Opened cases never reclose within one game.
type Board struct {
	assignment []float64
	opened     [TotalCases]bool
	openedIDs  []int
}

// NewBoard shuffles a fresh prize assignment and returns a board with all
// cases closed.
func NewBoard(rng utils.RandomSource) (*Board, error) {
	assignment, err := NewAssignment(rng)
	if err != nil {
		return nil, err
	}
	return &Board{assignment: assignment}, nil
}

// OpenCase marks a case open and returns the prize value it held.
// Fails without mutating state if the id is out of range or already open.
func (b *Board) OpenCase(id int) (float64, error) {
	if id < 0 || id >= TotalCases {
		return 0, fmt.Errorf("%w: %d", domain.ErrCaseOutOfRange, id)
	}
	if b.opened[id] {
		return 0, fmt.Errorf("%w: %d", domain.ErrCaseAlreadyOpened, id)
	}
	b.opened[id] = true
	b.openedIDs = append(b.openedIDs, id)
	return b.assignment[id], nil
}

// IsOpened reports whether the case has been opened. Out-of-range ids report false.
func (b *Board) IsOpened(id int) bool {
	return id >= 0 && id < TotalCases && b.opened[id]
}

// CaseValue returns the prize behind a case without opening it.
func (b *Board) CaseValue(id int) (float64, error) {
	if id < 0 || id >= TotalCases {
		return 0, fmt.Errorf("%w: %d", domain.ErrCaseOutOfRange, id)
	}
	return b.assignment[id], nil
}

// HiddenPrizes returns the prize values of all unopened cases, sorted
// descending. The player's own case counts as hidden until the final reveal.
// The ordering matters to the display's low/high bucketing; the sum and mean
// do not depend on it.
func (b *Board) HiddenPrizes() []float64 {
	hidden := make([]float64, 0, TotalCases-len(b.openedIDs))
	for id := 0; id < TotalCases; id++ {
		if !b.opened[id] {
			hidden = append(hidden, b.assignment[id])
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(hidden)))
	return hidden
}

// RemainingCount returns the number of unopened cases.
func (b *Board) RemainingCount() int {
	return TotalCases - len(b.openedIDs)
}

// OpenedCases returns the ids of all opened cases in opening order.
func (b *Board) OpenedCases() []int {
	out := make([]int, len(b.openedIDs))
	copy(out, b.openedIDs)
	return out
}

// OpenedSet returns the opened-set as a boolean slice indexed by case id.
func (b *Board) OpenedSet() []bool {
	set := make([]bool, TotalCases)
	copy(set, b.opened[:])
	return set
}
