package game

import (
	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/utils"
)

// prizeCatalog is the fixed set of prize values on the board, $0.01 through
// $1,000,000. Ordered low to high for display; the shuffle decides which case
// hides which value.
var prizeCatalog = []float64{
	0.01, 1, 5, 10, 25, 50, 75, 100, 200, 300,
	400, 500, 750, 1000, 5000, 10000, 25000, 50000,
	75000, 100000, 200000, 300000, 400000, 500000, 750000, 1000000,
}

// PrizeCatalog returns a copy of the prize catalog. It fails with a state
// error if the catalog does not contain exactly TotalCases values; the
// catalog is a constant, so this guards the invariant rather than assuming it.
func PrizeCatalog() ([]float64, error) {
	if len(prizeCatalog) != TotalCases {
		return nil, domain.ErrWrongCatalogSize
	}
	catalog := make([]float64, TotalCases)
	copy(catalog, prizeCatalog)
	return catalog, nil
}

// NewAssignment shuffles the catalog into a uniformly random assignment of
// prize values to case ids using the supplied randomness source.
func NewAssignment(rng utils.RandomSource) ([]float64, error) {
	assignment, err := PrizeCatalog()
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})
	return assignment, nil
}
