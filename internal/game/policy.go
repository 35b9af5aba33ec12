package game

import (
	"github.com/osse101/BankerBot_Go/internal/utils"
)

// SelectCasesToOpen picks a uniformly random sample, without replacement, of
// count distinct unopened case ids (or fewer if fewer remain). The result
// never contains an opened case or a duplicate.
//
// The policy does not know whose case is reserved: the caller filters the
// reserved case out of the result before applying it, matching the rule that
// the player's case stays in the hidden pool until the final reveal.
func SelectCasesToOpen(openedSet []bool, count int, rng utils.RandomSource) []int {
	available := make([]int, 0, len(openedSet))
	for id, opened := range openedSet {
		if !opened {
			available = append(available, id)
		}
	}

	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	if count > len(available) {
		count = len(available)
	}
	if count < 0 {
		count = 0
	}
	return available[:count]
}
