// Package sequence builds the per-round challenge: a working subset of a
// symbol catalog and a random ordering that covers every chosen symbol.
package sequence

import (
	"math/rand"

	"github.com/josephtungate/mesmerise/symbol"
)

// ChooseRandomSymbols selects k distinct symbols from the catalog without
// replacement using a partial Fisher-Yates shuffle over an index array. The
// returned slice holds references into the catalog, not copies, so the
// catalog must outlive it. k is clamped to [0, len(catalog)].
func ChooseRandomSymbols(rng *rand.Rand, catalog symbol.Catalog, k int) []*symbol.Symbol {
	n := len(catalog)
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	chosen := make([]*symbol.Symbol, k)
	for i := 0; i < k; i++ {
		chosen[i] = &catalog[idx[i]]
	}
	return chosen
}

// Generate draws length symbols independently and uniformly with replacement
// from the chosen subset, rejecting and redrawing the whole sequence until
// every chosen symbol appears at least once.
//
// The rejection loop has no iteration cap. It terminates with probability 1,
// and for the valid parameter space (len(chosen) <= length, both small) it
// converges almost immediately; capping it would skew the output
// distribution. Precondition: 0 < len(chosen) <= length.
func Generate(rng *rand.Rand, chosen []*symbol.Symbol, length int) []*symbol.Symbol {
	k := len(chosen)
	if k == 0 || length < k {
		return nil
	}

	seq := make([]*symbol.Symbol, length)
	for {
		for i := range seq {
			seq[i] = chosen[rng.Intn(k)]
		}
		if coversAll(seq, chosen) {
			return seq
		}
	}
}

// coversAll reports whether every chosen symbol occurs in seq.
func coversAll(seq, chosen []*symbol.Symbol) bool {
	for _, want := range chosen {
		found := false
		for _, got := range seq {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
