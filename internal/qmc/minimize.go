package qmc

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rjNemo/underscore"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// groupByOnes buckets terms by the number of 1 bits, keeping input order
// inside a bucket. Buckets are returned by ascending count.
func groupByOnes(terms []implicant) [][]implicant {
	grouped := underscore.GroupBy(terms, implicant.ones)
	counts := maps.Keys(grouped)
	slices.Sort(counts)
	groups := make([][]implicant, len(counts))
	for i, c := range counts {
		groups[i] = grouped[c]
	}
	return groups
}

// primeImplicants implements the QM merge phase. Each pass compares
// neighbouring groups; pair i's merges form group i of the next pass.
// Terms that merged nowhere in a pass are prime, collected in group order.
func primeImplicants(terms []implicant) []implicant {
	groups := groupByOnes(terms)
	var primes []implicant
	seen := mapset.NewThreadUnsafeSet[implicant]()
	for {
		marked := mapset.NewThreadUnsafeSet[implicant]()
		var next [][]implicant
		for i := 0; i+1 < len(groups); i++ {
			var merged []implicant
			for _, a := range groups[i] {
				for _, b := range groups[i+1] {
					m, ok := tryMerge(a, b)
					if !ok {
						continue
					}
					if !slices.Contains(merged, m) {
						merged = append(merged, m)
					}
					marked.Add(a)
					marked.Add(b)
				}
			}
			if len(merged) > 0 {
				next = append(next, merged)
			}
		}
		for _, g := range groups {
			for _, t := range g {
				if !marked.Contains(t) && seen.Add(t) {
					primes = append(primes, t)
				}
			}
		}
		if len(next) == 0 {
			return primes
		}
		groups = next
	}
}

// chartRow lists the primes (by index) covering one required minterm, in
// prime discovery order.
type chartRow struct {
	minterm uint64
	primes  []int
}

// coverageChart builds one row per required minterm in ascending order.
// Don't-care minterms get no row.
func coverageChart(primes []implicant, dontCares mapset.Set[uint64], width int) []chartRow {
	cover := make(map[uint64][]int)
	for i, p := range primes {
		for _, m := range expandMinterms(p, width) {
			if dontCares.Contains(m) {
				continue
			}
			cover[m] = append(cover[m], i)
		}
	}
	minterms := maps.Keys(cover)
	slices.Sort(minterms)
	rows := make([]chartRow, len(minterms))
	for i, m := range minterms {
		rows[i] = chartRow{minterm: m, primes: cover[m]}
	}
	return rows
}

// essentials picks the primes that are the only cover of some row, in row
// order, and returns the rows none of them covers.
func essentials(rows []chartRow) (epi []int, remaining []chartRow) {
	for _, r := range rows {
		if len(r.primes) == 1 && !slices.Contains(epi, r.primes[0]) {
			epi = append(epi, r.primes[0])
		}
	}
	remaining = underscore.Filter(rows, func(r chartRow) bool {
		return !underscore.Any(r.primes, func(p int) bool { return slices.Contains(epi, p) })
	})
	return epi, remaining
}
