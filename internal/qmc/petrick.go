package qmc

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// product is a set of placeholders whose primes are taken together.
type product = mapset.Set[int]

// petrick resolves the rows left after the essential primes. Every prime
// occurring in rows gets a placeholder in order of first appearance; the
// product of row sums is expanded one row at a time with absorption, and
// all expansions of minimum size are returned as prime indices, in order
// of generation.
func petrick(rows []chartRow) [][]int {
	var back []int
	sums := make([][]int, len(rows))
	for i, r := range rows {
		for _, p := range r.primes {
			ph := slices.Index(back, p)
			if ph < 0 {
				ph = len(back)
				back = append(back, p)
			}
			sums[i] = append(sums[i], ph)
		}
	}

	var products []product
	for _, ph := range sums[0] {
		products = append(products, mapset.NewThreadUnsafeSet(ph))
	}
	products = absorb(products)
	for _, sum := range sums[1:] {
		products = absorb(distribute(products, sum))
	}

	slices.SortStableFunc(products, func(a, b product) int { return a.Cardinality() - b.Cardinality() })
	fewest := products[0].Cardinality()
	var out [][]int
	for _, p := range products {
		if p.Cardinality() != fewest {
			break
		}
		phs := p.ToSlice()
		slices.Sort(phs)
		primes := make([]int, len(phs))
		for i, ph := range phs {
			primes[i] = back[ph]
		}
		out = append(out, primes)
	}
	return out
}

// distribute multiplies a sum of products by one more sum. X*X = X.
func distribute(products []product, sum []int) []product {
	out := make([]product, 0, len(products)*len(sum))
	for _, a := range products {
		for _, ph := range sum {
			if a.Contains(ph) {
				out = append(out, a)
				continue
			}
			p := a.Clone()
			p.Add(ph)
			out = append(out, p)
		}
	}
	return out
}

// absorb drops duplicate products and every product that strictly
// contains another one (X + XY = X). Order is preserved.
func absorb(products []product) []product {
	var uniq []product
	for _, p := range products {
		if !slices.ContainsFunc(uniq, p.Equal) {
			uniq = append(uniq, p)
		}
	}
	var out []product
	for _, p := range uniq {
		absorbed := slices.ContainsFunc(uniq, func(q product) bool { return q.IsProperSubset(p) })
		if !absorbed {
			out = append(out, p)
		}
	}
	return out
}
