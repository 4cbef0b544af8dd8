package qmc

import (
	"math/bits"
	"strings"
)

// implicant is a product term over a fixed number of bits. value holds the
// bit values of the cared positions; mask has 1=care, 0=don't-care. The
// most significant bit belongs to the first variable.
type implicant struct {
	value uint64
	mask  uint64
}

func minterm(m uint64, width int) implicant {
	full := fullMask(width)
	return implicant{value: m & full, mask: full}
}

func fullMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}

func (imp implicant) ones() int { return bits.OnesCount64(imp.value & imp.mask) }

// tryMerge merges two implicants that have the same mask (same set of care
// variables) and differ in exactly one variable's polarity.
func tryMerge(a, b implicant) (implicant, bool) {
	if a.mask != b.mask {
		return implicant{}, false
	}
	diff := (a.value ^ b.value) & a.mask
	if diff == 0 || (diff&(diff-1)) != 0 {
		return implicant{}, false // 0 or >1 bits differ
	}
	return implicant{
		value: a.value &^ diff,
		mask:  a.mask &^ diff,
	}, true
}

// expandMinterms lists, in ascending order, every minterm covered by imp.
func expandMinterms(imp implicant, width int) []uint64 {
	var dcBits []int
	for b := 0; b < width; b++ {
		if imp.mask&(uint64(1)<<b) == 0 {
			dcBits = append(dcBits, b)
		}
	}
	base := imp.value & imp.mask
	out := make([]uint64, 0, 1<<len(dcBits))
	for i := 0; i < 1<<len(dcBits); i++ {
		m := base
		for j, bit := range dcBits {
			if i&(1<<j) != 0 {
				m |= uint64(1) << bit
			}
		}
		out = append(out, m)
	}
	return out
}

// pattern renders imp over width bits with '-' for don't-care positions,
// e.g. "1-0".
func (imp implicant) pattern(width int) string {
	var b strings.Builder
	for i := width - 1; i >= 0; i-- {
		bit := uint64(1) << i
		switch {
		case imp.mask&bit == 0:
			b.WriteByte('-')
		case imp.value&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// term converts imp to literals; letter 0 is the most significant bit.
func (imp implicant) term(width int) Term {
	var lits []Literal
	for i := 0; i < width; i++ {
		bit := uint64(1) << (width - 1 - i)
		if imp.mask&bit == 0 {
			continue
		}
		lits = append(lits, Literal{Index: i, Neg: imp.value&bit == 0})
	}
	return Term{Lits: lits}
}
