package core

import (
	"fmt"
	"iter"
	"math"
)

// ThresholdMode selects how a Threshold compares line indices.
type ThresholdMode int

const (
	// InclusiveFrom keeps lines with index >= N.
	InclusiveFrom ThresholdMode = iota
	// ExclusiveAfter keeps lines with index > N.
	ExclusiveAfter
)

// Threshold is the line filter applied before rendering.
type Threshold struct {
	Mode ThresholdMode
	N    int
}

// From returns an inclusive threshold (index >= n).
func From(n int) Threshold { return Threshold{Mode: InclusiveFrom, N: n} }

// After returns an exclusive threshold (index > n).
func After(n int) Threshold { return Threshold{Mode: ExclusiveAfter, N: n} }

// Keep reports whether a line with the given index passes the threshold.
func (t Threshold) Keep(index int) bool {
	if t.Mode == ExclusiveAfter {
		return index > t.N
	}
	return index >= t.N
}

// First returns the lowest index the threshold can keep. It saturates at
// math.MaxInt instead of overflowing.
func (t Threshold) First() int {
	first := t.N
	if t.Mode == ExclusiveAfter && first < math.MaxInt {
		first++
	}
	return max(first, 1)
}

// Count returns how many of total lines pass the threshold.
func (t Threshold) Count(total int) int {
	first := t.First()
	// After(math.MaxInt) keeps nothing, though First saturates.
	if (t.Mode == ExclusiveAfter && t.N == math.MaxInt) || total < first {
		return 0
	}
	return total - first + 1
}

// Filter lazily drops lines that fail the threshold. Order is preserved.
func (t Threshold) Filter(seq iter.Seq[NumberedLine]) iter.Seq[NumberedLine] {
	return func(yield func(NumberedLine) bool) {
		for nl := range seq {
			if !t.Keep(nl.Index) {
				continue
			}
			if !yield(nl) {
				return
			}
		}
	}
}

func (t Threshold) String() string {
	if t.Mode == ExclusiveAfter {
		return fmt.Sprintf("> %d", t.N)
	}
	return fmt.Sprintf(">= %d", t.N)
}
