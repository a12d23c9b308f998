// Package cycles defines the result record and sentinel errors for
// elementary-cycle enumeration.
package cycles

import "errors"

var (
	// ErrGraphNil is returned when a nil digraph.Reader is passed to
	// Enumerate.
	ErrGraphNil = errors.New("cycles: graph is nil")

	// ErrNegativeLimit is returned when maxCycles is negative; use 0 for
	// "report nothing" and a positive cap otherwise.
	ErrNegativeLimit = errors.New("cycles: maxCycles must be non-negative")
)

// Result captures one enumeration. It is a plain value record owned by the
// caller; the enumerator retains no reference to it.
type Result struct {
	// Cycles lists the elementary cycles found, each as an ordered slice of
	// node indices [v0, ..., vk] with an implicit closing edge vk→v0. The
	// order of cycles and of nodes within each cycle is a deterministic
	// function of node indices and the Reader's successor order.
	Cycles [][]int

	// Count is len(Cycles), kept explicit for result records that travel
	// beyond the package boundary.
	Count int

	// Truncated reports that the maxCycles cap was reached. Deliberately
	// conservative: it is true whenever Count >= maxCycles, so a cap that
	// coincidentally equals the exact total still reads as truncated even
	// though nothing was omitted. Callers needing certainty can re-run
	// with a larger cap.
	Truncated bool
}
