// Package disjoint hands out several groups of references into one slice at
// the same time, after proving that the requested index ranges never overlap
// and stay inside the slice.
//
// A request is a Groups value: an ordered list of groups, each an ordered list
// of half-open ranges. Validate checks a request against a Bounds. The
// BorrowGroups family validates and then builds the groups; the Unchecked
// variants skip validation and index the backing array directly.
package disjoint

import (
	"errors"
	"fmt"
)

var (
	ErrNotDisjoint = errors.New("at least one range overlaps another range")
	ErrOutOfBounds = errors.New("at least one range exceeds the bounds of the sequence")
	ErrSharedPlan  = errors.New("plan was compiled for shared access only")
)

// Bounds is the addressable extent [Start, End) of a sequence.
type Bounds struct {
	Start int
	End   int
}

// BoundsOf reports the bounds of seq, always [0, len(seq)).
func BoundsOf[T any](seq []T) Bounds {
	return Bounds{Start: 0, End: len(seq)}
}

func (b Bounds) Len() int {
	if b.End < b.Start {
		return 0
	}
	return b.End - b.Start
}

// Contains reports whether r lies entirely inside b. Empty ranges are always
// contained.
func (b Bounds) Contains(r Range) bool {
	if r.IsEmpty() {
		return true
	}
	return r.Start >= b.Start && r.End <= b.End
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d)", b.Start, b.End)
}

// Range is a requested half-open span [Start, End). A range with
// Start >= End is empty and is ignored by validation and access.
type Range struct {
	Start int
	End   int
}

func (r Range) IsEmpty() bool { return r.Start >= r.End }

func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Overlaps reports whether r and o share at least one index.
func (r Range) Overlaps(o Range) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Start < o.End && o.Start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Group is an ordered list of ranges. Ranges need not be sorted or adjacent.
type Group []Range

// Len is the number of items the group covers.
func (g Group) Len() int {
	n := 0
	for _, r := range g {
		n += r.Len()
	}
	return n
}

// Groups is the full request submitted to one validate or borrow call.
type Groups []Group

// Clone returns a deep copy so later edits by the caller can't change it.
func (gs Groups) Clone() Groups {
	out := make(Groups, len(gs))
	for i, g := range gs {
		out[i] = append(Group(nil), g...)
	}
	return out
}

// ErrorKind tells the two validation failures apart.
type ErrorKind int

const (
	NotDisjoint ErrorKind = iota + 1
	OutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case NotDisjoint:
		return "NotDisjoint"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError carries the failure kind and the ranges that caused it.
// It unwraps to ErrNotDisjoint or ErrOutOfBounds.
type ValidationError struct {
	Kind ErrorKind
	// First and Second are the overlapping pair (NotDisjoint only).
	First  Range
	Second Range
	// Envelope is the smallest range holding every non-empty request
	// (OutOfBounds only).
	Envelope Range
	Bounds   Bounds
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NotDisjoint:
		return fmt.Sprintf("%s: %s and %s", ErrNotDisjoint, e.First, e.Second)
	case OutOfBounds:
		return fmt.Sprintf("%s: envelope %s, bounds %s", ErrOutOfBounds, e.Envelope, e.Bounds)
	default:
		return "invalid groups"
	}
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case NotDisjoint:
		return ErrNotDisjoint
	case OutOfBounds:
		return ErrOutOfBounds
	default:
		return nil
	}
}

// KindOf returns the validation failure kind carried by err, or 0 when err is
// not a validation failure.
func KindOf(err error) ErrorKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	switch {
	case errors.Is(err, ErrNotDisjoint):
		return NotDisjoint
	case errors.Is(err, ErrOutOfBounds):
		return OutOfBounds
	}
	return 0
}
