package disjoint

import (
	"iter"

	"github.com/rawbytedev/disjoint/internal/rawview"
)

// View is a read-only, zero-copy view over the items of one group. Its
// segments alias the borrowed slice, in the group's range order.
type View[T any] struct {
	segments [][]T
	n        int
}

// Len is the number of items in the view.
func (v View[T]) Len() int { return v.n }

// At returns a copy of the i-th item of the view. It panics if i is out of
// range.
func (v View[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic("disjoint: view index out of range")
	}
	for _, seg := range v.segments {
		if i < len(seg) {
			return seg[i]
		}
		i -= len(seg)
	}
	panic("unreachable")
}

// Values copies the items of the view into a new slice.
func (v View[T]) Values() []T {
	out := make([]T, 0, v.n)
	for _, seg := range v.segments {
		out = append(out, seg...)
	}
	return out
}

// All yields the items of the view with their position in the view.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, seg := range v.segments {
			for _, item := range seg {
				if !yield(i, item) {
					return
				}
				i++
			}
		}
	}
}

// BorrowGroups validates groups against seq and returns one read-only view
// per group. On failure seq is not touched.
func BorrowGroups[T any](seq []T, groups Groups) ([]View[T], error) {
	if err := Validate(BoundsOf(seq), groups); err != nil {
		return nil, err
	}
	return BorrowGroupsUnchecked(seq, groups), nil
}

// BorrowGroupsShared is BorrowGroups with the relaxed ValidateShared check:
// the views may overlap since none of them can write.
func BorrowGroupsShared[T any](seq []T, groups Groups) ([]View[T], error) {
	if err := ValidateShared(BoundsOf(seq), groups); err != nil {
		return nil, err
	}
	return BorrowGroupsUnchecked(seq, groups), nil
}

// BorrowGroupsMut validates groups against seq and returns, per group, a
// pointer to every covered item in range order. No two pointers alias.
func BorrowGroupsMut[T any](seq []T, groups Groups) ([][]*T, error) {
	if err := Validate(BoundsOf(seq), groups); err != nil {
		return nil, err
	}
	return BorrowGroupsMutUnchecked(seq, groups), nil
}

// BorrowGroupsUnchecked builds the views without validating groups.
//
// SAFETY: every non-empty range must lie inside [0, len(seq)). Anything else
// reads outside the backing array.
func BorrowGroupsUnchecked[T any](seq []T, groups Groups) []View[T] {
	return borrowViews(rawview.Base(seq), groups)
}

// BorrowGroupsMutUnchecked builds the pointer groups without validating groups.
//
// SAFETY: every non-empty range must lie inside [0, len(seq)) and no two
// non-empty ranges may overlap. Out-of-bounds ranges point outside the backing
// array; overlapping ranges hand out two writable pointers to one item.
func BorrowGroupsMutUnchecked[T any](seq []T, groups Groups) [][]*T {
	return borrowRefs(rawview.Base(seq), groups, nil)
}

// borrowViews derives every segment from base, which is taken once per call.
func borrowViews[T any](base *T, groups Groups) []View[T] {
	out := make([]View[T], 0, len(groups))
	for _, group := range groups {
		segments := make([][]T, 0, len(group))
		n := 0
		for _, r := range group {
			if r.IsEmpty() {
				continue
			}
			segments = append(segments, rawview.Segment(base, r.Start, r.End))
			n += r.Len()
		}
		out = append(out, View[T]{segments: segments, n: n})
	}
	return out
}

// borrowRefs is borrowViews for pointers. counts, when set, holds the
// precomputed item count of each group.
func borrowRefs[T any](base *T, groups Groups, counts []int) [][]*T {
	out := make([][]*T, 0, len(groups))
	for gi, group := range groups {
		var n int
		if counts != nil {
			n = counts[gi]
		} else {
			n = group.Len()
		}
		refs := make([]*T, 0, n)
		for _, r := range group {
			if r.IsEmpty() {
				continue
			}
			// SAFETY: ranges are disjoint, so each item is appended once
			// across the whole output.
			seg := rawview.Segment(base, r.Start, r.End)
			for i := range seg {
				refs = append(refs, &seg[i])
			}
		}
		out = append(out, refs)
	}
	return out
}
