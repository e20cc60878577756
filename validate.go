package disjoint

import (
	"cmp"
	"slices"
)

// Validate checks that every non-empty range in groups lies inside bounds and
// that no two of them, in the same group or in different groups, overlap.
//
// Overlap is checked first: when both failures apply the error is
// NotDisjoint. Requests with no non-empty range always succeed.
func Validate(bounds Bounds, groups Groups) error {
	ranges := flatten(groups)
	// no ranges can't conflict or overflow
	if len(ranges) == 0 {
		return nil
	}

	slices.SortFunc(ranges, func(a, b Range) int { return cmp.Compare(a.Start, b.Start) })

	// after sorting, any overlapping pair implies an overlapping adjacent pair
	for i := 1; i < len(ranges); i++ {
		if ranges[i-1].End > ranges[i].Start {
			return &ValidationError{
				Kind:   NotDisjoint,
				First:  ranges[i-1],
				Second: ranges[i],
				Bounds: bounds,
			}
		}
	}

	return checkEnvelope(bounds, envelope(ranges))
}

// ValidateShared is the relaxed check for read-only access: ranges may
// overlap, only containment in bounds is enforced.
func ValidateShared(bounds Bounds, groups Groups) error {
	ranges := flatten(groups)
	if len(ranges) == 0 {
		return nil
	}
	return checkEnvelope(bounds, envelope(ranges))
}

// flatten collects every non-empty range of every group into a fresh slice.
func flatten(groups Groups) []Range {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	ranges := make([]Range, 0, n)
	for _, g := range groups {
		for _, r := range g {
			if !r.IsEmpty() {
				ranges = append(ranges, r)
			}
		}
	}
	return ranges
}

// envelope returns the smallest range holding all of ranges. ranges must be
// non-empty and hold no empty range.
func envelope(ranges []Range) Range {
	env := ranges[0]
	for _, r := range ranges[1:] {
		env.Start = min(env.Start, r.Start)
		env.End = max(env.End, r.End)
	}
	return env
}

func checkEnvelope(bounds Bounds, env Range) error {
	if env.Start >= bounds.Start && env.End <= bounds.End {
		return nil
	}
	return &ValidationError{
		Kind:     OutOfBounds,
		Envelope: env,
		Bounds:   bounds,
	}
}
