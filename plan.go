package disjoint

import "github.com/rawbytedev/disjoint/internal/rawview"

type Options struct {
	// AllowSharedOverlap compiles with ValidateShared; the plan can then only
	// be used for read-only borrows.
	AllowSharedOverlap bool
}

// Plan is a validated Groups request that can be borrowed repeatedly. A plan
// is immutable once compiled and may be shared between goroutines; the views
// and pointers it hands out may not.
type Plan struct {
	opts     Options
	groups   Groups
	counts   []int
	total    int
	envelope Range
}

// Compile validates groups against bounds once and records what every later
// borrow needs: a private copy of the groups, the per-group item counts and
// the envelope of all non-empty ranges.
func Compile(bounds Bounds, groups Groups, opts Options) (*Plan, error) {
	validate := Validate
	if opts.AllowSharedOverlap {
		validate = ValidateShared
	}
	if err := validate(bounds, groups); err != nil {
		return nil, err
	}

	p := &Plan{
		opts:   opts,
		groups: groups.Clone(),
		counts: make([]int, len(groups)),
	}
	if ranges := flatten(groups); len(ranges) > 0 {
		p.envelope = envelope(ranges)
	}
	for i, g := range p.groups {
		p.counts[i] = g.Len()
		p.total += p.counts[i]
	}
	return p, nil
}

// Groups returns a copy of the compiled request.
func (p *Plan) Groups() Groups { return p.groups.Clone() }

// Envelope is the smallest range holding every non-empty range, or the empty
// range when there are none.
func (p *Plan) Envelope() Range { return p.envelope }

// Counts returns the number of items each group covers.
func (p *Plan) Counts() []int { return append([]int(nil), p.counts...) }

// Total is the number of items across all groups.
func (p *Plan) Total() int { return p.total }

// Shared reports whether the plan was compiled for read-only borrows.
func (p *Plan) Shared() bool { return p.opts.AllowSharedOverlap }

// fits is the O(1) re-check done on every borrow: seq may have a different
// length than the bounds the plan was compiled against.
func (p *Plan) fits(b Bounds) error {
	if p.envelope.IsEmpty() {
		return nil
	}
	return checkEnvelope(b, p.envelope)
}

// BorrowPlan returns one read-only view per group of p.
func BorrowPlan[T any](p *Plan, seq []T) ([]View[T], error) {
	if err := p.fits(BoundsOf(seq)); err != nil {
		return nil, err
	}
	return borrowViews(rawview.Base(seq), p.groups), nil
}

// BorrowPlanMut returns one pointer list per group of p. Plans compiled with
// AllowSharedOverlap are refused with ErrSharedPlan.
func BorrowPlanMut[T any](p *Plan, seq []T) ([][]*T, error) {
	if p.opts.AllowSharedOverlap {
		return nil, ErrSharedPlan
	}
	if err := p.fits(BoundsOf(seq)); err != nil {
		return nil, err
	}
	return borrowRefs(rawview.Base(seq), p.groups, p.counts), nil
}
