package market

import "time"

// TermStructure supplies continuously-compounded forward rates over time
// intervals measured in year fractions from the structure's reference date.
// Implementations must be safe for concurrent reads.
type TermStructure interface {
	// ForwardRate returns the annualized continuously-compounded forward
	// rate over [t1, t2]. With t1 == t2 it returns the instantaneous
	// forward at t1.
	ForwardRate(t1, t2 float64) float64

	// ReferenceDate anchors t = 0.
	ReferenceDate() time.Time

	// DayCounter is the convention mapping calendar dates onto the
	// structure's time axis.
	DayCounter() DayCounter
}

// FlatForward is a constant continuously-compounded forward curve — the
// standard curve for tests, demos and sanity pricing. Immutable after
// construction, hence trivially safe for concurrent use.
type FlatForward struct {
	refDate time.Time
	rate    float64
	dc      DayCounter
}

// NewFlatForward builds a flat curve anchored at refDate with the given
// continuously-compounded rate. Returns ErrUnknownDayCounter when dc is not
// one of the defined conventions.
func NewFlatForward(refDate time.Time, rate float64, dc DayCounter) (*FlatForward, error) {
	if !dc.valid() {
		return nil, ErrUnknownDayCounter
	}

	return &FlatForward{refDate: refDate, rate: rate, dc: dc}, nil
}

// ForwardRate returns the flat rate for every interval, instantaneous or not.
func (f *FlatForward) ForwardRate(_, _ float64) float64 { return f.rate }

// ReferenceDate returns the curve's anchor date.
func (f *FlatForward) ReferenceDate() time.Time { return f.refDate }

// DayCounter returns the curve's day-count convention.
func (f *FlatForward) DayCounter() DayCounter { return f.dc }

// compile-time conformance check
var _ TermStructure = (*FlatForward)(nil)
