package moment

// Interval is a span (start, grain, end), where end may be implicit
// (start + one(grain)) when the span is exactly one grain-unit long.
//
// Invariants: Start <= EndMoment(). Interval.To and Interval.Union take the
// coarser (max) of the two operands' grains; Interval.Intersect keeps the
// finer (min) one.
type Interval struct {
	start    Moment
	grain    Grain
	end      Moment
	hasEnd   bool
}

// StartingAt builds the implicit-end interval [start, start+one(grain)).
func StartingAt(start Moment, grain Grain) Interval {
	return Interval{start: start, grain: grain}
}

// Between builds an explicit-end interval [start, end) at the given grain.
func Between(start, end Moment, grain Grain) Interval {
	return Interval{start: start, grain: grain, end: end, hasEnd: true}
}

// Start returns the interval's start moment.
func (iv Interval) Start() Moment { return iv.start }

// Grain returns the interval's grain.
func (iv Interval) Grain() Grain { return iv.grain }

// EndMoment returns the exclusive end of the interval, computing
// start+one(grain) when no explicit end was given.
func (iv Interval) EndMoment() Moment {
	if iv.hasEnd {
		return iv.end
	}
	return iv.start.Add(One(iv.grain))
}

// RoundTo rounds the interval's start to grain g and drops any explicit end,
// producing the canonical single-grain interval containing the original
// start.
func (iv Interval) RoundTo(g Grain) Interval {
	return Interval{start: iv.start.RoundTo(g), grain: g}
}

// After returns the half-open tail interval starting at iv's end.
func (iv Interval) After() Interval {
	return Interval{start: iv.EndMoment(), grain: iv.grain}
}

// To returns the span from iv.Start() to other.Start(). Requires
// iv.Start() <= other.Start(); callers must order operands themselves, the
// result is otherwise not meaningful (matches the source algebra's
// documented precondition).
func (iv Interval) To(other Interval) Interval {
	return Interval{
		start:  iv.start,
		grain:  Max(iv.grain, other.grain),
		end:    other.start,
		hasEnd: true,
	}
}

// Union returns the span from iv.Start() to other.EndMoment().
func (iv Interval) Union(other Interval) Interval {
	return Interval{
		start:  iv.start,
		grain:  Max(iv.grain, other.grain),
		end:    other.EndMoment(),
		hasEnd: true,
	}
}

// Intersect returns the overlap of iv and other, or false if they are
// disjoint. The half-open spans [start, end) overlap iff neither starts at
// or after the other's end; the result takes the finer of the two grains,
// since it describes the more specific of the two matched expressions.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	if other.start.Before(iv.start) {
		return other.Intersect(iv)
	}
	// iv.start <= other.start
	if !other.start.Before(iv.EndMoment()) {
		return Interval{}, false
	}
	if !other.EndMoment().After(iv.EndMoment()) {
		return other, true
	}
	return Interval{
		start:  other.start,
		grain:  Min(iv.grain, other.grain),
		end:    iv.EndMoment(),
		hasEnd: true,
	}, true
}

// Add shifts both endpoints of the interval by p.
func (iv Interval) Add(p PeriodComp) Interval {
	return Interval{
		start:  iv.start.Add(p),
		grain:  Max(iv.grain, p.Grain),
		end:    iv.EndMoment().Add(p),
		hasEnd: true,
	}
}

// Sub shifts both endpoints of the interval by -p.
func (iv Interval) Sub(p PeriodComp) Interval {
	return iv.Add(PeriodComp{Grain: p.Grain, Quantity: -p.Quantity})
}

// Contains reports whether m lies in the half-open span [start, end).
func (iv Interval) Contains(m Moment) bool {
	return !m.Before(iv.start) && m.Before(iv.EndMoment())
}
