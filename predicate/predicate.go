// Package predicate implements the temporal predicate algebra: a lazy,
// directional generator of calendar intervals around an anchor moment.
//
// Each variant is a distinct struct implementing the Predicate interface;
// callers walk any variant through the interface's Walk method, and each
// variant's Walk composes the Walks of the predicates it wraps — see
// SPEC_FULL.md component B for the variant list.
package predicate

import (
	"iter"

	"github.com/az-ai-labs/chronolex/moment"
)

// Direction controls which way a predicate walks from its anchor.
type Direction int

const (
	Future Direction = iota
	Past
)

// maxLook bounds how many candidate grain-steps a walk will examine before
// giving up. This is the engine-level safety valve spec.md §4.3 describes
// for Intersect: exceeding it yields no result, never an error.
const maxLook = 10000

// Predicate is implemented by every temporal-algebra variant.
type Predicate interface {
	// Walk yields intervals satisfying the predicate starting from anchor,
	// in the given direction, closest-to-anchor first.
	Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval]
	// Grain reports the predicate's natural grain, used by composition
	// rules to decide which operand is coarser.
	Grain() moment.Grain
}

// Resolve returns up to n intervals produced by walking p in dir from
// ref.Start(), ordered by proximity to ref.
func Resolve(p Predicate, ref moment.Interval, dir Direction, n int) []moment.Interval {
	out := make([]moment.Interval, 0, n)
	for iv := range p.Walk(dir, ref.Start()) {
		out = append(out, iv)
		if len(out) >= n {
			break
		}
	}
	return out
}

// Cyclic yields every instance of a grain ("every Monday" is a cyclic Day
// predicate filtered to Mondays via Intersect with a weekday filter —
// Cyclic itself only knows about plain calendar cycles: every day, every
// month, every 15th-of-month is expressed by composing Cyclic(Day) with a
// day-of-month filter in the grammar layer, not baked into this struct).
type Cyclic struct {
	G moment.Grain
}

func (c Cyclic) Grain() moment.Grain { return c.G }

func (c Cyclic) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		start := anchor.RoundTo(c.G)
		step := moment.One(c.G)
		if dir == Past {
			step.Quantity = -1
		}
		cur := start
		for i := 0; i < maxLook; i++ {
			iv := moment.StartingAt(cur, c.G)
			if !yield(iv) {
				return
			}
			cur = cur.Add(step)
		}
	}
}

// Filtered wraps a Cyclic (or any finer predicate) with a predicate
// function over the candidate interval, used to implement "every Monday",
// "every 15th of the month", and similar named-instance cyclics without a
// dedicated struct per named unit.
type Filtered struct {
	Base Predicate
	Keep func(moment.Interval) bool
}

func (f Filtered) Grain() moment.Grain { return f.Base.Grain() }

func (f Filtered) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		n := 0
		for iv := range f.Base.Walk(dir, anchor) {
			n++
			if n > maxLook {
				return
			}
			if f.Keep(iv) {
				if !yield(iv) {
					return
				}
			}
		}
	}
}

// Intersect walks the coarser of P and Q; for each candidate interval it
// tests whether the finer predicate has an instance inside, emitting the
// finer instance when it does, and advancing otherwise.
type Intersect struct {
	Coarse Predicate
	Fine   Predicate
}

func (i Intersect) Grain() moment.Grain { return moment.Min(i.Coarse.Grain(), i.Fine.Grain()) }

func (i Intersect) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		n := 0
		for outer := range i.Coarse.Walk(dir, anchor) {
			n++
			if n > maxLook {
				return
			}
			for inner := range i.Fine.Walk(Future, outer.Start()) {
				if got, ok := outer.Intersect(inner); ok {
					if !yield(got) {
						return
					}
					break
				}
				if !inner.Start().Before(outer.EndMoment()) {
					break
				}
			}
		}
	}
}

// TakeN selects the nth match of Base after/before the anchor (0-based). If
// NotImmediate is set and the anchor itself satisfies Base, the zero-offset
// match is skipped — "next Monday" means the Monday strictly after today
// when today is Monday.
type TakeN struct {
	Base         Predicate
	N            int
	NotImmediate bool
}

func (t TakeN) Grain() moment.Grain { return t.Base.Grain() }

func (t TakeN) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		skip := t.N
		first := true
		for iv := range t.Base.Walk(dir, anchor) {
			if first && t.NotImmediate && iv.Contains(anchor) {
				first = false
				continue
			}
			first = false
			if skip > 0 {
				skip--
				continue
			}
			yield(iv)
			return
		}
	}
}

// Span locates the first P instance at or after anchor, then the first Q
// instance at or after that P instance, and returns their spanned interval
// ("between 9:30 and 11:00", "from Monday to Friday").
type Span struct {
	From, To Predicate
	// Inclusive controls whether To's own interval is folded into the span
	// end (true) or only its start is used as the end boundary (false).
	Inclusive bool
}

func (s Span) Grain() moment.Grain { return moment.Max(s.From.Grain(), s.To.Grain()) }

func (s Span) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		for fromIv := range s.From.Walk(dir, anchor) {
			for toIv := range s.To.Walk(Future, fromIv.Start()) {
				if !toIv.Start().After(fromIv.Start()) && dir == Future {
					continue
				}
				end := toIv
				if s.Inclusive {
					yield(fromIv.To(end.After()))
				} else {
					yield(fromIv.To(end))
				}
				return
			}
			return
		}
	}
}

// Shift offsets every interval Base produces by a fixed period ("three days
// before X").
type Shift struct {
	Base   Predicate
	Period moment.Period
}

func (s Shift) Grain() moment.Grain { return s.Base.Grain() }

func (s Shift) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		for iv := range s.Base.Walk(dir, anchor) {
			shifted := iv
			for _, c := range s.Period {
				shifted = shifted.Add(c)
			}
			if !yield(shifted) {
				return
			}
		}
	}
}

// HourOfDay is a clock-face predicate selecting a specific hour (and
// optionally minute/second) of each day.
type HourOfDay struct {
	Hour      int
	Minute    int
	Second    int
	TwelveHour bool
}

func (h HourOfDay) Grain() moment.Grain { return moment.Minute }

func (h HourOfDay) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		day := anchor.RoundTo(moment.Day)
		step := moment.One(moment.Day)
		if dir == Past {
			step.Quantity = -1
		}
		for i := 0; i < maxLook; i++ {
			start := day.
				Add(moment.PeriodComp{Grain: moment.Hour, Quantity: int64(h.Hour)}).
				Add(moment.PeriodComp{Grain: moment.Minute, Quantity: int64(h.Minute)}).
				Add(moment.PeriodComp{Grain: moment.Second, Quantity: int64(h.Second)})
			iv := moment.StartingAt(start, moment.Minute)
			if !yield(iv) {
				return
			}
			day = day.Add(step)
		}
	}
}

// Mark tags a predicate as open-ended: "before X" or "after X", reported
// as a half-open span rather than a closed range.
type Mark struct {
	Base Predicate
	Dir  MarkDirection
}

// MarkDirection is the open-ended direction of a Mark predicate.
type MarkDirection int

const (
	NoMark MarkDirection = iota
	Before
	AfterMark
)

func (m Mark) Grain() moment.Grain { return m.Base.Grain() }

func (m Mark) Walk(dir Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		for iv := range m.Base.Walk(dir, anchor) {
			switch m.Dir {
			case Before:
				yield(moment.Between(anchor.RoundTo(iv.Grain()), iv.Start(), iv.Grain()))
			case AfterMark:
				yield(iv.After())
			default:
				yield(iv)
			}
			return
		}
	}
}
