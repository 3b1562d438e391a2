package value

import (
	"fmt"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
)

// Form describes the syntactic role a Datetime value plays, gating which
// composition rules may combine it with another Datetime (e.g. "named-month
// day-of-month" requires Form{Month} intersected with Form{DayOfMonth}).
type Form int

const (
	FormNone Form = iota
	FormDayOfWeek
	FormMonth
	FormYear
	FormDayOfMonth
	FormMonthDay
	FormTimeOfDay
	FormPartOfDay
	FormMeal
	FormSeason
	FormCelebration
)

var formNames = [...]string{
	FormNone:        "none",
	FormDayOfWeek:   "day-of-week",
	FormMonth:       "month",
	FormYear:        "year",
	FormDayOfMonth:  "day-of-month",
	FormMonthDay:    "month-day",
	FormTimeOfDay:   "time-of-day",
	FormPartOfDay:   "part-of-day",
	FormMeal:        "meal",
	FormSeason:      "season",
	FormCelebration: "celebration",
}

func (f Form) String() string {
	if int(f) >= 0 && int(f) < len(formNames) {
		return formNames[f]
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f Form) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// PartOfDay names the sub-regions of a day used by Form == FormPartOfDay.
type PartOfDay int

const (
	PartOfDayNone PartOfDay = iota
	Morning
	Afternoon
	Evening
	Night
)

// Datetime is a temporal-algebra value carrying a predicate, a syntactic
// form hint, and the latency/precision/direction flags spec.md §3.5 names.
type Datetime struct {
	Pred        predicate.Predicate
	FormTag     Form
	PartOfDay   PartOfDay
	Prec        Precision
	Dir         Direction
	LatentValue bool
	// TwelveHour marks a time-of-day value stated on a 12-hour clock
	// without an explicit am/pm. Grammar rules carry it through
	// compositions; package resolve does not read it, and the hour is
	// resolved as written.
	TwelveHour bool
}

func (Datetime) isValue()       {}
func (Datetime) Dim() string    { return "datetime" }
func (d Datetime) Latent() bool { return d.LatentValue }

// NotLatent returns a copy of d with the latent flag cleared, used when a
// non-latent context (preposition, clock word) lifts the flag.
func (d Datetime) NotLatent() Datetime {
	out := d
	out.LatentValue = false
	return out
}

// WithForm returns a copy of d tagged with the given form.
func (d Datetime) WithForm(f Form) Datetime {
	out := d
	out.FormTag = f
	return out
}

// Intersect composes two Datetime values by intersecting their predicates,
// per spec.md §4.3's Intersect predicate: the coarser-grained operand is
// walked, the finer one tested inside each candidate.
func (d Datetime) Intersect(other Datetime) Datetime {
	coarse, fine := d.Pred, other.Pred
	if coarse.Grain() < fine.Grain() {
		coarse, fine = fine, coarse
	}
	out := Datetime{
		Pred:    predicate.Intersect{Coarse: coarse, Fine: fine},
		FormTag: FormNone,
		Prec:    combinePrecision(d.Prec, other.Prec),
	}
	return out
}

func combinePrecision(a, b Precision) Precision {
	if a == Approximate || b == Approximate {
		return Approximate
	}
	return Exact
}

// TheNthNotImmediate returns the nth (0-based) match of d's predicate after
// the reference moment, skipping the zero-offset match when the anchor
// itself satisfies d (spec.md §4.3, §8: not_immediate ties nth(0) to
// nth(1, immediate) when the anchor already matches).
func (d Datetime) TheNthNotImmediate(n int) Datetime {
	out := d
	out.Pred = predicate.TakeN{Base: d.Pred, N: n, NotImmediate: true}
	return out
}

// TheNth returns the nth (0-based) match of d's predicate, including the
// anchor if it satisfies d.
func (d Datetime) TheNth(n int) Datetime {
	out := d
	out.Pred = predicate.TakeN{Base: d.Pred, N: n}
	return out
}

// SpanTo builds the "from d to other" span; inclusive controls whether
// other's own interval is folded into the span's end.
func (d Datetime) SpanTo(other Datetime, inclusive bool) Datetime {
	return Datetime{
		Pred:    predicate.Span{From: d.Pred, To: other.Pred, Inclusive: inclusive},
		FormTag: FormNone,
	}
}

// Shift offsets d's predicate by a fixed calendar period.
func (d Datetime) Shift(p moment.Period) Datetime {
	out := d
	out.Pred = predicate.Shift{Base: d.Pred, Period: p}
	return out
}
