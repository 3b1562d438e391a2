package value

import (
	"iter"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
)

// Helpers in this file are the Go counterpart of the original system's
// `helpers` module (grounded in original_source/src/en.rs and
// grammar/en/src/rules_datetime.rs): small constructors grammar packs use to
// build Datetime values from a reference-free predicate description.
// Resolution against a concrete reference moment happens later, in package
// resolve.

// directionalTakeN pins a walk direction into a Predicate so grammar rules
// can build "yesterday" (walk into the past) and "tomorrow" (walk into the
// future) without the resolver needing to know which way to walk.
type directionalTakeN struct {
	base predicate.Predicate
	dir  predicate.Direction
	n    int
}

func (d directionalTakeN) Grain() moment.Grain { return d.base.Grain() }

func (d directionalTakeN) Walk(_ predicate.Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	inner := predicate.TakeN{Base: d.base, N: d.n}
	return inner.Walk(d.dir, anchor)
}

// CycleN returns the Datetime for the nth (0-based, signed) instance of
// grain g relative to the resolution anchor: CycleN(Day, 0) is "today",
// CycleN(Day, 1) is "tomorrow", CycleN(Day, -1) is "yesterday".
func CycleN(g moment.Grain, n int) Datetime {
	dir := predicate.Future
	count := n
	if n < 0 {
		dir = predicate.Past
		count = -n
	}
	return Datetime{Pred: directionalTakeN{base: predicate.Cyclic{G: g}, dir: dir, n: count}}
}

// CycleNthAfter returns the nth instance of grain g strictly after base's
// first resolved occurrence — used for "the 3rd Monday after Easter" style
// compositions, where base supplies the anchor predicate and g/n select an
// offset cycle from whatever base resolves to.
func CycleNthAfter(g moment.Grain, n int, base Datetime) Datetime {
	return Datetime{Pred: afterPredicate{base: base.Pred, g: g, n: n}}
}

type afterPredicate struct {
	base predicate.Predicate
	g    moment.Grain
	n    int
}

func (a afterPredicate) Grain() moment.Grain { return a.g }

func (a afterPredicate) Walk(dir predicate.Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		for base := range a.base.Walk(dir, anchor) {
			cyc := directionalTakeN{base: predicate.Cyclic{G: a.g}, dir: predicate.Future, n: a.n}
			for iv := range cyc.Walk(predicate.Future, base.Start()) {
				yield(iv)
				return
			}
			return
		}
	}
}

// DayOfWeek returns the Datetime cyclic predicate for the given weekday,
// tagged Form == FormDayOfWeek.
func DayOfWeek(wd time.Weekday) Datetime {
	return Datetime{
		Pred:    predicate.Filtered{Base: predicate.Cyclic{G: moment.Day}, Keep: weekdayFilter(wd)},
		FormTag: FormDayOfWeek,
	}
}

func weekdayFilter(wd time.Weekday) func(moment.Interval) bool {
	return func(iv moment.Interval) bool {
		return iv.Start().Time().Weekday() == wd
	}
}

// Month returns the Datetime cyclic predicate for the nth month of the
// year (1-12), tagged Form == FormMonth.
func Month(m int) Datetime {
	return Datetime{
		Pred:    predicate.Filtered{Base: predicate.Cyclic{G: moment.Month}, Keep: monthFilter(m)},
		FormTag: FormMonth,
	}
}

func monthFilter(m int) func(moment.Interval) bool {
	return func(iv moment.Interval) bool {
		return int(iv.Start().Time().Month()) == m
	}
}

// DayOfMonth returns the Datetime cyclic predicate for the nth day of each
// month, tagged Form == FormDayOfMonth.
func DayOfMonth(day int) Datetime {
	return Datetime{
		Pred:    predicate.Filtered{Base: predicate.Cyclic{G: moment.Day}, Keep: domFilter(day)},
		FormTag: FormDayOfMonth,
	}
}

func domFilter(day int) func(moment.Interval) bool {
	return func(iv moment.Interval) bool {
		return iv.Start().Time().Day() == day
	}
}

// Year returns the Datetime for a specific calendar year, tagged
// Form == FormYear.
func Year(y int) Datetime {
	return Datetime{Pred: yearPredicate{year: y}, FormTag: FormYear}
}

type yearPredicate struct{ year int }

func (y yearPredicate) Grain() moment.Grain { return moment.Year }

func (y yearPredicate) Walk(_ predicate.Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		loc := anchor.Time().Location()
		start := moment.New(time.Date(y.year, 1, 1, 0, 0, 0, 0, loc))
		yield(moment.StartingAt(start, moment.Year))
	}
}

// HourMinuteSecond returns a Datetime for a specific clock time of day,
// tagged Form == FormTimeOfDay.
func HourMinuteSecond(h, m, s int, twelveHour bool) Datetime {
	return Datetime{
		Pred:       predicate.HourOfDay{Hour: h, Minute: m, Second: s, TwelveHour: twelveHour},
		FormTag:    FormTimeOfDay,
		TwelveHour: twelveHour,
	}
}

// InPresent returns the Datetime anchored period after the resolution
// anchor, grounded on original_source's `Duration::in_present` ("in
// <duration>", "<duration> hence" — rules_datetime.rs).
func InPresent(period moment.Period, prec Precision) Datetime {
	return Datetime{
		Pred: predicate.Shift{Base: predicate.Cyclic{G: moment.Second}, Period: period},
		Prec: prec,
		Dir:  Future,
	}
}

// Ago returns the Datetime anchored period before the resolution anchor,
// grounded on original_source's `Duration::ago` ("<duration> ago").
func Ago(period moment.Period, prec Precision) Datetime {
	neg := make(moment.Period, len(period))
	for i, c := range period {
		neg[i] = moment.PeriodComp{Grain: c.Grain, Quantity: -c.Quantity}
	}
	return Datetime{
		Pred: predicate.Shift{Base: predicate.Cyclic{G: moment.Second}, Period: neg},
		Prec: prec,
		Dir:  Past,
	}
}

// Conventional hour bounds for named parts of the day used by
// PartOfDayValue. Only the en pack builds part-of-day values through it;
// the other packs have no part-of-day rules.
const (
	morningFrom, morningTo     = 4, 12
	afternoonFrom, afternoonTo = 12, 19
	eveningFrom, eveningTo     = 18, 21
	nightFrom, nightTo         = 21, 28 // wraps past midnight
)

// PartOfDayValue returns the Datetime interval-of-day value for a named
// part of the day, tagged Form == FormPartOfDay.
func PartOfDayValue(p PartOfDay) Datetime {
	var from, to int
	switch p {
	case Morning:
		from, to = morningFrom, morningTo
	case Afternoon:
		from, to = afternoonFrom, afternoonTo
	case Evening:
		from, to = eveningFrom, eveningTo
	case Night:
		from, to = nightFrom, nightTo
	}
	return Datetime{
		Pred:      partOfDayPredicate{from: from, to: to},
		FormTag:   FormPartOfDay,
		PartOfDay: p,
	}
}

type partOfDayPredicate struct{ from, to int }

func (p partOfDayPredicate) Grain() moment.Grain { return moment.Hour }

func (p partOfDayPredicate) Walk(dir predicate.Direction, anchor moment.Moment) iter.Seq[moment.Interval] {
	return func(yield func(moment.Interval) bool) {
		day := anchor.RoundTo(moment.Day)
		if dir == predicate.Past && !day.After(anchor) {
			// anchor is already past today's window start; look at
			// yesterday's window first when walking into the past.
			start := day.Add(moment.PeriodComp{Grain: moment.Hour, Quantity: int64(p.from)})
			if !anchor.Before(start) {
				yield(moment.Between(start, day.Add(moment.PeriodComp{Grain: moment.Hour, Quantity: int64(p.to)}), moment.Hour))
				return
			}
			day = day.Sub(moment.One(moment.Day))
		}
		start := day.Add(moment.PeriodComp{Grain: moment.Hour, Quantity: int64(p.from)})
		end := day.Add(moment.PeriodComp{Grain: moment.Hour, Quantity: int64(p.to)})
		yield(moment.Between(start, end, moment.Hour))
	}
}
