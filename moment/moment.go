// Package moment implements calendar arithmetic over a reference instant at
// a given granularity.
//
// The standard library's time.Time is a fine representation for an instant,
// but calendar arithmetic ("the first of next month", "three weeks from
// now") needs a day/month/year-aware add that clamps out-of-range dates
// (30 Feb -> 28 or 29 Feb) and stays DST-safe across day and week jumps.
// Moment wraps time.Time and adds exactly that; it does not attempt to
// replace time.Time's clock/timezone handling the way a pure calendar-date
// type would, because this package's callers need second resolution (a
// Datetime value can carry a time-of-day).
package moment

import "time"

// Moment is a calendar instant at second resolution, in whatever time zone
// the wrapped time.Time carries. The package has no zone configuration of
// its own: results keep the zone of the reference moment they came from.
type Moment struct {
	t time.Time
}

// New wraps a time.Time as a Moment.
func New(t time.Time) Moment { return Moment{t: t} }

// Now returns the current Moment in the local zone.
func Now() Moment { return Moment{t: time.Now()} }

// Time returns the underlying time.Time.
func (m Moment) Time() time.Time { return m.t }

// Before reports whether m is strictly before other.
func (m Moment) Before(other Moment) bool { return m.t.Before(other.t) }

// After reports whether m is strictly after other.
func (m Moment) After(other Moment) bool { return m.t.After(other.t) }

// Equal reports whether m and other represent the same instant.
func (m Moment) Equal(other Moment) bool { return m.t.Equal(other.t) }

// Compare returns -1, 0, or +1 as m is before, equal to, or after other.
func (m Moment) Compare(other Moment) int {
	switch {
	case m.t.Before(other.t):
		return -1
	case m.t.After(other.t):
		return 1
	default:
		return 0
	}
}

func lastDayInMonth(year int, month time.Month) int {
	// The 0th day of the following month is the last day of this one.
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return lastDay.Day()
}

// AddMonths adds n calendar months, clamping the day to the target month's
// length (31 Jan + 1 month -> 28/29 Feb, never rolling into March).
func (m Moment) AddMonths(n int) Moment {
	y, mo, d := m.t.Date()
	totalMonths := int(mo-1) + n
	year := y + totalMonths/12
	month0 := totalMonths % 12
	if month0 < 0 {
		month0 += 12
		year--
	}
	month := time.Month(month0 + 1)
	day := d
	if last := lastDayInMonth(year, month); day > last {
		day = last
	}
	h, mi, s := m.t.Clock()
	return Moment{t: time.Date(year, month, day, h, mi, s, 0, m.t.Location())}
}

// adjustForDST renormalises a Moment after a day/week jump so that it keeps
// its original wall-clock hour/minute/second across a DST transition rather
// than silently drifting by the zone offset delta.
func (m Moment) adjustForDST() Moment {
	y, mo, d := m.t.Date()
	h, mi, s := m.t.Clock()
	return Moment{t: time.Date(y, mo, d, h, mi, s, 0, m.t.Location())}
}

// Add adds a single PeriodComp. Year/Quarter/Month route to calendar-aware
// month arithmetic; Week/Day route through time.Time's AddDate followed by
// a DST-safe wall-clock renormalisation; Hour/Minute/Second are plain
// duration addition.
func (m Moment) Add(p PeriodComp) Moment {
	switch p.Grain {
	case Year:
		return m.AddMonths(12 * int(p.Quantity))
	case Quarter:
		return m.AddMonths(3 * int(p.Quantity))
	case Month:
		return m.AddMonths(int(p.Quantity))
	case Week:
		return Moment{t: m.t.AddDate(0, 0, 7*int(p.Quantity))}.adjustForDST()
	case Day:
		return Moment{t: m.t.AddDate(0, 0, int(p.Quantity))}.adjustForDST()
	case Hour:
		return Moment{t: m.t.Add(time.Duration(p.Quantity) * time.Hour)}
	case Minute:
		return Moment{t: m.t.Add(time.Duration(p.Quantity) * time.Minute)}
	default: // Second
		return Moment{t: m.t.Add(time.Duration(p.Quantity) * time.Second)}
	}
}

// AddPeriod adds every component of a Period, in order.
func (m Moment) AddPeriod(p Period) Moment {
	out := m
	for _, c := range p {
		out = out.Add(c)
	}
	return out
}

// Sub subtracts a single PeriodComp.
func (m Moment) Sub(p PeriodComp) Moment {
	return m.Add(PeriodComp{Grain: p.Grain, Quantity: -p.Quantity})
}

// RoundTo truncates m toward the past to the start of the given grain.
// Week rounds to the Monday morning of the ISO week containing m. Quarter
// rounds to the first day of the quarter (months Jan/Apr/Jul/Oct).
func (m Moment) RoundTo(g Grain) Moment {
	y, mo, d := m.t.Date()
	h, mi, _ := m.t.Clock()
	loc := m.t.Location()
	switch g {
	case Year:
		return Moment{t: time.Date(y, 1, 1, 0, 0, 0, 0, loc)}
	case Quarter:
		qm := time.Month((int(mo-1)/3)*3 + 1)
		return Moment{t: time.Date(y, qm, 1, 0, 0, 0, 0, loc)}
	case Month:
		return Moment{t: time.Date(y, mo, 1, 0, 0, 0, 0, loc)}
	case Week:
		day := Moment{t: time.Date(y, mo, d, 0, 0, 0, 0, loc)}
		// Go's Weekday has Sunday == 0; convert to days-from-Monday.
		wd := int(m.t.Weekday())
		daysFromMonday := (wd + 6) % 7
		return day.Sub(PeriodComp{Grain: Day, Quantity: int64(daysFromMonday)})
	case Day:
		return Moment{t: time.Date(y, mo, d, 0, 0, 0, 0, loc)}
	case Hour:
		return Moment{t: time.Date(y, mo, d, h, 0, 0, 0, loc)}
	case Minute:
		return Moment{t: time.Date(y, mo, d, h, mi, 0, 0, loc)}
	default: // Second
		return Moment{t: m.t.Truncate(time.Second)}
	}
}

// PeriodComp is a signed multiple of a single grain ("3 days", "-2 weeks").
type PeriodComp struct {
	Grain    Grain
	Quantity int64
}

// Period is a sum of PeriodComps across possibly different grains; it adds
// across an interval component by component, in order.
type Period []PeriodComp

// Negate returns a period with every component's quantity negated.
func (p Period) Negate() Period {
	out := make(Period, len(p))
	for i, c := range p {
		out[i] = PeriodComp{Grain: c.Grain, Quantity: -c.Quantity}
	}
	return out
}

// One returns the period "one of grain" (1 Day, 1 Hour, ...), the implicit
// length of an Interval whose end was not given explicitly.
func One(g Grain) PeriodComp { return PeriodComp{Grain: g, Quantity: 1} }
