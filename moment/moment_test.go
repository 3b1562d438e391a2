package moment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/moment"
)

func utc(y int, mo time.Month, d, h, mi, s int) moment.Moment {
	return moment.New(time.Date(y, mo, d, h, mi, s, 0, time.UTC))
}

func TestAddMonthsClampsToLastDayOfTargetMonth(t *testing.T) {
	jan31 := utc(2026, time.January, 31, 10, 0, 0)
	got := jan31.AddMonths(1)
	assert.Equal(t, time.Date(2026, time.February, 28, 10, 0, 0, 0, time.UTC), got.Time())
}

func TestAddMonthsClampsToLeapFebruary(t *testing.T) {
	jan31 := utc(2024, time.January, 31, 0, 0, 0)
	got := jan31.AddMonths(1)
	assert.Equal(t, 29, got.Time().Day())
}

// AddMonths is monotonic: (m + months(k)).year_month >= m.year_month for k >= 0
// (spec.md §8 universal invariant).
func TestAddMonthsMonotonicForNonNegativeK(t *testing.T) {
	base := utc(2026, time.March, 15, 0, 0, 0)
	yearMonth := func(m moment.Moment) int { return m.Time().Year()*12 + int(m.Time().Month()) }
	prev := yearMonth(base)
	for k := 0; k <= 36; k++ {
		got := yearMonth(base.AddMonths(k))
		assert.GreaterOrEqual(t, got, prev, "k=%d", k)
		prev = got
	}
}

func TestAddMonthsNegativeRollsBackAYear(t *testing.T) {
	mar := utc(2026, time.March, 15, 0, 0, 0)
	got := mar.AddMonths(-4)
	assert.Equal(t, time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), got.Time())
}

func TestAddRoutesEachGrainCorrectly(t *testing.T) {
	base := utc(2026, time.February, 20, 10, 30, 0)
	cases := []struct {
		name string
		comp moment.PeriodComp
		want time.Time
	}{
		{"hour", moment.PeriodComp{Grain: moment.Hour, Quantity: 3}, time.Date(2026, 2, 20, 13, 30, 0, 0, time.UTC)},
		{"minute", moment.PeriodComp{Grain: moment.Minute, Quantity: 45}, time.Date(2026, 2, 20, 11, 15, 0, 0, time.UTC)},
		{"second", moment.PeriodComp{Grain: moment.Second, Quantity: 90}, time.Date(2026, 2, 20, 10, 31, 30, 0, time.UTC)},
		{"day", moment.PeriodComp{Grain: moment.Day, Quantity: 10}, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)},
		{"week", moment.PeriodComp{Grain: moment.Week, Quantity: 2}, time.Date(2026, 3, 6, 10, 30, 0, 0, time.UTC)},
		{"quarter", moment.PeriodComp{Grain: moment.Quarter, Quantity: 1}, time.Date(2026, 5, 20, 10, 30, 0, 0, time.UTC)},
		{"year", moment.PeriodComp{Grain: moment.Year, Quantity: 1}, time.Date(2027, 2, 20, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Add(tc.comp).Time())
		})
	}
}

func TestSubIsAddNegated(t *testing.T) {
	base := utc(2026, time.February, 20, 10, 30, 0)
	comp := moment.PeriodComp{Grain: moment.Day, Quantity: 3}
	assert.Equal(t, base.Add(moment.PeriodComp{Grain: moment.Day, Quantity: -3}).Time(), base.Sub(comp).Time())
}

// moment.round_to(g) + one(g) > moment and moment.round_to(g) <= moment
// (spec.md §8 universal invariant), for every grain.
func TestRoundToInvariantHoldsForEveryGrain(t *testing.T) {
	m := utc(2026, time.February, 20, 10, 37, 42)
	for g := moment.Second; g <= moment.Year; g++ {
		t.Run(g.String(), func(t *testing.T) {
			rounded := m.RoundTo(g)
			assert.LessOrEqual(t, rounded.Compare(m), 0, "round_to(%s) must not be after moment", g)
			next := rounded.Add(moment.One(g))
			assert.Greater(t, next.Compare(m), 0, "round_to(%s)+one(%s) must be after moment", g, g)
		})
	}
}

func TestRoundToWeekGoesToMonday(t *testing.T) {
	// 2026-02-20 is a Friday.
	m := utc(2026, time.February, 20, 15, 0, 0)
	got := m.RoundTo(moment.Week)
	assert.Equal(t, time.Monday, got.Time().Weekday())
	assert.True(t, got.Before(m) || got.Equal(m))
}

func TestRoundToQuarterPicksQuarterStartMonth(t *testing.T) {
	m := utc(2026, time.May, 12, 9, 0, 0)
	got := m.RoundTo(moment.Quarter)
	assert.Equal(t, time.April, got.Time().Month())
	assert.Equal(t, 1, got.Time().Day())
}

func TestCompareAndOrdering(t *testing.T) {
	a := utc(2026, time.January, 1, 0, 0, 0)
	b := utc(2026, time.January, 2, 0, 0, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
}

func TestGrainOrderingAndNames(t *testing.T) {
	assert.True(t, moment.Second.Finer(moment.Minute))
	assert.False(t, moment.Year.Finer(moment.Day))
	assert.Equal(t, moment.Year, moment.Max(moment.Day, moment.Year))
	assert.Equal(t, moment.Day, moment.Min(moment.Day, moment.Year))
	assert.Equal(t, "hour", moment.Hour.String())
	assert.Contains(t, moment.Grain(99).String(), "Grain(99)")
}

func TestPeriodNegate(t *testing.T) {
	p := moment.Period{{Grain: moment.Day, Quantity: 3}, {Grain: moment.Hour, Quantity: -2}}
	neg := p.Negate()
	require.Len(t, neg, 2)
	assert.Equal(t, int64(-3), neg[0].Quantity)
	assert.Equal(t, int64(2), neg[1].Quantity)
}

func TestIntervalStartingAtImplicitEnd(t *testing.T) {
	start := utc(2026, time.February, 20, 0, 0, 0)
	iv := moment.StartingAt(start, moment.Day)
	assert.Equal(t, start.Time(), iv.Start().Time())
	assert.Equal(t, utc(2026, time.February, 21, 0, 0, 0).Time(), iv.EndMoment().Time())
}

func TestIntervalToRequiresOrderedOperandsAndTakesMaxGrain(t *testing.T) {
	a := moment.StartingAt(utc(2026, 2, 20, 9, 30, 0), moment.Minute)
	b := moment.StartingAt(utc(2026, 2, 20, 11, 0, 0), moment.Hour)
	span := a.To(b)
	assert.Equal(t, a.Start().Time(), span.Start().Time())
	assert.Equal(t, b.Start().Time(), span.EndMoment().Time())
	assert.Equal(t, moment.Hour, span.Grain())
}

// I.intersect(J) = Some(K) implies K subset-of I and K subset-of J
// (spec.md §8 universal invariant): K's span lies within both operands'.
func TestIntersectResultIsContainedInBothOperands(t *testing.T) {
	i := moment.Between(utc(2026, 2, 20, 9, 0, 0), utc(2026, 2, 20, 12, 0, 0), moment.Hour)
	j := moment.Between(utc(2026, 2, 20, 10, 0, 0), utc(2026, 2, 20, 13, 0, 0), moment.Hour)

	k, ok := i.Intersect(j)
	require.True(t, ok)
	assert.True(t, k.Start().Compare(i.Start()) >= 0 && k.EndMoment().Compare(i.EndMoment()) <= 0)
	assert.True(t, k.Start().Compare(j.Start()) >= 0 && k.EndMoment().Compare(j.EndMoment()) <= 0)
}

func TestIntersectDisjointIntervalsReportsFalse(t *testing.T) {
	i := moment.Between(utc(2026, 2, 20, 9, 0, 0), utc(2026, 2, 20, 10, 0, 0), moment.Hour)
	j := moment.Between(utc(2026, 2, 20, 11, 0, 0), utc(2026, 2, 20, 12, 0, 0), moment.Hour)
	_, ok := i.Intersect(j)
	assert.False(t, ok)
}

func TestIntersectIsSymmetricRegardlessOfOperandOrder(t *testing.T) {
	i := moment.Between(utc(2026, 2, 20, 9, 0, 0), utc(2026, 2, 20, 12, 0, 0), moment.Hour)
	j := moment.Between(utc(2026, 2, 20, 10, 0, 0), utc(2026, 2, 20, 13, 0, 0), moment.Hour)
	ij, ok1 := i.Intersect(j)
	ji, ok2 := j.Intersect(i)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, ij.Start().Time(), ji.Start().Time())
	assert.Equal(t, ij.EndMoment().Time(), ji.EndMoment().Time())
}

func TestUnionSpansFromFirstStartToSecondEnd(t *testing.T) {
	a := moment.StartingAt(utc(2026, 2, 20, 9, 0, 0), moment.Hour)
	b := moment.StartingAt(utc(2026, 2, 20, 11, 0, 0), moment.Hour)
	u := a.Union(b)
	assert.Equal(t, a.Start().Time(), u.Start().Time())
	assert.Equal(t, b.EndMoment().Time(), u.EndMoment().Time())
}

func TestContainsIsHalfOpen(t *testing.T) {
	iv := moment.StartingAt(utc(2026, 2, 20, 0, 0, 0), moment.Day)
	assert.True(t, iv.Contains(utc(2026, 2, 20, 0, 0, 0)))
	assert.True(t, iv.Contains(utc(2026, 2, 20, 23, 59, 59)))
	assert.False(t, iv.Contains(utc(2026, 2, 21, 0, 0, 0)))
}

func TestAfterStartsAtEnd(t *testing.T) {
	iv := moment.StartingAt(utc(2026, 2, 20, 0, 0, 0), moment.Day)
	tail := iv.After()
	assert.Equal(t, iv.EndMoment().Time(), tail.Start().Time())
}
