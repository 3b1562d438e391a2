package predicate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
)

func utc(y int, mo time.Month, d, h, mi, s int) moment.Moment {
	return moment.New(time.Date(y, mo, d, h, mi, s, 0, time.UTC))
}

// 2026-02-20 is a Friday.
var friday = utc(2026, time.February, 20, 10, 30, 0)

func TestCyclicWalksForwardAndBackward(t *testing.T) {
	c := predicate.Cyclic{G: moment.Day}
	future := predicate.Resolve(c, moment.StartingAt(friday, moment.Minute), predicate.Future, 3)
	require.Len(t, future, 3)
	assert.Equal(t, time.February, future[0].Start().Time().Month())
	assert.Equal(t, 20, future[0].Start().Time().Day())
	assert.Equal(t, 22, future[2].Start().Time().Day())

	past := predicate.Resolve(c, moment.StartingAt(friday, moment.Minute), predicate.Past, 2)
	require.Len(t, past, 2)
	assert.Equal(t, 20, past[0].Start().Time().Day())
	assert.Equal(t, 19, past[1].Start().Time().Day())
}

func TestFilteredKeepsOnlyMatchingInstances(t *testing.T) {
	mondays := predicate.Filtered{
		Base: predicate.Cyclic{G: moment.Day},
		Keep: func(iv moment.Interval) bool { return iv.Start().Time().Weekday() == time.Monday },
	}
	got := predicate.Resolve(mondays, moment.StartingAt(friday, moment.Minute), predicate.Future, 2)
	require.Len(t, got, 2)
	for _, iv := range got {
		assert.Equal(t, time.Monday, iv.Start().Time().Weekday())
	}
	assert.True(t, got[1].Start().After(got[0].Start()))
}

func TestIntersectFindsFinerInstanceInsideCoarser(t *testing.T) {
	// Every 3pm within every Monday.
	mondays := predicate.Filtered{
		Base: predicate.Cyclic{G: moment.Day},
		Keep: func(iv moment.Interval) bool { return iv.Start().Time().Weekday() == time.Monday },
	}
	threePM := predicate.Filtered{
		Base: predicate.Cyclic{G: moment.Hour},
		Keep: func(iv moment.Interval) bool { return iv.Start().Time().Hour() == 15 },
	}
	isect := predicate.Intersect{Coarse: mondays, Fine: threePM}
	got := predicate.Resolve(isect, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, time.Monday, got[0].Start().Time().Weekday())
	assert.Equal(t, 15, got[0].Start().Time().Hour())
}

func TestIntersectGrainIsFinerOfTheTwo(t *testing.T) {
	isect := predicate.Intersect{Coarse: predicate.Cyclic{G: moment.Month}, Fine: predicate.Cyclic{G: moment.Day}}
	assert.Equal(t, moment.Day, isect.Grain())
}

func TestTakeNSelectsNthZeroBased(t *testing.T) {
	days := predicate.Cyclic{G: moment.Day}
	zero := predicate.TakeN{Base: days, N: 0}
	second := predicate.TakeN{Base: days, N: 2}

	gotZero := predicate.Resolve(zero, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	gotSecond := predicate.Resolve(second, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, gotZero, 1)
	require.Len(t, gotSecond, 1)
	assert.Equal(t, 20, gotZero[0].Start().Time().Day())
	assert.Equal(t, 22, gotSecond[0].Start().Time().Day())
}

// not_immediate: if anchor itself satisfies P, nth(0, not_immediate) equals
// nth(1, immediate) (spec.md §8 universal invariant).
func TestNotImmediateSkipsAnAlreadyMatchingAnchor(t *testing.T) {
	days := predicate.Cyclic{G: moment.Day} // anchor's own day always matches a Day cycle
	notImmediate := predicate.TakeN{Base: days, N: 0, NotImmediate: true}
	immediateNth1 := predicate.TakeN{Base: days, N: 1}

	got := predicate.Resolve(notImmediate, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	want := predicate.Resolve(immediateNth1, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	require.Len(t, want, 1)
	assert.Equal(t, want[0].Start().Time(), got[0].Start().Time())
}

func TestNotImmediateHasNoEffectWhenAnchorDoesNotMatch(t *testing.T) {
	mondaysOnly := predicate.Filtered{
		Base: predicate.Cyclic{G: moment.Day},
		Keep: func(iv moment.Interval) bool { return iv.Start().Time().Weekday() == time.Monday },
	}
	notImmediate := predicate.TakeN{Base: mondaysOnly, N: 0, NotImmediate: true}
	plain := predicate.TakeN{Base: mondaysOnly, N: 0}

	got := predicate.Resolve(notImmediate, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	want := predicate.Resolve(plain, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	require.Len(t, want, 1)
	assert.Equal(t, want[0].Start().Time(), got[0].Start().Time())
}

// Span: P.to(Q).end >= P.to(Q).start; grain(P.to(Q)) = max(grain(P), grain(Q))
// (spec.md §8 universal invariant).
func TestSpanEndNeverPrecedesStartAndGrainIsMax(t *testing.T) {
	nineThirty := predicate.HourOfDay{Hour: 9, Minute: 30}
	eleven := predicate.HourOfDay{Hour: 11, Minute: 0}
	span := predicate.Span{From: nineThirty, To: eleven}

	assert.Equal(t, moment.Max(nineThirty.Grain(), eleven.Grain()), span.Grain())

	got := predicate.Resolve(span, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	assert.GreaterOrEqual(t, got[0].EndMoment().Compare(got[0].Start()), 0)
	assert.Equal(t, 9, got[0].Start().Time().Hour())
	assert.Equal(t, 30, got[0].Start().Time().Minute())
	assert.Equal(t, 11, got[0].EndMoment().Time().Hour())
}

func TestSpanInclusiveFoldsToIntervalEnd(t *testing.T) {
	mon := predicate.Filtered{Base: predicate.Cyclic{G: moment.Day}, Keep: func(iv moment.Interval) bool { return iv.Start().Time().Weekday() == time.Monday }}
	fri := predicate.Filtered{Base: predicate.Cyclic{G: moment.Day}, Keep: func(iv moment.Interval) bool { return iv.Start().Time().Weekday() == time.Friday }}
	span := predicate.Span{From: mon, To: fri, Inclusive: true}

	got := predicate.Resolve(span, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, time.Saturday, got[0].EndMoment().Time().Weekday())
}

func TestShiftOffsetsEveryYieldedInterval(t *testing.T) {
	s := predicate.Shift{Base: predicate.Cyclic{G: moment.Second}, Period: moment.Period{{Grain: moment.Hour, Quantity: 2}}}
	got := predicate.Resolve(s, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, friday.Add(moment.PeriodComp{Grain: moment.Hour, Quantity: 2}).Time(), got[0].Start().Time())
}

func TestHourOfDayWalksDayByDay(t *testing.T) {
	h := predicate.HourOfDay{Hour: 15, Minute: 0, Second: 0}
	got := predicate.Resolve(h, moment.StartingAt(friday, moment.Minute), predicate.Future, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 15, got[0].Start().Time().Hour())
	assert.Equal(t, 20, got[0].Start().Time().Day())
	assert.Equal(t, 21, got[1].Start().Time().Day())
}

func TestMarkBeforeYieldsSpanFromAnchorToBase(t *testing.T) {
	base := predicate.HourOfDay{Hour: 15, Minute: 0}
	m := predicate.Mark{Base: base, Dir: predicate.Before}
	got := predicate.Resolve(m, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 15, got[0].EndMoment().Time().Hour())
}

func TestMarkAfterYieldsOpenTailFromBaseEnd(t *testing.T) {
	base := predicate.HourOfDay{Hour: 15, Minute: 0}
	m := predicate.Mark{Base: base, Dir: predicate.AfterMark}
	baseGot := predicate.Resolve(base, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	got := predicate.Resolve(m, moment.StartingAt(friday, moment.Minute), predicate.Future, 1)
	require.Len(t, got, 1)
	require.Len(t, baseGot, 1)
	assert.Equal(t, baseGot[0].EndMoment().Time(), got[0].Start().Time())
}
