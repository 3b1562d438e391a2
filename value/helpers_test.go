package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
	"github.com/az-ai-labs/chronolex/value"
)

var helpersRef = moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)

func TestCycleNTodayTomorrowYesterday(t *testing.T) {
	today := predicate.Resolve(value.CycleN(moment.Day, 0).Pred, helpersRef, predicate.Future, 1)
	tomorrow := predicate.Resolve(value.CycleN(moment.Day, 1).Pred, helpersRef, predicate.Future, 1)
	yesterday := predicate.Resolve(value.CycleN(moment.Day, -1).Pred, helpersRef, predicate.Future, 1)
	require.Len(t, today, 1)
	require.Len(t, tomorrow, 1)
	require.Len(t, yesterday, 1)
	assert.Equal(t, 20, today[0].Start().Time().Day())
	assert.Equal(t, 21, tomorrow[0].Start().Time().Day())
	assert.Equal(t, 19, yesterday[0].Start().Time().Day())
}

func TestCycleNthAfterOffsetsFromBaseOccurrence(t *testing.T) {
	monday := value.DayOfWeek(time.Monday)
	secondMondayAfter := value.CycleNthAfter(moment.Week, 1, monday)
	got := predicate.Resolve(secondMondayAfter.Pred, helpersRef, predicate.Future, 1)
	base := predicate.Resolve(monday.Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	require.Len(t, base, 1)
	assert.True(t, got[0].Start().After(base[0].Start()))
}

func TestDayOfWeekFiltersToTheNamedWeekday(t *testing.T) {
	got := predicate.Resolve(value.DayOfWeek(time.Wednesday).Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, time.Wednesday, got[0].Start().Time().Weekday())
	assert.Equal(t, value.FormDayOfWeek, value.DayOfWeek(time.Wednesday).FormTag)
}

func TestMonthFiltersToTheNamedMonth(t *testing.T) {
	got := predicate.Resolve(value.Month(12).Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, time.December, got[0].Start().Time().Month())
}

func TestDayOfMonthFiltersToTheNamedDay(t *testing.T) {
	got := predicate.Resolve(value.DayOfMonth(1).Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Start().Time().Day())
}

func TestYearReturnsJanuaryFirstOfThatYear(t *testing.T) {
	got := predicate.Resolve(value.Year(2030).Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 2030, got[0].Start().Time().Year())
	assert.Equal(t, time.January, got[0].Start().Time().Month())
	assert.Equal(t, 1, got[0].Start().Time().Day())
}

func TestHourMinuteSecondTagsTimeOfDayForm(t *testing.T) {
	dt := value.HourMinuteSecond(15, 30, 0, true)
	assert.Equal(t, value.FormTimeOfDay, dt.FormTag)
	assert.True(t, dt.TwelveHour)
	hod, ok := dt.Pred.(predicate.HourOfDay)
	require.True(t, ok)
	assert.Equal(t, 15, hod.Hour)
	assert.Equal(t, 30, hod.Minute)
}

func TestInPresentWalksForwardFromAnchor(t *testing.T) {
	dt := value.InPresent(moment.Period{{Grain: moment.Hour, Quantity: 2}}, value.Exact)
	assert.Equal(t, value.Future, dt.Dir)
	got := predicate.Resolve(dt.Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Start().Time().Hour())
}

func TestAgoWalksBackwardFromAnchorAndTagsPastDirection(t *testing.T) {
	dt := value.Ago(moment.Period{{Grain: moment.Day, Quantity: 2}}, value.Exact)
	assert.Equal(t, value.Past, dt.Dir)
	got := predicate.Resolve(dt.Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 18, got[0].Start().Time().Day())
}

func TestPartOfDayValueTagsFormAndNamedWindow(t *testing.T) {
	morning := value.PartOfDayValue(value.Morning)
	assert.Equal(t, value.FormPartOfDay, morning.FormTag)
	assert.Equal(t, value.Morning, morning.PartOfDay)

	got := predicate.Resolve(morning.Pred, helpersRef, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Start().Time().Hour())
	assert.Equal(t, 12, got[0].EndMoment().Time().Hour())
}
