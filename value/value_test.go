package value_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
	"github.com/az-ai-labs/chronolex/value"
)

func TestLanguageStringAndParseRoundTrip(t *testing.T) {
	for code, lang := range map[string]value.Language{
		"en": value.English, "es": value.Spanish, "fr": value.French,
		"it": value.Italian, "pt": value.Portuguese, "zh": value.Chinese,
		"ko": value.Korean,
	} {
		assert.Equal(t, code, lang.String())
		got, ok := value.ParseLanguage(code)
		require.True(t, ok)
		assert.Equal(t, lang, got)
	}
	_, ok := value.ParseLanguage("xx")
	assert.False(t, ok)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "after", value.Future.String())
	assert.Equal(t, "before", value.Past.String())
	assert.Equal(t, "", value.NoDirection.String())
}

func TestPrecisionString(t *testing.T) {
	assert.Equal(t, "exact", value.Exact.String())
	assert.Equal(t, "approximate", value.Approximate.String())
}

func TestFormStringAndMarshalJSON(t *testing.T) {
	assert.Equal(t, "time-of-day", value.FormTimeOfDay.String())
	b, err := json.Marshal(value.FormTimeOfDay)
	require.NoError(t, err)
	assert.Equal(t, `"time-of-day"`, string(b))
}

func TestDimensionTagsAndLatency(t *testing.T) {
	cases := []struct {
		v      value.Value
		dim    string
		latent bool
	}{
		{value.Integer{Value: 1, LatentValue: true}, "number", true},
		{value.Float{Value: 1.5}, "number", false},
		{value.Ordinal{Value: 3}, "ordinal", false},
		{value.UnitOfDuration{Grain: moment.Hour}, "unit-of-duration", false},
		{value.Cycle{Grain: moment.Day}, "cycle", false},
		{value.Duration{LatentValue: true}, "duration", true},
		{value.MoneyUnit{Symbol: "$"}, "money-unit", false},
		{value.AmountOfMoney{Value: 3, LatentValue: true}, "amount-of-money", true},
		{value.Temperature{Value: 3, LatentValue: true}, "temperature", true},
		{value.Percentage{Value: 50}, "percentage", false},
		{value.RelativeMinute{Value: 15}, "relative-minute", false},
		{value.Datetime{}, "datetime", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.dim, tc.v.Dim())
		assert.Equal(t, tc.latent, tc.v.Latent())
	}
}

func TestDurationNegateFlipsEveryComponent(t *testing.T) {
	d := value.Duration{Comps: []moment.PeriodComp{
		{Grain: moment.Hour, Quantity: 2},
		{Grain: moment.Minute, Quantity: -15},
	}}
	neg := d.Negate()
	require.Len(t, neg.Comps, 2)
	assert.Equal(t, int64(-2), neg.Comps[0].Quantity)
	assert.Equal(t, int64(15), neg.Comps[1].Quantity)
}

func TestDurationToPeriod(t *testing.T) {
	d := value.Duration{Comps: []moment.PeriodComp{{Grain: moment.Day, Quantity: 3}}}
	p := d.ToPeriod()
	require.Len(t, p, 1)
	assert.Equal(t, moment.Day, p[0].Grain)
}

func TestIntegerFloatAndGrain(t *testing.T) {
	i := value.Integer{Value: 42}
	assert.Equal(t, 42.0, i.Float().Value)
	assert.Equal(t, 2, value.Integer{Value: 1900}.Grain())
	assert.Equal(t, 0, value.Integer{Value: 19}.Grain())
}

func TestDatetimeNotLatentClearsFlagOnly(t *testing.T) {
	d := value.Datetime{LatentValue: true, FormTag: value.FormMonth}
	out := d.NotLatent()
	assert.False(t, out.Latent())
	assert.Equal(t, value.FormMonth, out.FormTag)
}

func TestDatetimeWithFormReplacesTag(t *testing.T) {
	d := value.Datetime{FormTag: value.FormMonth}
	assert.Equal(t, value.FormYear, d.WithForm(value.FormYear).FormTag)
}

func TestDatetimeIntersectWalksCoarserAndKeepsFinerInside(t *testing.T) {
	// Every Monday intersected with 3pm every day -> Monday at 3pm.
	monday := value.DayOfWeek(time.Monday)
	threePM := value.HourMinuteSecond(15, 0, 0, false)
	combined := monday.Intersect(threePM)

	ref := moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)
	got := predicate.Resolve(combined.Pred, ref, predicate.Future, 1)
	require.Len(t, got, 1)
	assert.Equal(t, time.Monday, got[0].Start().Time().Weekday())
	assert.Equal(t, 15, got[0].Start().Time().Hour())
}

func TestDatetimeIntersectCombinesPrecisionAsApproximateIfEither(t *testing.T) {
	a := value.Datetime{Pred: predicate.Cyclic{G: moment.Day}, Prec: value.Approximate}
	b := value.Datetime{Pred: predicate.Cyclic{G: moment.Hour}}
	assert.Equal(t, value.Approximate, a.Intersect(b).Prec)
}

func TestDatetimeTheNthNotImmediateVsTheNth(t *testing.T) {
	ref := moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)
	base := value.Datetime{Pred: predicate.Cyclic{G: moment.Day}}
	skipAnchor := base.TheNthNotImmediate(0)
	keepAnchor := base.TheNth(0)

	skipGot := predicate.Resolve(skipAnchor.Pred, ref, predicate.Future, 1)
	keepGot := predicate.Resolve(keepAnchor.Pred, ref, predicate.Future, 1)
	require.Len(t, skipGot, 1)
	require.Len(t, keepGot, 1)
	assert.Equal(t, 20, keepGot[0].Start().Time().Day())
	assert.Equal(t, 21, skipGot[0].Start().Time().Day())
}

func TestDatetimeSpanToBuildsSpanPredicate(t *testing.T) {
	from := value.HourMinuteSecond(9, 30, 0, false)
	to := value.HourMinuteSecond(11, 0, 0, false)
	span := from.SpanTo(to, false)
	_, ok := span.Pred.(predicate.Span)
	assert.True(t, ok)
}

func TestDatetimeShiftOffsetsPredicate(t *testing.T) {
	base := value.Datetime{Pred: predicate.Cyclic{G: moment.Day}}
	shifted := base.Shift(moment.Period{{Grain: moment.Hour, Quantity: 5}})
	_, ok := shifted.Pred.(predicate.Shift)
	assert.True(t, ok)
}
