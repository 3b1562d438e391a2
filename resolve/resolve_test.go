package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
	"github.com/az-ai-labs/chronolex/resolve"
	"github.com/az-ai-labs/chronolex/value"
)

var ref = moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)

func TestResolveScalarDimensions(t *testing.T) {
	r, ok := resolve.Resolve(value.Integer{Value: 42}, ref)
	require.True(t, ok)
	assert.Equal(t, "number", r.Dim)
	require.NotNil(t, r.Value)
	assert.Equal(t, 42.0, *r.Value)

	r, ok = resolve.Resolve(value.Percentage{Value: 50}, ref)
	require.True(t, ok)
	assert.Equal(t, "percentage", r.Dim)
	assert.Equal(t, 50.0, *r.Value)
}

func TestResolveDurationSumsComponentsInSeconds(t *testing.T) {
	d := value.Duration{Comps: []moment.PeriodComp{
		{Grain: moment.Hour, Quantity: 2},
		{Grain: moment.Minute, Quantity: 30},
	}}
	r, ok := resolve.Resolve(d, ref)
	require.True(t, ok)
	assert.Equal(t, "duration", r.Dim)
	assert.Equal(t, 2*3600.0+30*60.0, *r.Value)
}

func TestResolveDatetimeWalksPredicateFromRef(t *testing.T) {
	dt := value.CycleN(moment.Day, 1)
	r, ok := resolve.Resolve(dt, ref)
	require.True(t, ok)
	assert.Equal(t, "datetime", r.Dim)
	require.NotNil(t, r.From)
	assert.Equal(t, "2026-02-21T00:00:00+00:00", *r.From)
}

func TestResolveDatetimeReportsDirectionString(t *testing.T) {
	dt := value.Ago(moment.Period{{Grain: moment.Day, Quantity: 2}}, value.Exact)
	r, ok := resolve.Resolve(dt, ref)
	require.True(t, ok)
	assert.Equal(t, "before", r.Direction)
}

func TestResolveDatetimeFailsWhenPredicateNeverMatches(t *testing.T) {
	dt := value.Datetime{Pred: predicate.Filtered{
		Base: predicate.Cyclic{G: moment.Day},
		Keep: func(moment.Interval) bool { return false },
	}}
	_, ok := resolve.Resolve(dt, ref)
	assert.False(t, ok)
}

func TestAllDropsUnresolvableNodesAndPopulatesMatchedText(t *testing.T) {
	text := "42 days"
	nodes := []chart.Node{
		{Value: value.Integer{Value: 42}, Start: 0, End: 2, RuleID: 1, RuleName: "number"},
		{Value: value.Datetime{Pred: predicate.Filtered{
			Base: predicate.Cyclic{G: moment.Day},
			Keep: func(moment.Interval) bool { return false },
		}}, Start: 3, End: 7, RuleID: 2, RuleName: "unresolvable"},
	}
	got := resolve.All(nodes, text, ref)
	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].Text)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 2, got[0].End)
}
