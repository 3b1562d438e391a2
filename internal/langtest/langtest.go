// Package langtest is test-only plumbing shared by every lang/<code>
// package's tests: running one phrase through the chart parser, the
// ranker, and the resolver, the way chronolex.ParseAndResolve does, without
// every grammar pack's test file repeating that wiring.
package langtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rank"
	"github.com/az-ai-labs/chronolex/resolve"
	"github.com/az-ai-labs/chronolex/rule"
)

// Ref is the fixed reference instant every grammar pack's tests resolve
// relative dates against: Friday, 2026-02-20 10:30 UTC.
var Ref = moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)

// Resolve runs text through rs with latent nodes eligible, ranks with the
// unweighted default, and resolves every winner against Ref.
func Resolve(t *testing.T, rs *rule.Ruleset, text string) []resolve.Resolved {
	t.Helper()
	nodes, err := chart.Parse(context.Background(), text, rs, chart.Options{WithLatent: true})
	require.NoError(t, err)
	winners := rank.Select(nodes, nil, true)
	return resolve.All(winners, text, Ref)
}

// ResolveDim runs Resolve and returns the first winning reading with the
// given Dim, failing the test if none matched.
func ResolveDim(t *testing.T, rs *rule.Ruleset, text, dim string) resolve.Resolved {
	t.Helper()
	for _, r := range Resolve(t, rs, text) {
		if r.Dim == dim {
			return r
		}
	}
	t.Fatalf("no %q reading found parsing %q", dim, text)
	return resolve.Resolved{}
}
