// Package chronolex extracts structured numeric and temporal values —
// numbers, ordinals, dates, times, durations, temperatures, money amounts,
// and percentages — from free natural-language text across several
// languages.
//
// The pipeline is: normalise the input (package internal/textnorm), build
// or fetch a cached grammar ruleset for the requested language (package
// lang, memoized by internal/rulecache), saturate the bottom-up chart
// parser over every byte range (package chart), select a maximal
// non-overlapping set of winning nodes by trained feature weight (package
// rank), and anchor each surviving node to a reference instant (package
// resolve). BuildRuleset, Parse, and ParseAndResolve expose that pipeline
// at each of its natural layers; ParseAll fans it out concurrently across
// a batch of jobs in different languages.
//
// All exported functions are safe for concurrent use by multiple
// goroutines.
package chronolex

import (
	"context"
	"fmt"

	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/internal/rulecache"
	"github.com/az-ai-labs/chronolex/internal/textnorm"
	"github.com/az-ai-labs/chronolex/lang"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rank"
	"github.com/az-ai-labs/chronolex/resolve"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
	"golang.org/x/sync/errgroup"
)

var cache rulecache.Cache

// BuildRuleset returns the grammar ruleset for l, building it on first use
// and serving every later call for the same language from cache.
func BuildRuleset(l value.Language) (*rule.Ruleset, error) {
	return cache.Get(l, lang.Build)
}

// Parse normalises text, saturates the chart under rs, and ranks the
// result against the default (zero) weights, returning the winning,
// non-overlapping nodes. withLatent controls whether latent (needs an
// explicit unit or cue to stand alone, e.g. a bare "3" as a temperature)
// nodes are eligible to win.
//
// Most callers want ParseAndResolve; Parse is exposed for callers that
// need the raw chart nodes (spans, rule provenance) rather than resolved
// readings, or that supply their own trained Weights via ParseWithWeights.
func Parse(ctx context.Context, text string, rs *rule.Ruleset, withLatent bool) ([]chart.Node, error) {
	return ParseWithWeights(ctx, text, rs, nil, withLatent)
}

// ParseWithWeights is Parse with an explicit trained rank.Weights mapping
// in place of the unweighted default; pass nil for the zero-value
// Weights{} Parse uses.
func ParseWithWeights(ctx context.Context, text string, rs *rule.Ruleset, w rank.Weights, withLatent bool) ([]chart.Node, error) {
	if rs == nil {
		return nil, fmt.Errorf("chronolex: nil ruleset")
	}
	norm := textnorm.Normalize(text)
	nodes, err := chart.Parse(ctx, norm, rs, chart.Options{WithLatent: withLatent})
	if err != nil {
		return nil, err
	}
	return rank.Select(nodes, w, withLatent), nil
}

// ParseAndResolve parses text under rs and resolves every winning node
// against ref, returning the output reading for each. A node whose
// predicate has no match within the resolver's lookahead bound is simply
// absent from the result, not an error (see resolve.All).
func ParseAndResolve(ctx context.Context, text string, rs *rule.Ruleset, ref moment.Interval, withLatent bool) ([]resolve.Resolved, error) {
	nodes, err := Parse(ctx, text, rs, withLatent)
	if err != nil {
		return nil, err
	}
	return resolve.All(nodes, textnorm.Normalize(text), ref), nil
}

// Job is one unit of work for ParseAll: Text in Language, resolved against
// Ref, with WithLatent controlling latent-node eligibility exactly as in
// ParseAndResolve.
type Job struct {
	Text       string
	Language   value.Language
	Ref        moment.Interval
	WithLatent bool
}

// Result is one Job's outcome. Err is set instead of Resolved when the
// job's ruleset failed to build or its parse context was cancelled.
type Result struct {
	Resolved []resolve.Resolved
	Err      error
}

// ParseAll resolves every job concurrently, each against its own language's
// cached ruleset, and returns one Result per job in the same order as
// jobs. A single job's ruleset-build failure is reported in its own
// Result.Err and does not cancel the others. chart.Parse is itself
// best-effort on a cancelled context (it returns whatever it saturated so
// far rather than an error), so a ctx deadline that fires mid-batch is
// reflected as each still-pending job observing gctx.Err() before it
// starts, rather than as ParseAll's own return error.
func ParseAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			rs, err := BuildRuleset(j.Language)
			if err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			resolved, err := ParseAndResolve(gctx, j.Text, rs, j.Ref, j.WithLatent)
			if err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			results[i] = Result{Resolved: resolved}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // every job swallows its own error into its Result
	return results, nil
}
