package chronolex_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/value"
)

var ref = moment.StartingAt(moment.New(time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)), moment.Minute)

func TestBuildRulesetCachesPerLanguage(t *testing.T) {
	rs1, err := chronolex.BuildRuleset(value.English)
	require.NoError(t, err)
	rs2, err := chronolex.BuildRuleset(value.English)
	require.NoError(t, err)
	assert.Same(t, rs1, rs2, "second BuildRuleset for the same language should hit the cache")

	rsEs, err := chronolex.BuildRuleset(value.Spanish)
	require.NoError(t, err)
	assert.NotSame(t, rs1, rsEs)
}

func TestBuildRulesetUnsupportedLanguage(t *testing.T) {
	_, err := chronolex.BuildRuleset(value.Language(999))
	assert.Error(t, err)
}

func TestParseAndResolveEnglish(t *testing.T) {
	rs, err := chronolex.BuildRuleset(value.English)
	require.NoError(t, err)

	results, err := chronolex.ParseAndResolve(context.Background(), "three days ago", rs, ref, false)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	found := false
	for _, r := range results {
		if r.Dim == "datetime" {
			found = true
			assert.Equal(t, "before", r.Direction)
		}
	}
	assert.True(t, found, "expected a resolved datetime reading, got %+v", results)
}

func TestParseAndResolveNilRuleset(t *testing.T) {
	_, err := chronolex.ParseAndResolve(context.Background(), "hello", nil, ref, false)
	assert.Error(t, err)
}

func TestParseWithLatentGatesBareNumbers(t *testing.T) {
	rs, err := chronolex.BuildRuleset(value.English)
	require.NoError(t, err)

	withoutLatent, err := chronolex.Parse(context.Background(), "42", rs, false)
	require.NoError(t, err)

	withLatent, err := chronolex.Parse(context.Background(), "42", rs, true)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(withLatent), len(withoutLatent))
}

func TestParseAllRunsEveryJobAndKeepsOrder(t *testing.T) {
	jobs := []chronolex.Job{
		{Text: "two weeks from now", Language: value.English, Ref: ref},
		{Text: "dentro de dos días", Language: value.Spanish, Ref: ref},
		{Text: "明天", Language: value.Chinese, Ref: ref},
	}
	results, err := chronolex.ParseAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.NoError(t, r.Err, "job %d", i)
	}
}

func TestParseAllReportsPerJobRulesetError(t *testing.T) {
	jobs := []chronolex.Job{
		{Text: "hello", Language: value.Language(999), Ref: ref},
		{Text: "one hour ago", Language: value.English, Ref: ref},
	}
	results, err := chronolex.ParseAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}

func TestParseAllRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []chronolex.Job{{Text: "one hour ago", Language: value.English, Ref: ref}}
	results, err := chronolex.ParseAll(ctx, jobs)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}
