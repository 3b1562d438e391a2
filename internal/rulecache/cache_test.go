package rulecache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/internal/rulecache"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

func TestGetBuildsOnceAndCachesTheResult(t *testing.T) {
	var c rulecache.Cache
	var calls int
	build := func(l value.Language) (*rule.Ruleset, error) {
		calls++
		return &rule.Ruleset{Language: l}, nil
	}

	rs1, err := c.Get(value.English, build)
	require.NoError(t, err)
	rs2, err := c.Get(value.English, build)
	require.NoError(t, err)

	assert.Same(t, rs1, rs2)
	assert.Equal(t, 1, calls)
}

func TestGetCachesBuildErrorsToo(t *testing.T) {
	var c rulecache.Cache
	var calls int
	wantErr := errors.New("boom")
	build := func(value.Language) (*rule.Ruleset, error) {
		calls++
		return nil, wantErr
	}

	_, err1 := c.Get(value.Language(999), build)
	_, err2 := c.Get(value.Language(999), build)

	assert.Equal(t, wantErr, err1)
	assert.Equal(t, wantErr, err2)
	assert.Equal(t, 1, calls)
}

func TestGetKeysByLanguageIndependently(t *testing.T) {
	var c rulecache.Cache
	build := func(l value.Language) (*rule.Ruleset, error) {
		return &rule.Ruleset{Language: l}, nil
	}

	rsEn, err := c.Get(value.English, build)
	require.NoError(t, err)
	rsEs, err := c.Get(value.Spanish, build)
	require.NoError(t, err)

	assert.NotSame(t, rsEn, rsEs)
	assert.Equal(t, value.English, rsEn.Language)
	assert.Equal(t, value.Spanish, rsEs.Language)
}

func TestFlushForcesRebuild(t *testing.T) {
	var c rulecache.Cache
	var calls int
	build := func(l value.Language) (*rule.Ruleset, error) {
		calls++
		return &rule.Ruleset{Language: l}, nil
	}

	_, err := c.Get(value.English, build)
	require.NoError(t, err)
	c.Flush()
	_, err = c.Get(value.English, build)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestGetIsSafeForConcurrentUse(t *testing.T) {
	var c rulecache.Cache
	build := func(l value.Language) (*rule.Ruleset, error) {
		return &rule.Ruleset{Language: l}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get(value.English, build)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
