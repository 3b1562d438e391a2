package it_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/internal/langtest"
	"github.com/az-ai-labs/chronolex/lang/it"
)

func TestNumbers(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)

	cases := []struct {
		text string
		want float64
	}{
		{"venti tre", 23},
		{"cento", 100},
	}
	for _, c := range cases {
		r := langtest.ResolveDim(t, rs, c.text, "number")
		require.NotNil(t, r.Value)
		assert.Equal(t, c.want, *r.Value, "text %q", c.text)
	}
}

func TestDomani(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "domani", "datetime")
	assert.Equal(t, "2026-02-21T00:00:00+00:00", *r.From)
}

func TestLunediScorsoPinsPastDirection(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "lunedì scorso", "datetime")
	assert.Equal(t, "before", r.Direction)
}

func TestDuration(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "tre ore", "duration")
	require.NotNil(t, r.Value)
	assert.Equal(t, 3*3600.0, *r.Value)
}

func TestMoney(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 euro", "amount-of-money")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
	assert.Equal(t, "€", r.Unit)
}

func TestPercentage(t *testing.T) {
	rs, err := it.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 per cento", "percentage")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
}
