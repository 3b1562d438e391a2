package pt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/internal/langtest"
	"github.com/az-ai-labs/chronolex/lang/pt"
)

func TestNumbers(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)

	cases := []struct {
		text string
		want float64
	}{
		{"vinte e tres", 23},
		{"cem", 100},
	}
	for _, c := range cases {
		r := langtest.ResolveDim(t, rs, c.text, "number")
		require.NotNil(t, r.Value)
		assert.Equal(t, c.want, *r.Value, "text %q", c.text)
	}
}

func TestAmanha(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "amanha", "datetime")
	assert.Equal(t, "2026-02-21T00:00:00+00:00", *r.From)
}

func TestSegundaFeiraPassadaPinsPastDirection(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "segunda-feira passada", "datetime")
	assert.Equal(t, "before", r.Direction)
}

func TestDuration(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "tres horas", "duration")
	require.NotNil(t, r.Value)
	assert.Equal(t, 3*3600.0, *r.Value)
}

func TestMoney(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 euros", "amount-of-money")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
	assert.Equal(t, "€", r.Unit)
}

func TestPercentage(t *testing.T) {
	rs, err := pt.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 por cento", "percentage")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
}
