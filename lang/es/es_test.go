package es_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/internal/langtest"
	"github.com/az-ai-labs/chronolex/lang/es"
)

func TestNumbers(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)

	cases := []struct {
		text string
		want float64
	}{
		{"veintitrés", 23},
		{"treinta y cinco", 35},
		{"cien", 100},
	}
	for _, c := range cases {
		r := langtest.ResolveDim(t, rs, c.text, "number")
		require.NotNil(t, r.Value)
		assert.Equal(t, c.want, *r.Value, "text %q", c.text)
	}
}

func TestManana(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "mañana", "datetime")
	assert.Equal(t, "2026-02-21T00:00:00+00:00", *r.From)
}

func TestLunesPasadoPinsPastDirection(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "lunes pasado", "datetime")
	assert.Equal(t, "before", r.Direction)
}

func TestDuration(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "tres horas", "duration")
	require.NotNil(t, r.Value)
	assert.Equal(t, 3*3600.0, *r.Value)
}

func TestMoney(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 euros", "amount-of-money")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
	assert.Equal(t, "€", r.Unit)
}

func TestPercentage(t *testing.T) {
	rs, err := es.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50 por ciento", "percentage")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
}
