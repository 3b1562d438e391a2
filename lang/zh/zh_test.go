package zh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/chronolex/internal/langtest"
	"github.com/az-ai-labs/chronolex/lang/zh"
)

func TestNumbers(t *testing.T) {
	rs, err := zh.Build()
	require.NoError(t, err)

	cases := []struct {
		text string
		want float64
	}{
		{"二十三", 23},
		{"一百", 100},
	}
	for _, c := range cases {
		r := langtest.ResolveDim(t, rs, c.text, "number")
		require.NotNil(t, r.Value)
		assert.Equal(t, c.want, *r.Value, "text %q", c.text)
	}
}

func TestMingtian(t *testing.T) {
	rs, err := zh.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "明天", "datetime")
	assert.Equal(t, "2026-02-21T00:00:00+00:00", *r.From)
}

func TestDuration(t *testing.T) {
	rs, err := zh.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "三小时", "duration")
	require.NotNil(t, r.Value)
	assert.Equal(t, 3*3600.0, *r.Value)
}

func TestMoney(t *testing.T) {
	rs, err := zh.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "50元", "amount-of-money")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
	assert.Equal(t, "CNY", r.Unit)
}

func TestPercentage(t *testing.T) {
	rs, err := zh.Build()
	require.NoError(t, err)
	r := langtest.ResolveDim(t, rs, "百分之五十", "percentage")
	require.NotNil(t, r.Value)
	assert.Equal(t, 50.0, *r.Value)
}
