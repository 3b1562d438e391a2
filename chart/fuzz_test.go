package chart_test

import (
	"context"
	"testing"

	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

func fuzzRuleset(t testing.TB) *rule.Ruleset {
	t.Helper()
	b := rule.NewBuilder(value.English, nil)
	b.Rule1("digits", rule.Regex(b.Reg(`\d+`)), func(m rule.Match) (value.Value, bool) {
		n := int64(0)
		for _, c := range m.Text {
			n = n*10 + int64(c-'0')
		}
		return value.Integer{Value: n}, true
	})
	b.Rule1("word", rule.Regex(b.Reg(`[a-z]+`)), func(m rule.Match) (value.Value, bool) {
		return value.Ordinal{Value: int64(len(m.Text))}, true
	})
	b.Rule2("<number> o'clock", rule.NumberCheck(nil), rule.Regex(b.Reg(`o'clock`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value, true })
	rs, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

// FuzzParse exercises the only raw-string entry point into the chart
// saturation loop (spec.md §4.4): arbitrary bytes must never panic, and
// every produced node's span must stay within the input, matching the
// teacher's datetime.Extract fuzz convention
// (_examples/az-ai-labs-az-lang-nlp/datetime/fuzz_test.go).
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"book a restaurant for 4 people",
		"12 cats and 34 dogs",
		"it is 5 o'clock",
		"abc xyz 123",
		"\xff\xfe",
		"\x00four\x00",
		"a a a a a a a a a a",
		"999999999999999999999999999999",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	rs := fuzzRuleset(f)
	f.Fuzz(func(t *testing.T, s string) {
		nodes, err := chart.Parse(context.Background(), s, rs, chart.Options{WithLatent: true})
		if err != nil {
			t.Fatalf("Parse returned an error for a non-nil ruleset: %v", err)
		}
		for _, n := range nodes {
			if n.Start < 0 || n.End > len(s) || n.Start > n.End {
				t.Fatalf("invalid span Start=%d End=%d len=%d", n.Start, n.End, len(s))
			}
		}
	})
}
