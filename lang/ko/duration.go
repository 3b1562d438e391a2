package ko

import (
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"초": moment.Second, "분": moment.Minute, "시간": moment.Hour,
	"날": moment.Day, "일": moment.Day,
	"주": moment.Week, "달": moment.Month,
	"해": moment.Year, "년": moment.Year,
}

// addDurationRules mirrors original_source/rules/src/ko.rs's rules_duration:
// bare unit terminals, "하루" as a dedicated day-duration terminal,
// "<integer> <unit>", and the postposition-final "in"/"ago" markers
// (안/내에, 이후, 이전/전) that follow rather than precede their duration.
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`초|분|시간?|날|일(?:간|동안)?|주일?|달(?:간|동안)?|해|연간|년(?:간|동안)?`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := durationUnits[m.Groups[0]]
			if !ok {
				return nil, false
			}
			return value.UnitOfDuration{Grain: g}, true
		})
	b.Rule1("haru (a day)", rule.Regex(b.Reg(`하루`)), func(rule.Match) (value.Value, bool) {
		return value.Duration{Comps: []moment.PeriodComp{{Grain: moment.Day, Quantity: 1}}}, true
	})

	b.Rule2("<integer> <unit-of-duration>",
		rule.IntegerCheck(nil),
		rule.DimCheck("unit-of-duration", nil),
		func(a, bm rule.Match) (value.Value, bool) {
			n := a.Value.(value.Integer).Value
			u := bm.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: n}}}, true
		})

	b.Rule2("<duration> an-e (in)",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`(?:안|내)에?`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> ihu (after)",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`이?후`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> jeon (ago)",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`이?전`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("daechung (about) <duration>",
		rule.Regex(b.Reg(`대충|약`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
