package en

import (
	"strings"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"second": moment.Second, "sec": moment.Second,
	"minute": moment.Minute, "min": moment.Minute,
	"hour": moment.Hour, "hr": moment.Hour,
	"day":     moment.Day,
	"week":    moment.Week,
	"month":   moment.Month,
	"quarter": moment.Quarter,
	"year":    moment.Year, "yr": moment.Year,
}

// addDurationRules mirrors original_source/grammar/en/src/rules_datetime.rs's
// rules_datetime_with_duration: bare unit words, "<n> <unit>" composition,
// "in <duration>", "<duration> ago/hence", and duration-anchored datetime
// compositions ("<duration> after/before <datetime>").
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`(second|sec|minute|min|hour|hr|day|week|month|quarter|year|yr)s?`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := durationUnits[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.UnitOfDuration{Grain: g}, true
		})

	b.Rule2("<integer> <unit-of-duration>",
		rule.IntegerCheck(nil),
		rule.DimCheck("unit-of-duration", nil),
		func(a, bm rule.Match) (value.Value, bool) {
			n := a.Value.(value.Integer).Value
			u := bm.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: n}}}, true
		})
	b.Rule1("a <unit-of-duration>",
		rule.DimCheck("unit-of-duration", nil),
		func(m rule.Match) (value.Value, bool) {
			u := m.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: 1}}}, true
		})
	b.Rule3("<duration> and <duration>",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`and`)),
		rule.DurationCheck(),
		func(a, _, c rule.Match) (value.Value, bool) {
			ad := a.Value.(value.Duration)
			cd := c.Value.(value.Duration)
			return value.Duration{Comps: append(append([]moment.PeriodComp{}, ad.Comps...), cd.Comps...)}, true
		})

	b.Rule2("in <duration>",
		rule.Regex(b.Reg(`in`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule3("in <duration> from now",
		rule.Regex(b.Reg(`in`)),
		rule.DurationCheck(),
		rule.Regex(b.Reg(`from now`)),
		func(_, a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> ago",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`ago`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> hence",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`hence`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})

	b.Rule3("<duration> after <datetime>",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`after`)),
		rule.DatetimeCheck(nil),
		func(a, _, c rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			dt := c.Value.(value.Datetime)
			return dt.Shift(d.ToPeriod()), true
		})
	b.Rule3("<duration> before <datetime>",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`before`)),
		rule.DatetimeCheck(nil),
		func(a, _, c rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			dt := c.Value.(value.Datetime)
			return dt.Shift(d.Negate().ToPeriod()), true
		})

	b.Rule2("about <duration>",
		rule.Regex(b.Reg(`about|approx(?:\.|imately)?|around|roughly`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
