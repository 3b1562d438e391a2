package it

import (
	"strings"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"secondo": moment.Second, "secondi": moment.Second, "sec": moment.Second,
	"minuto": moment.Minute, "minuti": moment.Minute, "min": moment.Minute,
	"ora": moment.Hour, "ore": moment.Hour,
	"giorno": moment.Day, "giorni": moment.Day,
	"settimana": moment.Week, "settimane": moment.Week,
	"mese": moment.Month, "mesi": moment.Month,
	"trimestre": moment.Quarter, "trimestri": moment.Quarter,
	"anno": moment.Year, "anni": moment.Year,
}

// addDurationRules mirrors the Italian grammar's duration compositions:
// bare unit words, "<n> <unit>", "tra <duration>" and "<duration> fa".
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`(second[oi]|secs?|minut[oi]|mins?|or[ea]|giorni?|settiman[ea]|mes[ei]|trimestr[ei]|ann[oi])`)),
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
	b.Rule1("un <unit-of-duration>",
		rule.DimCheck("unit-of-duration", nil),
		func(m rule.Match) (value.Value, bool) {
			u := m.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: 1}}}, true
		})

	b.Rule2("tra <duration>",
		rule.Regex(b.Reg(`tra|fra`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> fa",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`fa`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("circa <duration>",
		rule.Regex(b.Reg(`circa|all['’]incirca`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
