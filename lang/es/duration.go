package es

import (
	"strings"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"segundo": moment.Second, "seg": moment.Second,
	"minuto": moment.Minute, "min": moment.Minute,
	"hora": moment.Hour, "h": moment.Hour,
	"dia": moment.Day, "día": moment.Day,
	"semana":    moment.Week,
	"mes":       moment.Month,
	"trimestre": moment.Quarter,
	"ano":       moment.Year, "año": moment.Year,
}

// addDurationRules mirrors original_source/grammar/es/src/rules_datetime.rs's
// duration compositions: bare unit words, "<n> <unit>", "dentro de
// <duration>", and "hace <duration>".
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`(segundos?|segs?|minutos?|mins?|horas?|d[ií]as?|semanas?|mes(?:es)?|trimestres?|a[ñn]os?)`)),
		func(m rule.Match) (value.Value, bool) {
			word := strings.ToLower(m.Groups[1])
			g, ok := durationUnits[word]
			if !ok {
				g, ok = durationUnits[strings.TrimSuffix(word, "s")]
			}
			if !ok {
				g, ok = durationUnits[strings.TrimSuffix(word, "es")]
			}
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

	b.Rule2("dentro de <duration>",
		rule.Regex(b.Reg(`dentro de|en`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("hace <duration>",
		rule.Regex(b.Reg(`hace`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> despues",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`despu[eé]s`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})

	b.Rule2("aproximadamente <duration>",
		rule.Regex(b.Reg(`aproximadamente|casi|alrededor de`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
