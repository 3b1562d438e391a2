package pt

import (
	"strings"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"segundo": moment.Second, "seg": moment.Second,
	"minuto": moment.Minute, "min": moment.Minute,
	"hora":      moment.Hour,
	"dia":       moment.Day,
	"semana":    moment.Week,
	"mes":       moment.Month, "mês": moment.Month,
	"trimestre": moment.Quarter,
	"ano":       moment.Year,
}

// addDurationRules mirrors original_source/grammar/pt/src/rules.rs's
// duration section (weeks/years carry bare "semana"/"ano" terminals): bare
// unit words, "<n> <unit>", "daqui a <duration>" and "<duration> atrás".
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`(segundos?|segs?|minutos?|mins?|horas?|dias?|semanas?|mes(?:es)?|m[eê]s|trimestres?|anos?)`)),
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
	b.Rule1("um <unit-of-duration>",
		rule.DimCheck("unit-of-duration", nil),
		func(m rule.Match) (value.Value, bool) {
			u := m.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: 1}}}, true
		})

	b.Rule2("daqui a <duration>",
		rule.Regex(b.Reg(`daqui a|em`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> atras",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`atr[aá]s`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("aproximadamente <duration>",
		rule.Regex(b.Reg(`aproximadamente|cerca de`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
