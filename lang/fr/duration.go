package fr

import (
	"strings"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"seconde": moment.Second, "sec": moment.Second,
	"minute": moment.Minute, "min": moment.Minute,
	"heure":     moment.Hour,
	"jour":      moment.Day,
	"semaine":   moment.Week,
	"mois":      moment.Month,
	"trimestre": moment.Quarter,
	"an":        moment.Year, "annee": moment.Year, "année": moment.Year,
}

// addDurationRules mirrors original_source/grammar/fr/src/training.rs's
// duration phrasing: bare unit words, "<n> <unit>", "dans <duration>",
// and "il y a <duration>".
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`(secondes?|secs?|minutes?|mins?|heures?|jours?|semaines?|mois|trimestres?|ann[eé]es?|ans?)`)),
		func(m rule.Match) (value.Value, bool) {
			word := strings.ToLower(m.Groups[1])
			g, ok := durationUnits[word]
			if !ok {
				g, ok = durationUnits[strings.TrimSuffix(word, "s")]
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

	b.Rule2("dans <duration>",
		rule.Regex(b.Reg(`dans`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("il y a <duration>",
		rule.Regex(b.Reg(`il y a`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("environ <duration>",
		rule.Regex(b.Reg(`environ|approximativement`)),
		rule.DurationCheck(),
		func(_, a rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			d.Precision = value.Approximate
			return d, true
		})
}
