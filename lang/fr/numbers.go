package fr

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/fr/src/rules_number.rs:
// units 0-16, "quelques" (a few), tens 20-60, and scale words.
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"zero": 0, "zéro": 0,
		"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
		"six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10,
		"onze": 11, "douze": 12, "treize": 13, "quatorze": 14, "quinze": 15, "seize": 16,
	}
	b.Rule1("number (0..16)",
		rule.Regex(b.Reg(`(z[eé]ro|une?|deux|trois|quatre|cinq|six|sept|huit|neuf|dix|onze|douze|treize|quatorze|quinze|seize)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule1("quelques", rule.Regex(b.Reg(`quelques`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 3}, true
	})

	tens := map[string]int64{
		"vingt": 20, "trente": 30, "quarante": 40, "cinquante": 50, "soixante": 60,
	}
	b.Rule1("number (20..60)",
		rule.Regex(b.Reg(`(vingt|trente|quarante|cinquante|soixante)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := tens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule3("number (21..69)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 20 && i.Value <= 60 && i.Value%10 == 0 }),
		rule.Regex(b.Reg(`-|et `)),
		rule.IntegerCheckByRange(1, 19),
		func(a, _, c rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + c.Value.(value.Integer).Value}, true
		})

	b.Rule1("integer (numeric)",
		rule.Regex(b.Reg(`(\d{1,18})`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	scales := map[string]int64{"cent": 100, "mille": 1000, "million": 1000000, "milliard": 1000000000}
	b.Rule1("100, 1 000, 1 000 000",
		rule.Regex(b.Reg(`(cents?|mille|millions?|milliards?)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := scales[strings.TrimSuffix(strings.ToLower(m.Groups[1]), "s")]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v, Grp: true}, true
		})
	b.Rule2("<n> <scale>",
		rule.IntegerCheckByRange(1, 999),
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value * bm.Value.(value.Integer).Value, Grp: true}, true
		})
	b.Rule2("intersect (scaled + remainder)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		rule.IntegerCheckByRange(1, 999),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value, Grp: true}, true
		})

	b.Rule1("decimal number",
		rule.Regex(b.Reg(`(\d*,\d+)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseFloat(strings.Replace(m.Groups[1], ",", ".", 1), 64)
			if err != nil {
				return nil, false
			}
			return value.Float{Value: v}, true
		})
	b.Rule2("numbers prefixed with minus",
		rule.Regex(b.Reg(`-|moins\s?`)),
		rule.NumberCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			switch v := a.Value.(type) {
			case value.Integer:
				return value.Integer{Value: -v.Value, Grp: v.Grp}, true
			case value.Float:
				return value.Float{Value: -v.Value}, true
			default:
				return nil, false
			}
		})

	addOrdinalRules(b)
}

func addOrdinalRules(b *rule.Builder) {
	ordinalWords := map[string]int64{
		"premier": 1, "première": 1, "deuxieme": 2, "deuxième": 2, "second": 2,
		"troisieme": 3, "troisième": 3, "quatrieme": 4, "quatrième": 4,
		"cinquieme": 5, "cinquième": 5, "sixieme": 6, "sixième": 6,
		"septieme": 7, "septième": 7, "huitieme": 8, "huitième": 8,
		"neuvieme": 9, "neuvième": 9, "dixieme": 10, "dixième": 10,
	}
	b.Rule1("ordinals (1st..10th)",
		rule.Regex(b.Reg(`(premi[eè]re?|deuxi[eè]me|second|troisi[eè]me|quatri[eè]me|cinqui[eè]me|sixi[eè]me|septi[eè]me|huiti[eè]me|neuvi[eè]me|dixi[eè]me)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule1("ordinal (numeric)",
		rule.Regex(b.Reg(`0*(\d+)(?:er|ère|ème|eme)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule2("le <ordinal>",
		rule.Regex(b.Reg(`le|la`)),
		rule.OrdinalCheck(),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
}
