package it

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/it/src/rules_number.rs:
// units 0-19, tens 20-90, "e" (and) composition, and scale words.
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"zero": 0,
		"uno":  1, "un": 1, "una": 1,
		"due": 2, "tre": 3, "tré": 3, "quattro": 4, "cinque": 5,
		"sei": 6, "sette": 7, "otto": 8, "nove": 9, "dieci": 10,
		"undici": 11, "dodici": 12, "tredici": 13, "quattordici": 14,
		"quindici": 15, "sedici": 16, "diciassette": 17, "diciotto": 18, "diciannove": 19,
	}
	b.Rule1("number (0..19)",
		rule.Regex(b.Reg(`(dici(?:assette|otto|annove)|(?:un|do|tre|quattor|quin|se)dici|zero|un[oa']?|due|tr[eé]|quattro|cinque|sei|sette|otto|nove|dieci)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[strings.TrimSuffix(strings.ToLower(m.Groups[1]), "'")]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	tens := map[string]int64{
		"venti": 20, "trenta": 30, "quaranta": 40, "cinquanta": 50,
		"sessanta": 60, "settanta": 70, "ottanta": 80, "novanta": 90,
	}
	b.Rule1("number (20..90)",
		rule.Regex(b.Reg(`(venti|trenta|quaranta|cinquanta|sessanta|settanta|ottanta|novanta)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := tens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule2("number (21..99)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 20 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.IntegerCheckByRange(1, 9),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value}, true
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

	scales := map[string]int64{"cento": 100, "mille": 1000, "milione": 1000000, "milioni": 1000000, "miliardo": 1000000000}
	b.Rule1("100, 1 000, 1 000 000",
		rule.Regex(b.Reg(`(cento|mille|milion[ei]|miliard[oi])`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := scales[strings.ToLower(m.Groups[1])]
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
	b.Rule3("intersect with and",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		rule.Regex(b.Reg(`e`)),
		rule.IntegerCheckByRange(1, 999),
		func(a, _, c rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + c.Value.(value.Integer).Value, Grp: true}, true
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
		rule.Regex(b.Reg(`-|meno\s?`)),
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
		"primo": 1, "prima": 1, "secondo": 2, "terzo": 3, "quarto": 4, "quinto": 5,
		"sesto": 6, "settimo": 7, "ottavo": 8, "nono": 9, "decimo": 10,
	}
	b.Rule1("ordinals (1st..10th)",
		rule.Regex(b.Reg(`(prim[oa]|secondo|terzo|quarto|quinto|sesto|settimo|ottavo|nono|decimo)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule1("ordinal (numeric)",
		rule.Regex(b.Reg(`0*(\d+)[ºª]`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule2("il <ordinal>",
		rule.Regex(b.Reg(`il|la`)),
		rule.OrdinalCheck(),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
}
