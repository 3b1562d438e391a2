package pt

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/pt/src/rules.rs's number
// section: units 0-10, numeric integers with "." thousands separator, and
// decimal numbers using "," as the separator.
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"cero": 0, "zero": 0,
		"um": 1, "uma": 1, "dois": 2, "duas": 2,
		"tres": 3, "três": 3, "trés": 3, "quatro": 4, "cinco": 5,
		"seis": 6, "séis": 6, "sete": 7, "oito": 8, "nove": 9, "dez": 10,
	}
	b.Rule1("number (0..10)",
		rule.Regex(b.Reg(`(cero|zero|uma?|dois|duas|tr[eéê]s|quatro|cinco|s[eé]is|sete|oito|nove|dez)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	tens := map[string]int64{
		"vinte": 20, "trinta": 30, "quarenta": 40, "cinquenta": 50,
		"sessenta": 60, "setenta": 70, "oitenta": 80, "noventa": 90,
	}
	b.Rule1("number (20..90)",
		rule.Regex(b.Reg(`(vinte|trinta|quarenta|cinquenta|sessenta|setenta|oitenta|noventa)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := tens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule3("number (21..99)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 20 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.Regex(b.Reg(`e`)),
		rule.IntegerCheckByRange(1, 9),
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
	b.Rule1("integer with thousands separator .",
		rule.Regex(b.Reg(`(\d{1,3}(\.\d\d\d){1,5})`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(strings.ReplaceAll(m.Groups[1], ".", ""), 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	scales := map[string]int64{"cem": 100, "cento": 100, "mil": 1000, "milhao": 1000000, "milhão": 1000000}
	b.Rule1("100, 1 000, 1 000 000",
		rule.Regex(b.Reg(`(cem|cento|mil|milh(?:ao|ão|ões|oes))`)),
		func(m rule.Match) (value.Value, bool) {
			word := strings.ToLower(m.Groups[1])
			if strings.HasPrefix(word, "milh") {
				word = "milhao"
			}
			v, ok := scales[word]
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
		rule.Regex(b.Reg(`-|menos\s?`)),
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
		"primeiro": 1, "primeira": 1, "segundo": 2, "terceiro": 3, "quarto": 4, "quinto": 5,
		"sexto": 6, "setimo": 7, "sétimo": 7, "oitavo": 8, "nono": 9, "decimo": 10, "décimo": 10,
	}
	b.Rule1("ordinals (1st..10th)",
		rule.Regex(b.Reg(`(primeiro|primeira|segundo|terceiro|quarto|quinto|sexto|s[eé]timo|oitavo|nono|d[eé]cimo)`)),
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
	b.Rule2("o <ordinal>",
		rule.Regex(b.Reg(`o|a`)),
		rule.OrdinalCheck(),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
}
