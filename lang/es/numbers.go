package es

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/es/src/rules_number.rs:
// units 0-15, the "y" (and) teen/tens composition, tens 20-90, and scale
// words (cien/ciento, mil, millón).
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"cero": 0, "zero": 0,
		"uno": 1, "un": 1, "una": 1,
		"dos": 2, "tres": 3, "trés": 3, "cuatro": 4, "cinco": 5,
		"seis": 6, "séis": 6, "siete": 7, "ocho": 8, "nueve": 9,
		"diez": 10, "dies": 10, "once": 11, "doce": 12, "trece": 13,
		"catorce": 14, "quince": 15,
	}
	b.Rule1("number (0..15)",
		rule.Regex(b.Reg(`(zero|cero|un[oa]?|dos|tr[ée]s|cuatro|cinco|s[eé]is|siete|ocho|nueve|die[zs]|once|doce|trece|catorce|quince)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	teens := map[string]int64{
		"dieciseis": 16, "diesiseis": 16, "diesiséis": 16, "dieciséis": 16,
		"diecisiete": 17, "dieciocho": 18, "diecinueve": 19,
		"veintiuno": 21, "veintiuna": 21, "veintiún": 21, "veintidós": 22, "veintidos": 22,
		"veintitrés": 23, "veintitres": 23, "veinticuatro": 24, "veinticinco": 25,
		"veintiséis": 26, "veintiseis": 26, "veintisiete": 27, "veintiocho": 28, "veintinueve": 29,
	}
	b.Rule1("number (16..19, 21..29)",
		rule.Regex(b.Reg(`(die[cs]i(?:s[eéè]is|siete|ocho|nueve)|veinti(?:(?:un[oa]|[ùuú]n)|d[oó]s|tr[eéè]s|cuatro|cinco|s[eéè]is|siete|ocho|nueve))`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := teens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	tens := map[string]int64{
		"veinte": 20, "treinta": 30, "cuarenta": 40, "cincuenta": 50,
		"sesenta": 60, "setenta": 70, "ochenta": 80, "noventa": 90,
	}
	b.Rule1("number (20..90)",
		rule.Regex(b.Reg(`(veinte|treinta|cuarenta|cincuenta|sesenta|setenta|ochenta|noventa)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := tens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule3("number (31..39 ... 91..99)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 30 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.Regex(b.Reg(`y`)),
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

	scales := map[string]int64{"cien": 100, "ciento": 100, "mil": 1000, "millón": 1000000, "millon": 1000000}
	b.Rule1("100, 1 000, 1 000 000",
		rule.Regex(b.Reg(`(cien(?:to)?|mil|millon(?:es)?|mill[oó]n)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := scales[strings.ToLower(strings.TrimSuffix(m.Groups[1], "es"))]
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
		"primero": 1, "primer": 1, "segundo": 2, "tercero": 3, "tercer": 3, "cuarto": 4,
		"quinto": 5, "sexto": 6, "séptimo": 7, "septimo": 7, "octavo": 8, "noveno": 9, "décimo": 10, "decimo": 10,
	}
	b.Rule1("ordinals (1st..10th)",
		rule.Regex(b.Reg(`(primer[o]?|segundo|tercer[o]?|cuarto|quinto|sexto|s[eé]ptimo|octavo|noveno|d[eé]cimo)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule1("ordinal (numeric)",
		rule.Regex(b.Reg(`0*(\d+)(?:º|ª|\.?er|\.?o|\.?a)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule2("el <ordinal>",
		rule.Regex(b.Reg(`el|la`)),
		rule.OrdinalCheck(),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
}
