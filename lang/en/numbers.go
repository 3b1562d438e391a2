package en

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/en/src/rules_number.rs:
// units 0-19, tens 20-90, teen/tens composition, scale words (hundred,
// thousand, million, billion), decimals, and ordinals.
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"none": 0, "zilch": 0, "naught": 0, "nought": 0, "nil": 0, "zero": 0,
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
		"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
		"thirteen": 13, "fourteen": 14, "fifteen": 15, "sixteen": 16,
		"seventeen": 17, "eighteen": 18, "nineteen": 19,
	}
	b.Rule1("integer (0..19)",
		rule.Regex(b.Reg(`(none|zilch|naught|nought|nil|zero|one|two|three|fourteen|four|five|sixteen|six|seventeen|seven|eighteen|eight|nineteen|nine|eleven|twelve|thirteen|fifteen|ten)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	tens := map[string]int64{
		"twenty": 20, "thirty": 30, "fourty": 40, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	b.Rule1("integer (20..90)",
		rule.Regex(b.Reg(`(twenty|thirty|fou?rty|fifty|sixty|seventy|eighty|ninety)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := tens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	b.Rule2("integer 21..99",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 10 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.IntegerCheckByRange(1, 9),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value}, true
		})
	b.Rule3("integer 21..99 (hyphenated)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 10 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.Regex(b.Reg(`-`)),
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
	b.Rule1("integer with thousands separator ,",
		rule.Regex(b.Reg(`(\d{1,3}(,\d\d\d){1,5})`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(strings.ReplaceAll(m.Groups[1], ",", ""), 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	b.Rule2("special composition for missing hundreds like one twenty two",
		rule.IntegerCheckByRange(1, 9),
		rule.IntegerCheckByRange(10, 99),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value*100 + bm.Value.(value.Integer).Value}, true
		})

	scales := map[string]int64{"hundred": 100, "thousand": 1000, "million": 1000000, "billion": 1000000000}
	b.Rule1("100, 1 000, 1 000 000, 1 000 000 000",
		rule.Regex(b.Reg(`(hundred|thousand|million|billion)s?`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := scales[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v, Grp: true}, true
		})
	b.Rule2("200..900, 2 000..9 000, scaled",
		rule.IntegerCheckByRange(1, 999),
		rule.Regex(b.Reg(`(hundred|thousand|million|billion)s?`)),
		func(a, bm rule.Match) (value.Value, bool) {
			v, ok := scales[strings.ToLower(bm.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: a.Value.(value.Integer).Value * v, Grp: true}, true
		})
	b.Rule2("intersect (scaled + remainder)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		rule.IntegerCheckByRange(1, 999),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value, Grp: true}, true
		})
	b.Rule3("intersect (with and)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		rule.Regex(b.Reg(`and`)),
		rule.IntegerCheckByRange(1, 999),
		func(a, _, c rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + c.Value.(value.Integer).Value, Grp: true}, true
		})

	b.Rule1("single", rule.Regex(b.Reg(`single`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 1}, true
	})
	b.Rule1("a pair", rule.Regex(b.Reg(`a pair(?: of)?`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 2}, true
	})
	b.Rule1("couple", rule.Regex(b.Reg(`(?:a )?couple(?: of)?`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 2}, true
	})
	b.Rule1("a dozen", rule.Regex(b.Reg(`(?:a |one )?dozen`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 12, Grp: true}, true
	})

	b.Rule1("decimal number",
		rule.Regex(b.Reg(`(\d*\.\d+)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseFloat(m.Groups[1], 64)
			if err != nil {
				return nil, false
			}
			return value.Float{Value: v}, true
		})
	b.Rule2("<integer> and a half",
		rule.IntegerCheck(nil),
		rule.Regex(b.Reg(`and a half`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.Float{Value: float64(a.Value.(value.Integer).Value) + 0.5}, true
		})
	b.Rule2("<integer> and a quarter",
		rule.IntegerCheck(nil),
		rule.Regex(b.Reg(`and a quarter`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.Float{Value: float64(a.Value.(value.Integer).Value) + 0.25}, true
		})

	b.Rule2("numbers prefixed with minus",
		rule.Regex(b.Reg(`-|minus\s?|negative\s?`)),
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
		"zeroth": 0, "first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
		"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
		"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
		"nineteenth": 19,
	}
	b.Rule1("ordinals (first..19th)",
		rule.Regex(b.Reg(`(zeroth|first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|eighteenth|nineteenth)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})

	ordinalTens := map[string]int64{
		"twen": 20, "thir": 30, "for": 40, "fif": 50, "six": 60, "seven": 70, "eigh": 80, "nine": 90,
	}
	b.Rule1("ordinals (20th...90th)",
		rule.Regex(b.Reg(`(twen|thir|for|fif|six|seven|eigh|nine)tieth`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalTens[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})

	b.Rule2("21th..99th",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 10 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.OrdinalCheck(),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Ordinal{Value: a.Value.(value.Integer).Value + bm.Value.(value.Ordinal).Value}, true
		})

	b.Rule1("ordinal (numeric)",
		rule.Regex(b.Reg(`0*(\d+)(?:st|nd|rd|th)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Ordinal{Value: v}, true
		})
	b.Rule2("the <ordinal>",
		rule.Regex(b.Reg(`the`)),
		rule.OrdinalCheck(),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
}
