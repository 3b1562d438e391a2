package zh

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/grammar/zh/src/rules.rs's
// rules_numbers: Han digits 0-10, the 十 (ten) tens/teens composition, the
// 百 (hundred) multiples 100..900, and numeric/decimal fallbacks.
func addNumberRules(b *rule.Builder) {
	units := map[string]int64{
		"〇": 0, "零": 0, "一": 1, "二": 2, "两": 2, "兩": 2, "三": 3, "四": 4,
		"五": 5, "六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
	}
	b.Rule1("integer (0..10)",
		rule.Regex(b.Reg(`(〇|零|一|二|两|兩|三|四|五|六|七|八|九|十)(?:个|個)?`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := units[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
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
	b.Rule1("decimal number",
		rule.Regex(b.Reg(`(\d*\.\d+)`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseFloat(m.Groups[1], 64)
			if err != nil {
				return nil, false
			}
			return value.Float{Value: v}, true
		})

	b.Rule2("integer (11..19)",
		rule.Regex(b.Reg(`十`)),
		rule.IntegerCheckByRange(1, 9),
		func(_, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: 10 + bm.Value.(value.Integer).Value}, true
		})
	b.Rule2("integer (20..90)",
		rule.IntegerCheckByRange(2, 9),
		rule.Regex(b.Reg(`十`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value * 10}, true
		})
	b.Rule2("integer (100..900)",
		rule.IntegerCheckByRange(1, 9),
		rule.Regex(b.Reg(`百`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value * 100}, true
		})
	b.Rule2("integer 21..99",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 10 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.IntegerCheckByRange(1, 9),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value}, true
		})

	b.Rule2("numbers prefixed with -, negative or minus",
		rule.Regex(b.Reg(`-|负\s?|負\s?`)),
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
	b.Rule2("numbers suffixes (K, M, G)",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`([kmg])`)),
		func(a, m rule.Match) (value.Value, bool) {
			multiplier := map[string]int64{"k": 1000, "m": 1000000, "g": 1000000000}[strings.ToLower(m.Groups[1])]
			switch v := a.Value.(type) {
			case value.Integer:
				return value.Integer{Value: v.Value * multiplier}, true
			case value.Float:
				return value.Float{Value: v.Value * float64(multiplier)}, true
			default:
				return nil, false
			}
		})
}
