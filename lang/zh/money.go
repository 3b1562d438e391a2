package zh

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addFinanceRules: rules.rs itself has no standalone finance grammar, but
// its numeric-suffix negative lookahead (`reg_neg_lh(r"([kmg])",
// r"^[^\W\$€元¥(?:人民币)]")`) names 元/¥/人民币 as the currency symbols a
// following number must not be mistaken for — this rule gives them a
// money-unit home, composed the same way as the other packs.
func addFinanceRules(b *rule.Builder) {
	currencySymbols := map[string]string{
		"$": "$", "€": "€", "元": "CNY", "¥": "CNY", "人民币": "CNY", "人民幣": "CNY",
	}
	b.Rule1("money unit",
		rule.Regex(b.Reg(`(\$|€|¥|元|人民币|人民幣)`)),
		func(m rule.Match) (value.Value, bool) {
			u, ok := currencySymbols[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.MoneyUnit{Symbol: u}, true
		})
	b.Rule2("<amount> <unit>",
		rule.NumberCheck(nil),
		rule.MoneyUnitCheck(),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.AmountOfMoney{Value: numberValue(a.Value), Unit: bm.Value.(value.MoneyUnit).Symbol}, true
		})

	b.Rule2("bai fen zhi <number>",
		rule.Regex(b.Reg(`百分之`)),
		rule.NumberCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			return value.Percentage{Value: numberValue(a.Value)}, true
		})
	b.Rule2("<number> percent",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`%`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.Percentage{Value: numberValue(a.Value)}, true
		})
}

func numberValue(v value.Value) float64 {
	switch n := v.(type) {
	case value.Integer:
		return float64(n.Value)
	case value.Float:
		return n.Value
	default:
		return 0
	}
}
