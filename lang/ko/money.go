package ko

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addFinanceRules: original_source/rules/src/ko.rs has no rules_finance or
// rules_percentage module, so this supplements the pack with the 원 (won)
// money unit and "퍼센트"/percent-sign percentage rule, composed the same
// way as the other packs' finance grammar.
func addFinanceRules(b *rule.Builder) {
	b.Rule1("money unit",
		rule.Regex(b.Reg(`(\$|€|원|달러)`)),
		func(m rule.Match) (value.Value, bool) {
			sym := map[string]string{"$": "$", "€": "€", "원": "KRW", "달러": "$"}[m.Groups[1]]
			if sym == "" {
				return nil, false
			}
			return value.MoneyUnit{Symbol: sym}, true
		})
	b.Rule2("<amount> <unit>",
		rule.NumberCheck(nil),
		rule.MoneyUnitCheck(),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.AmountOfMoney{Value: numberValue(a.Value), Unit: bm.Value.(value.MoneyUnit).Symbol}, true
		})

	b.Rule2("<number> peosenteu",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`%|퍼센트`)),
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
