package fr

import (
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addFinanceRules mirrors the finance/percentage shape shared across the
// Romance-language grammars in original_source/grammar.
func addFinanceRules(b *rule.Builder) {
	currencySymbols := map[string]string{
		"$": "$", "dollar": "$", "dollars": "$",
		"€": "€", "euro": "€", "euros": "€",
		"centime": "cent", "centimes": "cent",
	}
	b.Rule1("money unit",
		rule.Regex(b.Reg(`(\$|€|dollars?|euros?|centimes?)`)),
		func(m rule.Match) (value.Value, bool) {
			u, ok := currencySymbols[strings.ToLower(m.Groups[1])]
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
	b.Rule2("<unit> <amount>",
		rule.MoneyUnitCheck(),
		rule.NumberCheck(nil),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.AmountOfMoney{Value: numberValue(bm.Value), Unit: a.Value.(value.MoneyUnit).Symbol}, true
		})

	b.Rule2("<number> pour cent",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`%|pour ?cent`)),
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
