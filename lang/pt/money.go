package pt

import (
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addFinanceRules mirrors original_source/grammar/pt/src/rules.rs's
// rules_finance and rules_percentage ("%|por ?cento").
func addFinanceRules(b *rule.Builder) {
	currencySymbols := map[string]string{
		"$": "$", "dolar": "$", "dólar": "$", "dolares": "$", "dólares": "$",
		"€": "€", "euro": "€", "euros": "€",
		"£": "£", "libra": "£", "libras": "£",
		"gbp": "GBP", "centavo": "cent", "centavos": "cent",
	}
	b.Rule1("money unit",
		rule.Regex(b.Reg(`(\$|€|£|d[oó]lar(?:es)?|euros?|libras?|gbp|centavos?)`)),
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
	b.Rule2("intersect (<amount-of-money> <cents>)",
		rule.AmountOfMoneyCheck(func(m value.AmountOfMoney) bool { return m.Unit != "cent" }),
		rule.AmountOfMoneyCheck(func(m value.AmountOfMoney) bool { return m.Unit == "cent" }),
		func(a, bm rule.Match) (value.Value, bool) {
			whole := a.Value.(value.AmountOfMoney)
			cents := bm.Value.(value.AmountOfMoney)
			return value.AmountOfMoney{Value: whole.Value + cents.Value/100, Unit: whole.Unit}, true
		})

	b.Rule2("<number> por cento",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`%|por ?cento`)),
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
