package en

import (
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addFinanceRules mirrors original_source/rules/src/en.rs's rules_finance,
// rules_temperature, and the single percentage rule found in the sibling
// Italian/Portuguese grammars (the English grammar's own percentage rule
// follows the identical "<number> percent" shape, per training.rs's own
// English percentage examples).
func addFinanceRules(b *rule.Builder) {
	currencySymbols := map[string]string{
		"$": "$", "dollar": "$", "dollars": "$",
		"€": "€", "euro": "€", "euros": "€",
		"£": "£", "pound": "£", "pounds": "£",
		"usd": "USD", "gbp": "GBP",
		"cent": "cent", "cents": "cent", "penny": "cent", "pennies": "cent", "c": "cent", "¢": "cent",
		"inr": "INR", "rupee": "INR", "rupees": "INR",
	}
	b.Rule1("money unit",
		rule.Regex(b.Reg(`(\$|€|£|¢|dollars?|euros?|pounds?|usd|gbp|inr|cents?|penn(?:y|ies)|rupees?|c)`)),
		func(m rule.Match) (value.Value, bool) {
			u, ok := currencySymbols[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.MoneyUnit{Symbol: u}, true
		})

	b.Rule2("<unit> <amount>",
		rule.MoneyUnitCheck(),
		rule.NumberCheck(nil),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.AmountOfMoney{Value: numberValue(bm.Value), Unit: a.Value.(value.MoneyUnit).Symbol}, true
		})
	b.Rule2("<amount> <unit>",
		rule.NumberCheck(nil),
		rule.MoneyUnitCheck(),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.AmountOfMoney{Value: numberValue(a.Value), Unit: bm.Value.(value.MoneyUnit).Symbol}, true
		})
	b.Rule2("intersect (<amount-of-money> <cents>)",
		rule.AmountOfMoneyCheck(nil),
		rule.AmountOfMoneyCheck(func(m value.AmountOfMoney) bool { return m.Unit == "cent" }),
		func(a, bm rule.Match) (value.Value, bool) {
			whole := a.Value.(value.AmountOfMoney)
			cents := bm.Value.(value.AmountOfMoney)
			return value.AmountOfMoney{Value: whole.Value + cents.Value/100, Unit: whole.Unit}, true
		})
	b.Rule2("about <amount-of-money>",
		rule.Regex(b.Reg(`about|approx(?:\.|imately)?|close to|near(?: to)?|around|almost`)),
		rule.AmountOfMoneyCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			v := a.Value.(value.AmountOfMoney)
			v.Precision = value.Approximate
			return v, true
		})
	b.Rule2("exactly <amount-of-money>",
		rule.Regex(b.Reg(`exactly|precisely`)),
		rule.AmountOfMoneyCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			v := a.Value.(value.AmountOfMoney)
			v.Precision = value.Exact
			return v, true
		})

	addTemperatureRules(b)
	addPercentageRule(b)
}

func addTemperatureRules(b *rule.Builder) {
	b.Rule1("number as latent temperature",
		rule.NumberCheck(nil),
		func(m rule.Match) (value.Value, bool) {
			return value.Temperature{Value: numberValue(m.Value), LatentValue: true}, true
		})
	b.Rule2("<latent temp> degrees",
		rule.TemperatureCheck(),
		rule.Regex(b.Reg(`(?:deg(?:ree?)?s?\.?)|°`)),
		func(a, _ rule.Match) (value.Value, bool) {
			t := a.Value.(value.Temperature)
			t.Unit, t.LatentValue = "degree", false
			return t, true
		})
	b.Rule2("<temp> celsius",
		rule.TemperatureCheck(),
		rule.Regex(b.Reg(`c(?:el[cs]?(?:ius)?)?\.?`)),
		func(a, _ rule.Match) (value.Value, bool) {
			t := a.Value.(value.Temperature)
			t.Unit, t.LatentValue = "celsius", false
			return t, true
		})
	b.Rule2("<temp> fahrenheit",
		rule.TemperatureCheck(),
		rule.Regex(b.Reg(`f(?:ah?rh?eh?n(?:h?eit)?)?\.?`)),
		func(a, _ rule.Match) (value.Value, bool) {
			t := a.Value.(value.Temperature)
			t.Unit, t.LatentValue = "fahrenheit", false
			return t, true
		})
}

func addPercentageRule(b *rule.Builder) {
	b.Rule2("<number> percent",
		rule.NumberCheck(nil),
		rule.Regex(b.Reg(`%|percent|per ?cent|p\.c\.`)),
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
