package zh

import (
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var durationUnits = map[string]moment.Grain{
	"秒": moment.Second, "分": moment.Minute, "小时": moment.Hour, "小時": moment.Hour,
	"天": moment.Day, "日": moment.Day,
	"周": moment.Week, "週": moment.Week, "星期": moment.Week,
	"月": moment.Month, "年": moment.Year,
}

// addDurationRules mirrors original_source/grammar/zh/src/rules.rs's
// rules_duration: bare unit terminals and "<integer> <unit>" composition,
// plus 以后/以前 (InPresent/Ago) compositions grounded on the sibling
// rules_datetime.rs relative-duration phrasing.
func addDurationRules(b *rule.Builder) {
	b.Rule1("unit of duration",
		rule.Regex(b.Reg(`秒(?:钟|鐘)?|分(?:钟|鐘)?|小时|小時|鐘頭?|天|日|周|週|礼拜|禮拜|星期|月|年`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := durationUnits[m.Groups[0]]
			if !ok {
				return nil, false
			}
			return value.UnitOfDuration{Grain: g}, true
		})

	b.Rule2("<integer> <unit-of-duration>",
		rule.IntegerCheckByRange(0, 1000000),
		rule.DimCheck("unit-of-duration", nil),
		func(a, bm rule.Match) (value.Value, bool) {
			n := a.Value.(value.Integer).Value
			u := bm.Value.(value.UnitOfDuration)
			return value.Duration{Comps: []moment.PeriodComp{{Grain: u.Grain, Quantity: n}}}, true
		})

	b.Rule2("<duration> yihou",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`以后|以後|之后|之後|后|後`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.InPresent(d.ToPeriod(), d.Precision), true
		})
	b.Rule2("<duration> qian",
		rule.DurationCheck(),
		rule.Regex(b.Reg(`以前|之前|前`)),
		func(a, _ rule.Match) (value.Value, bool) {
			d := a.Value.(value.Duration)
			return value.Ago(d.ToPeriod(), d.Precision), true
		})
}
