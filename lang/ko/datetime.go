package ko

import (
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayWords = map[string]time.Weekday{
	"월요일": time.Monday, "화요일": time.Tuesday, "수요일": time.Wednesday,
	"목요일": time.Thursday, "금요일": time.Friday, "토요일": time.Saturday, "일요일": time.Sunday,
}

var cycleWords = map[string]moment.Grain{
	"초": moment.Second, "분": moment.Minute, "시간": moment.Hour,
	"날": moment.Day, "일": moment.Day,
	"주": moment.Week, "달": moment.Month, "월": moment.Month,
	"해": moment.Year, "년": moment.Year,
}

// addDatetimeRules supplements original_source/rules/src/ko.rs's
// rules_cycle (last/next <cycle> via 지난/전/저번 and 다음/오는/차/내,
// the 내일모래/엊그제 day-after-tomorrow/day-before-yesterday terminals)
// with named-weekday and 오늘/내일/어제 deixis in the same terminal-rule
// idiom, since this pack's source has no standalone rules_time module.
func addDatetimeRules(b *rule.Builder) {
	b.Rule1("named-day",
		rule.Regex(b.Reg(`(월요일|화요일|수요일|목요일|금요일|토요일|일요일)`)),
		func(m rule.Match) (value.Value, bool) {
			wd, ok := weekdayWords[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.DayOfWeek(wd), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`초|분|시간?|날|일(?:간|동안)?|주일?|달(?:간|동안)?|해|연간|년(?:간|동안)?`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := cycleWords[m.Groups[0]]
			if !ok {
				return nil, false
			}
			return value.Cycle{Grain: g}, true
		})

	b.Rule1("oneul", rule.Regex(b.Reg(`오늘|지금`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("naeil", rule.Regex(b.Reg(`내일`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("morae", rule.Regex(b.Reg(`(?:내일)?모래`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("eoje", rule.Regex(b.Reg(`어제`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("eotgeuje", rule.Regex(b.Reg(`엊?그[제재]`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})

	b.Rule2("last <cycle>",
		rule.Regex(b.Reg(`지난|작|전|저번`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("next <cycle>",
		rule.Regex(b.Reg(`다음|오는|차|내`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("last <day-of-week>",
		rule.Regex(b.Reg(`지난|저번`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		func(_, a rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			out := dt
			out.Dir = value.Past
			return out.TheNthNotImmediate(0), true
		})
	b.Rule2("next <day-of-week>",
		rule.Regex(b.Reg(`다음|오는`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	addTimeOfDayRules(b)
}

func addTimeOfDayRules(b *rule.Builder) {
	b.Rule2("<hour> si",
		rule.IntegerCheckByRange(0, 23),
		rule.Regex(b.Reg(`시`)),
		func(a, _ rule.Match) (value.Value, bool) {
			h := int(a.Value.(value.Integer).Value)
			return value.HourMinuteSecond(h, 0, 0, h <= 12).NotLatent(), true
		})
}
