package zh

import (
	"strconv"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayRegexes = []struct {
	re string
	wd time.Weekday
}{
	{`(?:星期|周|(?:礼|禮)拜|週)一`, time.Monday},
	{`(?:星期|周|(?:礼|禮)拜|週)二`, time.Tuesday},
	{`(?:星期|周|(?:礼|禮)拜|週)三`, time.Wednesday},
	{`(?:星期|周|(?:礼|禮)拜|週)四`, time.Thursday},
	{`(?:星期|周|(?:礼|禮)拜|週)五`, time.Friday},
	{`(?:星期|周|(?:礼|禮)拜|週)六`, time.Saturday},
	{`星期日|星期天|礼拜天|周日|禮拜天|週日|禮拜日`, time.Sunday},
}

var monthWords = map[string]int{
	"一月": 1, "二月": 2, "三月": 3, "四月": 4, "五月": 5, "六月": 6,
	"七月": 7, "八月": 8, "九月": 9, "十月": 10, "十一月": 11, "十二月": 12,
}

var cycleWords = map[string]moment.Grain{
	"秒": moment.Second, "分": moment.Minute, "小时": moment.Hour, "小時": moment.Hour,
	"天": moment.Day, "日": moment.Day,
	"周": moment.Week, "週": moment.Week, "星期": moment.Week,
	"月": moment.Month, "年": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/zh/src/rules.rs: the
// per-weekday terminal rules, named months written 一月..十二月, and
// relative-day deixis 今天/明天/昨天/后天/前天/现在.
func addDatetimeRules(b *rule.Builder) {
	for _, wr := range weekdayRegexes {
		wd := wr.wd
		b.Rule1("named-day "+wd.String(),
			rule.Regex(b.Reg(wr.re)),
			func(rule.Match) (value.Value, bool) { return value.DayOfWeek(wd), true })
	}
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(一月|二月|三月|四月|五月|六月|七月|八月|九月|十月|十一月|十二月)份?`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`秒(?:钟|鐘)?|分(?:钟|鐘)?|小时|小時|天|日|周|週|礼拜|禮拜|星期|月|年`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := cycleWords[m.Groups[0]]
			if !ok {
				return nil, false
			}
			return value.Cycle{Grain: g}, true
		})

	b.Rule1("jintian", rule.Regex(b.Reg(`今天|今日|现在|此时|此刻|当前|現在|此時|當前`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("mingtian", rule.Regex(b.Reg(`明天|明日`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("houtian", rule.Regex(b.Reg(`后天|後天|後日`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("zuotian", rule.Regex(b.Reg(`昨天|昨日`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("qiantian", rule.Regex(b.Reg(`前天|前日`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})

	b.Rule2("shang ge <cycle>",
		rule.Regex(b.Reg(`上(?:个|個)?`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("zhe ge <cycle>",
		rule.Regex(b.Reg(`这|這|今個`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("xia ge <cycle>",
		rule.Regex(b.Reg(`下(?:个|個)?`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule1("year (numeric)",
		rule.Regex(b.Reg(`\b(1[5-9]\d\d|20\d\d|2100)\b`)),
		func(m rule.Match) (value.Value, bool) {
			y, err := strconv.Atoi(m.Groups[1])
			if err != nil {
				return nil, false
			}
			return value.Year(y), true
		})

	b.Rule2("<named-month> <day-of-month>",
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		rule.IntegerCheckByRange(1, 31),
		func(a, bm rule.Match) (value.Value, bool) {
			month := a.Value.(value.Datetime)
			day := int(bm.Value.(value.Integer).Value)
			return month.Intersect(value.DayOfMonth(day)).WithForm(value.FormMonthDay), true
		})
	b.Rule3("<named-month> <day-of-month> hao",
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		rule.IntegerCheckByRange(1, 31),
		rule.Regex(b.Reg(`(?:号|號|日)`)),
		func(a, bm, _ rule.Match) (value.Value, bool) {
			month := a.Value.(value.Datetime)
			day := int(bm.Value.(value.Integer).Value)
			return month.Intersect(value.DayOfMonth(day)).WithForm(value.FormMonthDay), true
		})

	addTimeOfDayRules(b)
}

func addTimeOfDayRules(b *rule.Builder) {
	b.Rule1("time-of-day (latent hour)",
		rule.IntegerCheckByRange(0, 23),
		func(m rule.Match) (value.Value, bool) {
			h := int(m.Value.(value.Integer).Value)
			dt := value.HourMinuteSecond(h, 0, 0, h <= 12)
			dt.LatentValue = true
			return dt, true
		})
	b.Rule2("<hour> dian",
		rule.IntegerCheckByRange(0, 23),
		rule.Regex(b.Reg(`点|點`)),
		func(a, _ rule.Match) (value.Value, bool) {
			h := int(a.Value.(value.Integer).Value)
			return value.HourMinuteSecond(h, 0, 0, h <= 12).NotLatent(), true
		})
	b.Rule1("time-of-day (hh:mm)",
		rule.Regex(b.Reg(`(\d{1,2}):(\d{2})`)),
		func(m rule.Match) (value.Value, bool) {
			h, e1 := strconv.Atoi(m.Groups[1])
			mi, e2 := strconv.Atoi(m.Groups[2])
			if e1 != nil || e2 != nil || h > 23 || mi > 59 {
				return nil, false
			}
			return value.HourMinuteSecond(h, mi, 0, h <= 12), true
		})
}
