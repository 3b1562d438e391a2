package it

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayWords = map[string]time.Weekday{
	"lunedi": time.Monday, "lunedì": time.Monday,
	"martedi": time.Tuesday, "martedì": time.Tuesday,
	"mercoledi": time.Wednesday, "mercoledì": time.Wednesday,
	"giovedi": time.Thursday, "giovedì": time.Thursday,
	"venerdi": time.Friday, "venerdì": time.Friday,
	"sabato":   time.Saturday,
	"domenica": time.Sunday,
}

var monthWords = map[string]int{
	"gennaio": 1, "gen": 1, "febbraio": 2, "feb": 2, "marzo": 3, "mar": 3,
	"aprile": 4, "apr": 4, "maggio": 5, "mag": 5, "giugno": 6, "giu": 6,
	"luglio": 7, "lug": 7, "agosto": 8, "ago": 8, "settembre": 9, "set": 9,
	"ottobre": 10, "ott": 10, "novembre": 11, "nov": 11, "dicembre": 12, "dic": 12,
}

var cycleWords = map[string]moment.Grain{
	"giorno": moment.Day, "giorni": moment.Day,
	"settimana": moment.Week, "settimane": moment.Week,
	"mese": moment.Month, "mesi": moment.Month,
	"trimestre": moment.Quarter, "trimestri": moment.Quarter,
	"anno": moment.Year, "anni": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/it/src/rules.rs's
// deictic expressions: oggi/domani/ieri/dopodomani, named weekdays/months,
// and this/last/next composition.
func addDatetimeRules(b *rule.Builder) {
	b.Rule1("named-day",
		rule.Regex(b.Reg(`(luned[iì]|marted[iì]|mercoled[iì]|gioved[iì]|venerd[iì]|sabato|domenica)`)),
		func(m rule.Match) (value.Value, bool) {
			wd, ok := weekdayWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.DayOfWeek(wd), true
		})
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(gennaio|gen\.?|febbraio|feb\.?|marzo|mar\.?|aprile|apr\.?|maggio|mag\.?|giugno|giu\.?|luglio|lug\.?|agosto|ago\.?|settembre|set\.?|ottobre|ott\.?|novembre|nov\.?|dicembre|dic\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`(giorni?|settiman[ea]|mes[ei]|trimestri?|anni?)`)),
		func(m rule.Match) (value.Value, bool) {
			g, ok := cycleWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Cycle{Grain: g}, true
		})

	b.Rule1("oggi", rule.Regex(b.Reg(`oggi|adesso|subito`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("domani", rule.Regex(b.Reg(`domani`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("dopodomani", rule.Regex(b.Reg(`dopodomani`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("ieri", rule.Regex(b.Reg(`ieri`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})

	b.Rule2("questo <cycle>",
		rule.Regex(b.Reg(`questo|questa`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("<cycle> scorso",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`scors[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("<cycle> prossimo",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`prossim[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("<day-of-week> scorso",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`scors[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			out := dt
			out.Dir = value.Past
			return out.TheNthNotImmediate(0), true
		})
	b.Rule2("<day-of-week> prossimo",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`prossim[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	b.Rule2("in|il <named-month>/<day-of-week>",
		rule.Regex(b.Reg(`in|il|a`)),
		rule.DatetimeCheck(nil),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })

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
	b.Rule2("alle <time-of-day>",
		rule.Regex(b.Reg(`alle|all['’]`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })
}
