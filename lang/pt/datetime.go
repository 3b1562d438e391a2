package pt

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayRegexes = []struct {
	re string
	wd time.Weekday
}{
	{`segunda(?:[- ]feira| f\.)?|2ª`, time.Monday},
	{`ter[cç]a(?:[- ]feira| f\.)?|3ª`, time.Tuesday},
	{`quarta(?:[- ]feira| f\.)?|4ª`, time.Wednesday},
	{`quinta(?:[- ]feira| f\.)?|5ª`, time.Thursday},
	{`sexta(?:[- ]feira| f\.)?|6ª`, time.Friday},
	{`s[aá]bado|s[aá]b\.?`, time.Saturday},
	{`domingo|dom\.?`, time.Sunday},
}

var monthWords = map[string]int{
	"janeiro": 1, "fevereiro": 2, "marco": 3, "março": 3,
	"abril": 4, "maio": 5, "junho": 6, "julho": 7,
	"agosto": 8, "setembro": 9, "outubro": 10, "novembro": 11, "dezembro": 12,
}

var cycleWords = map[string]moment.Grain{
	"dia": moment.Day, "semana": moment.Week, "mes": moment.Month, "mês": moment.Month,
	"trimestre": moment.Quarter, "ano": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/pt/src/rules_datetime.rs:
// the per-weekday terminal rules (Monday..Friday carry an ordinal "-feira"
// suffix, unlike the other Romance packs), named months, and hoje/amanhã/
// ontem deixis.
func addDatetimeRules(b *rule.Builder) {
	for _, wr := range weekdayRegexes {
		wd := wr.wd
		b.Rule1("named-day "+wd.String(),
			rule.Regex(b.Reg(wr.re)),
			func(rule.Match) (value.Value, bool) { return value.DayOfWeek(wd), true })
	}
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(janeiro|fevereiro|mar[cç]o|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`(dias?|semanas?|mes(?:es)?|m[eê]s|trimestres?|anos?)`)),
		func(m rule.Match) (value.Value, bool) {
			word := strings.ToLower(m.Groups[1])
			g, ok := cycleWords[word]
			if !ok {
				g, ok = cycleWords[strings.TrimSuffix(word, "s")]
			}
			if !ok {
				g, ok = cycleWords[strings.TrimSuffix(word, "es")]
			}
			if !ok {
				return nil, false
			}
			return value.Cycle{Grain: g}, true
		})

	b.Rule1("hoje", rule.Regex(b.Reg(`hoje|agora(?: mesmo)?|neste momento`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("amanha", rule.Regex(b.Reg(`amanh[aã]`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("depois de amanha", rule.Regex(b.Reg(`(?:dia depois de |depois de )amanh[aã]`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("ontem", rule.Regex(b.Reg(`ontem`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("anteontem", rule.Regex(b.Reg(`anteontem`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})

	b.Rule2("este <cycle>",
		rule.Regex(b.Reg(`este|esta`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("<cycle> passado",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`passad[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("<cycle> que vem",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`que vem|pr[oó]xim[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("<day-of-week> passado",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`passad[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			out := dt
			out.Dir = value.Past
			return out.TheNthNotImmediate(0), true
		})
	b.Rule2("<day-of-week> que vem",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`que vem|pr[oó]xim[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	b.Rule2("em|no <named-month>/<day-of-week>",
		rule.Regex(b.Reg(`em|no|na|durante`)),
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

	b.Rule3("<day-of-month> de <named-month>",
		rule.IntegerCheckByRange(1, 31),
		rule.Regex(b.Reg(`de`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		func(a, _, c rule.Match) (value.Value, bool) {
			day := int(a.Value.(value.Integer).Value)
			month := c.Value.(value.Datetime)
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
	b.Rule2("as <time-of-day>",
		rule.Regex(b.Reg(`[aà]s?`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })
}
