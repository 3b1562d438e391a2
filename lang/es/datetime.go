package es

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayWords = map[string]time.Weekday{
	"lunes": time.Monday, "lun": time.Monday,
	"martes": time.Tuesday, "mar": time.Tuesday,
	"miercoles": time.Wednesday, "miércoles": time.Wednesday, "mier": time.Wednesday,
	"jueves": time.Thursday, "jue": time.Thursday,
	"viernes": time.Friday, "vier": time.Friday,
	"sabado": time.Saturday, "sábado": time.Saturday, "sab": time.Saturday,
	"domingo": time.Sunday, "dom": time.Sunday,
}

var monthWords = map[string]int{
	"enero": 1, "ene": 1, "febrero": 2, "feb": 2, "marzo": 3, "mar": 3,
	"abril": 4, "abr": 4, "mayo": 5, "junio": 6, "jun": 6, "julio": 7, "jul": 7,
	"agosto": 8, "ago": 8, "septiembre": 9, "setiembre": 9, "sep": 9,
	"octubre": 10, "oct": 10, "noviembre": 11, "nov": 11, "diciembre": 12, "dic": 12,
}

var cycleWords = map[string]moment.Grain{
	"dia": moment.Day, "día": moment.Day, "semana": moment.Week, "mes": moment.Month,
	"trimestre": moment.Quarter, "ano": moment.Year, "año": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/es/src/rules_datetime.rs:
// named weekdays/months, hoy/mañana/ayer, and this/last/next composition.
func addDatetimeRules(b *rule.Builder) {
	b.Rule1("named-day",
		rule.Regex(b.Reg(`(lunes|lun\.?|martes|mar\.?|mi[ée]rcoles|mi[ée]r?\.?|jueves|jue\.?|viernes|vier?\.?|s[áa]bado|s[áa]b\.?|domingo|dom\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			wd, ok := weekdayWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.DayOfWeek(wd), true
		})
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(enero|ene\.?|febrero|feb\.?|marzo|mar\.?|abril|abr\.?|mayo|junio|jun\.?|julio|jul\.?|agosto|ago\.?|septiembre|setiembre|sep\.?|octubre|oct\.?|noviembre|nov\.?|diciembre|dic\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`(d[ií]as?|semanas?|mes(?:es)?|trimestres?|a[ñn]os?)`)),
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

	b.Rule1("hoy", rule.Regex(b.Reg(`hoy|en este momento`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("manana", rule.Regex(b.Reg(`ma[ñn]ana`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("pasado manana", rule.Regex(b.Reg(`pasado ma[ñn]ana`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("ayer", rule.Regex(b.Reg(`ayer`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("anteayer", rule.Regex(b.Reg(`anteayer|antier`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})
	b.Rule1("ahora", rule.Regex(b.Reg(`ahor(?:it)?a(?: mismo)?|ya|inmediatamente`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Second, 0), true
	})

	b.Rule2("este <cycle>",
		rule.Regex(b.Reg(`este|esta|actual`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("<cycle> pasado",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`pasad[oa]|anterior`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("<cycle> que viene",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`que viene|pr[oóò]xim[oa]|siguiente`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("el <day-of-week> pasado",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`pasado|anterior`)),
		func(a, _ rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			out := dt
			out.Dir = value.Past
			return out.TheNthNotImmediate(0), true
		})
	b.Rule2("el <day-of-week> que viene",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`que viene|pr[oóò]xim[oa]`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	b.Rule2("en|el <named-month>/<day-of-week>",
		rule.Regex(b.Reg(`en|el|durante`)),
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
	b.Rule2("<time-of-day> horas",
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`horas?`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })
}
