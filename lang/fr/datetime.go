package fr

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayWords = map[string]time.Weekday{
	"lundi": time.Monday, "lun": time.Monday,
	"mardi": time.Tuesday, "mar": time.Tuesday,
	"mercredi": time.Wednesday, "mer": time.Wednesday,
	"jeudi": time.Thursday, "jeu": time.Thursday,
	"vendredi": time.Friday, "ven": time.Friday,
	"samedi": time.Saturday, "sam": time.Saturday,
	"dimanche": time.Sunday, "dim": time.Sunday,
}

var monthWords = map[string]int{
	"janvier": 1, "jan": 1, "fevrier": 2, "février": 2, "fev": 2, "mars": 3,
	"avril": 4, "avr": 4, "mai": 5, "juin": 6, "juillet": 7, "juil": 7,
	"aout": 8, "août": 8, "septembre": 9, "sept": 9, "octobre": 10, "oct": 10,
	"novembre": 11, "nov": 11, "decembre": 12, "décembre": 12, "dec": 12, "déc": 12,
}

var cycleWords = map[string]moment.Grain{
	"jour": moment.Day, "semaine": moment.Week, "mois": moment.Month,
	"trimestre": moment.Quarter, "an": moment.Year, "annee": moment.Year, "année": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/fr/src/training.rs's
// deictic examples: aujourd'hui/demain/hier and named weekday "prochain"
// (next) / "dernier" (last) composition.
func addDatetimeRules(b *rule.Builder) {
	b.Rule1("named-day",
		rule.Regex(b.Reg(`(lundi|lun\.?|mardi|mar\.?|mercredi|mer\.?|jeudi|jeu\.?|vendredi|ven\.?|samedi|sam\.?|dimanche|dim\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			wd, ok := weekdayWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.DayOfWeek(wd), true
		})
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(janvier|jan\.?|f[eé]vrier|f[eé]v\.?|mars|avril|avr\.?|mai|juin|juillet|juil\.?|ao[uû]t|septembre|sept?\.?|octobre|oct\.?|novembre|nov\.?|d[eé]cembre|d[eé]c\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word",
		rule.Regex(b.Reg(`(jours?|semaines?|mois|trimestres?|ann[eé]es?|ans?)`)),
		func(m rule.Match) (value.Value, bool) {
			word := strings.ToLower(m.Groups[1])
			g, ok := cycleWords[word]
			if !ok {
				g, ok = cycleWords[strings.TrimSuffix(word, "s")]
			}
			if !ok {
				return nil, false
			}
			return value.Cycle{Grain: g}, true
		})

	b.Rule1("aujourd'hui", rule.Regex(b.Reg(`aujourd['’]hui|ce jour|en ce moment`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("demain", rule.Regex(b.Reg(`demain`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("apres-demain", rule.Regex(b.Reg(`apr[eè]s-demain`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("hier", rule.Regex(b.Reg(`hier`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("avant-hier", rule.Regex(b.Reg(`avant-hier`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})

	b.Rule2("ce <cycle>",
		rule.Regex(b.Reg(`ce|cette`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("<cycle> dernier",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`derni[eè]re?`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("<cycle> prochain",
		rule.CycleCheck(),
		rule.Regex(b.Reg(`prochaine?|suivante?`)),
		func(a, _ rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("<day-of-week> dernier",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`derni[eè]re?`)),
		func(a, _ rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			out := dt
			out.Dir = value.Past
			return out.TheNthNotImmediate(0), true
		})
	b.Rule2("<day-of-week> prochain",
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		rule.Regex(b.Reg(`prochaine?|suivante?|d['’]apr[eè]s`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	b.Rule2("en|le <named-month>/<day-of-week>",
		rule.Regex(b.Reg(`en|le|la|au`)),
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

	b.Rule2("<day-of-month> <named-month>",
		rule.IntegerCheckByRange(1, 31),
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		func(a, bm rule.Match) (value.Value, bool) {
			day := int(a.Value.(value.Integer).Value)
			month := bm.Value.(value.Datetime)
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
		rule.Regex(b.Reg(`(\d{1,2})[h:](\d{2})`)),
		func(m rule.Match) (value.Value, bool) {
			h, e1 := strconv.Atoi(m.Groups[1])
			mi, e2 := strconv.Atoi(m.Groups[2])
			if e1 != nil || e2 != nil || h > 23 || mi > 59 {
				return nil, false
			}
			return value.HourMinuteSecond(h, mi, 0, h <= 12), true
		})
	b.Rule2("a <time-of-day>",
		rule.Regex(b.Reg(`[aà]`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })
	b.Rule1("midi", rule.Regex(b.Reg(`midi`)), func(rule.Match) (value.Value, bool) {
		return value.HourMinuteSecond(12, 0, 0, false).NotLatent(), true
	})
	b.Rule1("minuit", rule.Regex(b.Reg(`minuit`)), func(rule.Match) (value.Value, bool) {
		return value.HourMinuteSecond(0, 0, 0, false).NotLatent(), true
	})
}
