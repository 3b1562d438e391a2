package en

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

var weekdayWords = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "wednesday.": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var monthWords = map[string]int{
	"january": 1, "jan": 1, "february": 2, "feb": 2, "march": 3, "mar": 3,
	"april": 4, "apr": 4, "may": 5, "june": 6, "jun": 6, "july": 7, "jul": 7,
	"august": 8, "aug": 8, "september": 9, "sept": 9, "sep": 9, "october": 10, "oct": 10,
	"november": 11, "nov": 11, "december": 12, "dec": 12,
}

var cycleWords = map[string]moment.Grain{
	"day": moment.Day, "week": moment.Week, "month": moment.Month,
	"quarter": moment.Quarter, "year": moment.Year,
}

// addDatetimeRules mirrors original_source/grammar/en/src/rules_datetime.rs:
// named weekdays and months, deictic today/tomorrow/yesterday, this/last/next
// <cycle>, nth-of-month dates, time-of-day clock expressions, part-of-day
// windows, and span/interval composition — the rule set exercising all 8
// end-to-end scenarios in SPEC_FULL.md §9.
func addDatetimeRules(b *rule.Builder) {
	b.Rule1("named-day",
		rule.Regex(b.Reg(`(monday|mon\.?|tuesday|tues?\.?|wed?nesday|wed\.?|thursday|thu(?:rs?)?\.?|friday|fri\.?|saturday|sat\.?|sunday|sun\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			wd, ok := weekdayWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.DayOfWeek(wd), true
		})
	b.Rule1("named-month",
		rule.Regex(b.Reg(`(january|jan\.?|february|feb\.?|march|mar\.?|april|apr\.?|may|june|jun\.?|july|jul\.?|august|aug\.?|september|sept?\.?|october|oct\.?|november|nov\.?|december|dec\.?)`)),
		func(m rule.Match) (value.Value, bool) {
			mo, ok := monthWords[strings.TrimSuffix(strings.ToLower(m.Groups[1]), ".")]
			if !ok {
				return nil, false
			}
			return value.Month(mo), true
		})

	b.Rule1("cycle word", rule.Regex(b.Reg(`(day|week|month|quarter|year)s?`)), func(m rule.Match) (value.Value, bool) {
		g, ok := cycleWords[strings.ToLower(m.Groups[1])]
		if !ok {
			return nil, false
		}
		return value.Cycle{Grain: g}, true
	})

	b.Rule1("today", rule.Regex(b.Reg(`today`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 0), true
	})
	b.Rule1("tomorrow", rule.Regex(b.Reg(`(?:tmrw?|tomm?or?rows?)`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 1), true
	})
	b.Rule1("the day after tomorrow", rule.Regex(b.Reg(`(?:the )?day after (?:tmrw?|tomm?or?rows?)`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, 2), true
	})
	b.Rule1("yesterday", rule.Regex(b.Reg(`yesterdays?`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -1), true
	})
	b.Rule1("the day before yesterday", rule.Regex(b.Reg(`(?:the )?day before yesterdays?`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Day, -2), true
	})
	b.Rule1("now", rule.Regex(b.Reg(`now|right now|immediately`)), func(rule.Match) (value.Value, bool) {
		return value.CycleN(moment.Second, 0), true
	})

	b.Rule2("this <cycle>",
		rule.Regex(b.Reg(`this|current|coming`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 0), true })
	b.Rule2("last <cycle>",
		rule.Regex(b.Reg(`(?:the )?(?:last|past|previous)`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, -1), true })
	b.Rule2("next <cycle>",
		rule.Regex(b.Reg(`(?:the )?next|the following`)),
		rule.CycleCheck(),
		func(_, a rule.Match) (value.Value, bool) { return value.CycleN(a.Value.(value.Cycle).Grain, 1), true })

	b.Rule2("this <day-of-week>",
		rule.Regex(b.Reg(`this|coming`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNth(0), true })
	b.Rule2("last <day-of-week>",
		rule.Regex(b.Reg(`(?:the )?(?:last|past)`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		func(_, a rule.Match) (value.Value, bool) {
			// The weekday inside the previous calendar week.
			out := value.CycleN(moment.Week, -1).Intersect(a.Value.(value.Datetime))
			out.Dir = value.Past
			return out, true
		})
	b.Rule2("next <day-of-week>",
		rule.Regex(b.Reg(`(?:the )?next`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormDayOfWeek)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).TheNthNotImmediate(0), true })

	b.Rule2("in|on|for <named-month>/<day-of-week>",
		rule.Regex(b.Reg(`in|on|for`)),
		rule.DatetimeCheck(rule.NotLatent(nil)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })

	// <year> e.g. "2026", "in 2026"
	b.Rule1("year (numeric)",
		rule.Regex(b.Reg(`\b(1[5-9]\d\d|20\d\d|2100)\b`)),
		func(m rule.Match) (value.Value, bool) {
			y, err := strconv.Atoi(m.Groups[1])
			if err != nil {
				return nil, false
			}
			return value.Year(y), true
		})

	b.Rule3("<day-of-month> of <named-month>",
		rule.IntegerCheckByRange(1, 31),
		rule.Regex(b.Reg(`of|in`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		func(a, _, c rule.Match) (value.Value, bool) {
			day := int(a.Value.(value.Integer).Value)
			month := c.Value.(value.Datetime)
			return month.Intersect(value.DayOfMonth(day)).WithForm(value.FormMonthDay), true
		})
	b.Rule2("<named-month> <day-of-month>",
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		rule.IntegerCheckByRange(1, 31),
		func(a, bm rule.Match) (value.Value, bool) {
			month := a.Value.(value.Datetime)
			day := int(bm.Value.(value.Integer).Value)
			return month.Intersect(value.DayOfMonth(day)).WithForm(value.FormMonthDay), true
		})
	b.Rule2("<ordinal> <named-month>",
		rule.OrdinalCheck(),
		rule.DatetimeCheck(rule.FormCheck(value.FormMonth)),
		func(a, bm rule.Match) (value.Value, bool) {
			day := int(a.Value.(value.Ordinal).Value)
			month := bm.Value.(value.Datetime)
			return month.Intersect(value.DayOfMonth(day)).WithForm(value.FormMonthDay), true
		})
	b.Rule4("nth <datetime> of <datetime>",
		rule.OrdinalCheck(),
		rule.DatetimeCheck(nil),
		rule.Regex(b.Reg(`of|in`)),
		rule.DatetimeCheck(nil),
		func(ord, a, _, bm rule.Match) (value.Value, bool) {
			n := int(ord.Value.(value.Ordinal).Value)
			fine := a.Value.(value.Datetime)
			coarse := bm.Value.(value.Datetime)
			return coarse.Intersect(fine).TheNth(n - 1), true
		})

	addTimeOfDayRules(b)
	addIntervalRules(b)
	addGenericIntersectRules(b)
}

// addGenericIntersectRules restores original_source/grammar/en/src/
// rules_datetime.rs:13-31 ("intersect <datetime>", "intersect by \"of\",
// \"from\", \"'s\"", "intersect by \",\""), the catch-all composition that
// glues two adjacent non-latent datetimes together (a date and a time, a
// time and a day-of-week) regardless of which specific rules produced them.
// "on" is added to the preposition set the original lacks: without it
// "11:00 on thursday" has no rule joining the time span to the weekday.
func addGenericIntersectRules(b *rule.Builder) {
	nonLatent := rule.DatetimeCheck(rule.NotLatent(nil))
	b.Rule2("intersect <datetime>", nonLatent, nonLatent,
		func(a, bm rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).Intersect(bm.Value.(value.Datetime)), true
		})
	b.Rule3("intersect by preposition",
		nonLatent,
		rule.Regex(b.Reg(`of|from|for|on|'s`)),
		nonLatent,
		func(a, _, bm rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).Intersect(bm.Value.(value.Datetime)), true
		})
	b.Rule3("intersect by \",\"",
		nonLatent,
		rule.Regex(b.Reg(`,`)),
		nonLatent,
		func(a, _, bm rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).Intersect(bm.Value.(value.Datetime)), true
		})
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
			h, err1 := strconv.Atoi(m.Groups[1])
			mi, err2 := strconv.Atoi(m.Groups[2])
			if err1 != nil || err2 != nil || h > 23 || mi > 59 {
				return nil, false
			}
			return value.HourMinuteSecond(h, mi, 0, h <= 12), true
		})
	b.Rule1("time-of-day (hh:mm:ss)",
		rule.Regex(b.Reg(`(\d{1,2}):(\d{2}):(\d{2})`)),
		func(m rule.Match) (value.Value, bool) {
			h, e1 := strconv.Atoi(m.Groups[1])
			mi, e2 := strconv.Atoi(m.Groups[2])
			s, e3 := strconv.Atoi(m.Groups[3])
			if e1 != nil || e2 != nil || e3 != nil || h > 23 || mi > 59 || s > 59 {
				return nil, false
			}
			return value.HourMinuteSecond(h, mi, s, h <= 12), true
		})
	b.Rule2("<time-of-day> am|pm",
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`([ap])\.?m\.?`)),
		func(a, m rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			hod, ok := dt.Pred.(predicate.HourOfDay)
			if !ok {
				return nil, false
			}
			h := hod.Hour % 12
			if strings.EqualFold(m.Groups[1], "p") {
				h += 12
			}
			out := value.HourMinuteSecond(h, hod.Minute, hod.Second, false)
			return out.NotLatent(), true
		})
	b.Rule2("o'clock",
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`o['’]clock`)),
		func(a, _ rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })
	b.Rule2("at <time-of-day>",
		rule.Regex(b.Reg(`at|@`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value.(value.Datetime).NotLatent(), true })

	addRelativeMinuteRules(b)

	partOf := map[string]value.PartOfDay{
		"morning": value.Morning, "afternoon": value.Afternoon,
		"evening": value.Evening, "night": value.Night,
	}
	b.Rule1("part of day",
		rule.Regex(b.Reg(`(morning|afternoon|evening|night)`)),
		func(m rule.Match) (value.Value, bool) {
			p, ok := partOf[strings.ToLower(m.Groups[1])]
			if !ok {
				return nil, false
			}
			return value.PartOfDayValue(p), true
		})
	b.Rule2("in the <part-of-day>",
		rule.Regex(b.Reg(`in the|this`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormPartOfDay)),
		func(_, a rule.Match) (value.Value, bool) { return a.Value, true })
	b.Rule2("<datetime> <part-of-day>",
		rule.DatetimeCheck(nil),
		rule.DatetimeCheck(rule.FormCheck(value.FormPartOfDay)),
		func(a, bm rule.Match) (value.Value, bool) {
			day := a.Value.(value.Datetime)
			part := bm.Value.(value.Datetime)
			return day.Intersect(part), true
		})
}

func relativeMinuteCheck() rule.Element {
	return rule.DimCheck("relative-minute", func(v value.Value) bool {
		_, ok := v.(value.RelativeMinute)
		return ok
	})
}

// hourRelativeMinute composes an hour-of-day with a signed relative-minute
// offset, wrapping the hour across midnight: original_source/grammar/en/src/
// rules_datetime.rs:598-644 ("<hour-of-day> <integer>", "<integer> minutes
// past|to <hour>", "half <hour-of-day>", UK style).
func hourRelativeMinute(hour, relMinute int, twelveHour bool) value.Datetime {
	h, m := hour, relMinute
	if m < 0 {
		m += 60
		h--
	}
	h = ((h % 24) + 24) % 24
	return value.HourMinuteSecond(h, m, 0, twelveHour)
}

// addRelativeMinuteRules mirrors original_source/grammar/en/src/
// rules_datetime.rs:570-644: "quarter"/"half"/a bare 1-59 count compose as a
// RelativeMinute offset, then combine with an hour-of-day in either order
// ("quarter past three", "three twenty", "twenty to four", "half three" UK
// style) to produce arbitrary, non-literal minute phrasings rather than the
// three fixed quarter/half phrases.
func addRelativeMinuteRules(b *rule.Builder) {
	b.Rule1("quarter (relative minutes)",
		rule.Regex(b.Reg(`(?:a |one )?quarter`)),
		func(rule.Match) (value.Value, bool) { return value.RelativeMinute{Value: 15}, true })
	b.Rule1("half (relative minutes)",
		rule.Regex(b.Reg(`half`)),
		func(rule.Match) (value.Value, bool) { return value.RelativeMinute{Value: 30}, true })
	b.Rule1("number (as relative minutes)",
		rule.IntegerCheckByRange(1, 59),
		func(a rule.Match) (value.Value, bool) {
			return value.RelativeMinute{Value: int(a.Value.(value.Integer).Value)}, true
		})
	b.Rule2("o/zero <number> (as relative minutes)",
		rule.Regex(b.Reg(`o|zero`)),
		rule.IntegerCheckByRange(1, 9),
		func(_, a rule.Match) (value.Value, bool) {
			return value.RelativeMinute{Value: int(a.Value.(value.Integer).Value)}, true
		})
	b.Rule2("number <minutes> (as relative minutes)",
		rule.IntegerCheckByRange(1, 59),
		rule.Regex(b.Reg(`minutes?`)),
		func(a, _ rule.Match) (value.Value, bool) {
			return value.RelativeMinute{Value: int(a.Value.(value.Integer).Value)}, true
		})
	b.Rule3("o/zero <number> <minutes> (as relative minutes)",
		rule.Regex(b.Reg(`o|zero`)),
		rule.IntegerCheckByRange(1, 9),
		rule.Regex(b.Reg(`minutes?`)),
		func(_, a, _ rule.Match) (value.Value, bool) {
			return value.RelativeMinute{Value: int(a.Value.(value.Integer).Value)}, true
		})

	b.Rule2("<hour-of-day> <relative-minute>",
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		relativeMinuteCheck(),
		func(a, rm rule.Match) (value.Value, bool) {
			hod := a.Value.(value.Datetime).Pred.(predicate.HourOfDay)
			return hourRelativeMinute(hod.Hour, rm.Value.(value.RelativeMinute).Value, hod.TwelveHour).NotLatent(), true
		})
	b.Rule5("at <hour-of-day> hours <relative-minute> minutes",
		rule.Regex(b.Reg(`at`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`hours?(?: and)?`)),
		relativeMinuteCheck(),
		rule.Regex(b.Reg(`minutes?`)),
		func(_, a, _, rm, _ rule.Match) (value.Value, bool) {
			hod := a.Value.(value.Datetime).Pred.(predicate.HourOfDay)
			return hourRelativeMinute(hod.Hour, rm.Value.(value.RelativeMinute).Value, hod.TwelveHour).NotLatent(), true
		})
	b.Rule3("<relative-minute> to|till|before <hour-of-day>",
		relativeMinuteCheck(),
		rule.Regex(b.Reg(`to|till|before|of`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(rm, _, a rule.Match) (value.Value, bool) {
			hod := a.Value.(value.Datetime).Pred.(predicate.HourOfDay)
			return hourRelativeMinute(hod.Hour, -rm.Value.(value.RelativeMinute).Value, hod.TwelveHour).NotLatent(), true
		})
	b.Rule3("<relative-minute> after|past <hour-of-day>",
		relativeMinuteCheck(),
		rule.Regex(b.Reg(`after|past`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(rm, _, a rule.Match) (value.Value, bool) {
			hod := a.Value.(value.Datetime).Pred.(predicate.HourOfDay)
			return hourRelativeMinute(hod.Hour, rm.Value.(value.RelativeMinute).Value, hod.TwelveHour).NotLatent(), true
		})
	b.Rule2("half <hour-of-day> (UK style)",
		rule.Regex(b.Reg(`half`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a rule.Match) (value.Value, bool) {
			hod := a.Value.(value.Datetime).Pred.(predicate.HourOfDay)
			return hourRelativeMinute(hod.Hour, 30, hod.TwelveHour).NotLatent(), true
		})
}

func addIntervalRules(b *rule.Builder) {
	notTimeOfDay := func(d value.Datetime) bool { return d.FormTag != value.FormTimeOfDay }
	b.Rule4("between <datetime> and <datetime>",
		rule.Regex(b.Reg(`between`)),
		rule.DatetimeCheck(rule.NotLatent(notTimeOfDay)),
		rule.Regex(b.Reg(`and`)),
		rule.DatetimeCheck(rule.NotLatent(notTimeOfDay)),
		func(_, a, _, c rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).SpanTo(c.Value.(value.Datetime), true), true
		})
	b.Rule4("between <time-of-day> and <time-of-day>",
		rule.Regex(b.Reg(`between`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`and`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a, _, c rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).SpanTo(c.Value.(value.Datetime), false), true
		})
	b.Rule3("<time-of-day> - <time-of-day>",
		rule.DatetimeCheck(rule.NotLatent(rule.FormCheck(value.FormTimeOfDay))),
		rule.Regex(b.Reg(`-|to|th?ru|through|(?:un)?til(?:l)?`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(a, _, c rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).SpanTo(c.Value.(value.Datetime), false), true
		})
	b.Rule4("from <time-of-day> to <time-of-day>",
		rule.Regex(b.Reg(`(?:later than|from)`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		rule.Regex(b.Reg(`(?:(?:but )?before)|\-|to|th?ru|through|(?:un)?til(?:l)?`)),
		rule.DatetimeCheck(rule.FormCheck(value.FormTimeOfDay)),
		func(_, a, _, c rule.Match) (value.Value, bool) {
			return a.Value.(value.Datetime).SpanTo(c.Value.(value.Datetime), false), true
		})

	b.Rule2("until <datetime>",
		rule.Regex(b.Reg(`(?:anytime |sometimes? )?(?:before|(?:un)?til(?:l)?|through|up to)`)),
		rule.DatetimeCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			dt.Pred = predicate.Mark{Base: dt.Pred, Dir: predicate.Before}
			return dt, true
		})
	b.Rule2("after <datetime>",
		rule.Regex(b.Reg(`(?:anytime |sometimes? )?after`)),
		rule.DatetimeCheck(nil),
		func(_, a rule.Match) (value.Value, bool) {
			dt := a.Value.(value.Datetime)
			dt.Pred = predicate.Mark{Base: dt.Pred, Dir: predicate.AfterMark}
			return dt, true
		})
}
