// Package value defines the closed set of typed semantic outputs the parser
// can produce: numbers, ordinals, datetimes, durations, temperatures,
// amounts of money, and percentages, plus the auxiliary types the grammar
// packs compose them from.
//
// Value is a sealed interface: every case lives in this package, and the
// marker method isValue prevents external packages from adding new cases.
// This mirrors the closed-enum-with-reverse-map idiom the rest of this
// module's ancestry uses for small fixed vocabularies, lifted from an int
// enum to an interface because the payload differs per case.
package value

import (
	"fmt"

	"github.com/az-ai-labs/chronolex/moment"
)

// Value is implemented by every dimension value the parser can produce.
type Value interface {
	isValue()
	// Dim returns the stable dimension tag used in resolved output and in
	// rule dim_check filters.
	Dim() string
	// Latent reports whether this value must not surface as a standalone
	// output without an explicit with_latent request.
	Latent() bool
}

// Language is the closed enumeration of supported grammar packs.
type Language int

const (
	English Language = iota
	Spanish
	French
	Italian
	Portuguese
	Chinese
	Korean
)

var languageNames = [...]string{
	English:    "en",
	Spanish:    "es",
	French:     "fr",
	Italian:    "it",
	Portuguese: "pt",
	Chinese:    "zh",
	Korean:     "ko",
}

var languageFromName = map[string]Language{
	"en": English,
	"es": Spanish,
	"fr": French,
	"it": Italian,
	"pt": Portuguese,
	"zh": Chinese,
	"ko": Korean,
}

// String returns the two-letter code of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// ParseLanguage maps a two-letter code to a Language. Unknown codes are a
// fatal ruleset-construction error per the language-selector contract.
func ParseLanguage(code string) (Language, bool) {
	l, ok := languageFromName[code]
	return l, ok
}

// Precision marks whether a value was stated exactly or approximately
// ("3pm sharp" vs "about 3pm"). It is preserved through composition.
type Precision int

const (
	Exact Precision = iota
	Approximate
)

func (p Precision) String() string {
	if p == Approximate {
		return "approximate"
	}
	return "exact"
}

// Direction tags a datetime value as referring to the future or the past
// relative to the resolution anchor. Surfaces in resolved output.
type Direction int

const (
	NoDirection Direction = iota
	Future
	Past
)

func (d Direction) String() string {
	switch d {
	case Future:
		return "after"
	case Past:
		return "before"
	default:
		return ""
	}
}

// Integer is a whole number, e.g. from "82" or "eighty-two".
type Integer struct {
	Value       int64
	Grp         bool // true if composed from a grouped scale word (hundred, thousand, ...)
	LatentValue bool
}

func (Integer) isValue()        {}
func (Integer) Dim() string     { return "number" }
func (i Integer) Latent() bool  { return i.LatentValue }
func (i Integer) Float() Float  { return Float{Value: float64(i.Value)} }
func (i Integer) Grain() int    { return grainOf(i.Value) }

// Float is a decimal number, e.g. from "3.14".
type Float struct {
	Value       float64
	LatentValue bool
}

func (Float) isValue()       {}
func (Float) Dim() string    { return "number" }
func (f Float) Latent() bool { return f.LatentValue }

// grainOf reports the power-of-ten grain of a round number (10, 100, 1000,
// ...), used by the "intersect" composition rule to decide which operand is
// coarser (e.g. "nineteen hundred" = 1900, not 19*100 digit concatenation).
func grainOf(n int64) int {
	if n < 0 {
		n = -n
	}
	grain := 0
	for _, scale := range []int64{1000000000, 1000000, 1000, 100} {
		if n != 0 && n%scale == 0 {
			grain = len(fmt.Sprintf("%d", scale)) - 1
			break
		}
	}
	return grain
}

// Ordinal is a ranked position, e.g. from "third" or "3rd".
type Ordinal struct {
	Value int64
}

func (Ordinal) isValue()      {}
func (Ordinal) Dim() string   { return "ordinal" }
func (Ordinal) Latent() bool  { return false }

// UnitOfDuration names a grain used as a bare duration unit ("hours",
// "days").
type UnitOfDuration struct {
	Grain moment.Grain
}

func (UnitOfDuration) isValue()     {}
func (UnitOfDuration) Dim() string  { return "unit-of-duration" }
func (UnitOfDuration) Latent() bool { return false }

// Cycle is a grain seen as a predicate ("every day", "every March").
type Cycle struct {
	Grain moment.Grain
}

func (Cycle) isValue()     {}
func (Cycle) Dim() string  { return "cycle" }
func (Cycle) Latent() bool { return false }

// Duration is a signed span of calendar time, e.g. "3 days", "2 hours".
type Duration struct {
	Comps       []moment.PeriodComp
	Precision   Precision
	LatentValue bool
}

func (Duration) isValue()       {}
func (Duration) Dim() string    { return "duration" }
func (d Duration) Latent() bool { return d.LatentValue }

// Negate returns a Duration with every component's quantity negated, used
// to resolve the "n weeks ago" vs "n weeks hence" polarity (SPEC_FULL §10).
func (d Duration) Negate() Duration {
	out := Duration{Precision: d.Precision, LatentValue: d.LatentValue}
	out.Comps = make([]moment.PeriodComp, len(d.Comps))
	for i, c := range d.Comps {
		out.Comps[i] = moment.PeriodComp{Grain: c.Grain, Quantity: -c.Quantity}
	}
	return out
}

// ToPeriod converts the duration's components into a moment.Period that can
// be added to or subtracted from a Moment.
func (d Duration) ToPeriod() moment.Period {
	return moment.Period(d.Comps)
}

// MoneyUnit names a currency by symbol or ISO-ish code.
type MoneyUnit struct {
	Symbol string // e.g. "$", "€", "USD"; empty means unnamed/ambiguous unit
}

func (MoneyUnit) isValue()     {}
func (MoneyUnit) Dim() string  { return "money-unit" }
func (MoneyUnit) Latent() bool { return false }

// AmountOfMoney is a monetary quantity, optionally unit-tagged.
type AmountOfMoney struct {
	Value       float64
	Unit        string // "" if no unit was determined
	Precision   Precision
	LatentValue bool
}

func (AmountOfMoney) isValue()        {}
func (AmountOfMoney) Dim() string     { return "amount-of-money" }
func (a AmountOfMoney) Latent() bool  { return a.LatentValue }

// Temperature is a value with an optional unit ("3 degrees" is latent until
// "celsius"/"fahrenheit" lifts the flag).
type Temperature struct {
	Value       float64
	Unit        string // "celsius", "fahrenheit", "degree", or ""
	LatentValue bool
}

func (Temperature) isValue()       {}
func (Temperature) Dim() string    { return "temperature" }
func (t Temperature) Latent() bool { return t.LatentValue }

// Percentage is a bare percentage value ("15%", "fifteen percent").
type Percentage struct {
	Value float64
}

func (Percentage) isValue()     {}
func (Percentage) Dim() string  { return "percentage" }
func (Percentage) Latent() bool { return false }

// RelativeMinute is a signed clock-face minute offset used by "quarter
// past", "twenty to" style rules before they're composed onto an hour.
type RelativeMinute struct {
	Value int
}

func (RelativeMinute) isValue()     {}
func (RelativeMinute) Dim() string  { return "relative-minute" }
func (RelativeMinute) Latent() bool { return false }
