// Package rule models production rules: an ordered pattern of regex
// fragments and typed value filters, paired with a semantic action that
// constructs a dimension value from the matched children.
//
// Pattern arity is fixed at build time via the Rule1..Rule6 builder
// functions (spec.md §9 prefers mirroring the source's per-arity builders
// over a single variadic pattern type, for compile-time-checked semantic
// action signatures). Each arity's semantic action receives exactly that
// many *Match arguments.
package rule

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/az-ai-labs/chronolex/value"
)

// ErrEmptyPattern is returned by Builder.Build when a rule's pattern has no
// elements.
var ErrEmptyPattern = errors.New("rule: empty pattern")

// ErrDuplicateName is returned by Builder.Build when two rules share a name.
var ErrDuplicateName = errors.New("rule: duplicate rule name")

// ErrNonTerminalCycle is returned by Builder.Build when a rule's pattern
// consists solely of dim_check elements with no regex token — such a rule
// could fire without ever consuming input, which would not terminate the
// chart's fixed-point loop.
var ErrNonTerminalCycle = errors.New("rule: pattern has no regex token (dim -> dim cycle)")

// Match is what a pattern Element binds to once it is satisfied: either a
// regex submatch or an existing parse node's value.
type Match struct {
	Text  string
	Start int
	End   int
	// Value is non-nil when this Match came from a DimCheck element.
	Value value.Value
	// Groups holds the regex capture groups (Groups[0] is the whole match)
	// when this Match came from a Regex element.
	Groups []string
}

// ElementKind distinguishes the two pattern-element shapes.
type ElementKind int

const (
	KindRegex ElementKind = iota
	KindDimCheck
)

// Element is one slot of a rule's pattern.
type Element struct {
	Kind ElementKind

	// Regex fields (Kind == KindRegex).
	Re           *regexp.Regexp
	ForbidFollow *regexp.Regexp // optional negative look-ahead match, tried at the end offset

	// DimCheck fields (Kind == KindDimCheck).
	Dim   string
	Check func(value.Value) bool
}

// Regex builds a plain anchored-regex pattern element.
func Regex(re *regexp.Regexp) Element {
	return Element{Kind: KindRegex, Re: re}
}

// RegexNegLookahead builds a regex pattern element that additionally
// requires forbid not match at the end offset of re's match — the
// work-around spec.md §4.1/§9 describes for a look-ahead-free regex engine.
func RegexNegLookahead(re, forbid *regexp.Regexp) Element {
	return Element{Kind: KindRegex, Re: re, ForbidFollow: forbid}
}

// DimCheck builds a pattern element matching any existing node of the given
// dimension whose value satisfies check.
func DimCheck(dim string, check func(value.Value) bool) Element {
	if check == nil {
		check = func(value.Value) bool { return true }
	}
	return Element{Kind: KindDimCheck, Dim: dim, Check: check}
}

// IntegerCheck matches Integer values.
func IntegerCheck(check func(value.Integer) bool) Element {
	return DimCheck("number", func(v value.Value) bool {
		i, ok := v.(value.Integer)
		return ok && (check == nil || check(i))
	})
}

// IntegerCheckByRange matches Integer values within [lo, hi].
func IntegerCheckByRange(lo, hi int64) Element {
	return IntegerCheck(func(i value.Integer) bool { return i.Value >= lo && i.Value <= hi })
}

// NumberCheck matches Integer or Float values.
func NumberCheck(check func(value.Value) bool) Element {
	return DimCheck("number", func(v value.Value) bool {
		switch v.(type) {
		case value.Integer, value.Float:
			return check == nil || check(v)
		default:
			return false
		}
	})
}

// OrdinalCheck matches Ordinal values.
func OrdinalCheck() Element {
	return DimCheck("ordinal", func(v value.Value) bool { _, ok := v.(value.Ordinal); return ok })
}

// DatetimeCheck matches Datetime values satisfying check.
func DatetimeCheck(check func(value.Datetime) bool) Element {
	return DimCheck("datetime", func(v value.Value) bool {
		d, ok := v.(value.Datetime)
		return ok && (check == nil || check(d))
	})
}

// DurationCheck matches Duration values.
func DurationCheck() Element {
	return DimCheck("duration", func(v value.Value) bool { _, ok := v.(value.Duration); return ok })
}

// CycleCheck matches Cycle values.
func CycleCheck() Element {
	return DimCheck("cycle", func(v value.Value) bool { _, ok := v.(value.Cycle); return ok })
}

// AmountOfMoneyCheck matches AmountOfMoney values.
func AmountOfMoneyCheck(check func(value.AmountOfMoney) bool) Element {
	return DimCheck("amount-of-money", func(v value.Value) bool {
		m, ok := v.(value.AmountOfMoney)
		return ok && (check == nil || check(m))
	})
}

// MoneyUnitCheck matches MoneyUnit values.
func MoneyUnitCheck() Element {
	return DimCheck("money-unit", func(v value.Value) bool { _, ok := v.(value.MoneyUnit); return ok })
}

// TemperatureCheck matches Temperature values.
func TemperatureCheck() Element {
	return DimCheck("temperature", func(v value.Value) bool { _, ok := v.(value.Temperature); return ok })
}

// FormCheck matches Datetime values with the given form.
func FormCheck(f value.Form) func(value.Datetime) bool {
	return func(d value.Datetime) bool { return d.FormTag == f }
}

// NotLatent wraps a check to additionally require the value not be latent.
func NotLatent(check func(value.Datetime) bool) func(value.Datetime) bool {
	return func(d value.Datetime) bool { return !d.LatentValue && (check == nil || check(d)) }
}

// Action is a rule's semantic constructor. It returns (nil, false) when the
// candidate match is semantically invalid (e.g. day-of-month 32) — this is
// a local, silent rule failure per spec.md §7, never an engine error.
type Action func(m []Match) (value.Value, bool)

// Rule is a complete production: a name, a pattern, and an action.
type Rule struct {
	Name    string
	Pattern []Element
	Act     Action
	// ID is assigned by Builder.Build in registration order and used as the
	// tie-break key in ranking (spec.md §4.5) and as part of the node
	// dedup key (spec.md §3.7).
	ID int
}

// Ruleset is the immutable, built collection of rules for one language.
// It is safe to share across concurrent parses (spec.md §5).
type Ruleset struct {
	Language value.Language
	Rules    []Rule
	// Separator is the inter-token separator regex admitted between
	// consecutive pattern elements (spec.md §4.4); defaults to `\s*`.
	Separator *regexp.Regexp
}

// Builder accumulates rules before Build validates and freezes them.
type Builder struct {
	language  value.Language
	separator *regexp.Regexp
	rules     []Rule
	err       error
}

// NewBuilder starts a ruleset builder for the given language. sep is the
// inter-token separator regex; pass nil for the default `\s*`.
func NewBuilder(lang value.Language, sep *regexp.Regexp) *Builder {
	if sep == nil {
		sep = regexp.MustCompile(`\s*`)
	}
	return &Builder{language: lang, separator: sep}
}

// Add registers one rule. Pattern arity 1-6 is enforced by the Rule1..Rule6
// helpers below; Add itself accepts any non-empty pattern so grammar code
// that already has an []Element (e.g. built programmatically) can use it
// directly.
func (b *Builder) Add(name string, pattern []Element, act Action) {
	if b.err != nil {
		return
	}
	b.rules = append(b.rules, Rule{Name: name, Pattern: pattern, Act: act})
}

// Reg compiles pattern as a case-insensitive, anchored regex, recording a
// build error on failure instead of panicking — regex compilation failure
// at ruleset-build time is fatal per spec.md §7, surfaced through Build's
// returned error rather than a panic.
func (b *Builder) Reg(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("rule: bad regex %q: %w", pattern, err)
		}
		return regexp.MustCompile(`$^`) // never matches; keeps callers simple until Build reports b.err
	}
	return re
}

// Build validates and freezes the ruleset: rejects empty patterns,
// duplicate names, and dim-only (non-terminal) cycles, then assigns stable
// rule IDs in registration order.
func (b *Builder) Build() (*Ruleset, error) {
	if b.err != nil {
		return nil, b.err
	}
	seen := make(map[string]bool, len(b.rules))
	for i, r := range b.rules {
		if len(r.Pattern) == 0 {
			return nil, fmt.Errorf("%w: rule %q", ErrEmptyPattern, r.Name)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		seen[r.Name] = true
		hasRegex := false
		for _, el := range r.Pattern {
			if el.Kind == KindRegex {
				hasRegex = true
				break
			}
		}
		if !hasRegex {
			return nil, fmt.Errorf("%w: rule %q", ErrNonTerminalCycle, r.Name)
		}
		b.rules[i].ID = i
	}
	return &Ruleset{Language: b.language, Rules: b.rules, Separator: b.separator}, nil
}

// --- Arity-specific builders (spec.md §9: mirror the source's arity
// builders rather than a single variadic pattern, for action type safety)
// ---

func (b *Builder) Rule1(name string, e1 Element, act func(Match) (value.Value, bool)) {
	b.Add(name, []Element{e1}, func(m []Match) (value.Value, bool) { return act(m[0]) })
}

func (b *Builder) Rule2(name string, e1, e2 Element, act func(Match, Match) (value.Value, bool)) {
	b.Add(name, []Element{e1, e2}, func(m []Match) (value.Value, bool) { return act(m[0], m[1]) })
}

func (b *Builder) Rule3(name string, e1, e2, e3 Element, act func(Match, Match, Match) (value.Value, bool)) {
	b.Add(name, []Element{e1, e2, e3}, func(m []Match) (value.Value, bool) { return act(m[0], m[1], m[2]) })
}

func (b *Builder) Rule4(name string, e1, e2, e3, e4 Element, act func(Match, Match, Match, Match) (value.Value, bool)) {
	b.Add(name, []Element{e1, e2, e3, e4}, func(m []Match) (value.Value, bool) { return act(m[0], m[1], m[2], m[3]) })
}

func (b *Builder) Rule5(name string, e1, e2, e3, e4, e5 Element, act func(Match, Match, Match, Match, Match) (value.Value, bool)) {
	b.Add(name, []Element{e1, e2, e3, e4, e5}, func(m []Match) (value.Value, bool) { return act(m[0], m[1], m[2], m[3], m[4]) })
}

func (b *Builder) Rule6(name string, e1, e2, e3, e4, e5, e6 Element, act func(Match, Match, Match, Match, Match, Match) (value.Value, bool)) {
	b.Add(name, []Element{e1, e2, e3, e4, e5, e6}, func(m []Match) (value.Value, bool) { return act(m[0], m[1], m[2], m[3], m[4], m[5]) })
}
