package chart

import (
	"regexp"

	"github.com/az-ai-labs/chronolex/rule"
)

// findAll returns every match of a Regex element anywhere in text.
func findAll(el rule.Element, text string) []rule.Match {
	var out []rule.Match
	for _, loc := range el.Re.FindAllStringSubmatchIndex(text, -1) {
		if m, ok := toMatch(el, text, loc); ok {
			out = append(out, m)
		}
	}
	return out
}

// findAllAt returns every match of a Regex element anchored exactly at
// byte offset `at` (spec.md §4.4: "tokens must otherwise abut").
func findAllAt(el rule.Element, text string, at int) []rule.Match {
	if at > len(text) {
		return nil
	}
	var out []rule.Match
	sub := text[at:]
	locs := el.Re.FindAllStringSubmatchIndex(sub, -1)
	for _, loc := range locs {
		if loc[0] != 0 {
			continue // not anchored at `at`
		}
		abs := make([]int, len(loc))
		for i, v := range loc {
			if v < 0 {
				abs[i] = -1
			} else {
				abs[i] = v + at
			}
		}
		if m, ok := toMatch(el, text, abs); ok {
			out = append(out, m)
		}
	}
	return out
}

func toMatch(el rule.Element, text string, loc []int) (rule.Match, bool) {
	start, end := loc[0], loc[1]
	if el.ForbidFollow != nil && el.ForbidFollow.MatchString(text[end:]) {
		return rule.Match{}, false
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			continue
		}
		groups[i] = text[s:e]
	}
	return rule.Match{Text: text[start:end], Start: start, End: end, Groups: groups}, true
}

// skipSeparator advances `at` past whatever prefix of text[at:] the
// separator regex matches, so consecutive pattern elements can be
// written as if adjacent while still tolerating intervening whitespace
// or language-specific punctuation (spec.md §4.4).
func skipSeparator(text string, at int, sep *regexp.Regexp) int {
	if at > len(text) || sep == nil {
		return at
	}
	loc := sep.FindStringIndex(text[at:])
	if loc == nil || loc[0] != 0 {
		return at
	}
	return at + loc[1]
}
