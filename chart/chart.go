// Package chart implements the bottom-up chart parser: given an input
// string and a ruleset, it saturates every derivable typed node over every
// byte range by repeatedly firing rules whose pattern is fully satisfied.
package chart

import (
	"context"
	"fmt"
	"sort"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Node is one parsed value together with its span and derivation. Children
// are referenced by index into the chart's node slice rather than by direct
// pointer, so the chart exclusively owns its nodes (spec.md §5) and no
// aliasing cycle can form.
type Node struct {
	Value    value.Value
	Start    int
	End      int
	RuleID   int
	RuleName string
	Children []int
}

// Chart is the dense record of every partial and complete parse node over
// every byte range, indexed for efficient rule-saturation queries.
type Chart struct {
	text    string
	nodes   []Node
	byStart map[int][]int
	byEnd   map[int][]int
	byDim   map[string][]int
	seen    map[dedupKey]bool
}

type dedupKey struct {
	ruleID int
	start  int
	end    int
	digest string
}

func newChart(text string) *Chart {
	return &Chart{
		text:    text,
		byStart: make(map[int][]int),
		byEnd:   make(map[int][]int),
		byDim:   make(map[string][]int),
		seen:    make(map[dedupKey]bool),
	}
}

func (c *Chart) add(n Node) (int, bool) {
	key := dedupKey{ruleID: n.RuleID, start: n.Start, end: n.End, digest: digest(n.Value)}
	if c.seen[key] {
		return 0, false
	}
	c.seen[key] = true
	idx := len(c.nodes)
	c.nodes = append(c.nodes, n)
	c.byStart[n.Start] = append(c.byStart[n.Start], idx)
	c.byEnd[n.End] = append(c.byEnd[n.End], idx)
	c.byDim[n.Value.Dim()] = append(c.byDim[n.Value.Dim()], idx)
	return idx, true
}

// Nodes returns every node currently in the chart.
func (c *Chart) Nodes() []Node { return c.nodes }

// Options controls a Parse invocation.
type Options struct {
	// WithLatent is forwarded to callers; saturation always composes
	// through latent nodes regardless of this flag (spec.md §3.5: latency
	// only gates standalone *output*, not composition). Ranking honors it
	// when selecting the final non-overlapping set (package rank).
	WithLatent bool
}

// Parse saturates the chart for text under ruleset and returns every node
// produced. It never panics on malformed input: rule-action failures are
// local, per spec.md §7, and the function returns whatever it has computed
// so far if ctx's deadline expires between fixed-point iterations
// (spec.md §5: "best-effort").
func Parse(ctx context.Context, text string, rs *rule.Ruleset, opts Options) ([]Node, error) {
	if rs == nil {
		return nil, fmt.Errorf("chart: nil ruleset")
	}
	c := newChart(text)
	seeds := seedOffsets(text, rs)
	for {
		select {
		case <-ctx.Done():
			return c.Nodes(), nil
		default:
		}
		if saturateOnce(c, text, rs, seeds) == 0 {
			break
		}
	}
	return c.Nodes(), nil
}

// seedOffsets implements spec.md §4.4 step 1: for every rule whose first
// pattern element is a regex, find all its matches anywhere in text via the
// unanchored findAll, and return the set of their start offsets (plus 0, the
// only offset a dim_check-first rule could ever start composing from before
// any node exists). It is computed once per Parse call since it depends only
// on the static ruleset and text, not on chart state.
func seedOffsets(text string, rs *rule.Ruleset) map[int]bool {
	set := map[int]bool{0: true}
	for _, r := range rs.Rules {
		if len(r.Pattern) == 0 || r.Pattern[0].Kind != rule.KindRegex {
			continue
		}
		for _, m := range findAll(r.Pattern[0], text) {
			set[m.Start] = true
		}
	}
	return set
}

// saturateOnce runs one fixed-point iteration over every byte offset that
// currently starts a node, or could seed a leading-regex rule, attempting to
// complete every rule from that offset. It returns the number of new nodes
// produced; the caller (Parse) re-invokes it until the count is zero, per
// spec.md §4.4 step 4.
func saturateOnce(c *Chart, text string, rs *rule.Ruleset, seeds map[int]bool) int {
	offsets := candidateOffsets(c, seeds)
	produced := 0
	for _, start := range offsets {
		for _, r := range rs.Rules {
			produced += tryFromOffset(c, text, rs, r, start)
		}
	}
	return produced
}

// candidateOffsets returns every byte offset a rule could plausibly start
// matching at: every existing node's start offset, plus every seed offset
// (offset 0, and every match start of a leading-regex rule found anywhere
// in the text).
func candidateOffsets(c *Chart, seeds map[int]bool) []int {
	set := make(map[int]bool, len(seeds)+len(c.byStart))
	for off := range seeds {
		set[off] = true
	}
	for off := range c.byStart {
		set[off] = true
	}
	out := make([]int, 0, len(set))
	for off := range set {
		out = append(out, off)
	}
	sort.Ints(out)
	return out
}

// tryFromOffset attempts every way rule r can start matching at byte
// offset start, recursively extending through the pattern via tryExtend.
func tryFromOffset(c *Chart, text string, rs *rule.Ruleset, r rule.Rule, start int) int {
	return extendPattern(c, text, rs, r, nil, start)
}

// extendPattern continues matching rule r's pattern starting at byte
// offset `at`, either completing the rule (firing its action) once every
// element has a match, or trying the next element's regex/dim_check
// alternatives and recursing.
func extendPattern(c *Chart, text string, rs *rule.Ruleset, r rule.Rule, matches []rule.Match, at int) int {
	if len(matches) == len(r.Pattern) {
		return fireAction(c, r, matches)
	}
	if len(matches) > 0 {
		at = skipSeparator(text, at, rs.Separator)
	}
	el := r.Pattern[len(matches)]
	produced := 0
	switch el.Kind {
	case rule.KindRegex:
		for _, loc := range findAllAt(el, text, at) {
			produced += extendPattern(c, text, rs, r, appendMatch(matches, loc), loc.End)
		}
	case rule.KindDimCheck:
		for _, idx := range c.byStart[at] {
			n := c.nodes[idx]
			if n.Value.Dim() != el.Dim || !el.Check(n.Value) {
				continue
			}
			m := rule.Match{Text: text[n.Start:n.End], Start: n.Start, End: n.End, Value: n.Value}
			produced += extendPattern(c, text, rs, r, appendMatch(matches, m), n.End)
		}
	}
	return produced
}

func appendMatch(matches []rule.Match, m rule.Match) []rule.Match {
	out := make([]rule.Match, len(matches)+1)
	copy(out, matches)
	out[len(matches)] = m
	return out
}

func fireAction(c *Chart, r rule.Rule, matches []rule.Match) int {
	v, ok := r.Act(matches)
	if !ok || v == nil {
		return 0 // local, silent rule-action failure (spec.md §7)
	}
	start := matches[0].Start
	end := matches[len(matches)-1].End
	node := Node{Value: v, Start: start, End: end, RuleID: r.ID, RuleName: r.Name}
	if _, added := c.add(node); added {
		return 1
	}
	return 0
}
