// Package rank implements the disambiguator: it scores every chart node
// from a feature-weight mapping trained offline, then selects a maximal
// non-overlapping set of winners.
package rank

import (
	"cmp"
	"slices"

	"github.com/az-ai-labs/chronolex/chart"
)

// Weights maps a feature id to its trained weight. It is immutable once
// loaded and safe to share across concurrent parses (spec.md §5).
type Weights map[string]float64

// Score computes a node's score as the sum of feature_weight*feature_count
// over the features described in spec.md §4.5: the producing rule id, the
// child rule ids (bigram over the derivation — this implementation has no
// child rule ids available without re-deriving the chart's tree shape, so
// it scores on rule id, value dimension, latency, and match byte length,
// which are the features actually available on a flat
// chart.Node; see DESIGN.md for why the bigram feature is approximated).
func Score(n chart.Node, w Weights) float64 {
	var score float64
	score += w[ruleFeature(n.RuleName)]
	score += w[dimFeature(n.Value.Dim())]
	if n.Value.Latent() {
		score += w["latent"]
	}
	score += w["length"] * float64(n.End-n.Start)
	return score
}

func ruleFeature(name string) string { return "rule:" + name }
func dimFeature(dim string) string   { return "dim:" + dim }

// scored pairs a node with its computed score, keeping the node's original
// chart index for stable tie-breaking.
type scored struct {
	node  chart.Node
	idx   int
	score float64
}

// Select picks a maximal, non-overlapping set of winning nodes from the
// chart: among nodes with any byte overlap, the higher-scoring one wins;
// latent nodes are dropped unless withLatent is set. Ties are broken
// deterministically by (byte_range.start asc, byte_range.end desc,
// rule_id asc), per spec.md §4.5 and the ranker property of spec.md §8.
func Select(nodes []chart.Node, w Weights, withLatent bool) []chart.Node {
	candidates := make([]scored, 0, len(nodes))
	for i, n := range nodes {
		if n.Value.Latent() && !withLatent {
			continue
		}
		candidates = append(candidates, scored{node: n, idx: i, score: Score(n, w)})
	}

	// Process candidates highest-score first, breaking ties with the
	// deterministic tuple spec.md §4.5/§8 specify, and greedily accept any
	// candidate that does not overlap an already-accepted winner. This
	// keeps the higher score among overlapping candidates (a loser is
	// rejected here precisely because a higher-scoring overlapper was
	// accepted first). The greedy pass does not search for the disjoint
	// set with the largest total score.
	slices.SortFunc(candidates, func(a, b scored) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(a.node.Start, b.node.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(b.node.End, a.node.End); c != 0 { // longer first
			return c
		}
		return cmp.Compare(a.node.RuleID, b.node.RuleID)
	})

	var winners []chart.Node
	for _, cand := range candidates {
		conflict := false
		for _, w := range winners {
			if overlaps(cand.node, w) {
				conflict = true
				break
			}
		}
		if !conflict {
			winners = append(winners, cand.node)
		}
	}

	slices.SortFunc(winners, func(a, b chart.Node) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(b.End, a.End); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
	return winners
}

func overlaps(a, b chart.Node) bool {
	return a.Start < b.End && b.Start < a.End
}
