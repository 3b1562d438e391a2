package rank

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/rule"
)

// LoadWeights reads a trained feature-weight mapping from YAML, the format
// in which the offline harness serialises weights for the runtime to
// consume (spec.md §6). The runtime never trains; it only loads.
func LoadWeights(r io.Reader) (Weights, error) {
	var w Weights
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&w); err != nil && err != io.EOF {
		return nil, err
	}
	if w == nil {
		w = Weights{}
	}
	return w, nil
}

// Example is one training-example record: input text and a checker
// callback the offline harness uses to accept any parser output value
// that satisfies it. The shape is frozen for compatibility with the
// (out-of-scope) learner — see spec.md §6.
type Example struct {
	Text    string
	Checker func(chart.Node) bool
}

// TrainWeights is the runtime-side stub of the offline ranking-weight
// learner: spec.md §1 places the learner itself out of scope ("Training-
// example harness and the ranking-weight learner... Only the ranker's
// runtime contract appears here"). This function is a simple in-package
// producer of Weights; no test in the repository calls it. It parses every example
// against rs, rewards features of nodes the example's checker accepts,
// and penalises features seen only on rejected nodes, which is enough to
// exercise Select's selection and tie-break logic without reimplementing
// the real offline learner.
func TrainWeights(examples []Example, rs *rule.Ruleset) (Weights, error) {
	w := Weights{"length": 0.01, "latent": -10}
	for _, ex := range examples {
		nodes, err := chart.Parse(context.Background(), ex.Text, rs, chart.Options{WithLatent: true})
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			delta := -1.0
			if ex.Checker != nil && ex.Checker(n) {
				delta = 1.0
			}
			w[ruleFeature(n.RuleName)] += delta
			w[dimFeature(n.Value.Dim())] += delta
		}
	}
	return w, nil
}
