// Package pt is the Portuguese grammar pack, grounded in
// original_source/grammar/pt/src/rules.rs and rules_datetime.rs: a
// representative subset of number, datetime, duration, and money rules.
package pt

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the Portuguese ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.Portuguese, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
