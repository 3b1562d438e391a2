// Package fr is the French grammar pack, grounded in
// original_source/grammar/fr/src/rules_number.rs and training.rs: a
// representative subset of number, datetime, duration, and money rules.
package fr

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the French ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.French, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
