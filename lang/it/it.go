// Package it is the Italian grammar pack, grounded in
// original_source/grammar/it/src/rules_number.rs and rules.rs: a
// representative subset of number, datetime, duration, and money rules.
package it

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the Italian ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.Italian, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
