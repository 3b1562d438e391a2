// Package es is the Spanish grammar pack, grounded in
// original_source/grammar/es/src/rules_number.rs and rules_datetime.rs: a
// representative subset of number, datetime, duration, and money rules
// covering the core scenarios shared across this module's language packs.
package es

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the Spanish ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.Spanish, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
