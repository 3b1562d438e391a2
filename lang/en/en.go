// Package en is the English grammar pack: number, ordinal, datetime,
// duration, money, temperature, and percentage rules, grounded in
// original_source/grammar/en and original_source/rules/src/en.rs — the
// most detailed of this module's language packs, since English carries
// every one of SPEC_FULL.md's end-to-end scenarios.
package en

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the complete English ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.English, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
