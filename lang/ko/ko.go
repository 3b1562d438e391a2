// Package ko is the Korean grammar pack, grounded in
// original_source/rules/src/ko.rs: Sino-Korean digits, postposition-led
// cycle words (지난/다음 <cycle>), and duration composition where the
// marker follows its duration ("<duration> 전", "<duration> 후").
// original_source/rules/src/ko.rs has no standalone rules_time module, so
// weekday/today-tomorrow-yesterday deixis here is supplemented in the same
// terminal-rule idiom as rules_cycle/rules_duration.
package ko

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the Korean ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.Korean, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
