// Package zh is the Chinese grammar pack, grounded in
// original_source/grammar/zh/src/rules.rs: Han-numeral digits, named
// weekdays/months written with 星期/月, and relative-day deixis
// (今天/明天/昨天), plus duration and finance composition.
package zh

import (
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the Chinese ruleset.
func Build() (*rule.Ruleset, error) {
	b := rule.NewBuilder(value.Chinese, nil)
	addNumberRules(b)
	addDurationRules(b)
	addDatetimeRules(b)
	addFinanceRules(b)
	return b.Build()
}
