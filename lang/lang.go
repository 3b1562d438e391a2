// Package lang is the language-selector registry: it maps a value.Language
// to the grammar pack that builds its ruleset. Unknown languages are a
// fatal ruleset-construction error (spec.md §6), never a silent fallback.
package lang

import (
	"fmt"

	"github.com/az-ai-labs/chronolex/lang/en"
	"github.com/az-ai-labs/chronolex/lang/es"
	"github.com/az-ai-labs/chronolex/lang/fr"
	"github.com/az-ai-labs/chronolex/lang/it"
	"github.com/az-ai-labs/chronolex/lang/ko"
	"github.com/az-ai-labs/chronolex/lang/pt"
	"github.com/az-ai-labs/chronolex/lang/zh"
	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// Build constructs the ruleset for l, dispatching to the matching grammar
// pack's own Build function.
func Build(l value.Language) (*rule.Ruleset, error) {
	switch l {
	case value.English:
		return en.Build()
	case value.Spanish:
		return es.Build()
	case value.French:
		return fr.Build()
	case value.Italian:
		return it.Build()
	case value.Portuguese:
		return pt.Build()
	case value.Chinese:
		return zh.Build()
	case value.Korean:
		return ko.Build()
	default:
		return nil, fmt.Errorf("lang: unsupported language %v", l)
	}
}
