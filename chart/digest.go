package chart

import (
	"fmt"

	"github.com/az-ai-labs/chronolex/value"
)

// digest returns a canonical textual form of a dimension value used for
// node deduplication. Predicates do not admit cheap equality (spec.md §9),
// so the digest is structural up to the algebraic shape Go's %#v printer
// already produces for these value types; collisions only cause an
// occasional missed dedup, never an incorrectness, exactly as spec.md §9
// documents.
func digest(v value.Value) string {
	return fmt.Sprintf("%#v", v)
}
