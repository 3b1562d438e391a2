package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/az-ai-labs/chronolex/internal/textnorm"
)

func TestNormalizeComposesNFC(t *testing.T) {
	decomposed := "café" // e + combining acute accent, not precomposed U+00E9
	composed := "café"
	assert.Equal(t, composed, textnorm.Normalize(decomposed))
}

func TestNormalizeFoldsFullwidthDigits(t *testing.T) {
	assert.Equal(t, "3点", textnorm.Normalize("３点"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	s := textnorm.Normalize("１２:３０ café")
	assert.Equal(t, s, textnorm.Normalize(s))
}

func TestNormalizeLeavesPlainASCIIUnchanged(t *testing.T) {
	assert.Equal(t, "next monday at 5pm", textnorm.Normalize("next monday at 5pm"))
}
