// Package textnorm normalises input text before chart parsing: full
// Unicode NFC composition (the teacher's internal/azcase/nfc.go only
// composes six Azerbaijani letter pairs and says outright "for full NFC,
// preprocess with golang.org/x/text/unicode/norm externally" — this
// package is that preprocessing step, generalised to every language this
// module parses) plus fullwidth-to-halfwidth digit/punctuation folding
// for the Chinese grammar pack, which otherwise never matches a fullwidth
// "３点" the way it matches "3点".
package textnorm

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize composes s to NFC and folds fullwidth forms to their
// halfwidth equivalents, the shape every grammar pack's rules assume
// their input arrives in.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = width.Fold.String(s)
	return s
}
