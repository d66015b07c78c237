//go:build !archaic

package roman

import "github.com/vdparikh/roman/subtle"

// Archaic reports whether the archaic glyphs ↀ ↁ ↂ ↇ ↈ are enabled.
const Archaic = false

// MaxValue is the largest integer FromInt accepts.
const MaxValue = 3999

var (
	archaicTerms  []subtle.Term
	archaicGlyphs map[rune][]Digit
)
