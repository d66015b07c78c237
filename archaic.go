//go:build archaic

package roman

import "github.com/vdparikh/roman/subtle"

// Archaic reports whether the archaic glyphs ↀ ↁ ↂ ↇ ↈ are enabled.
const Archaic = true

// MaxValue is the largest integer FromInt accepts.
const MaxValue = 399999

// archaicTerms precede the base table when encoding. M spells 1000 so the
// canonical output never mixes the two thousand glyphs.
var archaicTerms = []subtle.Term{
	term(100000, HundredThousand),
	term(90000, TenThousand, HundredThousand),
	term(50000, FiftyThousand),
	term(40000, TenThousand, FiftyThousand),
	term(10000, TenThousand),
	term(9000, M, TenThousand),
	term(5000, FiveThousand),
	term(4000, M, FiveThousand),
}

var archaicGlyphs = map[rune][]Digit{
	'ↀ': {OneThousandOld},
	'ↁ': {FiveThousand},
	'ↂ': {TenThousand},
	'ↇ': {FiftyThousand},
	'ↈ': {HundredThousand},
}
