package roman

// byteDigits maps an ASCII byte to a digit ordinal, -1 if unrecognized.
var byteDigits [256]int8

// glyphs maps every recognized character to its expansion.
var glyphs = map[rune][]Digit{}

func init() {
	for i := range byteDigits {
		byteDigits[i] = -1
	}
	for d := I; d <= M; d++ {
		byteDigits[d.Upper()] = int8(d)
		byteDigits[d.Lower()] = int8(d)
		glyphs[d.Upper()] = []Digit{d}
		glyphs[d.Lower()] = []Digit{d}
	}

	// Unicode Number Forms: U+2160..U+216F uppercase, U+2170..U+217F lowercase.
	numberForms := [...][]Digit{
		{I},
		{I, I},
		{I, I, I},
		{I, V},
		{V},
		{V, I},
		{V, I, I},
		{V, I, I, I},
		{I, X},
		{X},
		{X, I},
		{X, I, I},
		{L},
		{C},
		{D},
		{M},
	}
	for i, ds := range numberForms {
		glyphs[rune(0x2160+i)] = ds
		glyphs[rune(0x2170+i)] = ds
	}

	for r, ds := range archaicGlyphs {
		glyphs[r] = ds
	}
}

// FromChar returns the digits denoted by a single character.
//
// Supported, case-insensitive:
//   - ASCII letters I, V, X, L, C, D, M
//   - Unicode Number Forms 'Ⅰ'..'Ⅿ' (U+2160–U+216F) and 'ⅰ'..'ⅿ' (U+2170–U+217F),
//     expanded to their composition: 'Ⅷ' is V I I I, 'ⅸ' is I X
//   - ↀ ↁ ↂ ↇ ↈ when built with the "archaic" tag
//
// Any other character fails with an InvalidDigitError carrying it.
// The returned slice is owned by the caller.
func FromChar(r rune) (Digits, error) {
	ds, ok := glyphs[r]
	if !ok {
		return nil, &InvalidDigitError{Char: r}
	}

	result := make(Digits, len(ds))
	copy(result, ds)
	return result, nil
}

// FromByte converts an ASCII letter (case-insensitive) into a single digit.
// Unlike FromChar it never expands composites and never recognizes archaic glyphs.
func FromByte(b byte) (Digit, error) {
	idx := byteDigits[b]
	if idx < 0 {
		return 0, &InvalidDigitError{Char: rune(b)}
	}
	return Digit(idx), nil
}
