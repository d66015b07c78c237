package roman

import (
	"unicode/utf8"
)

// Digit is one Roman numeral symbol with a fixed magnitude.
// Digits are plain values: copy and compare them freely.
type Digit uint8

// The canonical digits. Ordinals are stable and used on the wire.
const (
	I Digit = iota // 1
	V              // 5
	X              // 10
	L              // 50
	C              // 100
	D              // 500
	M              // 1000

	// Archaic digits, recognized only when built with the "archaic" tag.
	OneThousandOld  // ↀ 1000
	FiveThousand    // ↁ 5000
	TenThousand     // ↂ 10000
	FiftyThousand   // ↇ 50000
	HundredThousand // ↈ 100000
)

type digitInfo struct {
	value uint32
	upper rune
	lower rune
}

var digitTable = [...]digitInfo{
	I: {1, 'I', 'i'},
	V: {5, 'V', 'v'},
	X: {10, 'X', 'x'},
	L: {50, 'L', 'l'},
	C: {100, 'C', 'c'},
	D: {500, 'D', 'd'},
	M: {1000, 'M', 'm'},

	// Archaic glyphs have no case.
	OneThousandOld:  {1000, 'ↀ', 'ↀ'},
	FiveThousand:    {5000, 'ↁ', 'ↁ'},
	TenThousand:     {10000, 'ↂ', 'ↂ'},
	FiftyThousand:   {50000, 'ↇ', 'ↇ'},
	HundredThousand: {100000, 'ↈ', 'ↈ'},
}

// Valid reports whether d is a digit recognized by this build.
func (d Digit) Valid() bool {
	if d <= M {
		return true
	}
	return Archaic && d <= HundredThousand
}

// Value returns the magnitude of d, or 0 if d is not a known digit.
func (d Digit) Value() uint32 {
	if int(d) >= len(digitTable) {
		return 0
	}
	return digitTable[d].value
}

// As returns the magnitude of d converted to T.
//
//	v := roman.As[float64](roman.L) // 50.0
func As[T Number](d Digit) T {
	return T(d.Value())
}

// Upper returns the uppercase glyph of d, or utf8.RuneError if d is unknown.
func (d Digit) Upper() rune {
	if int(d) >= len(digitTable) {
		return utf8.RuneError
	}
	return digitTable[d].upper
}

// Lower returns the lowercase glyph of d, or utf8.RuneError if d is unknown.
func (d Digit) Lower() rune {
	if int(d) >= len(digitTable) {
		return utf8.RuneError
	}
	return digitTable[d].lower
}

// String renders d as its uppercase glyph.
func (d Digit) String() string {
	return string(d.Upper())
}

// MarshalText implements encoding.TextMarshaler.
// Digits not valid in this build fail with an InvalidDigitError.
func (d Digit) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &InvalidDigitError{Char: d.Upper()}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text must be exactly one glyph that denotes exactly one digit, so
// composite forms such as "Ⅷ" are rejected.
func (d *Digit) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if size == 0 || size != len(text) {
		return &InvalidDigitError{Char: r}
	}

	ds, err := FromChar(r)
	if err != nil {
		return err
	}
	if len(ds) != 1 {
		return &InvalidDigitError{Char: r}
	}

	*d = ds[0]
	return nil
}
