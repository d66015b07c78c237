// Package roman converts between unsigned integers and Roman numeral digits.
//
// The package is built around a single closed symbol set, Digit, and three
// conversion directions:
//
//   - FromInt encodes a positive integer into its canonical, minimal digit
//     sequence (1994 becomes M, C, M, X, C, I, V).
//   - ValueOf decodes any digit sequence back into a number. Decoding is
//     lenient: it applies subtractive pairs left to right and never fails,
//     even for sequences FromInt would never produce.
//   - FromChar maps a single character (ASCII letter, Unicode Number Form
//     such as 'Ⅷ', or an archaic glyph) to the digits it denotes. FromByte
//     is the ASCII-only, single-digit variant.
//
// Every operation is a pure function over value types and is safe for
// concurrent use without synchronization.
//
// # Archaic numerals
//
// Building with the "archaic" tag adds the glyphs ↀ ↁ ↂ ↇ ↈ to every table:
//
//	go build -tags archaic ./...
//
// The archaic Digit constants always exist, but they are only recognized by
// FromChar, FromInt, and Digit.Valid when the tag is set. Archaic reports
// which build is in use.
//
// Example usage:
//
//	digits, err := roman.FromInt(uint32(1994))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(digits)          // MCMXCIV
//	fmt.Println(digits.Value())  // 1994
//
//	viii, _ := roman.FromChar('Ⅷ')
//	fmt.Println(roman.ValueOf[int](viii)) // 8
package roman

import "github.com/vdparikh/roman/subtle"

// Number is any integer or floating point type a digit value can be projected into.
// The caller picks a type wide enough for the result; narrower types truncate
// like an ordinary Go conversion.
type Number = subtle.Number
