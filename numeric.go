package roman

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/vdparikh/roman/subtle"
)

// Digits is an ordered digit sequence, most-significant first.
type Digits []Digit

var baseTerms = []subtle.Term{
	term(1000, M),
	term(900, C, M),
	term(500, D),
	term(400, C, D),
	term(100, C),
	term(90, X, C),
	term(50, L),
	term(40, X, L),
	term(10, X),
	term(9, I, X),
	term(5, V),
	term(4, I, V),
	term(1, I),
}

// encodeTable is the descending greedy table for this build.
var encodeTable = append(append([]subtle.Term{}, archaicTerms...), baseTerms...)

func term(value uint64, ds ...Digit) subtle.Term {
	symbols := make([]uint8, len(ds))
	for i, d := range ds {
		symbols[i] = uint8(d)
	}
	return subtle.Term{Value: value, Symbols: symbols}
}

// FromInt converts num into its canonical digit sequence.
//
//	roman.FromInt(uint8(3))     // I I I
//	roman.FromInt(uint8(9))     // I X
//	roman.FromInt(uint16(1994)) // M C M X C I V
//
// Zero and values above MaxValue fail with an InvalidNumberError.
// The result never repeats a digit four times in a row and has the minimum
// length of any spelling of num.
func FromInt[T constraints.Unsigned](num T) (Digits, error) {
	n := uint64(num)
	if n == 0 || n > MaxValue {
		return nil, &InvalidNumberError{Value: n}
	}

	symbols := subtle.Decompose(n, encodeTable)
	result := make(Digits, len(symbols))
	for i, s := range symbols {
		result[i] = Digit(s)
	}

	return result, nil
}

// ValueOf computes the numeric value of a digit sequence (X I V is 14).
//
// A digit followed by a strictly greater one forms a subtractive pair.
// ValueOf accepts any sequence, canonical or not, and never fails; it does
// not check that the input is what FromInt would produce. Unknown digits
// count as zero.
func ValueOf[T Number](digits []Digit) T {
	values := make([]T, len(digits))
	for i, d := range digits {
		values[i] = As[T](d)
	}
	return subtle.Fold(values)
}

// Value returns the value of ds as a uint32.
func (ds Digits) Value() uint32 {
	return ValueOf[uint32](ds)
}

// String renders ds in uppercase, e.g. "MCMXCIV".
func (ds Digits) String() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteRune(d.Upper())
	}
	return b.String()
}

// Lower renders ds in lowercase, e.g. "mcmxciv".
func (ds Digits) Lower() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteRune(d.Lower())
	}
	return b.String()
}
