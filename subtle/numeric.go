// Package subtle provides the low-level arithmetic behind Roman numeral conversion.
// It works on plain magnitudes and symbol indices and knows nothing about glyphs.
// It should not be used directly by most users; instead use the high-level APIs in the parent package.
package subtle

import "golang.org/x/exp/constraints"

// Number is any numeric type a digit sequence can be folded into.
type Number interface {
	constraints.Integer | constraints.Float
}

// Term is one row of a descending value table: a magnitude and the symbols
// that spell it, most-significant first.
type Term struct {
	Value   uint64
	Symbols []uint8
}

// Decompose expands n greedily over table and returns the symbol indices.
// The table must be sorted by descending Value and end with a Term of value 1,
// otherwise the remainder below the smallest term is dropped.
func Decompose(n uint64, table []Term) []uint8 {
	result := make([]uint8, 0, 15)

	for _, term := range table {
		if n == 0 {
			break
		}

		count := n / term.Value
		for i := uint64(0); i < count; i++ {
			result = append(result, term.Symbols...)
		}

		n %= term.Value
	}

	return result
}

// Fold computes the value of a sequence of magnitudes using subtractive pairs:
// a value followed by a strictly greater one contributes their difference.
// Fold never fails; non-canonical orderings still produce a number.
func Fold[T Number](values []T) T {
	var total T

	for i := 0; i < len(values); {
		curr := values[i]
		if i+1 < len(values) {
			if next := values[i+1]; curr < next {
				total += next - curr
				i += 2
				continue
			}
		}
		total += curr
		i++
	}

	return total
}

// MaxDecomposable returns the largest value Decompose can spell from table
// without any symbol repeating four times in a row: three copies of the
// leading term plus one below it, i.e. 4*lead - 1 for a standard table.
func MaxDecomposable(table []Term) uint64 {
	if len(table) == 0 {
		return 0
	}
	return 4*table[0].Value - 1
}
