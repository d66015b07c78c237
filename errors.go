package roman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber matches every InvalidNumberError.
	ErrInvalidNumber = errors.New("roman: invalid number")

	// ErrInvalidDigit matches every InvalidDigitError.
	ErrInvalidDigit = errors.New("roman: invalid digit")
)

// InvalidNumberError is returned when a number has no Roman representation:
// zero, or anything above MaxValue.
type InvalidNumberError struct {
	Value uint64
}

func (e *InvalidNumberError) Error() string {
	if e.Value == 0 {
		return "roman: invalid number 0: zero has no representation"
	}
	return fmt.Sprintf("roman: invalid number %d: exceeds maximum %d", e.Value, MaxValue)
}

func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// InvalidDigitError is returned when a character or byte is not a recognized numeral glyph.
type InvalidDigitError struct {
	Char rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("roman: invalid digit %q", e.Char)
}

func (e *InvalidDigitError) Is(target error) bool { return target == ErrInvalidDigit }
