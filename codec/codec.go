// Package codec serializes Roman digit sequences for storage and transport.
//
// Text-based codecs (JSON, CBOR, Msgpack) carry a sequence as an array of
// single-glyph strings, e.g. ["M","C","M"]. Proto carries the digit
// ordinals as a packed varint field. Every Decode validates each element
// and fails with an error matching roman.ErrInvalidDigit on anything the
// current build does not recognize.
package codec

import (
	"fmt"

	"github.com/vdparikh/roman"
)

// Codec encodes/decodes digit sequences to []byte.
type Codec interface {
	Encode(roman.Digits) ([]byte, error)
	Decode([]byte) (roman.Digits, error)
}

// glyphs renders ds as one string per digit. The result is never nil so
// empty sequences encode as empty arrays.
func glyphs(ds roman.Digits) ([]string, error) {
	out := make([]string, len(ds))
	for i, d := range ds {
		text, err := d.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("digit %d: %w", i, err)
		}
		out[i] = string(text)
	}
	return out, nil
}

// parseGlyphs is the inverse of glyphs. Each element must be exactly one
// glyph denoting exactly one digit.
func parseGlyphs(ss []string) (roman.Digits, error) {
	if ss == nil {
		return nil, nil
	}
	out := make(roman.Digits, len(ss))
	for i, s := range ss {
		if err := out[i].UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("digit %d: %w", i, err)
		}
	}
	return out, nil
}
