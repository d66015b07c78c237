package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/vdparikh/roman"
)

// CBOR is a Codec that serializes digits using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs, e.g. before sealing.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode encodes ds as a CBOR array of text strings.
func (c CBOR) Encode(ds roman.Digits) ([]byte, error) {
	ss, err := glyphs(ds)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(ss)
}

// Decode decodes a CBOR array of text strings into digits.
func (c CBOR) Decode(b []byte) (roman.Digits, error) {
	var ss []string
	if err := c.dec.Unmarshal(b, &ss); err != nil {
		return nil, err
	}
	return parseGlyphs(ss)
}
