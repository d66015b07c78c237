package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vdparikh/roman"
)

// Msgpack is a Codec that serializes digits using vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(ds roman.Digits) ([]byte, error) {
	ss, err := glyphs(ds)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(ss)
}

func (Msgpack) Decode(b []byte) (roman.Digits, error) {
	var ss []string
	if err := msgpack.Unmarshal(b, &ss); err != nil {
		return nil, err
	}
	return parseGlyphs(ss)
}
