package codec

import (
	"encoding/json"

	"github.com/vdparikh/roman"
)

// JSON encodes digits as a JSON array of strings. The zero value is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(ds roman.Digits) ([]byte, error) {
	ss, err := glyphs(ds)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ss)
}

func (JSON) Decode(b []byte) (roman.Digits, error) {
	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return nil, err
	}
	return parseGlyphs(ss)
}
