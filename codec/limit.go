package codec

import (
	"errors"
	"fmt"

	"github.com/vdparikh/roman"
)

// ErrPayloadTooLarge is returned by Limit when a payload exceeds MaxDecode.
var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode.
	MaxDecode int
}

var _ Codec = Limit{}

func (c Limit) Encode(ds roman.Digits) ([]byte, error) { return c.Inner.Encode(ds) }

func (c Limit) Decode(b []byte) (roman.Digits, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return nil, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
