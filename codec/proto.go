package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vdparikh/roman"
)

// digitsField is the field number of the repeated digit ordinals, matching
//
//	message Digits { repeated uint32 digits = 1; }
const digitsField protowire.Number = 1

// Proto encodes digits in protobuf wire format as a packed repeated uint32
// of digit ordinals. The zero value is ready to use.
//
// Decode also accepts the unpacked encoding and skips unknown fields, as any
// protobuf parser would.
type Proto struct{}

var _ Codec = Proto{}

func (Proto) Encode(ds roman.Digits) ([]byte, error) {
	if len(ds) == 0 {
		return []byte{}, nil
	}

	packed := make([]byte, 0, len(ds))
	for i, d := range ds {
		if !d.Valid() {
			return nil, fmt.Errorf("digit %d: ordinal %d: %w", i, d, roman.ErrInvalidDigit)
		}
		packed = protowire.AppendVarint(packed, uint64(d))
	}

	b := protowire.AppendTag(nil, digitsField, protowire.BytesType)
	return protowire.AppendBytes(b, packed), nil
}

func (Proto) Decode(b []byte) (roman.Digits, error) {
	var out roman.Digits

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == digitsField && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			for len(packed) > 0 {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return nil, protowire.ParseError(n)
				}
				packed = packed[n:]
				d, err := ordinal(v, len(out))
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}

		case num == digitsField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			d, err := ordinal(v, len(out))
			if err != nil {
				return nil, err
			}
			out = append(out, d)

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	return out, nil
}

func ordinal(v uint64, pos int) (roman.Digit, error) {
	if v > uint64(roman.HundredThousand) || !roman.Digit(v).Valid() {
		return 0, fmt.Errorf("digit %d: ordinal %d: %w", pos, v, roman.ErrInvalidDigit)
	}
	return roman.Digit(v), nil
}
