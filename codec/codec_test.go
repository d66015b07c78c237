package codec

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vdparikh/roman"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"json":     JSON{},
		"cbor":     MustCBOR(false),
		"cbor-det": MustCBOR(true),
		"msgpack":  Msgpack{},
		"proto":    Proto{},
		"limit":    Limit{Inner: Proto{}, MaxDecode: 64},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	samples := []uint32{1, 4, 9, 14, 49, 444, 1994, 2024, 3888, roman.MaxValue}

	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			for _, n := range samples {
				ds, err := roman.FromInt(n)
				require.NoError(t, err)

				b, err := c.Encode(ds)
				require.NoError(t, err)

				got, err := c.Decode(b)
				require.NoError(t, err)
				assert.Equal(t, ds, got, "n=%d", n)
				assert.Equal(t, n, got.Value())
			}
		})
	}
}

func TestCodecs_Empty(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(nil)
			require.NoError(t, err)

			got, err := c.Decode(b)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestCodecs_RejectUnknownDigitOnEncode(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			_, err := c.Encode(roman.Digits{roman.X, roman.Digit(200)})
			assert.ErrorIs(t, err, roman.ErrInvalidDigit)
		})
	}
}

func TestJSON_WireForm(t *testing.T) {
	b, err := JSON{}.Encode(roman.Digits{roman.M, roman.C, roman.M})
	require.NoError(t, err)
	assert.JSONEq(t, `["M","C","M"]`, string(b))

	got, err := JSON{}.Decode([]byte(`["x","i","v"]`))
	require.NoError(t, err)
	assert.Equal(t, roman.Digits{roman.X, roman.I, roman.V}, got)
}

func TestTextCodecs_RejectInvalidElements(t *testing.T) {
	bad := [][]string{
		{"X", "A"},
		{"XI"},
		{"Ⅷ"},
		{""},
	}

	for _, ss := range bad {
		cborPayload, err := cbor.Marshal(ss)
		require.NoError(t, err)
		_, err = MustCBOR(false).Decode(cborPayload)
		assert.ErrorIs(t, err, roman.ErrInvalidDigit, "cbor %v", ss)

		msgpackPayload, err := msgpack.Marshal(ss)
		require.NoError(t, err)
		_, err = Msgpack{}.Decode(msgpackPayload)
		assert.ErrorIs(t, err, roman.ErrInvalidDigit, "msgpack %v", ss)
	}

	_, err := JSON{}.Decode([]byte(`["X","Q"]`))
	assert.ErrorIs(t, err, roman.ErrInvalidDigit)

	var digitErr *roman.InvalidDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, 'Q', digitErr.Char)
}

func TestTextCodecs_MalformedPayload(t *testing.T) {
	_, err := JSON{}.Decode([]byte(`{"not":"an array"}`))
	assert.Error(t, err)

	_, err = MustCBOR(false).Decode([]byte{0xff})
	assert.Error(t, err)

	_, err = Msgpack{}.Decode([]byte{0xc1})
	assert.Error(t, err)
}

func TestCBOR_Deterministic(t *testing.T) {
	ds := roman.Digits{roman.M, roman.C, roman.M, roman.X, roman.C, roman.I, roman.V}
	c := MustCBOR(true)

	a, err := c.Encode(ds)
	require.NoError(t, err)
	b, err := c.Encode(ds)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProto_WireForm(t *testing.T) {
	b, err := Proto{}.Encode(roman.Digits{roman.X, roman.I, roman.V})
	require.NoError(t, err)
	// field 1, length-delimited, 3 bytes: X=2 I=0 V=1
	assert.Equal(t, []byte{0x0a, 0x03, 0x02, 0x00, 0x01}, b)
}

func TestProto_UnpackedAndUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendString(b, "ignored")
	b = protowire.AppendTag(b, digitsField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(roman.X))
	b = protowire.AppendTag(b, digitsField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(roman.I))
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)

	got, err := Proto{}.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, roman.Digits{roman.X, roman.I}, got)
}

func TestProto_RejectsBadInput(t *testing.T) {
	var unknown []byte
	unknown = protowire.AppendTag(unknown, digitsField, protowire.VarintType)
	unknown = protowire.AppendVarint(unknown, 1000)

	_, err := Proto{}.Decode(unknown)
	assert.ErrorIs(t, err, roman.ErrInvalidDigit)

	_, err = Proto{}.Decode([]byte{0x0a, 0x05, 0x01})
	assert.Error(t, err, "truncated packed field")
}

func TestLimit_RejectsOversizedPayload(t *testing.T) {
	inner := JSON{}
	c := Limit{Inner: inner, MaxDecode: 8}

	ds, err := roman.FromInt(uint32(3888))
	require.NoError(t, err)

	b, err := c.Encode(ds)
	require.NoError(t, err)
	require.Greater(t, len(b), 8)

	_, err = c.Decode(b)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	unlimited := Limit{Inner: inner}
	got, err := unlimited.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}
