package tinkroman

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	sivpb "github.com/google/tink/go/proto/aes_siv_go_proto"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	// AESSIVKeyTypeURL is the type URL of the AES-SIV keys used for sealing.
	AESSIVKeyTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"

	// AESSIVKeySize is the raw key size accepted by NewKeysetHandleFromKey.
	AESSIVKeySize = 64
)

// KeyTemplate creates a key template for sealing keys (AES-SIV, 512-bit).
// This allows users to generate keys with a single line:
//
//	handle, err := keyset.NewHandle(tinkroman.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	return daead.AESSIVKeyTemplate()
}

// NewKeysetHandleFromKey creates a keyset handle from a raw 64-byte AES-SIV
// key, e.g. one exported from an HSM or an external key management system.
//
// Note: This creates an unencrypted keyset. In production, consider encrypting
// the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) != AESSIVKeySize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(key), AESSIVKeySize)
	}

	serialized, err := proto.Marshal(&sivpb.AesSivKey{Version: 0, KeyValue: key})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         AESSIVKeyTypeURL,
				Value:           serialized,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}
