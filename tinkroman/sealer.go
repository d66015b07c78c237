// Package tinkroman provides Tink integration for Roman digit sequences.
// This file contains the factory function for creating a Sealer from a Tink keyset handle.
package tinkroman

import (
	"fmt"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"

	"github.com/vdparikh/roman"
	"github.com/vdparikh/roman/codec"
)

// Sealer deterministically encrypts digit sequences with a Tink
// DeterministicAEAD primitive. The same key, digits, and associated data
// always produce the same ciphertext, so sealed numerals can be compared
// or used as lookup keys without being opened.
//
// A Sealer is safe for concurrent use.
type Sealer struct {
	primitive tink.DeterministicAEAD
	codec     codec.Codec
}

// New creates a Sealer from a Tink keyset handle holding a deterministic
// AEAD key (see KeyTemplate). Digits are serialized with c before sealing;
// a nil codec selects codec.Proto.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkroman.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	sealer, err := tinkroman.New(handle, nil)
//	if err != nil {
//	    return err
//	}
//	token, err := sealer.SealInt(1994, []byte("invoice.year"))
func New(handle *keyset.Handle, c codec.Codec) (*Sealer, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get deterministic AEAD primitive: %w", err)
	}

	if c == nil {
		c = codec.Proto{}
	}

	return &Sealer{primitive: primitive, codec: c}, nil
}

// Seal encrypts ds. The associated data is authenticated but not encrypted;
// the same value must be passed to Open.
func (s *Sealer) Seal(ds roman.Digits, associatedData []byte) ([]byte, error) {
	plaintext, err := s.codec.Encode(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode digits: %w", err)
	}

	ciphertext, err := s.primitive.EncryptDeterministically(plaintext, associatedData)
	if err != nil {
		return nil, fmt.Errorf("failed to seal: %w", err)
	}
	return ciphertext, nil
}

// Open decrypts a ciphertext produced by Seal.
func (s *Sealer) Open(ciphertext, associatedData []byte) (roman.Digits, error) {
	plaintext, err := s.primitive.DecryptDeterministically(ciphertext, associatedData)
	if err != nil {
		return nil, fmt.Errorf("failed to open: %w", err)
	}

	ds, err := s.codec.Decode(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode digits: %w", err)
	}
	return ds, nil
}

// SealInt encodes n with roman.FromInt and seals the result.
func (s *Sealer) SealInt(n uint32, associatedData []byte) ([]byte, error) {
	ds, err := roman.FromInt(n)
	if err != nil {
		return nil, err
	}
	return s.Seal(ds, associatedData)
}

// OpenInt opens a ciphertext and returns the value of its digits.
func (s *Sealer) OpenInt(ciphertext, associatedData []byte) (uint32, error) {
	ds, err := s.Open(ciphertext, associatedData)
	if err != nil {
		return 0, err
	}
	return ds.Value(), nil
}
