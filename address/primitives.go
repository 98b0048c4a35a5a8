// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"

	"github.com/decred/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/minio/sha256-simd"
)

// Hasher provides the digest primitives that script hashes and address
// checksums are composed from.
type Hasher interface {
	// SHA256 returns the SHA-256 digest of b.
	SHA256(b []byte) [32]byte

	// RIPEMD160 returns the RIPEMD-160 digest of b.
	RIPEMD160(b []byte) [Hash160Size]byte
}

// Base58 converts between raw bytes and their base58 representation using the
// Bitcoin alphabet.  No checksum is applied by implementations; that is the
// responsibility of the Codec.
type Base58 interface {
	// Encode returns the base58 encoding of b.
	Encode(b []byte) string

	// Decode returns the bytes represented by s or an error when s contains
	// characters outside of the alphabet.
	Decode(s string) ([]byte, error)
}

// errBadAlphabet is returned by the default Base58 implementation when the
// input contains a character that is not part of the alphabet.
var errBadAlphabet = errors.New("invalid base58 character")

// stdHasher is the production Hasher.
type stdHasher struct{}

// SHA256 returns the SHA-256 digest of b.
func (stdHasher) SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func (stdHasher) RIPEMD160(b []byte) [Hash160Size]byte {
	var sum [Hash160Size]byte
	hasher := ripemd160.New()
	hasher.Write(b)
	hasher.Sum(sum[:0])
	return sum
}

// stdBase58 is the production Base58.
type stdBase58 struct{}

// Encode returns the base58 encoding of b.
func (stdBase58) Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode returns the bytes represented by s.
//
// The underlying decoder signals an invalid character by returning an empty
// result, which is otherwise only possible for an empty input.
func (stdBase58) Decode(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && len(s) != 0 {
		return nil, errBadAlphabet
	}
	return decoded, nil
}

// StdHasher returns the production Hasher, which is backed by SHA-256 and
// RIPEMD-160.
func StdHasher() Hasher {
	return stdHasher{}
}

// StdBase58 returns the production Base58 codec.
func StdBase58() Base58 {
	return stdBase58{}
}
