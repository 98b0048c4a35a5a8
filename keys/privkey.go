// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"crypto/subtle"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secret key that can derive public keys and produce
// signatures on any of the supported curves.
//
// The key is immutable apart from Zero, which scrubs it from memory.  All of
// the methods are safe for concurrent use until Zero is called.
type PrivateKey struct {
	key [PrivKeyBytesLen]byte
}

// isZero returns whether every byte of b is zero without branching on the
// byte values.
func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// IsValidPrivateKey returns whether b can be used to create a PrivateKey,
// which requires it to be PrivKeyBytesLen bytes and not all zero.
func IsValidPrivateKey(b []byte) bool {
	return len(b) == PrivKeyBytesLen && !isZero(b)
}

// NewPrivateKey returns a private key that holds a copy of the provided
// bytes.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("private key is %d bytes instead of %d", len(b),
			PrivKeyBytesLen)
		return nil, makeError(ErrInvalidLength, str)
	}

	var key [PrivKeyBytesLen]byte
	copy(key[:], b)
	return PrivKeyFromArray(&key)
}

// PrivKeyFromArray returns a private key that holds a copy of the provided
// array.  The caller remains responsible for scrubbing the array.
func PrivKeyFromArray(key *[PrivKeyBytesLen]byte) (*PrivateKey, error) {
	if isZero(key[:]) {
		return nil, makeError(ErrInvalidKey, "private key is zero")
	}
	return &PrivateKey{key: *key}, nil
}

// maxGenerateAttempts bounds the number of candidates GeneratePrivateKey draws.
// A uniform candidate is out of range with probability below 2^-32, so running
// out of attempts means the entropy source is broken.
const maxGenerateAttempts = 64

// inECDSARange returns whether key is a nonzero scalar below the group order
// of every ECDSA curve.  Ed25519 accepts any 32-byte secret.
func inECDSARange(key []byte) bool {
	return secp256k1InRange(key) && p256InRange(key)
}

// GeneratePrivateKey returns a new random private key.  The key is a valid
// scalar for every supported curve.
func GeneratePrivateKey() (*PrivateKey, error) {
	return generatePrivateKey(rand.Read)
}

// generatePrivateKey returns a private key drawn from the provided source,
// rejecting candidates that are not valid on every curve.
func generatePrivateKey(read func([]byte)) (*PrivateKey, error) {
	var key [PrivKeyBytesLen]byte
	defer zero(key[:])

	for i := 0; i < maxGenerateAttempts; i++ {
		read(key[:])
		if !inECDSARange(key[:]) {
			log.Tracef("Discarding generated key that is out of range")
			continue
		}
		return &PrivateKey{key: key}, nil
	}

	str := fmt.Sprintf("no valid private key in %d attempts",
		maxGenerateAttempts)
	return nil, makeError(ErrKeyGeneration, str)
}

// zero sets every byte of b to zero.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// checkUsable returns ErrInvalidKey if the key has been scrubbed.
func (k *PrivateKey) checkUsable() error {
	if isZero(k.key[:]) {
		return makeError(ErrInvalidKey, "private key has been zeroed")
	}
	return nil
}

// Serialize returns a copy of the private key bytes.
func (k *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	copy(b, k.key[:])
	return b
}

// PubKey returns the public key on the provided curve.  The result only
// depends on the key and the curve.
func (k *PrivateKey) PubKey(c Curve) (*PublicKey, error) {
	backend, err := BackendFor(c)
	if err != nil {
		return nil, err
	}
	return k.pubKey(c, backend)
}

// pubKey returns the public key derived by the provided backend.
func (k *PrivateKey) pubKey(c Curve, backend Backend) (*PublicKey, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	pubKey, err := backend.PubKey(k.key[:])
	if err != nil {
		return nil, err
	}
	return &PublicKey{curve: c, key: pubKey}, nil
}

// Sign returns the signature of digest on the provided curve in the raw form
// for that curve:
//
//   - secp256k1: 65 bytes, R || S || recovery code, deterministic per RFC6979
//   - nist256p1: 64 bytes, R || S
//   - ed25519: 64 bytes, the digest is treated as the message
//
// The ECDSA curves require a 32-byte digest.
func (k *PrivateKey) Sign(digest []byte, c Curve) ([]byte, error) {
	backend, err := BackendFor(c)
	if err != nil {
		return nil, err
	}
	return k.sign(digest, backend)
}

// sign returns the raw signature produced by the provided backend.
func (k *PrivateKey) sign(digest []byte, backend Backend) ([]byte, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	return backend.Sign(k.key[:], digest)
}

// SignDER returns the DER encoded signature of digest on the provided ECDSA
// curve.  ErrUnsupportedCurve is returned for ed25519.
func (k *PrivateKey) SignDER(digest []byte, c Curve) ([]byte, error) {
	backend, err := BackendFor(c)
	if err != nil {
		return nil, err
	}
	return k.signDER(digest, backend)
}

// signDER returns the DER encoded signature produced by the provided backend.
func (k *PrivateKey) signDER(digest []byte, backend Backend) ([]byte, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	return backend.SignDER(k.key[:], digest)
}

// Equal returns whether both private keys hold the same bytes.  The
// comparison is constant time.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	return subtle.ConstantTimeCompare(k.key[:], other.key[:]) == 1
}

// Zero scrubs the private key from memory.  The key can not be used
// afterwards.
func (k *PrivateKey) Zero() {
	zero(k.key[:])
}
