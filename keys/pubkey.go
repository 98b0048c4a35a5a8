// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"bytes"
	"encoding/hex"
)

// PublicKey is a public key on one of the supported curves.  It is immutable.
type PublicKey struct {
	curve Curve
	key   []byte
}

// ParsePubKey parses a serialized public key for the provided curve.  ECDSA
// keys may be in the SEC1 compressed or uncompressed format while Ed25519
// keys must be 32 bytes.
func ParsePubKey(serialized []byte, c Curve) (*PublicKey, error) {
	backend, err := BackendFor(c)
	if err != nil {
		return nil, err
	}
	key, err := backend.ParsePubKey(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{curve: c, key: key}, nil
}

// Curve returns the curve of the public key.
func (p *PublicKey) Curve() Curve {
	return p.curve
}

// Serialize returns a copy of the canonical serialization of the public key,
// which is the SEC1 compressed format for the ECDSA curves and the 32-byte
// encoding for Ed25519.
func (p *PublicKey) Serialize() []byte {
	return append([]byte(nil), p.key...)
}

// SerializeCompressed returns the same bytes as Serialize.  It allows a
// PublicKey to be used wherever a compressed public key is expected, although
// only ECDSA keys are 33 bytes.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.Serialize()
}

// Verify returns whether sig is a valid raw signature of digest as produced by
// PrivateKey.Sign.
func (p *PublicKey) Verify(digest, sig []byte) bool {
	return backends[p.curve].Verify(p.key, digest, sig)
}

// VerifyDER returns whether sig is a valid DER encoded signature of digest as
// produced by PrivateKey.SignDER.
func (p *PublicKey) VerifyDER(digest, sig []byte) bool {
	return backends[p.curve].VerifyDER(p.key, digest, sig)
}

// Equal returns whether both public keys are the same key on the same curve.
func (p *PublicKey) Equal(other *PublicKey) bool {
	return p.curve == other.curve && bytes.Equal(p.key, other.key)
}

// String returns the hex encoding of the serialized public key.
func (p *PublicKey) String() string {
	return hex.EncodeToString(p.key)
}
