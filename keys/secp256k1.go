// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// compactSigMagicOffset is added to the recovery code of compact
	// signatures.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is added to the recovery code of compact
	// signatures for compressed public keys.
	compactSigCompPubKey = 4

	// secp256k1RawSigLen is the length of a raw secp256k1 signature, which is
	// the 32-byte R and S followed by the 1-byte recovery code.
	secp256k1RawSigLen = 65
)

// secp256k1Backend implements Backend for secp256k1 with RFC6979
// deterministic ECDSA signatures.
type secp256k1Backend struct{}

// secp256k1PrivKey returns the secp256k1 private key for the provided bytes.
// Values that are zero or not less than the group order are rejected rather
// than reduced.
func secp256k1PrivKey(key []byte) (*secp256k1.PrivateKey, error) {
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(key)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return nil, makeError(ErrInvalidKey, "private key is not a valid "+
			"secp256k1 scalar")
	}
	privKey := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return privKey, nil
}

// secp256k1InRange returns whether key is a nonzero scalar below the
// secp256k1 group order.
func secp256k1InRange(key []byte) bool {
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(key)
	inRange := !overflow && !scalar.IsZero()
	scalar.Zero()
	return inRange
}

// PubKey returns the compressed public key for the private key.
func (secp256k1Backend) PubKey(key []byte) ([]byte, error) {
	privKey, err := secp256k1PrivKey(key)
	if err != nil {
		return nil, err
	}
	defer privKey.Zero()
	return privKey.PubKey().SerializeCompressed(), nil
}

// Sign returns the 65-byte R || S || recovery code signature of digest.
func (secp256k1Backend) Sign(key, digest []byte) ([]byte, error) {
	if err := checkDigest(digest); err != nil {
		return nil, err
	}
	privKey, err := secp256k1PrivKey(key)
	if err != nil {
		return nil, err
	}
	defer privKey.Zero()

	// The compact form is the recovery code followed by R and S.
	compact := ecdsa.SignCompact(privKey, digest, true)
	sig := make([]byte, secp256k1RawSigLen)
	copy(sig, compact[1:])
	sig[secp256k1RawSigLen-1] = compact[0] - compactSigMagicOffset -
		compactSigCompPubKey
	return sig, nil
}

// SignDER returns the DER encoded signature of digest.
func (secp256k1Backend) SignDER(key, digest []byte) ([]byte, error) {
	if err := checkDigest(digest); err != nil {
		return nil, err
	}
	privKey, err := secp256k1PrivKey(key)
	if err != nil {
		return nil, err
	}
	defer privKey.Zero()
	return ecdsa.Sign(privKey, digest).Serialize(), nil
}

// ParsePubKey accepts compressed or uncompressed public keys and returns the
// compressed serialization.
func (secp256k1Backend) ParsePubKey(pubKey []byte) ([]byte, error) {
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		str := fmt.Sprintf("failed to parse secp256k1 public key: %v", err)
		return nil, makeError(ErrInvalidPubKey, str)
	}
	return pk.SerializeCompressed(), nil
}

// Verify returns whether sig is a valid R || S signature of digest, optionally
// followed by a recovery code which must then recover pubKey.
func (secp256k1Backend) Verify(pubKey, digest, sig []byte) bool {
	if len(sig) != secp256k1RawSigLen && len(sig) != secp256k1RawSigLen-1 {
		return false
	}
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:64]) {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}
	if !ecdsa.NewSignature(&r, &s).Verify(digest, pk) {
		return false
	}
	if len(sig) == secp256k1RawSigLen-1 {
		return true
	}

	var compact [secp256k1RawSigLen]byte
	compact[0] = sig[64] + compactSigMagicOffset + compactSigCompPubKey
	copy(compact[1:], sig[:64])
	recovered, _, err := ecdsa.RecoverCompact(compact[:], digest)
	if err != nil {
		return false
	}
	return recovered.IsEqual(pk)
}

// VerifyDER returns whether sig is a valid DER encoded signature of digest.
func (secp256k1Backend) VerifyDER(pubKey, digest, sig []byte) bool {
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(digest, pk)
}
