// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/edwards/v2"
)

// ed25519Backend implements Backend for Ed25519 per RFC 8032.  The private key
// bytes are the 32-byte secret seed and messages are signed directly without
// prehashing.
type ed25519Backend struct{}

// PubKey returns the 32-byte public key for the private key.
func (ed25519Backend) PubKey(key []byte) ([]byte, error) {
	_, pubKey := edwards.PrivKeyFromSecret(key)
	if pubKey == nil {
		return nil, makeError(ErrInvalidKey, "private key is not a valid "+
			"ed25519 secret")
	}
	return pubKey.Serialize(), nil
}

// Sign returns the 64-byte R || S signature of the message.
func (ed25519Backend) Sign(key, message []byte) ([]byte, error) {
	privKey, _ := edwards.PrivKeyFromSecret(key)
	if privKey == nil {
		return nil, makeError(ErrInvalidKey, "private key is not a valid "+
			"ed25519 secret")
	}
	sig, err := privKey.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("cannot sign message: %w", err)
	}
	return sig.Serialize(), nil
}

// SignDER always returns ErrUnsupportedCurve since Ed25519 signatures have no
// DER encoding.
func (ed25519Backend) SignDER(key, message []byte) ([]byte, error) {
	return nil, makeError(ErrUnsupportedCurve, "ed25519 signatures can not "+
		"be DER encoded")
}

// ParsePubKey validates a 32-byte public key.
func (ed25519Backend) ParsePubKey(pubKey []byte) ([]byte, error) {
	if len(pubKey) != edwards.PubKeyBytesLen {
		str := fmt.Sprintf("ed25519 public key is %d bytes instead of %d",
			len(pubKey), edwards.PubKeyBytesLen)
		return nil, makeError(ErrInvalidLength, str)
	}
	pk, err := edwards.ParsePubKey(pubKey)
	if err != nil {
		str := fmt.Sprintf("failed to parse ed25519 public key: %v", err)
		return nil, makeError(ErrInvalidPubKey, str)
	}
	return pk.Serialize(), nil
}

// Verify returns whether sig is a valid signature of the message.
func (ed25519Backend) Verify(pubKey, message, sig []byte) bool {
	pk, err := edwards.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	parsed, err := edwards.ParseSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(message, pk)
}

// VerifyDER always returns false since Ed25519 signatures have no DER
// encoding.
func (ed25519Backend) VerifyDER(pubKey, message, sig []byte) bool {
	return false
}
