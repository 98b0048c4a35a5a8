// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/crypto/rand"
)

const (
	// p256CoordLen is the length of a serialized NIST P-256 coordinate.
	p256CoordLen = 32

	// p256RawSigLen is the length of a raw NIST P-256 signature, which is the
	// 32-byte R followed by the 32-byte S.
	p256RawSigLen = 2 * p256CoordLen

	// pubKeyFormatCompressedEven and pubKeyFormatCompressedOdd are the
	// SEC1 prefixes for compressed points with an even and odd Y coordinate.
	pubKeyFormatCompressedEven = 0x02
	pubKeyFormatCompressedOdd  = 0x03
)

// nist256p1Backend implements Backend for NIST P-256 with ECDSA signatures.
// Signature nonces are random so signatures are not deterministic.
type nist256p1Backend struct{}

// p256PrivKey returns the NIST P-256 private key for the provided bytes along
// with its uncompressed public key.
func p256PrivKey(key []byte) (*ecdsa.PrivateKey, []byte, error) {
	ecdhKey, err := ecdh.P256().NewPrivateKey(key)
	if err != nil {
		return nil, nil, makeError(ErrInvalidKey, "private key is not a valid "+
			"nist256p1 scalar")
	}

	// The uncompressed format is 0x04 || X || Y.
	uncompressed := ecdhKey.PublicKey().Bytes()
	privKey := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(uncompressed[1 : 1+p256CoordLen]),
			Y:     new(big.Int).SetBytes(uncompressed[1+p256CoordLen:]),
		},
		D: new(big.Int).SetBytes(key),
	}
	return privKey, uncompressed, nil
}

// p256InRange returns whether key is a nonzero scalar below the NIST P-256
// group order.
func p256InRange(key []byte) bool {
	d := new(big.Int).SetBytes(key)
	inRange := d.Sign() > 0 && d.Cmp(elliptic.P256().Params().N) < 0
	d.SetInt64(0)
	return inRange
}

// compressP256 returns the compressed form of an uncompressed point.
func compressP256(uncompressed []byte) []byte {
	compressed := make([]byte, 1+p256CoordLen)
	compressed[0] = pubKeyFormatCompressedEven
	if uncompressed[len(uncompressed)-1]&1 == 1 {
		compressed[0] = pubKeyFormatCompressedOdd
	}
	copy(compressed[1:], uncompressed[1:1+p256CoordLen])
	return compressed
}

// parseP256PubKey parses a compressed or uncompressed NIST P-256 public key.
func parseP256PubKey(pubKey []byte) (*ecdsa.PublicKey, error) {
	var x, y *big.Int
	switch len(pubKey) {
	case 1 + p256CoordLen:
		x, y = elliptic.UnmarshalCompressed(elliptic.P256(), pubKey)

	case 1 + 2*p256CoordLen:
		if _, err := ecdh.P256().NewPublicKey(pubKey); err == nil {
			x = new(big.Int).SetBytes(pubKey[1 : 1+p256CoordLen])
			y = new(big.Int).SetBytes(pubKey[1+p256CoordLen:])
		}

	default:
		str := fmt.Sprintf("nist256p1 public key is %d bytes", len(pubKey))
		return nil, makeError(ErrInvalidLength, str)
	}
	if x == nil {
		return nil, makeError(ErrInvalidPubKey, "nist256p1 public key is not "+
			"a valid point")
	}
	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// PubKey returns the compressed public key for the private key.
func (nist256p1Backend) PubKey(key []byte) ([]byte, error) {
	_, uncompressed, err := p256PrivKey(key)
	if err != nil {
		return nil, err
	}
	return compressP256(uncompressed), nil
}

// Sign returns the 64-byte R || S signature of digest.
func (nist256p1Backend) Sign(key, digest []byte) ([]byte, error) {
	if err := checkDigest(digest); err != nil {
		return nil, err
	}
	privKey, _, err := p256PrivKey(key)
	if err != nil {
		return nil, err
	}
	r, s, err := ecdsa.Sign(rand.Reader(), privKey, digest)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, p256RawSigLen)
	r.FillBytes(sig[:p256CoordLen])
	s.FillBytes(sig[p256CoordLen:])
	return sig, nil
}

// SignDER returns the DER encoded signature of digest.
func (nist256p1Backend) SignDER(key, digest []byte) ([]byte, error) {
	if err := checkDigest(digest); err != nil {
		return nil, err
	}
	privKey, _, err := p256PrivKey(key)
	if err != nil {
		return nil, err
	}
	return ecdsa.SignASN1(rand.Reader(), privKey, digest)
}

// ParsePubKey accepts compressed or uncompressed public keys and returns the
// compressed serialization.
func (nist256p1Backend) ParsePubKey(pubKey []byte) ([]byte, error) {
	pk, err := parseP256PubKey(pubKey)
	if err != nil {
		return nil, err
	}
	return elliptic.MarshalCompressed(elliptic.P256(), pk.X, pk.Y), nil
}

// Verify returns whether sig is a valid R || S signature of digest.
func (nist256p1Backend) Verify(pubKey, digest, sig []byte) bool {
	if len(sig) != p256RawSigLen {
		return false
	}
	pk, err := parseP256PubKey(pubKey)
	if err != nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[:p256CoordLen])
	s := new(big.Int).SetBytes(sig[p256CoordLen:])
	return ecdsa.Verify(pk, digest, r, s)
}

// VerifyDER returns whether sig is a valid DER encoded signature of digest.
func (nist256p1Backend) VerifyDER(pubKey, digest, sig []byte) bool {
	pk, err := parseP256PubKey(pubKey)
	if err != nil {
		return false
	}
	return ecdsa.VerifyASN1(pk, digest, sig)
}
