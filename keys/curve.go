// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec"
)

// Curve identifies an elliptic curve and the signature scheme used with it.
type Curve uint8

// These constants define the supported curves.
const (
	// CurveSecp256k1 is the secp256k1 curve with ECDSA signatures.
	CurveSecp256k1 Curve = iota

	// CurveNIST256p1 is the NIST P-256 curve with ECDSA signatures.
	CurveNIST256p1

	// CurveEd25519 is the twisted Edwards curve birationally equivalent to
	// Curve25519 with Ed25519 signatures.
	CurveEd25519

	// numCurves is the total number of curves.  It must be the final entry.
	numCurves
)

// curveStrings maps curves to their canonical names.
var curveStrings = [numCurves]string{
	CurveSecp256k1: "secp256k1",
	CurveNIST256p1: "nist256p1",
	CurveEd25519:   "ed25519",
}

// String returns the Curve in human-readable form.
func (c Curve) String() string {
	if c < numCurves {
		return curveStrings[c]
	}
	return fmt.Sprintf("Unknown Curve (%d)", uint8(c))
}

// ParseCurve returns the curve with the provided name.  Names are matched
// case insensitively and "p256" is accepted as an alias for "nist256p1".
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(name)
	if name == "p256" || name == "p-256" {
		return CurveNIST256p1, nil
	}
	for c, s := range curveStrings {
		if s == name {
			return Curve(c), nil
		}
	}
	str := fmt.Sprintf("unknown curve %q", name)
	return 0, makeError(ErrUnsupportedCurve, str)
}

// SignatureType returns the dcrec signature type that corresponds to the
// curve.  There is no signature type for NIST P-256 so false is returned for
// it and for unknown curves.
func (c Curve) SignatureType() (dcrec.SignatureType, bool) {
	switch c {
	case CurveSecp256k1:
		return dcrec.STEcdsaSecp256k1, true
	case CurveEd25519:
		return dcrec.STEd25519, true
	}
	return 0, false
}

// CurveFromSignatureType returns the curve used by the provided dcrec
// signature type.  Schnorr signatures over secp256k1 are not supported.
func CurveFromSignatureType(st dcrec.SignatureType) (Curve, error) {
	switch st {
	case dcrec.STEcdsaSecp256k1:
		return CurveSecp256k1, nil
	case dcrec.STEd25519:
		return CurveEd25519, nil
	}
	str := fmt.Sprintf("unsupported signature type %d", int(st))
	return 0, makeError(ErrUnsupportedCurve, str)
}

// Backend performs the elliptic curve operations for a single curve.
//
// Private keys passed to a Backend are always PrivKeyBytesLen bytes and must
// not be retained or modified.  Public keys returned by PubKey and ParsePubKey
// are in the canonical serialization for the curve, which is the SEC1
// compressed format for ECDSA curves.
type Backend interface {
	// PubKey returns the serialized public key for the private key.
	PubKey(privKey []byte) ([]byte, error)

	// Sign returns the signature of digest in the raw form for the curve.
	Sign(privKey, digest []byte) ([]byte, error)

	// SignDER returns the DER encoded signature of digest.
	SignDER(privKey, digest []byte) ([]byte, error)

	// ParsePubKey validates a serialized public key and returns it in its
	// canonical serialization.
	ParsePubKey(pubKey []byte) ([]byte, error)

	// Verify returns whether sig is a valid raw signature of digest.
	Verify(pubKey, digest, sig []byte) bool

	// VerifyDER returns whether sig is a valid DER encoded signature of
	// digest.
	VerifyDER(pubKey, digest, sig []byte) bool
}

// backends houses the Backend for every supported curve.  It is never
// modified after package initialization.
var backends = [numCurves]Backend{
	CurveSecp256k1: secp256k1Backend{},
	CurveNIST256p1: nist256p1Backend{},
	CurveEd25519:   ed25519Backend{},
}

// BackendFor returns the Backend for the provided curve.
func BackendFor(c Curve) (Backend, error) {
	if c >= numCurves {
		str := fmt.Sprintf("unsupported curve %v", c)
		return nil, makeError(ErrUnsupportedCurve, str)
	}
	return backends[c], nil
}

// ecdsaDigestLen is the required digest length for the ECDSA curves.
const ecdsaDigestLen = 32

// checkDigest returns an error if the digest is not suitable for signing with
// ECDSA.
func checkDigest(digest []byte) error {
	if len(digest) != ecdsaDigestLen {
		str := fmt.Sprintf("digest is %d bytes instead of %d", len(digest),
			ecdsaDigestLen)
		return makeError(ErrInvalidLength, str)
	}
	return nil
}
