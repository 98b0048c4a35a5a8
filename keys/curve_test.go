// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec"
	"github.com/stretchr/testify/require"
)

// TestCurveStringer tests the stringized output for the Curve type.
func TestCurveStringer(t *testing.T) {
	tests := []struct {
		in   Curve
		want string
	}{
		{CurveSecp256k1, "secp256k1"},
		{CurveNIST256p1, "nist256p1"},
		{CurveEd25519, "ed25519"},
		{0xff, "Unknown Curve (255)"},
	}

	// Detect additional curves that don't have the stringer added.
	if len(tests)-1 != int(numCurves) {
		t.Errorf("It appears a curve was added without adding an associated " +
			"stringer test")
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestParseCurve ensures curve names are parsed as expected.
func TestParseCurve(t *testing.T) {
	tests := []struct {
		name string
		want Curve
		err  error
	}{
		{"secp256k1", CurveSecp256k1, nil},
		{"SECP256K1", CurveSecp256k1, nil},
		{"nist256p1", CurveNIST256p1, nil},
		{"p256", CurveNIST256p1, nil},
		{"P-256", CurveNIST256p1, nil},
		{"ed25519", CurveEd25519, nil},
		{"curve25519", 0, ErrUnsupportedCurve},
		{"", 0, ErrUnsupportedCurve},
	}

	for _, test := range tests {
		got, err := ParseCurve(test.name)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("%q: unexpected curve -- got %v, want %v", test.name, got,
				test.want)
		}
	}
}

// TestSignatureType ensures curves map to and from dcrec signature types.
func TestSignatureType(t *testing.T) {
	tests := []struct {
		curve Curve
		st    dcrec.SignatureType
		ok    bool
	}{
		{CurveSecp256k1, dcrec.STEcdsaSecp256k1, true},
		{CurveNIST256p1, 0, false},
		{CurveEd25519, dcrec.STEd25519, true},
		{numCurves, 0, false},
	}

	for _, test := range tests {
		st, ok := test.curve.SignatureType()
		require.Equal(t, test.ok, ok, test.curve.String())
		if !ok {
			continue
		}
		require.Equal(t, test.st, st, test.curve.String())

		curve, err := CurveFromSignatureType(st)
		require.NoError(t, err, test.curve.String())
		require.Equal(t, test.curve, curve)
	}

	_, err := CurveFromSignatureType(dcrec.STSchnorrSecp256k1)
	require.ErrorIs(t, err, ErrUnsupportedCurve)
	_, err = CurveFromSignatureType(dcrec.SignatureType(-1))
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}

// stubBackend is a Backend that records the inputs it is given and returns
// fixed outputs.
type stubBackend struct {
	privKeys [][]byte
	digests  [][]byte
}

func (b *stubBackend) record(privKey, digest []byte) {
	b.privKeys = append(b.privKeys, append([]byte(nil), privKey...))
	b.digests = append(b.digests, append([]byte(nil), digest...))
}

func (b *stubBackend) PubKey(privKey []byte) ([]byte, error) {
	b.record(privKey, nil)
	return []byte{0x02, privKey[0]}, nil
}

func (b *stubBackend) Sign(privKey, digest []byte) ([]byte, error) {
	b.record(privKey, digest)
	return []byte("raw"), nil
}

func (b *stubBackend) SignDER(privKey, digest []byte) ([]byte, error) {
	b.record(privKey, digest)
	return []byte("der"), nil
}

func (b *stubBackend) ParsePubKey(pubKey []byte) ([]byte, error) {
	return pubKey, nil
}

func (b *stubBackend) Verify(pubKey, digest, sig []byte) bool    { return false }
func (b *stubBackend) VerifyDER(pubKey, digest, sig []byte) bool { return false }

// TestBackendDelegation ensures private key operations pass the key bytes and
// digest to the backend unchanged and return its results.
func TestBackendDelegation(t *testing.T) {
	key := repeatByte(0x46)
	digest := []byte("digest")
	privKey, err := NewPrivateKey(key)
	require.NoError(t, err)

	backend := new(stubBackend)
	pubKey, err := privKey.pubKey(CurveNIST256p1, backend)
	require.NoError(t, err)
	require.Equal(t, CurveNIST256p1, pubKey.Curve())
	require.Equal(t, []byte{0x02, 0x46}, pubKey.Serialize())

	sig, err := privKey.sign(digest, backend)
	require.NoError(t, err)
	require.Equal(t, []byte("raw"), sig)

	der, err := privKey.signDER(digest, backend)
	require.NoError(t, err)
	require.Equal(t, []byte("der"), der)

	require.Equal(t, [][]byte{key, key, key}, backend.privKeys)
	require.Equal(t, [][]byte{nil, digest, digest}, backend.digests)
	require.Equal(t, key, privKey.Serialize())
}

// TestBackendFor ensures every curve has a backend and unknown curves are
// rejected.
func TestBackendFor(t *testing.T) {
	for c := Curve(0); c < numCurves; c++ {
		backend, err := BackendFor(c)
		require.NoError(t, err, c.String())
		require.NotNil(t, backend, c.String())
	}
	_, err := BackendFor(numCurves)
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}
