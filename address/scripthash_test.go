// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hexToPubKey converts the passed hex string into a compressed public key and
// will panic if there is an error.  It must only be called with hard-coded
// values.
func hexToPubKey(s string) PubKey {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != PubKeyBytesLen {
		panic("invalid hex in source file: " + s)
	}
	return PubKey(b)
}

// TestPubKeyScript ensures the pay-to-pubkey script has the expected layout.
func TestPubKeyScript(t *testing.T) {
	pubKey := hexToPubKey("031bec1250aa8f78275f99a6663688f31085848d0ed92f" +
		"1203e447125f927b7486")
	want, _ := hex.DecodeString("21031bec1250aa8f78275f99a6663688f3108584" +
		"8d0ed92f1203e447125f927b7486ac")

	script := PubKeyScript(&pubKey)
	if !bytes.Equal(script, want) {
		t.Fatalf("unexpected script -- got %x, want %x", script, want)
	}
}

// TestScriptHash ensures script hashes are derived as expected from known
// public keys and that the derivation is deterministic.
func TestScriptHash(t *testing.T) {
	tests := []struct {
		name   string // test description
		pubKey string // hex-encoded compressed public key
		want   string // expected hex-encoded script hash
	}{{
		name:   "nist p256 key for 0x46 scalar",
		pubKey: "031bec1250aa8f78275f99a6663688f31085848d0ed92f1203e447125f927b7486",
		want:   "fbacc8214765d457c8e3f2b5a1d3c4981a2e9d2a",
	}, {
		name:   "secp256k1 key for 0x46 scalar",
		pubKey: "024bc2a31265153f07e70e0bab08724e6b85e217f8cd628ceb62974247bb493382",
		want:   "2e23f5b5533a71d4a9d94bb646c5672bfb247b19",
	}, {
		name:   "nist p256 generator",
		pubKey: "036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		want:   "66390a342e73b750424b4c41c2108cdb40153aa1",
	}, {
		name:   "secp256k1 generator",
		pubKey: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		want:   "23b0ad3477f2178bc0b3eed26e4e6316f4e83aa1",
	}}

	for _, test := range tests {
		pubKey := hexToPubKey(test.pubKey)
		got := ScriptHash(&pubKey)
		if hex.EncodeToString(got[:]) != test.want {
			t.Errorf("%q: unexpected script hash -- got %x, want %s",
				test.name, got, test.want)
			continue
		}
		if again := ScriptHash(&pubKey); again != got {
			t.Errorf("%q: script hash is not deterministic -- got %x, then %x",
				test.name, got, again)
		}
	}
}
