// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keys implements private and public keys for the secp256k1, NIST P-256
and Ed25519 curves.

A PrivateKey is 32 bytes that are not all zero.  It derives public keys and
signs digests on any supported curve by delegating to the Backend for that
curve:

	privKey, err := keys.NewPrivateKey(secret)
	if err != nil {
		// Handle ErrInvalidLength or ErrInvalidKey.
	}
	defer privKey.Zero()
	pubKey, err := privKey.PubKey(keys.CurveNIST256p1)

Public keys of the ECDSA curves serialize to the 33-byte SEC1 compressed format
expected by the address package.
*/
package keys
