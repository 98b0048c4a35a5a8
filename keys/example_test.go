// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys_test

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/walletcore/ontaddr/address"
	"github.com/walletcore/ontaddr/keys"
)

// This example demonstrates deriving the address of a private key on the
// ECDSA curves and signing a message digest.
func ExamplePrivateKey_PubKey() {
	// Ordinarily the private key would come from GeneratePrivateKey or secure
	// storage, but it is hard coded here for the purposes of this example.
	privKey, err := keys.NewPrivateKey(bytes.Repeat([]byte{0x46}, 32))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer privKey.Zero()

	for _, curve := range []keys.Curve{keys.CurveNIST256p1, keys.CurveSecp256k1} {
		pubKey, err := privKey.PubKey(curve)
		if err != nil {
			fmt.Println(err)
			return
		}
		addr, err := address.NewAddressFromPubKey(pubKey)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%v: %s\n", curve, addr)
	}

	digest := sha256.Sum256([]byte("test message"))
	sig, err := privKey.Sign(digest[:], keys.CurveSecp256k1)
	if err != nil {
		fmt.Println(err)
		return
	}
	pubKey, err := privKey.PubKey(keys.CurveSecp256k1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("signature verified:", pubKey.Verify(digest[:], sig))

	// Output:
	// nist256p1: AeicEjZyiXKgUeSBbYQHxsU1X3V5Buori5
	// secp256k1: AKyqorS5EiAEz9XpmBGrFCyhNURS82TRQz
	// signature verified: true
}
