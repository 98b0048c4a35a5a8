// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"
)

// CompressedPubKeyer is implemented by public keys that can be serialized in
// the SEC1 compressed format.
type CompressedPubKeyer interface {
	SerializeCompressed() []byte
}

// Address is an account address.  It is a value type and is immutable once
// created.
type Address struct {
	hash Hash160
}

// NewAddressFromHash160 returns the address for the provided script hash.
func NewAddressFromHash160(hash Hash160) Address {
	return Address{hash: hash}
}

// NewAddress returns the address for the provided script hash, which must be
// exactly Hash160Size bytes.
func NewAddress(scriptHash []byte) (Address, error) {
	if len(scriptHash) != Hash160Size {
		str := fmt.Sprintf("script hash is %d bytes instead of %d",
			len(scriptHash), Hash160Size)
		return Address{}, makeError(ErrInvalidLength, str)
	}

	var addr Address
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewAddressFromPubKeyBytes returns the address for the provided public key
// serialized in the SEC1 compressed format.
//
// The key is assumed to have already been validated as a point on its curve.
func NewAddressFromPubKeyBytes(serializedPubKey []byte) (Address, error) {
	if len(serializedPubKey) != PubKeyBytesLen {
		str := fmt.Sprintf("compressed public key is %d bytes instead of %d",
			len(serializedPubKey), PubKeyBytesLen)
		return Address{}, makeError(ErrInvalidLength, str)
	}

	var pubKey PubKey
	copy(pubKey[:], serializedPubKey)
	return Address{hash: ScriptHash(&pubKey)}, nil
}

// NewAddressFromPubKey returns the address for the provided public key.  Keys
// that do not have a 33-byte compressed serialization, such as Ed25519 keys,
// result in ErrInvalidLength.
func NewAddressFromPubKey(pubKey CompressedPubKeyer) (Address, error) {
	return NewAddressFromPubKeyBytes(pubKey.SerializeCompressed())
}

// DecodeAddress decodes the string encoding of an address.
func DecodeAddress(addr string) (Address, error) {
	hash, err := Decode(addr)
	if err != nil {
		return Address{}, err
	}
	return Address{hash: hash}, nil
}

// String returns the Base58Check encoding of the address.
func (a Address) String() string {
	return Encode(&a.hash)
}

// Hash160 returns the script hash the address encodes.
func (a Address) Hash160() Hash160 {
	return a.hash
}

// ScriptAddress returns a copy of the raw script hash bytes.
func (a Address) ScriptAddress() []byte {
	b := make([]byte, Hash160Size)
	copy(b, a.hash[:])
	return b
}

// Equal returns whether both addresses encode the same script hash.
func (a Address) Equal(other Address) bool {
	return a.hash == other.hash
}
