// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

const (
	// Hash160Size is the size of a script hash, which is a RIPEMD-160
	// digest.
	Hash160Size = 20

	// PubKeyBytesLen is the size of a public key serialized in the SEC1
	// compressed format.
	PubKeyBytesLen = 33

	// opData33 is the opcode that pushes the next 33 bytes onto the stack.
	opData33 = 0x21

	// opCheckSig is the opcode that checks a signature against the public
	// key on the stack.
	opCheckSig = 0xac

	// pubKeyScriptLen is the length of a pay-to-pubkey script.
	pubKeyScriptLen = 1 + PubKeyBytesLen + 1
)

// Hash160 is the RIPEMD-160 of the SHA-256 of a script.  It is the identifier
// that an address encodes.
type Hash160 [Hash160Size]byte

// PubKey is a public key serialized in the SEC1 compressed format.
type PubKey [PubKeyBytesLen]byte

// PubKeyScript returns the script that requires a signature for the provided
// public key.  It has the form:
//
//	OP_DATA_33 <33-byte compressed pubkey> OP_CHECKSIG
func PubKeyScript(pubKey *PubKey) []byte {
	script := make([]byte, 0, pubKeyScriptLen)
	script = append(script, opData33)
	script = append(script, pubKey[:]...)
	return append(script, opCheckSig)
}

// ScriptHash returns the hash160 of the pay-to-pubkey script for the provided
// public key using the codec's hasher.
//
// The public key is not checked for being on any particular curve.
func (c *Codec) ScriptHash(pubKey *PubKey) Hash160 {
	sha := c.hasher.SHA256(PubKeyScript(pubKey))
	return Hash160(c.hasher.RIPEMD160(sha[:]))
}

// ScriptHash returns the hash160 of the pay-to-pubkey script for the provided
// public key.
func ScriptHash(pubKey *PubKey) Hash160 {
	return stdCodec.ScriptHash(pubKey)
}
