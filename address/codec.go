// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"fmt"
)

const (
	// Version is the version byte prepended to the script hash before the
	// checksum is calculated.  It causes encoded addresses to begin with 'A'.
	Version = 0x17

	// versionSize is the number of bytes used for the version.
	versionSize = 1

	// checksumSize is the number of bytes of the double SHA-256 digest that
	// are appended to the payload.
	checksumSize = 4

	// payloadSize is the size of the checksummed portion of an address.
	payloadSize = versionSize + Hash160Size

	// rawAddrSize is the size of an address prior to base58 encoding.
	rawAddrSize = payloadSize + checksumSize
)

// Codec derives script hashes from public keys and converts them to and from
// their Base58Check string form using a specific set of primitives.
//
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	hasher     Hasher
	b58        Base58
	encodedLen int
}

// NewCodec returns a Codec composed from the provided primitives.
//
// The length of an encoded address is derived from the primitives rather than
// assumed: the smallest and largest possible raw addresses for Version are
// encoded and ErrUnstableLength is returned when their lengths differ, since
// the length precheck performed when decoding would then reject valid
// addresses.
func NewCodec(hasher Hasher, b58 Base58) (*Codec, error) {
	var lo, hi [rawAddrSize]byte
	lo[0], hi[0] = Version, Version
	for i := versionSize; i < rawAddrSize; i++ {
		hi[i] = 0xff
	}

	loLen, hiLen := len(b58.Encode(lo[:])), len(b58.Encode(hi[:]))
	if loLen != hiLen {
		str := fmt.Sprintf("encoded address length varies between %d and %d "+
			"characters", loLen, hiLen)
		return nil, makeError(ErrUnstableLength, str)
	}
	log.Debugf("Address codec encoded length is %d characters", loLen)

	return &Codec{hasher: hasher, b58: b58, encodedLen: loLen}, nil
}

// EncodedLen returns the exact number of characters in every address encoded
// by the codec.
func (c *Codec) EncodedLen() int {
	return c.encodedLen
}

// checksum returns the first four bytes of the double SHA-256 of payload.
func (c *Codec) checksum(payload []byte) [checksumSize]byte {
	first := c.hasher.SHA256(payload)
	second := c.hasher.SHA256(first[:])

	var cksum [checksumSize]byte
	copy(cksum[:], second[:checksumSize])
	return cksum
}

// Encode returns the Base58Check encoding of the provided script hash.
//
// The format is:
//
//	1-byte version || 20-byte script hash || 4-byte checksum
//
// where the checksum is the first four bytes of the double SHA-256 of the
// version and script hash.
//
// Encode panics if the primitives produce a string of a different length than
// the one derived when the codec was created, since no valid address could be
// produced in that case.
func (c *Codec) Encode(hash *Hash160) string {
	var raw [rawAddrSize]byte
	raw[0] = Version
	copy(raw[versionSize:payloadSize], hash[:])
	cksum := c.checksum(raw[:payloadSize])
	copy(raw[payloadSize:], cksum[:])

	encoded := c.b58.Encode(raw[:])
	if len(encoded) != c.encodedLen {
		panic(fmt.Sprintf("encoded address %q has %d characters instead of %d",
			encoded, len(encoded), c.encodedLen))
	}
	return encoded
}

// Decode returns the script hash encoded in the provided address string.
//
// The length of the string is checked before any decoding or hashing is
// performed.  ErrInvalidChecksum is returned when the embedded checksum does not
// match and ErrDecodeFailure is returned for all other malformed input.
func (c *Codec) Decode(addr string) (Hash160, error) {
	if len(addr) != c.encodedLen {
		str := fmt.Sprintf("address has %d characters instead of %d", len(addr),
			c.encodedLen)
		return Hash160{}, makeError(ErrDecodeFailure, str)
	}

	decoded, err := c.b58.Decode(addr)
	if err != nil {
		str := fmt.Sprintf("malformed base58 address: %v", err)
		return Hash160{}, makeError(ErrDecodeFailure, str)
	}
	if len(decoded) < versionSize+checksumSize {
		str := fmt.Sprintf("decoded address has only %d bytes", len(decoded))
		return Hash160{}, makeError(ErrDecodeFailure, str)
	}

	payload := decoded[:len(decoded)-checksumSize]
	cksum := c.checksum(payload)
	if !bytes.Equal(cksum[:], decoded[len(payload):]) {
		log.Tracef("Rejecting address %s: checksum %x, expected %x", addr,
			decoded[len(payload):], cksum)
		return Hash160{}, makeError(ErrInvalidChecksum, "checksum mismatch")
	}

	if len(payload) != payloadSize {
		str := fmt.Sprintf("decoded address payload has %d bytes instead of %d",
			len(payload), payloadSize)
		return Hash160{}, makeError(ErrDecodeFailure, str)
	}
	if payload[0] != Version {
		str := fmt.Sprintf("address version %#02x is not %#02x", payload[0],
			Version)
		return Hash160{}, makeError(ErrDecodeFailure, str)
	}

	var hash Hash160
	copy(hash[:], payload[versionSize:])
	return hash, nil
}

// IsValid returns whether the provided string is a well-formed address.
func (c *Codec) IsValid(addr string) bool {
	_, err := c.Decode(addr)
	return err == nil
}

// stdCodec is the codec composed from the production primitives.
var stdCodec = func() *Codec {
	c, err := NewCodec(StdHasher(), StdBase58())
	if err != nil {
		panic(err)
	}
	return c
}()

// EncodedLen returns the number of characters in an encoded address.
func EncodedLen() int {
	return stdCodec.EncodedLen()
}

// Encode returns the Base58Check encoding of the provided script hash.  See
// Codec.Encode for details.
func Encode(hash *Hash160) string {
	return stdCodec.Encode(hash)
}

// Decode returns the script hash encoded in the provided address string.  See
// Codec.Decode for details.
func Decode(addr string) (Hash160, error) {
	return stdCodec.Decode(addr)
}

// IsValid returns whether the provided string is a well-formed address.
func IsValid(addr string) bool {
	return stdCodec.IsValid(addr)
}
