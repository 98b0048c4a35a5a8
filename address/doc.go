// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package address derives account addresses from public keys and converts them
to and from their human-transcribable string form.

# Script Hashes

An address identifies the pay-to-pubkey script of a compressed public key:

	0x21 <33-byte compressed pubkey> 0xac

The identifier is the RIPEMD-160 of the SHA-256 of that script, referred to as
the hash160 or script hash.

# Encoding

The string form is the Base58Check encoding of the script hash prefixed with
the version byte 0x17:

	0x17 || 20-byte script hash || first 4 bytes of SHA-256(SHA-256(0x17 || script hash))

which always produces a 34 character string beginning with 'A'.  Decoding
rejects strings of any other length before performing any work and then
verifies the checksum, payload size and version byte.

# Primitives

The hash and Base58 primitives are accessed through the Hasher and Base58
interfaces.  The package-level functions use the production implementations
while NewCodec allows other implementations to be supplied.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind which
can be tested with errors.Is.
*/
package address
