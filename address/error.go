// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength indicates a fixed-size input such as a public key or
	// a script hash was provided with the wrong number of bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrDecodeFailure indicates an encoded address could not be decoded
	// because it has the wrong length, contains characters outside of the
	// base58 alphabet, decodes to a payload of the wrong size, or carries an
	// unexpected version byte.
	ErrDecodeFailure = ErrorKind("ErrDecodeFailure")

	// ErrInvalidChecksum indicates the checksum embedded in an encoded
	// address does not match the checksum calculated over its payload.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrUnstableLength indicates the provided primitives do not produce a
	// fixed encoded length for every possible address payload.
	ErrUnstableLength = ErrorKind("ErrUnstableLength")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
