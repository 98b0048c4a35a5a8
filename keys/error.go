// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength indicates a private key, public key, digest or
	// signature was provided with the wrong number of bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidKey indicates private key bytes are all zero or are not a
	// valid scalar for the requested curve.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidPubKey indicates serialized public key bytes do not describe
	// a point on the requested curve.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrUnsupportedCurve indicates an unknown curve was requested or the
	// curve does not support the requested operation.
	ErrUnsupportedCurve = ErrorKind("ErrUnsupportedCurve")

	// ErrKeyGeneration indicates no valid private key could be drawn from the
	// entropy source.
	ErrKeyGeneration = ErrorKind("ErrKeyGeneration")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a key-related error.  It has full support for errors.Is and
// errors.As, so the caller can ascertain the specific reason for the error by
// checking the underlying error.
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
