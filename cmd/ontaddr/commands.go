// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"
	"github.com/walletcore/ontaddr/address"
	"github.com/walletcore/ontaddr/keys"
)

var (
	// errInvalidAddress is returned by the validate command when any of the
	// addresses is invalid.
	errInvalidAddress = errors.New("invalid address")

	// errBadSignature is returned by the verify command when the signature
	// does not verify.
	errBadSignature = errors.New("signature verification failed")
)

// selectDigest returns the digest selected by the command options.  Exactly
// one of the hex-encoded digest and the message must be provided.
func selectDigest(digestHex, message string) ([]byte, error) {
	switch {
	case digestHex != "" && message != "":
		return nil, errors.New("--digest and --message are mutually exclusive")
	case message != "":
		digest := sha256.Sum256([]byte(message))
		return digest[:], nil
	case digestHex != "":
		digest, err := hex.DecodeString(digestHex)
		if err != nil {
			return nil, fmt.Errorf("malformed digest: %w", err)
		}
		return digest, nil
	}
	return nil, errors.New("one of --digest or --message is required")
}

// printPubKey writes the public key and, for curves with compressed SEC1
// keys, its address.
func (a *app) printPubKey(pubKey *keys.PublicKey) error {
	fmt.Fprintf(a.out, "public key:  %s\n", pubKey)
	if pubKey.Curve() == keys.CurveEd25519 {
		return nil
	}
	addr, err := address.NewAddressFromPubKey(pubKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "address:     %s\n", addr)
	return nil
}

// logSignatureType logs the dcrec signature type of curve when it has one.
func logSignatureType(action string, curve keys.Curve) {
	if st, ok := curve.SignatureType(); ok {
		log.Debugf("%s %v signature (signature type %d)", action, curve, st)
		return
	}
	log.Debugf("%s %v signature", action, curve)
}

// genKeyCmd generates a new private key.
type genKeyCmd struct {
	Curve string `short:"c" long:"curve" default:"nist256p1" description:"Curve of the key {secp256k1, nist256p1, ed25519}"`
	app   *app
}

func (c *genKeyCmd) Execute(args []string) error {
	curve, err := keys.ParseCurve(c.Curve)
	if err != nil {
		return err
	}
	privKey, err := keys.GeneratePrivateKey()
	if err != nil {
		return err
	}
	defer privKey.Zero()
	pubKey, err := privKey.PubKey(curve)
	if err != nil {
		return err
	}

	serialized := privKey.Serialize()
	defer zero(serialized)
	fmt.Fprintf(c.app.out, "private key: %x\n", serialized)
	log.Debugf("Generated %v key", curve)
	return c.app.printPubKey(pubKey)
}

// addressCmd derives the address of a private key.
type addressCmd struct {
	Curve string `short:"c" long:"curve" default:"nist256p1" description:"Curve of the key {secp256k1, nist256p1, ed25519}"`
	Key   string `short:"k" long:"key" description:"Hex-encoded private key; prompted for when omitted"`
	app   *app
}

func (c *addressCmd) Execute(args []string) error {
	curve, err := keys.ParseCurve(c.Curve)
	if err != nil {
		return err
	}
	privKey, err := c.app.privateKey(c.Key)
	if err != nil {
		return err
	}
	defer privKey.Zero()
	pubKey, err := privKey.PubKey(curve)
	if err != nil {
		return err
	}
	return c.app.printPubKey(pubKey)
}

// fromPubKeyCmd derives the addresses of public keys.
type fromPubKeyCmd struct {
	Curve string `short:"c" long:"curve" default:"nist256p1" description:"Curve of the key {secp256k1, nist256p1, ed25519}"`
	app   *app
}

func (c *fromPubKeyCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("no public keys specified")
	}
	curve, err := keys.ParseCurve(c.Curve)
	if err != nil {
		return err
	}
	if curve == keys.CurveEd25519 {
		return fmt.Errorf("%v public keys have no address", curve)
	}
	for _, arg := range args {
		serialized, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("malformed public key %q: %w", arg, err)
		}
		pubKey, err := keys.ParsePubKey(serialized, curve)
		if err != nil {
			return fmt.Errorf("public key %q: %w", arg, err)
		}
		addr, err := address.NewAddressFromPubKey(pubKey)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.app.out, addr)
	}
	return nil
}

// decodeCmd prints the script hashes of addresses.
type decodeCmd struct {
	app *app
}

func (c *decodeCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("no addresses specified")
	}
	for _, arg := range args {
		hash, err := address.Decode(arg)
		if err != nil {
			return fmt.Errorf("address %q: %w", arg, err)
		}
		fmt.Fprintf(c.app.out, "%x\n", hash)
	}
	return nil
}

// validateCmd reports whether addresses are valid.
type validateCmd struct {
	app *app
}

func (c *validateCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("no addresses specified")
	}
	var invalid int
	for _, arg := range args {
		if _, err := address.Decode(arg); err != nil {
			var kind address.ErrorKind
			errors.As(err, &kind)
			fmt.Fprintf(c.app.out, "%s: invalid (%v)\n", arg, kind)
			log.Debugf("Address %q: %v", arg, err)
			invalid++
			continue
		}
		fmt.Fprintf(c.app.out, "%s: valid\n", arg)
	}
	if invalid != 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidAddress, invalid, len(args))
	}
	return nil
}

// signCmd signs a digest.
type signCmd struct {
	Curve   string `short:"c" long:"curve" default:"nist256p1" description:"Curve of the key {secp256k1, nist256p1, ed25519}"`
	Digest  string `short:"d" long:"digest" description:"Hex-encoded 32-byte digest"`
	Message string `short:"m" long:"message" description:"Message whose SHA-256 digest is used"`
	DER     bool   `long:"der" description:"Use DER encoded signatures (ECDSA curves only)"`
	Key     string `short:"k" long:"key" description:"Hex-encoded private key; prompted for when omitted"`
	app     *app
}

func (c *signCmd) Execute(args []string) error {
	curve, err := keys.ParseCurve(c.Curve)
	if err != nil {
		return err
	}
	digest, err := selectDigest(c.Digest, c.Message)
	if err != nil {
		return err
	}
	privKey, err := c.app.privateKey(c.Key)
	if err != nil {
		return err
	}
	defer privKey.Zero()

	logSignatureType("Creating", curve)
	var sig []byte
	if c.DER {
		sig, err = privKey.SignDER(digest, curve)
	} else {
		sig, err = privKey.Sign(digest, curve)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "%x\n", sig)
	return nil
}

// verifyCmd verifies a signature.
type verifyCmd struct {
	Curve     string `short:"c" long:"curve" default:"nist256p1" description:"Curve of the key {secp256k1, nist256p1, ed25519}"`
	Digest    string `short:"d" long:"digest" description:"Hex-encoded 32-byte digest"`
	Message   string `short:"m" long:"message" description:"Message whose SHA-256 digest is used"`
	DER       bool   `long:"der" description:"Use DER encoded signatures (ECDSA curves only)"`
	PubKey    string `short:"p" long:"pubkey" required:"true" description:"Hex-encoded public key"`
	Signature string `short:"s" long:"sig" required:"true" description:"Hex-encoded signature"`
	app       *app
}

func (c *verifyCmd) Execute(args []string) error {
	curve, err := keys.ParseCurve(c.Curve)
	if err != nil {
		return err
	}
	digest, err := selectDigest(c.Digest, c.Message)
	if err != nil {
		return err
	}
	serialized, err := hex.DecodeString(c.PubKey)
	if err != nil {
		return fmt.Errorf("malformed public key: %w", err)
	}
	pubKey, err := keys.ParsePubKey(serialized, curve)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(c.Signature)
	if err != nil {
		return fmt.Errorf("malformed signature: %w", err)
	}

	logSignatureType("Verifying", curve)
	var valid bool
	if c.DER {
		valid = pubKey.VerifyDER(digest, sig)
	} else {
		valid = pubKey.Verify(digest, sig)
	}
	if !valid {
		fmt.Fprintln(c.app.out, "invalid")
		return errBadSignature
	}
	fmt.Fprintln(c.app.out, "valid")
	return nil
}
