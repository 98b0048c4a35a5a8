// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/walletcore/ontaddr/keys"
	"golang.org/x/term"
)

// secretReader reads a secret after displaying the provided prompt.
type secretReader func(prompt string) ([]byte, error)

func zero(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0x00
	}
}

// promptSecret reads a secret from the terminal without echoing it.  When
// standard input is not a terminal the first line is read instead so keys can
// be piped in.
func promptSecret(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(os.Stdin)
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprint(os.Stderr, "\n")
	if err != nil {
		return nil, fmt.Errorf("unable to read secret: %w", err)
	}
	return secret, nil
}

// readLine reads a single line from r without the trailing newline.
func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		zero(line)
		return nil, fmt.Errorf("unable to read secret: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

// privateKey returns the private key encoded by keyHex, prompting for it when
// keyHex is empty.  The caller must zero the returned key.
func (a *app) privateKey(keyHex string) (*keys.PrivateKey, error) {
	var secret []byte
	if keyHex != "" {
		secret = []byte(keyHex)
	} else {
		var err error
		secret, err = a.readSecret("Private key: ")
		if err != nil {
			return nil, err
		}
	}
	defer zero(secret)

	var key [keys.PrivKeyBytesLen]byte
	defer zero(key[:])
	trimmed := bytes.TrimSpace(secret)
	if hex.DecodedLen(len(trimmed)) != len(key) {
		return nil, fmt.Errorf("private key must be %d hex characters",
			2*len(key))
	}
	if _, err := hex.Decode(key[:], trimmed); err != nil {
		return nil, fmt.Errorf("malformed private key: %w", err)
	}
	return keys.PrivKeyFromArray(&key)
}
