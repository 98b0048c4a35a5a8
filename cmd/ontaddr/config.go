// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	flags "github.com/jessevdk/go-flags"
	"github.com/walletcore/ontaddr/internal/version"
)

const (
	appName = "ontaddr"
)

// errNoCommand is returned when neither a command nor --version is given.
var errNoCommand = errors.New("no command specified -- use -h to list commands")

// config defines the configuration options and commands for ontaddr.
//
// Options may also be set through ONTADDR_* environment variables.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir      string `long:"logdir" env:"ONTADDR_LOGDIR" description:"Directory to write a rotated log file to; file logging is disabled when empty"`
	DebugLevel  string `long:"debuglevel" env:"ONTADDR_DEBUGLEVEL" default:"info" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	GenKey     genKeyCmd     `command:"genkey" description:"Generate a private key and print its public key and address"`
	Address    addressCmd    `command:"address" description:"Derive the public key and address of a private key"`
	FromPubKey fromPubKeyCmd `command:"frompubkey" description:"Derive the address of one or more public keys"`
	Decode     decodeCmd     `command:"decode" description:"Print the script hash of one or more addresses"`
	Validate   validateCmd   `command:"validate" description:"Check one or more addresses for validity"`
	Sign       signCmd       `command:"sign" description:"Sign a digest or the SHA-256 digest of a message"`
	Verify     verifyCmd     `command:"verify" description:"Verify a signature"`
}

// app houses the state shared by the commands.
type app struct {
	cfg        config
	out        io.Writer
	readSecret secretReader
	ran        bool
}

// newApp returns an app writing command output to out and reading secrets
// with readSecret.  Each command is bound to the returned app.
func newApp(out io.Writer, readSecret secretReader) *app {
	a := &app{out: out, readSecret: readSecret}
	a.cfg.GenKey.app = a
	a.cfg.Address.app = a
	a.cfg.FromPubKey.app = a
	a.cfg.Decode.app = a
	a.cfg.Validate.app = a
	a.cfg.Sign.app = a
	a.cfg.Verify.app = a
	return a
}

// newParser returns the command line parser for the app configuration.
func (a *app) newParser() *flags.Parser {
	parser := flags.NewParser(&a.cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName
	parser.SubcommandsOptional = true
	parser.CommandHandler = a.dispatch
	return parser
}

// dispatch initializes logging and runs the selected command.  It is invoked
// by the parser once all options have been parsed.
func (a *app) dispatch(cmd flags.Commander, args []string) error {
	a.ran = true

	if a.cfg.ShowVersion {
		fmt.Fprintf(a.out, "%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	// Special show command to list supported subsystems and exit.
	if a.cfg.DebugLevel == "show" {
		fmt.Fprintln(a.out, "Supported subsystems", subsystemIDs())
		return nil
	}
	if err := setDebugLevels(a.cfg.DebugLevel); err != nil {
		return err
	}

	if a.cfg.LogDir != "" {
		logFile := filepath.Join(a.cfg.LogDir, logFilename)
		if err := initLogRotator(logFile); err != nil {
			return err
		}
		defer closeLogRotator()
	}

	if cmd == nil {
		return errNoCommand
	}
	log.Debugf("Version %s", version.String())
	return cmd.Execute(args)
}

// run parses the command line arguments and executes the selected command.
func run(args []string, out io.Writer, readSecret secretReader) error {
	a := newApp(out, readSecret)
	parser := a.newParser()
	_, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(out, e.Message)
			return nil
		}
		return err
	}
	if !a.ran {
		return a.dispatch(nil, nil)
	}
	return nil
}
