// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/walletcore/ontaddr/address"
	"github.com/walletcore/ontaddr/keys"
)

const (
	// logFilename is the name of the log file written to the log directory.
	logFilename = "ontaddr.log"

	// maxLogFileSizeKB and maxLogRolls bound the size of the rotated logs.
	maxLogFileSizeKB = 10 * 1024
	maxLogRolls      = 3
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Output only reaches the log file once initLogRotator has been called.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It is nil until
	// initLogRotator is called with a log directory.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("ONTA")
	addrLog = backendLog.Logger("ADDR")
	keysLog = backendLog.Logger("KEYS")
)

// Initialize package-global logger variables.
func init() {
	address.UseLogger(addrLog)
	keys.UseLogger(keysLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"ONTA": log,
	"ADDR": addrLog,
	"KEYS": keysLog,
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, maxLogFileSizeKB, false, maxLogRolls)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// closeLogRotator closes the log rotator when one has been initialized.
func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

// subsystemIDs returns the sorted identifiers of every subsystem logger.
func subsystemIDs() []string {
	ids := make([]string, 0, len(subsystemLoggers))
	for id := range subsystemLoggers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// parseLevel returns the log level with the provided name.
func parseLevel(name string) (slog.Level, error) {
	level, ok := slog.LevelFromString(name)
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// setDebugLevels applies a debug level setting, which is either a single level
// for every subsystem or a comma separated list of SUBSYSTEM=level pairs.  No
// level is changed unless the whole setting is valid.
func setDebugLevels(setting string) error {
	levels := make(map[string]slog.Level, len(subsystemLoggers))
	if !strings.ContainsAny(setting, ",=") {
		level, err := parseLevel(setting)
		if err != nil {
			return err
		}
		for id := range subsystemLoggers {
			levels[id] = level
		}
	} else {
		for _, pair := range strings.Split(setting, ",") {
			id, name, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("malformed subsystem level %q, want "+
					"SUBSYSTEM=level", pair)
			}
			if _, ok := subsystemLoggers[id]; !ok {
				return fmt.Errorf("unknown subsystem %q, have %s", id,
					strings.Join(subsystemIDs(), ", "))
			}
			level, err := parseLevel(name)
			if err != nil {
				return fmt.Errorf("subsystem %s: %w", id, err)
			}
			levels[id] = level
		}
	}

	for id, level := range levels {
		subsystemLoggers[id].SetLevel(level)
	}
	return nil
}
