// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information for the ontaddr utility.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE parses a semantic version string into its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per semantic versioning 2.0.0
// (https://semver.org/).
//
// It may be overridden at build time with:
// '-ldflags "-X github.com/walletcore/ontaddr/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package will panic at init.
var Version = "0.1.0-pre"

// SemVer holds the components of a semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// String returns the version in semantic versioning form.
func (v SemVer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		b.WriteByte('-')
		b.WriteString(v.PreRelease)
	}
	if v.BuildMetadata != "" {
		b.WriteByte('+')
		b.WriteString(v.BuildMetadata)
	}
	return b.String()
}

// Parse parses a semantic version string.
func Parse(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semantic versioning", s)
	}

	var v SemVer
	fields := []*uint{&v.Major, &v.Minor, &v.Patch}
	names := []string{"major", "minor", "patch"}
	for i, field := range fields {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return SemVer{}, fmt.Errorf("malformed semver %s: %w", names[i],
				err)
		}
		*field = uint(val)
	}
	v.PreRelease = m[4]
	v.BuildMetadata = m[5]
	return v, nil
}

// parsed is the parsed form of Version.
var parsed SemVer

func init() {
	var err error
	parsed, err = Parse(Version)
	if err != nil {
		panic(err)
	}
}

// Current returns the parsed application version.
func Current() SemVer {
	return parsed
}

// String returns the application version.  When the version carries no build
// metadata and the binary was built from a version control checkout, the
// abbreviated commit id is appended as build metadata.
func String() string {
	v := parsed
	if v.BuildMetadata == "" {
		v.BuildMetadata = NormalizeString(vcsCommitID())
	}
	return v.String()
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid for pre-release and build metadata strings.
func NormalizeString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// vcsCommitID returns the abbreviated revision recorded in the build info or
// an empty string when there is none.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	if vcs == "" {
		return ""
	}
	return revision
}
