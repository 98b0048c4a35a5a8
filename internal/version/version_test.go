// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
)

// TestParse ensures parsing a semantic version string works as expected.
func TestParse(t *testing.T) {
	tests := []struct {
		ver     string // semantic version string to parse
		want    SemVer // expected components
		invalid bool   // expected error
	}{{
		ver:  "0.1.0",
		want: SemVer{Minor: 1},
	}, {
		ver:  "10.20.30",
		want: SemVer{Major: 10, Minor: 20, Patch: 30},
	}, {
		ver:  "1.1.2-prerelease+meta",
		want: SemVer{1, 1, 2, "prerelease", "meta"},
	}, {
		ver:  "1.0.0-alpha.beta.1",
		want: SemVer{1, 0, 0, "alpha.beta.1", ""},
	}, {
		ver:  "2.0.0+build.1848",
		want: SemVer{2, 0, 0, "", "build.1848"},
	}, {
		ver:  "1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
		want: SemVer{1, 2, 3, "---RC-SNAPSHOT.12.9.1--.12", "788"},
	}, {
		ver:     "1",
		invalid: true,
	}, {
		ver:     "1.2",
		invalid: true,
	}, {
		ver:     "01.1.1",
		invalid: true,
	}, {
		ver:     "1.2.3-0123",
		invalid: true,
	}, {
		ver:     "1.2.3+meta+meta",
		invalid: true,
	}, {
		ver:     "99999999999999999999999.1.1",
		invalid: true,
	}, {
		ver:     "",
		invalid: true,
	}}

	for _, test := range tests {
		got, err := Parse(test.ver)
		if test.invalid != (err != nil) {
			t.Errorf("%q: unexpected err -- got %v, want invalid %v", test.ver,
				err, test.invalid)
			continue
		}
		if test.invalid {
			continue
		}
		if got != test.want {
			t.Errorf("%q: mismatched version -- got %+v, want %+v", test.ver,
				got, test.want)
			continue
		}
		if got.String() != test.ver {
			t.Errorf("%q: mismatched string -- got %s", test.ver, got)
		}
	}
}

// TestString ensures the application version string starts with the
// configured version and remains a valid semantic version.
func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, Version) {
		t.Fatalf("version %q does not start with %q", s, Version)
	}
	if _, err := Parse(s); err != nil {
		t.Fatalf("version %q does not parse: %v", s, err)
	}
	if Current().String() != Version {
		t.Fatalf("current version %q is not %q", Current(), Version)
	}
}

// TestNormalizeString ensures invalid characters are stripped.
func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "abc123"},
		{"release.local", "release.local"},
		{"a_b c+d", "abcd"},
		{"", ""},
	}
	for _, test := range tests {
		if got := NormalizeString(test.in); got != test.want {
			t.Errorf("%q: got %q, want %q", test.in, got, test.want)
		}
	}
}
