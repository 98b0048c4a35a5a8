// Copyright (c) 2026 The ontaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"testing"
)

// BenchmarkScriptHash benchmarks deriving the script hash for a public key.
func BenchmarkScriptHash(b *testing.B) {
	pubKey := hexToPubKey("031bec1250aa8f78275f99a6663688f31085848d0ed92f" +
		"1203e447125f927b7486")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScriptHash(&pubKey)
	}
}

// BenchmarkEncode benchmarks encoding a script hash.
func BenchmarkEncode(b *testing.B) {
	hash := hexToHash160("fbacc8214765d457c8e3f2b5a1d3c4981a2e9d2a")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(&hash)
	}
}

// BenchmarkDecode benchmarks decoding valid and invalid addresses.
func BenchmarkDecode(b *testing.B) {
	benches := []struct {
		name string // benchmark name
		addr string // address to decode
	}{{
		name: "valid",
		addr: "AeicEjZyiXKgUeSBbYQHxsU1X3V5Buori5",
	}, {
		name: "bad checksum",
		addr: "AeicEjZyiXKgUeSBbYQHxsU1X3V5Buori6",
	}, {
		name: "bad length",
		addr: "AeicEjZyiXKgUeSBbYQHxsU1X3V5Buori",
	}}

	for _, bench := range benches {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Decode(bench.addr)
			}
		})
	}
}
