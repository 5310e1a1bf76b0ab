// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestHashConsistentWithCompareEquivalence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
	}{
		{"int equals same int", Int(5), Int(5)},
		{"int equals exactly-representable double", Int(5), Double(5.0)},
		{"negative zero equals positive zero", Double(math.Copysign(0, -1)), Double(0)},
		{"equal maps regardless of build order",
			Map(map[string]Value{"a": Int(1), "b": Int(2)}),
			Map(map[string]Value{"b": Int(2), "a": Int(1)}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if Compare(tt.a, tt.b) != 0 {
				t.Fatalf("test setup bug: %v and %v do not compare equal", tt.a, tt.b)
			}
			if Hash(tt.a) != Hash(tt.b) {
				t.Fatalf("Hash(%v) = %d != Hash(%v) = %d, want equal hashes for Compare-equal values",
					tt.a, Hash(tt.a), tt.b, Hash(tt.b))
			}
		})
	}
}

func TestHashOfNaNIsItsBitPattern(t *testing.T) {
	t.Parallel()

	nan := Double(math.NaN())
	if Hash(nan) != math.Float64bits(math.NaN()) {
		t.Fatalf("Hash(NaN) did not use NaN's IEEE bit pattern")
	}
}

func TestHashIsDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		v := genValue(rt)
		if Hash(v) != Hash(v) {
			rt.Fatalf("Hash(%v) not deterministic", v)
		}
	})
}
