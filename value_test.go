// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import "testing"

func TestConstructorsReportTheirKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"int", Int(1), KindNumber},
		{"double", Double(1.5), KindNumber},
		{"timestamp", Timestamp(1, 0), KindTimestamp},
		{"string", String("a"), KindString},
		{"bytes", Bytes([]byte{1}), KindBytes},
		{"reference", Reference("a/b"), KindReference},
		{"geopoint", GeoPoint(0, 0), KindGeoPoint},
		{"array", Array(Int(1)), KindArray},
		{"map", Map(map[string]Value{"a": Int(1)}), KindMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.v.Kind(); got != tt.kind {
				t.Fatalf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestZeroValueIsNull(t *testing.T) {
	t.Parallel()

	var v Value
	if !v.IsNull() {
		t.Fatalf("zero Value is not Null")
	}
}

func TestIntDoubleAccessorsWiden(t *testing.T) {
	t.Parallel()

	i := Int(7)
	if !i.IsInt() || i.IsDouble() {
		t.Fatalf("Int(7): IsInt/IsDouble = %v/%v, want true/false", i.IsInt(), i.IsDouble())
	}
	if got := i.Float64(); got != 7 {
		t.Fatalf("Int(7).Float64() = %v, want 7", got)
	}

	d := Double(7.0)
	if !d.IsDouble() || d.IsInt() {
		t.Fatalf("Double(7.0): IsInt/IsDouble = %v/%v, want false/true", d.IsInt(), d.IsDouble())
	}
	if got := d.Int64(); got != 7 {
		t.Fatalf("Double(7.0).Int64() = %v, want 7", got)
	}
}

func TestIsNaN(t *testing.T) {
	t.Parallel()

	nan := Double(nan())
	if !nan.IsNaN() {
		t.Fatalf("Double(NaN).IsNaN() = false, want true")
	}
	if Int(0).IsNaN() || Double(0).IsNaN() {
		t.Fatalf("finite numbers reported as NaN")
	}
}

func TestBytesIsCopied(t *testing.T) {
	t.Parallel()

	src := []byte{1, 2, 3}
	v := Bytes(src)
	src[0] = 99
	if v.BytesValue()[0] != 1 {
		t.Fatalf("Bytes did not copy its input slice")
	}
}

func TestArrayIsCopied(t *testing.T) {
	t.Parallel()

	src := []Value{Int(1), Int(2)}
	v := Array(src...)
	src[0] = Int(99)
	if !Equal(v.Elements()[0], Int(1)) {
		t.Fatalf("Array did not copy its input slice")
	}
}

func TestMapIteratesInKeyOrder(t *testing.T) {
	t.Parallel()

	v := Map(map[string]Value{"c": Int(3), "a": Int(1), "b": Int(2)})
	fields := v.Fields()
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if fields[i].Key != k {
			t.Fatalf("Fields()[%d].Key = %q, want %q", i, fields[i].Key, k)
		}
	}
}

func TestFieldLookup(t *testing.T) {
	t.Parallel()

	v := Map(map[string]Value{"a": Int(1)})
	got, ok := v.Field("a")
	if !ok || !Equal(got, Int(1)) {
		t.Fatalf("Field(a) = (%v, %v), want (1, true)", got, ok)
	}
	if _, ok := v.Field("missing"); ok {
		t.Fatalf("Field(missing) reported present")
	}
}

// nan returns a NaN float64 without importing math into every test file
// that needs one.
func nan() float64 {
	var zero float64
	return zero / zero
}
