package cmd

import (
	"reflect"
	"testing"
)

func TestParseArgument(t *testing.T) {
	tests := []struct {
		raw  string
		want interface{}
	}{
		{"i:42", int32(42)},
		{"i:-7", int32(-7)},
		{"f:1.5", float32(1.5)},
		{"d:1.5", float64(1.5)},
		{"s:hello", "hello"},
		{"s:42", "42"},
		{"b:deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		// Inference without a prefix.
		{"42", int32(42)},
		{"1.5", float32(1.5)},
		{"true", true},
		{"false", false},
		{"hello", "hello"},
		{"/looks/like/address", "/looks/like/address"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseArgument(tt.raw)
			if err != nil {
				t.Fatalf("parseArgument(%q) error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArgument(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseArgument_Invalid(t *testing.T) {
	for _, raw := range []string{"i:abc", "f:x", "d:", "b:xyz", "i:99999999999"} {
		if _, err := parseArgument(raw); err == nil {
			t.Errorf("parseArgument(%q) succeeded, want error", raw)
		}
	}
}
