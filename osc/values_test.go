package osc

import (
	"bytes"
	"errors"
	"testing"
)

func TestToTypeTag(t *testing.T) {
	for _, tt := range []struct {
		name string
		arg  interface{}
		want TypeTag
	}{
		{"int32", int32(1), TypeInt32},
		{"int", 7, TypeInt32},
		{"int64", int64(9), TypeInt32},
		{"bool_true", true, TypeInt32},
		{"bool_false", false, TypeInt32},
		{"float32", float32(1.5), TypeFloat32},
		{"float64", 1.5, TypeFloat64},
		{"string", "x", TypeString},
		{"blob", []byte{1}, TypeBlob},
		{"nil", nil, TypeNone},
		{"fallback", uint16(3), TypeString},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToTypeTag(tt.arg); got != tt.want {
				t.Errorf("ToTypeTag(%v) = %q, want %q", tt.arg, byte(got), byte(tt.want))
			}
		})
	}
}

func TestWriteArgument(t *testing.T) {
	for _, tt := range []struct {
		name    string
		arg     interface{}
		wantTag TypeTag
		want    []byte
	}{
		{"int32", int32(1), TypeInt32, []byte{0, 0, 0, 1}},
		{"bool_true", true, TypeInt32, []byte{0, 0, 0, 1}},
		{"bool_false", false, TypeInt32, []byte{0, 0, 0, 0}},
		{"nil_writes_nothing", nil, TypeNone, nil},
		{"string", "bar", TypeString, []byte("bar\x00")},
		{"fallback_to_string", uint16(42), TypeString, []byte("42\x00\x00")},
		{"blob", []byte{1, 2, 3}, TypeBlob, []byte("\x00\x00\x00\x03\x01\x02\x03\x00")},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var w Writer
			if got := writeArgument(&w, tt.arg); got != tt.wantTag {
				t.Errorf("writeArgument(%v) = %q, want %q", tt.arg, byte(got), byte(tt.wantTag))
			}
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("writeArgument(%v) wrote %v, want %v", tt.arg, w.Bytes(), tt.want)
			}
		})
	}
}

func TestReadArgument_UnknownTag(t *testing.T) {
	r := NewReader([]byte{0, 0, 0, 1})
	if _, err := readArgument(r, TypeTag('z')); !errors.Is(err, ErrParse) {
		t.Errorf("readArgument('z') error = %v, want ErrParse", err)
	}
}

func TestArgumentRoundTrip(t *testing.T) {
	// Decoded values come back as the wire types, so booleans return
	// as int32 and the fallback types return as strings.
	for _, tt := range []struct {
		name string
		arg  interface{}
		tag  TypeTag
		want interface{}
	}{
		{"int32", int32(-5), TypeInt32, int32(-5)},
		{"float32", float32(3.25), TypeFloat32, float32(3.25)},
		{"float64", -0.5, TypeFloat64, -0.5},
		{"string", "hello", TypeString, "hello"},
		{"blob", []byte{9, 8, 7}, TypeBlob, []byte{9, 8, 7}},
		{"bool", true, TypeInt32, int32(1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var w Writer
			writeArgument(&w, tt.arg)
			got, err := readArgument(NewReader(w.Bytes()), tt.tag)
			if err != nil {
				t.Fatalf("readArgument() error = %v", err)
			}
			if b, ok := tt.want.([]byte); ok {
				if !bytes.Equal(got.([]byte), b) {
					t.Errorf("readArgument() = %v, want %v", got, b)
				}
				return
			}
			if got != tt.want {
				t.Errorf("readArgument() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
