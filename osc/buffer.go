package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	bit32Size = 4
	bit64Size = 8
)

// padBytes returns the number of null bytes appended after a field of
// n content bytes. A length that is already a multiple of 4 gets a
// full extra word, so every padded field ends with at least one null;
// string reads rely on that terminator.
func padBytes(n int) int {
	return 4 - n%4
}

// alignedSize returns the total wire size of a padded field of n
// content bytes.
func alignedSize(n int) int {
	return n + padBytes(n)
}

// isAligned reports whether n is a valid size for an encoded packet.
// Zero-length packets are rejected: the smallest possible packet is a
// padded one-byte address.
func isAligned(n int) bool {
	return n > 3 && n%4 == 0
}

// Reader decodes big-endian OSC fields from a byte slice. The cursor
// only moves forward; a read that fails leaves it exactly where it
// was, so a caller never observes a half-consumed field.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader over data. The Reader aliases data and
// never mutates it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// take consumes and returns the next n bytes.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, fmt.Errorf("read of %d bytes with %d remaining: %w", n, r.Len(), ErrUnderrun)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the cursor n bytes, clamping at the end of the buffer.
func (r *Reader) Skip(n int) {
	r.pos += n
	if r.pos > len(r.data) {
		r.pos = len(r.data)
	}
}

// ReadInt32 reads a big-endian 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.take(bit32Size)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadInt64 reads a big-endian 64-bit signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.take(bit64Size)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadFloat32 reads a big-endian IEEE-754 binary32 value.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.take(bit32Size)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// ReadFloat64 reads a big-endian IEEE-754 binary64 value.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.take(bit64Size)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ReadAligned consumes and returns the next n bytes. n must already be
// a multiple of 4.
func (r *Reader) ReadAligned(n int) ([]byte, error) {
	return r.take(n)
}

// ReadPadded consumes a padded field of n content bytes and returns
// the content without its padding.
func (r *Reader) ReadPadded(n int) ([]byte, error) {
	if n < 0 || alignedSize(n) > r.Len() {
		return nil, fmt.Errorf("padded read of %d bytes with %d remaining: %w", n, r.Len(), ErrUnderrun)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += alignedSize(n)
	return b, nil
}

// ReadString reads a null-terminated padded string. The returned
// string never contains a null byte.
func (r *Reader) ReadString() (string, error) {
	i := bytes.IndexByte(r.data[r.pos:], 0)
	if i < 0 {
		return "", fmt.Errorf("unterminated string: %w", ErrUnderrun)
	}
	b, err := r.ReadPadded(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBlob reads a length-prefixed padded byte block. The returned
// slice aliases the Reader's data.
func (r *Reader) ReadBlob() ([]byte, error) {
	if r.Len() < bit32Size {
		return nil, fmt.Errorf("blob length with %d remaining: %w", r.Len(), ErrUnderrun)
	}
	n := int(int32(binary.BigEndian.Uint32(r.data[r.pos:])))
	if n < 0 {
		return nil, fmt.Errorf("negative blob length %d: %w", n, ErrParse)
	}
	if bit32Size+alignedSize(n) > r.Len() {
		return nil, fmt.Errorf("blob of %d bytes with %d remaining: %w", n, r.Len()-bit32Size, ErrUnderrun)
	}
	b := r.data[r.pos+bit32Size : r.pos+bit32Size+n]
	r.pos += bit32Size + alignedSize(n)
	return b, nil
}

// Writer builds an OSC-aligned byte sequence. The zero value is ready
// to use.
type Writer struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes. The slice aliases the Writer's
// internal buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteInt32 appends a big-endian 32-bit signed integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

// WriteInt64 appends a big-endian 64-bit value as two 32-bit words,
// high word first.
func (w *Writer) WriteInt64(v int64) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(uint64(v)>>32))
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(uint64(v)))
}

// WriteFloat32 appends a big-endian IEEE-754 binary32 value.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteFloat64 appends a big-endian IEEE-754 binary64 value.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteAligned appends b, whose length must already be a multiple of 4.
func (w *Writer) WriteAligned(b []byte) {
	w.buf = append(w.buf, b...)
}

// WritePadded appends b followed by its pad bytes.
func (w *Writer) WritePadded(b []byte) {
	var pad [4]byte
	w.buf = append(w.buf, b...)
	w.buf = append(w.buf, pad[:padBytes(len(b))]...)
}
