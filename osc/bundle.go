package osc

import (
	"fmt"
	"iter"
)

// bundleTag is the aligned 8-byte literal that opens every encoded
// bundle.
var bundleTag = []byte("#bundle\x00")

// Bundle represents an OSC bundle: a time tag followed by zero or
// more elements, where each element is a message or another bundle.
// Bundles nest to arbitrary depth.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns a Bundle stamped with the given time tag.
func NewBundle(tt Timetag, elements ...Packet) *Bundle {
	return &Bundle{Timetag: tt, Elements: elements}
}

// Append appends messages or sub-bundles to the bundle.
func (b *Bundle) Append(packets ...Packet) {
	b.Elements = append(b.Elements, packets...)
}

// Messages yields every message in the bundle and its sub-bundles in
// depth-first order. Implements Packet.
func (b *Bundle) Messages() iter.Seq[*Message] {
	return func(yield func(*Message) bool) {
		for _, el := range b.Elements {
			for m := range el.Messages() {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// The layout is the "#bundle" tag, the 8-byte time tag, then each
// element as a 32-bit length followed by the element's own encoding.
// An unset time tag encodes as Immediate.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	var w Writer
	w.WriteAligned(bundleTag)
	w.WriteInt64(int64(b.Timetag.wire()))

	for _, el := range b.Elements {
		bb, err := el.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.WriteInt32(int32(len(bb)))
		w.WriteAligned(bb)
	}

	return w.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	if !isAligned(len(data)) {
		return fmt.Errorf("bundle of %d bytes is not 4-byte aligned: %w", len(data), ErrParse)
	}
	if !isBundle(data) {
		return fmt.Errorf("missing %q tag: %w", bundleTag, ErrParse)
	}
	return b.unmarshal(NewReader(data))
}

// unmarshal assumes the bundle tag has been verified. The bundle's
// time is stamped onto each directly contained message that has no
// time of its own; messages inside a sub-bundle get the sub-bundle's
// time instead, because the stamp is applied where that sub-bundle is
// itself decoded.
func (b *Bundle) unmarshal(r *Reader) error {
	r.Skip(len(bundleTag))

	raw, err := r.ReadInt64()
	if err != nil {
		return fmt.Errorf("bundle time tag: %w", err)
	}
	b.Timetag = Timetag(raw)

	b.Elements = nil
	for r.Len() > 0 {
		size, err := r.ReadInt32()
		if err != nil {
			return fmt.Errorf("bundle element length: %w", err)
		}
		if !isAligned(int(size)) {
			return fmt.Errorf("bundle element length %d is not 4-byte aligned: %w", size, ErrParse)
		}
		sub, err := r.ReadAligned(int(size))
		if err != nil {
			return fmt.Errorf("bundle element of %d bytes: %w", size, err)
		}

		p, err := ParsePacket(sub)
		if err != nil {
			return err
		}
		if m, ok := p.(*Message); ok && m.Timetag == 0 {
			m.Timetag = b.Timetag
		}
		b.Elements = append(b.Elements, p)
	}

	return nil
}
