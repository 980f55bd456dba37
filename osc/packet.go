package osc

import (
	"bytes"
	"encoding"
	"fmt"
	"iter"
)

// MaxPacketSize is the largest datagram the transport helpers accept.
// It matches the maximum UDP payload size.
const MaxPacketSize = 65507

// Packet is the unit of OSC transmission: either a *Message or a
// *Bundle. Messages iterates every message reachable from the packet
// in depth-first order; the traversal is lazy, restartable, and never
// mutates the packet.
type Packet interface {
	encoding.BinaryMarshaler
	Messages() iter.Seq[*Message]
}

// isBundle reports whether data opens with the aligned "#bundle" tag.
// A bundle is at least the tag plus an 8-byte time tag, so shorter
// inputs are treated as messages.
func isBundle(data []byte) bool {
	return len(data) > 15 && bytes.Equal(data[:len(bundleTag)], bundleTag)
}

// ParsePacket decodes a single OSC packet, as received in one UDP
// datagram. It returns an error wrapping ErrParse for structurally
// invalid input and ErrUnderrun for truncated input; in either case no
// packet is returned.
func ParsePacket(data []byte) (Packet, error) {
	if !isAligned(len(data)) {
		return nil, fmt.Errorf("packet of %d bytes is not 4-byte aligned: %w", len(data), ErrParse)
	}

	if isBundle(data) {
		b := &Bundle{}
		if err := b.unmarshal(NewReader(data)); err != nil {
			return nil, err
		}
		return b, nil
	}

	m := &Message{}
	if err := m.unmarshal(NewReader(data)); err != nil {
		return nil, err
	}
	return m, nil
}
