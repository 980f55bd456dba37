package osc

import (
	"fmt"
	"iter"
	"strings"
)

// Message represents a single OSC message. A message consists of an
// OSC address pattern and zero or more typed arguments. Timetag is
// unset (zero) until the message is decoded out of a bundle, which
// stamps its own time onto it.
type Message struct {
	Address   string
	Arguments []interface{}
	Timetag   Timetag
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The addr parameter is the OSC
// address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...interface{}) {
	m.Arguments = append(m.Arguments, args...)
}

// Time returns the message's time tag, or Immediate if none was set.
func (m *Message) Time() Timetag {
	if m.Timetag == 0 {
		return Immediate
	}
	return m.Timetag
}

// TypeTags returns the message's type tag string, including the
// leading comma. Nil arguments contribute no tag.
func (m *Message) TypeTags() string {
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		if tag := ToTypeTag(arg); tag != TypeNone {
			tags = append(tags, byte(tag))
		}
	}
	return string(tags)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address)
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())
	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case nil:
		case []byte:
			fmt.Fprintf(&sb, " blob(%d)", len(t))
		default:
			fmt.Fprintf(&sb, " %v", t)
		}
	}
	return sb.String()
}

// Messages yields the message itself. Implements Packet.
func (m *Message) Messages() iter.Seq[*Message] {
	return func(yield func(*Message) bool) {
		yield(m)
	}
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// The layout is the padded address, the padded type tag string, then
// the argument data; each argument is padded by its own encoder, so
// the concatenation needs no extra padding. The message's time tag is
// not part of the wire format — only bundles carry time.
func (m *Message) MarshalBinary() ([]byte, error) {
	var data, args Writer

	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		if tag := writeArgument(&args, arg); tag != TypeNone {
			tags = append(tags, byte(tag))
		}
	}

	data.WritePadded([]byte(m.Address))
	data.WritePadded(tags)
	data.WriteAligned(args.Bytes())

	return data.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(data []byte) error {
	if !isAligned(len(data)) {
		return fmt.Errorf("message of %d bytes is not 4-byte aligned: %w", len(data), ErrParse)
	}
	return m.unmarshal(NewReader(data))
}

func (m *Message) unmarshal(r *Reader) error {
	addr, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("message address: %w", err)
	}

	tags, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("message type tags: %w", err)
	}
	if len(tags) == 0 || tags[0] != ',' {
		return fmt.Errorf("type tag string %q does not start with ',': %w", tags, ErrParse)
	}

	m.Address = addr
	m.Timetag = 0
	m.Arguments = nil
	if len(tags) > 1 {
		m.Arguments = make([]interface{}, 0, len(tags)-1)
		for _, c := range []byte(tags[1:]) {
			v, err := readArgument(r, TypeTag(c))
			if err != nil {
				return fmt.Errorf("argument %q: %w", c, err)
			}
			m.Arguments = append(m.Arguments, v)
		}
	}

	return nil
}
