package osc

import "fmt"

// TypeTag identifies the wire type of a single message argument.
type TypeTag byte

const (
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeString  TypeTag = 's'
	TypeBlob    TypeTag = 'b'
	TypeFloat64 TypeTag = 'd'

	// TypeNone marks an argument that contributes neither a tag byte
	// nor wire data. Only nil arguments encode this way.
	TypeNone TypeTag = 0
)

// ToTypeTag returns the tag the given argument encodes as. Booleans
// ride on the int32 type as 0 or 1, and nil arguments vanish from the
// wire entirely; neither has a wire type of its own. Any other
// unsupported type falls back to its string representation as tag 's'.
func ToTypeTag(arg interface{}) TypeTag {
	switch arg.(type) {
	case nil:
		return TypeNone
	case bool, int, int32, int64:
		return TypeInt32
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	case string:
		return TypeString
	case []byte:
		return TypeBlob
	default:
		return TypeString
	}
}

// writeArgument appends arg's binary encoding to w and returns its
// type tag.
func writeArgument(w *Writer, arg interface{}) TypeTag {
	tag := ToTypeTag(arg)
	switch tag {
	case TypeNone:
	case TypeInt32:
		w.WriteInt32(argInt32(arg))
	case TypeFloat32:
		w.WriteFloat32(arg.(float32))
	case TypeFloat64:
		w.WriteFloat64(arg.(float64))
	case TypeString:
		s, ok := arg.(string)
		if !ok {
			s = fmt.Sprint(arg)
		}
		w.WritePadded([]byte(s))
	case TypeBlob:
		b := arg.([]byte)
		w.WriteInt32(int32(len(b)))
		w.WritePadded(b)
	}
	return tag
}

// argInt32 collapses the argument types that share the int32 wire
// encoding.
func argInt32(arg interface{}) int32 {
	switch t := arg.(type) {
	case bool:
		if t {
			return 1
		}
		return 0
	case int:
		return int32(t)
	case int32:
		return t
	case int64:
		return int32(t)
	}
	return 0
}

// readArgument decodes the value for a single tag character. Blob data
// is copied so the decoded value outlives the input buffer.
func readArgument(r *Reader, tag TypeTag) (interface{}, error) {
	switch tag {
	case TypeInt32:
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeFloat32:
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeFloat64:
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeString:
		v, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeBlob:
		b, err := r.ReadBlob()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), b...), nil
	default:
		return nil, fmt.Errorf("unsupported type tag %q: %w", byte(tag), ErrParse)
	}
}
