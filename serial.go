package incmap

// SerialType tags a value for wire serialization.
type SerialType uint8

const (
	SerialNil SerialType = iota
	SerialError
	SerialString
	SerialInteger
	SerialDouble
)

func (t SerialType) String() string {
	switch t {
	case SerialNil:
		return "nil"
	case SerialError:
		return "error"
	case SerialString:
		return "string"
	case SerialInteger:
		return "integer"
	case SerialDouble:
		return "double"
	default:
		return "unknown"
	}
}

// SerialTypeOf reports the wire tag for v's dynamic type. Types without a
// wire representation tag as SerialNil.
func SerialTypeOf(v any) SerialType {
	switch v.(type) {
	case nil:
		return SerialNil
	case error:
		return SerialError
	case string, []byte:
		return SerialString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return SerialInteger
	case float32, float64:
		return SerialDouble
	default:
		return SerialNil
	}
}
