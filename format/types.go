package format

type (
	Type      uint32
	Semantics uint32
)

// Value type codes as dictated by the external binary layout.
// Readers identify the encoded shape of a value slot by this code alone,
// so the numbering must never change.
const (
	TypeInt32   Type = 0 // TypeInt32 is a signed 32-bit integer, widened to 8 bytes on the wire.
	TypeUint32  Type = 1 // TypeUint32 is an unsigned 32-bit integer, widened to 8 bytes on the wire.
	TypeInt64   Type = 2 // TypeInt64 is a signed 64-bit integer.
	TypeUint64  Type = 3 // TypeUint64 is an unsigned 64-bit integer.
	TypeFloat32 Type = 4 // TypeFloat32 is an IEEE 754 single, widened to 8 bytes on the wire.
	TypeFloat64 Type = 5 // TypeFloat64 is an IEEE 754 double.
	TypeString  Type = 6 // TypeString is raw bytes followed by one terminating zero byte.
)

// Semantic classification codes as dictated by the external binary layout.
// The gap at 2 is part of the external numbering and must be preserved.
const (
	SemCounter  Semantics = 1 // SemCounter is a monotonically accumulating value.
	SemInstant  Semantics = 3 // SemInstant is a point-in-time sample.
	SemDiscrete Semantics = 4 // SemDiscrete is a discrete or state value.
)

// Layout constants shared with the external registry and reader.
const (
	NameMaxLen      = 64                // metric names must be strictly shorter than this
	StringBlockLen  = 256               // string blocks (help text, string values) must be strictly shorter than this
	ItemBitLen      = 10                // width of the item slot field in the external layout
	ItemMask        = 1<<ItemBitLen - 1 // mask applied to item identifiers at construction
	NumericValueLen = 8                 // every numeric value occupies exactly 8 bytes on the wire
)

func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "Uint32"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "Uint64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

func (s Semantics) String() string {
	switch s {
	case SemCounter:
		return "Counter"
	case SemInstant:
		return "Instant"
	case SemDiscrete:
		return "Discrete"
	default:
		return "Unknown"
	}
}
