package structcodec

import (
	"encoding/binary"
	"fmt"
)

// Meta is the wire descriptor of a single record field.
type Meta struct {
	// Name is used in error messages and logs only.
	Name string
	// Index defines the position of the field on the wire.
	Index int
	// Skip is the number of zero bytes preceding the field.
	Skip int
	// Limit is the fixed width of string fields, zero or less means NUL terminated.
	Limit int
	// Nullable allows a nil slice to be omitted on Pack.
	Nullable bool
	// Reverse encodes the field with the byte order opposite to the stream's one.
	Reverse bool
}

func (m Meta) String() string {
	if m.Name != "" {
		return fmt.Sprintf("field %q", m.Name)
	}
	return fmt.Sprintf("field with index %d", m.Index)
}

// Field binds a descriptor to the storage of a record field.
type Field struct {
	Meta
	Value Value
}

// Record is implemented by every serializable type.
// Fields must return the same table, in the same order, on every call.
type Record interface {
	Fields() []Field
}

func reversed(order binary.ByteOrder) binary.ByteOrder {
	if order.Uint16([]byte{1, 0}) == 1 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
