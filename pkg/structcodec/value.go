package structcodec

import (
	"golang.org/x/exp/constraints"

	"github.com/wavesplatform/gostruct/pkg/libs/deserializer"
	"github.com/wavesplatform/gostruct/pkg/libs/serializer"
)

// Value is the codec of a field bound to its storage.
// Values are created with the constructors of this package only.
type Value interface {
	sizeof(m Meta) (Size, error)
	pack(s *serializer.Serializer, m Meta) error
	unpack(d *deserializer.Deserializer, m Meta) error
}

// nilable is implemented by values that may have no storage to walk, such as nil slices.
type nilable interface {
	isNil() bool
}

type integer[T constraints.Integer] struct {
	p     *T
	width int
}

func (v integer[T]) sizeof(Meta) (Size, error) {
	return Known(v.width), nil
}

func (v integer[T]) pack(s *serializer.Serializer, _ Meta) error {
	switch v.width {
	case 1:
		return s.Byte(byte(*v.p))
	case 2:
		return s.Uint16(uint16(*v.p))
	case 4:
		return s.Uint32(uint32(*v.p))
	default:
		return s.Uint64(uint64(*v.p))
	}
}

func (v integer[T]) unpack(d *deserializer.Deserializer, _ Meta) error {
	switch v.width {
	case 1:
		b, err := d.Byte()
		if err != nil {
			return err
		}
		*v.p = T(b)
	case 2:
		u, err := d.Uint16()
		if err != nil {
			return err
		}
		*v.p = T(u)
	case 4:
		u, err := d.Uint32()
		if err != nil {
			return err
		}
		*v.p = T(u)
	default:
		u, err := d.Uint64()
		if err != nil {
			return err
		}
		*v.p = T(u)
	}
	return nil
}

// Byte binds an unsigned one byte field.
func Byte(p *byte) Value { return integer[byte]{p: p, width: 1} }

// Int8 binds a signed one byte field.
func Int8(p *int8) Value { return integer[int8]{p: p, width: 1} }

// Char binds a two bytes character code unit.
func Char(p *uint16) Value { return integer[uint16]{p: p, width: 2} }

func Int16(p *int16) Value { return integer[int16]{p: p, width: 2} }

func Int32(p *int32) Value { return integer[int32]{p: p, width: 4} }

func Int64(p *int64) Value { return integer[int64]{p: p, width: 8} }

type boolean struct {
	p *bool
}

// Bool binds a one byte boolean field, any non-zero byte reads as true.
func Bool(p *bool) Value { return boolean{p: p} }

func (v boolean) sizeof(Meta) (Size, error) { return Known(1), nil }

func (v boolean) pack(s *serializer.Serializer, _ Meta) error { return s.Bool(*v.p) }

func (v boolean) unpack(d *deserializer.Deserializer, _ Meta) error {
	b, err := d.Bool()
	if err != nil {
		return err
	}
	*v.p = b
	return nil
}

type float32Value struct {
	p *float32
}

func Float32(p *float32) Value { return float32Value{p: p} }

func (v float32Value) sizeof(Meta) (Size, error) { return Known(4), nil }

func (v float32Value) pack(s *serializer.Serializer, _ Meta) error { return s.Float32(*v.p) }

func (v float32Value) unpack(d *deserializer.Deserializer, _ Meta) error {
	f, err := d.Float32()
	if err != nil {
		return err
	}
	*v.p = f
	return nil
}

type float64Value struct {
	p *float64
}

func Float64(p *float64) Value { return float64Value{p: p} }

func (v float64Value) sizeof(Meta) (Size, error) { return Known(8), nil }

func (v float64Value) pack(s *serializer.Serializer, _ Meta) error { return s.Float64(*v.p) }

func (v float64Value) unpack(d *deserializer.Deserializer, _ Meta) error {
	f, err := d.Float64()
	if err != nil {
		return err
	}
	*v.p = f
	return nil
}

type stringValue struct {
	p *string
}

// String binds a string field. With a positive Limit the string occupies exactly Limit bytes:
// shorter strings are padded with NUL bytes and longer ones are truncated on Pack.
// Otherwise the string is written as its UTF-8 bytes followed by a NUL byte.
func String(p *string) Value { return stringValue{p: p} }

func (v stringValue) sizeof(m Meta) (Size, error) {
	if m.Limit > 0 {
		return Known(m.Limit), nil
	}
	return Dynamic, nil
}

func (v stringValue) pack(s *serializer.Serializer, m Meta) error {
	if m.Limit > 0 {
		return s.FixedString(*v.p, m.Limit)
	}
	return s.StringNUL(*v.p)
}

func (v stringValue) unpack(d *deserializer.Deserializer, m Meta) error {
	var (
		str string
		err error
	)
	if m.Limit > 0 {
		str, err = d.FixedString(m.Limit)
	} else {
		str, err = d.StringNUL(0)
	}
	if err != nil {
		return err
	}
	*v.p = str
	return nil
}

type bytesValue struct {
	p *[]byte
}

// Bytes binds a byte slice. It produces the same encoding as Slice(p, Byte) and reads the
// whole slice at once. The slice is never resized.
func Bytes(p *[]byte) Value { return bytesValue{p: p} }

func (v bytesValue) isNil() bool { return *v.p == nil }

func (v bytesValue) sizeof(m Meta) (Size, error) {
	if v.isNil() {
		return Dynamic, missingArray(m)
	}
	return Known(len(*v.p)), nil
}

func (v bytesValue) pack(s *serializer.Serializer, m Meta) error {
	if v.isNil() {
		return missingArray(m)
	}
	return s.Bytes(*v.p)
}

func (v bytesValue) unpack(d *deserializer.Deserializer, m Meta) error {
	if v.isNil() {
		return missingArray(m)
	}
	b, err := d.Bytes(uint(len(*v.p)))
	if err != nil {
		return err
	}
	copy(*v.p, b)
	return nil
}
