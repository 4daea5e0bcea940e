package structcodec

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/valyala/bytebufferpool"

	"github.com/wavesplatform/gostruct/pkg/errs"
	"github.com/wavesplatform/gostruct/pkg/libs/deserializer"
	"github.com/wavesplatform/gostruct/pkg/libs/serializer"
)

// sortedFields returns the field table of r in wire order.
func sortedFields(r Record) ([]Field, error) {
	fields := slices.Clone(r.Fields())
	for i, f := range fields {
		if f.Value == nil {
			return nil, errs.NewInvalidDescriptor(fmt.Sprintf("%s at position %d of %T has no value", f.Meta, i, r))
		}
		if f.Skip < 0 {
			return nil, errs.NewInvalidDescriptor(fmt.Sprintf("%s of %T has negative skip %d", f.Meta, r, f.Skip))
		}
	}
	slices.SortStableFunc(fields, func(a, b Field) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return fields, nil
}

func isNilArray(v Value) bool {
	n, ok := v.(nilable)
	return ok && n.isNil()
}

// Sizeof returns the packed size of r. If any field has a dynamic size, the result is Dynamic.
// Nil nested records are measured on a default record, nil slices fail even if nullable.
func Sizeof(r Record) (Size, error) {
	fields, err := sortedFields(r)
	if err != nil {
		return Dynamic, err
	}
	total := Known(0)
	for _, f := range fields {
		sz, err := sizeofField(f)
		if err != nil {
			return Dynamic, errs.Extend(err, f.Meta.String())
		}
		if sz.IsDynamic() {
			return Dynamic, nil
		}
		total = total.Add(sz)
	}
	return total, nil
}

func sizeofField(f Field) (Size, error) {
	if isNilArray(f.Value) {
		return Dynamic, missingArray(f.Meta)
	}
	sz, err := f.Value.sizeof(f.Meta)
	if err != nil {
		return Dynamic, err
	}
	return Known(f.Skip).Add(sz), nil
}

// Pack encodes r in big-endian byte order. The returned slice is owned by the caller.
func Pack(r Record) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := PackTo(r, serializer.New(buf)); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// PackTo encodes r into s using the byte order of s.
func PackTo(r Record, s *serializer.Serializer) error {
	fields, err := sortedFields(r)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := packField(s, f); err != nil {
			return errs.Extend(err, f.Meta.String())
		}
	}
	return nil
}

func packField(s *serializer.Serializer, f Field) error {
	if isNilArray(f.Value) {
		if f.Nullable {
			return nil
		}
		return missingArray(f.Meta)
	}
	if err := s.Zeros(f.Skip); err != nil {
		return err
	}
	if f.Reverse {
		order := s.Order()
		s.SetOrder(reversed(order))
		defer s.SetOrder(order)
	}
	return f.Value.pack(s, f.Meta)
}

// Unpack decodes the fields of r from d, using the byte order of d.
// Slices must already have their final length. Nil nested records and nil elements of record
// slices are allocated. On failure r may be partially updated.
func Unpack(r Record, d *deserializer.Deserializer) error {
	fields, err := sortedFields(r)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := unpackField(d, f); err != nil {
			return errs.Extend(err, f.Meta.String())
		}
	}
	return nil
}

func unpackField(d *deserializer.Deserializer, f Field) error {
	if isNilArray(f.Value) {
		return missingArray(f.Meta)
	}
	if err := d.Skip(f.Skip); err != nil {
		return err
	}
	if f.Reverse {
		order := d.Order()
		d.SetOrder(reversed(order))
		defer d.SetOrder(order)
	}
	return f.Value.unpack(d, f.Meta)
}

// UnpackBytes decodes r from big-endian encoded bytes. Trailing bytes are ignored.
func UnpackBytes(r Record, b ...byte) error {
	return Unpack(r, deserializer.NewDeserializer(b))
}
