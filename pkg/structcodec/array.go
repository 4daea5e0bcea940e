package structcodec

import (
	"fmt"

	"github.com/wavesplatform/gostruct/pkg/errs"
	"github.com/wavesplatform/gostruct/pkg/libs/deserializer"
	"github.com/wavesplatform/gostruct/pkg/libs/serializer"
)

type slice[E any] struct {
	p    *[]E
	elem func(*E) Value
}

// Slice binds a slice field. The slice must be allocated before Pack and Unpack,
// its length defines the number of encoded elements and is never changed.
// Every element is encoded with the value returned by elem, which receives
// the field descriptor too, so string elements obey its Limit.
func Slice[E any](p *[]E, elem func(*E) Value) Value {
	return slice[E]{p: p, elem: elem}
}

// SliceOf returns an element codec for slices of slices, as in Slice(&grid, SliceOf(Int32)).
func SliceOf[E any](elem func(*E) Value) func(*[]E) Value {
	return func(p *[]E) Value {
		return Slice(p, elem)
	}
}

func missingArray(m Meta) error {
	return errs.NewMissingArray(fmt.Sprintf("can not walk nil array of unknown length in %s", m))
}

func elementContext(i int) string {
	return fmt.Sprintf("element %d", i)
}

func (v slice[E]) isNil() bool { return *v.p == nil }

func (v slice[E]) sizeof(m Meta) (Size, error) {
	if v.isNil() {
		return Dynamic, missingArray(m)
	}
	total := Known(0)
	for i := range *v.p {
		sz, err := v.elem(&(*v.p)[i]).sizeof(m)
		if err != nil {
			return Dynamic, errs.Extend(err, elementContext(i))
		}
		if sz.IsDynamic() {
			return Dynamic, nil
		}
		total = total.Add(sz)
	}
	return total, nil
}

func (v slice[E]) pack(s *serializer.Serializer, m Meta) error {
	if v.isNil() {
		return missingArray(m)
	}
	for i := range *v.p {
		if err := v.elem(&(*v.p)[i]).pack(s, m); err != nil {
			return errs.Extend(err, elementContext(i))
		}
	}
	return nil
}

func (v slice[E]) unpack(d *deserializer.Deserializer, m Meta) error {
	if v.isNil() {
		return missingArray(m)
	}
	for i := range *v.p {
		if err := v.elem(&(*v.p)[i]).unpack(d, m); err != nil {
			return errs.Extend(err, elementContext(i))
		}
	}
	return nil
}
