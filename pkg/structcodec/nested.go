package structcodec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wavesplatform/gostruct/pkg/errs"
	"github.com/wavesplatform/gostruct/pkg/libs/deserializer"
	"github.com/wavesplatform/gostruct/pkg/libs/serializer"
)

type nested[T any, PT interface {
	*T
	Record
}] struct {
	p       *PT
	factory func() PT
	element bool
}

// Nested binds a pointer to a nested record. A nil pointer is replaced with a record built
// by factory on Unpack and is written as zero bytes of the default record size on Pack.
// A nil factory builds the zero value of T.
func Nested[T any, PT interface {
	*T
	Record
}](p *PT, factory func() PT) Value {
	return nested[T, PT]{p: p, factory: factory}
}

// NestedOf returns an element codec for slices of record pointers, as in
// Slice(&r.Items, NestedOf(NewItem)). Unlike fields, nil elements can not be packed.
func NestedOf[T any, PT interface {
	*T
	Record
}](factory func() PT) func(*PT) Value {
	return func(p *PT) Value {
		return nested[T, PT]{p: p, factory: factory, element: true}
	}
}

func (v nested[T, PT]) instantiate() (PT, error) {
	zap.S().Debugf("Instantiating %T", (*T)(nil))
	if v.factory == nil {
		return PT(new(T)), nil
	}
	r := v.factory()
	if (*T)(r) == nil {
		return r, errs.NewConstructionFailure(fmt.Sprintf("factory of %T returned nil", (*T)(nil)))
	}
	return r, nil
}

// current returns the bound record or a default one, the storage is never modified.
func (v nested[T, PT]) current() (PT, error) {
	if r := *v.p; (*T)(r) != nil {
		return r, nil
	}
	return v.instantiate()
}

func (v nested[T, PT]) sizeof(Meta) (Size, error) {
	r, err := v.current()
	if err != nil {
		return Dynamic, err
	}
	return Sizeof(r)
}

func (v nested[T, PT]) pack(s *serializer.Serializer, m Meta) error {
	if r := *v.p; (*T)(r) != nil {
		return PackTo(r, s)
	}
	if v.element {
		return errs.NewNullElement(fmt.Sprintf("nil %T elements are not supported in %s", (*T)(nil), m))
	}
	r, err := v.instantiate()
	if err != nil {
		return err
	}
	sz, err := Sizeof(r)
	if err != nil {
		return err
	}
	n, ok := sz.Bytes()
	if !ok {
		return errs.NewDynamicSize(fmt.Sprintf("can not zero-fill nil %T of dynamic size in %s", (*T)(nil), m))
	}
	return s.Zeros(n)
}

func (v nested[T, PT]) unpack(d *deserializer.Deserializer, _ Meta) error {
	r := *v.p
	if (*T)(r) == nil {
		var err error
		if r, err = v.instantiate(); err != nil {
			return err
		}
		*v.p = r
	}
	return Unpack(r, d)
}
