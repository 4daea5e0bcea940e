// Package serializer implements the ordered output stream used by the struct codec:
// typed fixed-width primitives in a configurable byte order, strings and padding.
package serializer

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

const zeroChunkSize = 64

var zeroChunk [zeroChunkSize]byte

type Serializer struct {
	w     io.Writer
	n     int
	order binary.ByteOrder
	buf   [8]byte
}

// New creates a big-endian serializer.
func New(w io.Writer) *Serializer {
	return NewWithOrder(w, binary.BigEndian)
}

func NewWithOrder(w io.Writer, order binary.ByteOrder) *Serializer {
	return &Serializer{
		w:     w,
		n:     0,
		order: order,
	}
}

func (a *Serializer) Order() binary.ByteOrder {
	return a.order
}

// SetOrder changes the byte order of subsequent multibyte writes.
func (a *Serializer) SetOrder(order binary.ByteOrder) {
	a.order = order
}

func (a *Serializer) Write(b []byte) (int, error) {
	n, err := a.w.Write(b)
	if err != nil {
		return 0, err
	}
	a.n += n
	return n, nil
}

func (a *Serializer) write(b []byte) error {
	n, err := a.w.Write(b)
	a.n += n
	if err != nil {
		return errors.Wrapf(err, "failed to write %d bytes at offset %d", len(b), a.n-n)
	}
	return nil
}

func (a *Serializer) Bool(b bool) error {
	var v byte = 0
	if b {
		v = 1
	}
	return a.Byte(v)
}

func (a *Serializer) Byte(b byte) error {
	a.buf[0] = b
	return a.write(a.buf[:1])
}

func (a *Serializer) Int8(v int8) error {
	return a.Byte(byte(v))
}

func (a *Serializer) Uint16(v uint16) error {
	a.order.PutUint16(a.buf[:2], v)
	return a.write(a.buf[:2])
}

func (a *Serializer) Uint32(v uint32) error {
	a.order.PutUint32(a.buf[:4], v)
	return a.write(a.buf[:4])
}

func (a *Serializer) Uint64(v uint64) error {
	a.order.PutUint64(a.buf[:8], v)
	return a.write(a.buf[:8])
}

// Char writes a two bytes character code unit.
func (a *Serializer) Char(v uint16) error {
	return a.Uint16(v)
}

func (a *Serializer) Int16(v int16) error {
	return a.Uint16(uint16(v))
}

func (a *Serializer) Int32(v int32) error {
	return a.Uint32(uint32(v))
}

func (a *Serializer) Int64(v int64) error {
	return a.Uint64(uint64(v))
}

func (a *Serializer) Float32(v float32) error {
	return a.Uint32(math.Float32bits(v))
}

func (a *Serializer) Float64(v float64) error {
	return a.Uint64(math.Float64bits(v))
}

func (a *Serializer) Bytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return a.write(b)
}

// String writes the bytes of the string as is, without terminator.
func (a *Serializer) String(s string) error {
	if len(s) == 0 {
		return nil
	}
	return a.write([]byte(s))
}

// StringNUL writes the bytes of the string followed by a single NUL byte.
func (a *Serializer) StringNUL(s string) error {
	if err := a.String(s); err != nil {
		return err
	}
	return a.Byte(0)
}

// FixedString writes exactly size bytes: the string truncated to size or padded with NUL bytes.
// Truncation may cut a multibyte UTF-8 sequence.
func (a *Serializer) FixedString(s string, size int) error {
	if size <= 0 {
		return errors.Errorf("invalid fixed string size %d", size)
	}
	if len(s) >= size {
		return a.String(s[:size])
	}
	if err := a.String(s); err != nil {
		return err
	}
	return a.Zeros(size - len(s))
}

// Zeros writes n zero bytes.
func (a *Serializer) Zeros(n int) error {
	if n < 0 {
		return errors.Errorf("negative padding %d", n)
	}
	for n > 0 {
		c := min(n, zeroChunkSize)
		if err := a.write(zeroChunk[:c]); err != nil {
			return err
		}
		n -= c
	}
	return nil
}

// N returns the number of bytes written so far.
func (a *Serializer) N() int64 {
	return int64(a.n)
}
