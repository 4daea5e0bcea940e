// Package deserializer implements the ordered input stream used by the struct codec.
package deserializer

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

type Deserializer struct {
	r     io.Reader
	pos   int
	order binary.ByteOrder
	buf   [8]byte
}

// NewDeserializer creates a big-endian deserializer over the given bytes.
// The bytes are never modified and never returned to the caller.
func NewDeserializer(b []byte) *Deserializer {
	return NewFromReader(bytes.NewReader(b))
}

// NewFromReader creates a big-endian deserializer reading from r.
func NewFromReader(r io.Reader) *Deserializer {
	return NewFromReaderWithOrder(r, binary.BigEndian)
}

func NewFromReaderWithOrder(r io.Reader, order binary.ByteOrder) *Deserializer {
	return &Deserializer{
		r:     r,
		order: order,
	}
}

func (a *Deserializer) Order() binary.ByteOrder {
	return a.order
}

// SetOrder changes the byte order of subsequent multibyte reads.
func (a *Deserializer) SetOrder(order binary.ByteOrder) {
	a.order = order
}

// Position returns the number of bytes consumed so far.
func (a *Deserializer) Position() int {
	return a.pos
}

func (a *Deserializer) readFull(b []byte, what string) error {
	n, err := io.ReadFull(a.r, b)
	a.pos += n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errors.Wrapf(io.ErrUnexpectedEOF,
				"not enough bytes to deserialize %s, expected at least %d, found %d", what, len(b), n)
		}
		return errors.Wrapf(err, "failed to deserialize %s", what)
	}
	return nil
}

func (a *Deserializer) Byte() (byte, error) {
	if err := a.readFull(a.buf[:1], "byte"); err != nil {
		return 0, err
	}
	return a.buf[0], nil
}

// Bool reads one byte, any non-zero value is true.
func (a *Deserializer) Bool() (bool, error) {
	b, err := a.Byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (a *Deserializer) Int8() (int8, error) {
	b, err := a.Byte()
	return int8(b), err
}

func (a *Deserializer) Uint16() (uint16, error) {
	if err := a.readFull(a.buf[:2], "uint16"); err != nil {
		return 0, err
	}
	return a.order.Uint16(a.buf[:2]), nil
}

func (a *Deserializer) Uint32() (uint32, error) {
	if err := a.readFull(a.buf[:4], "uint32"); err != nil {
		return 0, err
	}
	return a.order.Uint32(a.buf[:4]), nil
}

func (a *Deserializer) Uint64() (uint64, error) {
	if err := a.readFull(a.buf[:8], "uint64"); err != nil {
		return 0, err
	}
	return a.order.Uint64(a.buf[:8]), nil
}

func (a *Deserializer) Char() (uint16, error) {
	return a.Uint16()
}

func (a *Deserializer) Int16() (int16, error) {
	v, err := a.Uint16()
	return int16(v), err
}

func (a *Deserializer) Int32() (int32, error) {
	v, err := a.Uint32()
	return int32(v), err
}

func (a *Deserializer) Int64() (int64, error) {
	v, err := a.Uint64()
	return int64(v), err
}

func (a *Deserializer) Float32() (float32, error) {
	v, err := a.Uint32()
	return math.Float32frombits(v), err
}

func (a *Deserializer) Float64() (float64, error) {
	v, err := a.Uint64()
	return math.Float64frombits(v), err
}

// Bytes reads exactly length bytes into a newly allocated slice.
func (a *Deserializer) Bytes(length uint) ([]byte, error) {
	out := make([]byte, length)
	if err := a.readFull(out, "Bytes"); err != nil {
		return nil, err
	}
	return out, nil
}

// StringNUL reads bytes up to and including the first NUL byte and returns them without the NUL.
// If limit is positive, reading stops after limit bytes even if no NUL was found.
func (a *Deserializer) StringNUL(limit int) (string, error) {
	var sb bytes.Buffer
	for limit <= 0 || sb.Len() < limit {
		c, err := a.Byte()
		if err != nil {
			return "", errors.Wrapf(err, "unterminated string after %d bytes", sb.Len())
		}
		if c == 0 {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// FixedString reads exactly size bytes, the value ends at the first NUL byte.
func (a *Deserializer) FixedString(size int) (string, error) {
	if size <= 0 {
		return "", errors.Errorf("invalid fixed string size %d", size)
	}
	b := make([]byte, size)
	if err := a.readFull(b, "fixed string"); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

// Skip discards n bytes.
func (a *Deserializer) Skip(n int) error {
	if n < 0 {
		return errors.Errorf("negative skip %d", n)
	}
	if n == 0 {
		return nil
	}
	c, err := io.CopyN(io.Discard, a.r, int64(n))
	a.pos += int(c)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Wrapf(io.ErrUnexpectedEOF, "not enough bytes to skip, expected %d, found %d", n, c)
		}
		return errors.Wrap(err, "failed to skip")
	}
	return nil
}

// SkipTo discards bytes up to the absolute offset, which must not be behind the current position.
func (a *Deserializer) SkipTo(offset int) error {
	if offset < a.pos {
		return errors.Errorf("can not skip backwards from %d to %d", a.pos, offset)
	}
	return a.Skip(offset - a.pos)
}
