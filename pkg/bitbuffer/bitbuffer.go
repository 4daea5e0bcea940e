// Package bitbuffer implements a bit-addressable cursor over a fixed byte region.
//
// Bits are addressed least-significant-bit first within each byte, and multibit values
// are assembled in the order the bits are requested: bit i of a value is the i-th bit
// read from the cursor. There is no configurable byte order.
//
// A BitBuffer is not safe for concurrent use.
package bitbuffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/wavesplatform/gostruct/pkg/errs"
)

const (
	bitsPerByte = 8
	maxBits     = 64
)

type BitBuffer struct {
	source       []byte
	capacityBits int
	position     int  // cursor in bits
	b            byte // staging copy of source[bPos]
	bPos         int
}

// New wraps b. The region is used in place, it is never copied, grown or reallocated.
func New(b []byte) *BitBuffer {
	return &BitBuffer{
		source:       b,
		capacityBits: len(b) * bitsPerByte,
	}
}

// Capacity returns the size of the region in bytes.
func (bb *BitBuffer) Capacity() int {
	return bb.capacityBits / bitsPerByte
}

// Limit is the same as Capacity, the limit of the buffer can not be moved.
func (bb *BitBuffer) Limit() int {
	return bb.capacityBits / bitsPerByte
}

// Position returns the cursor in whole bytes.
func (bb *BitBuffer) Position() int {
	return bb.position / bitsPerByte
}

func (bb *BitBuffer) PositionBits() int {
	return bb.position
}

func (bb *BitBuffer) RemainingBits() int {
	return bb.capacityBits - bb.position
}

func (bb *BitBuffer) Remaining() int {
	return bb.RemainingBits() / bitsPerByte
}

func (bb *BitBuffer) HasRemaining() bool {
	return bb.Remaining() > 0
}

func (bb *BitBuffer) HasRemainingBits() bool {
	return bb.RemainingBits() > 0
}

// Order does nothing.
func (bb *BitBuffer) Order(binary.ByteOrder) {}

// SetPosition moves the cursor to the start of the given byte.
func (bb *BitBuffer) SetPosition(byteOffset int) error {
	return bb.Seek(byteOffset, 0)
}

// Seek moves the cursor to byteOffset and then reads bitOffset bits, so the bits
// between the byte boundary and the new cursor count as consumed.
func (bb *BitBuffer) Seek(byteOffset, bitOffset int) error {
	if byteOffset < 0 || bitOffset < 0 || byteOffset > bb.Capacity() ||
		bitOffset > bb.capacityBits-byteOffset*bitsPerByte {
		return errs.NewCapacityViolation(fmt.Sprintf("seek to byte %d bit %d is out of range [0, %d] bits",
			byteOffset, bitOffset, bb.capacityBits))
	}
	bb.position = byteOffset * bitsPerByte
	if byteOffset < len(bb.source) {
		bb.load()
	}
	for bitOffset > 0 {
		n := min(bitOffset, maxBits)
		if _, err := bb.GetBits(n); err != nil {
			return err
		}
		bitOffset -= n
	}
	return nil
}

func (bb *BitBuffer) load() {
	bb.bPos = bb.position / bitsPerByte
	bb.b = bb.source[bb.bPos]
}

func (bb *BitBuffer) check(n int, op string) error {
	if n < 0 || n > maxBits {
		return errs.NewCapacityViolation(fmt.Sprintf("can not %s %d bits at once, expected 0 to %d",
			op, n, maxBits))
	}
	if rem := bb.RemainingBits(); n > rem {
		return errs.NewCapacityViolation(fmt.Sprintf("can not %s %d bits at bit %d, only %d bits remaining",
			op, n, bb.position, rem))
	}
	return nil
}

// GetBits reads n bits, 0 <= n <= 64. The first bit read becomes the least significant bit of the result.
func (bb *BitBuffer) GetBits(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if err := bb.check(n, "read"); err != nil {
		return 0, err
	}
	var data uint64
	for i := range n {
		off := bb.position % bitsPerByte
		if off == 0 {
			bb.load()
		}
		bb.position++
		if bb.b&(1<<off) != 0 {
			data |= 1 << i
		}
	}
	return data, nil
}

// PutBits writes the n least significant bits of v, 0 <= n <= 64.
// Each bit is stored into the region immediately, other bits of the touched bytes are preserved.
func (bb *BitBuffer) PutBits(n int, v uint64) error {
	if n == 0 {
		return nil
	}
	if err := bb.check(n, "write"); err != nil {
		return err
	}
	for i := range n {
		off := bb.position % bitsPerByte
		if off == 0 {
			bb.load()
		}
		bb.position++
		if v&(1<<i) != 0 {
			bb.b |= 1 << off
		} else {
			bb.b &^= 1 << off
		}
		bb.source[bb.bPos] = bb.b
	}
	return nil
}

func (bb *BitBuffer) Bool() (bool, error) {
	v, err := bb.GetBits(1)
	return v != 0, err
}

func (bb *BitBuffer) PutBool(v bool) error {
	var b uint64
	if v {
		b = 1
	}
	return bb.PutBits(1, b)
}

func (bb *BitBuffer) Byte() (byte, error) {
	v, err := bb.GetBits(8)
	return byte(v), err
}

func (bb *BitBuffer) PutByte(v byte) error {
	return bb.PutBits(8, uint64(v))
}

func (bb *BitBuffer) Int16() (int16, error) {
	v, err := bb.GetBits(16)
	return int16(v), err
}

func (bb *BitBuffer) PutInt16(v int16) error {
	return bb.PutBits(16, uint64(uint16(v)))
}

func (bb *BitBuffer) Int32() (int32, error) {
	v, err := bb.GetBits(32)
	return int32(v), err
}

func (bb *BitBuffer) PutInt32(v int32) error {
	return bb.PutBits(32, uint64(uint32(v)))
}

func (bb *BitBuffer) Int64() (int64, error) {
	v, err := bb.GetBits(64)
	return int64(v), err
}

func (bb *BitBuffer) PutInt64(v int64) error {
	return bb.PutBits(64, uint64(v))
}

func (bb *BitBuffer) Float32() (float32, error) {
	v, err := bb.GetBits(32)
	return math.Float32frombits(uint32(v)), err
}

func (bb *BitBuffer) PutFloat32(v float32) error {
	return bb.PutBits(32, uint64(math.Float32bits(v)))
}

func (bb *BitBuffer) Float64() (float64, error) {
	v, err := bb.GetBits(64)
	return math.Float64frombits(v), err
}

func (bb *BitBuffer) PutFloat64(v float64) error {
	return bb.PutBits(64, math.Float64bits(v))
}

// Get fills dst with consecutive bytes.
func (bb *BitBuffer) Get(dst []byte) error {
	if rem := bb.RemainingBits(); len(dst) > rem/bitsPerByte {
		return errs.NewCapacityViolation(fmt.Sprintf("can not read %d bytes at bit %d, only %d bits remaining",
			len(dst), bb.position, rem))
	}
	for i := range dst {
		b, err := bb.Byte()
		if err != nil {
			return err
		}
		dst[i] = b
	}
	return nil
}

func (bb *BitBuffer) skipBytes(n int) error {
	if n <= 0 {
		return nil
	}
	if rem := bb.RemainingBits(); n > rem/bitsPerByte {
		return errs.NewCapacityViolation(fmt.Sprintf("can not skip %d bytes at bit %d, only %d bits remaining",
			n, bb.position, rem))
	}
	for range n {
		if _, err := bb.GetBits(bitsPerByte); err != nil {
			return err
		}
	}
	return nil
}

// String reads bytes up to the first NUL or until limit bytes were read, whichever comes first.
// A limit of zero or less means no limit. If exact is set and limit is positive the cursor always
// ends limit bytes after the start, the bytes after the terminator are discarded.
// On failure the cursor is left at the start of the string.
func (bb *BitBuffer) String(limit int, exact bool) (string, error) {
	start := bb.position
	var sb bytes.Buffer
	consumed := 0
	for limit <= 0 || consumed < limit {
		c, err := bb.Byte()
		if err != nil {
			bb.rewind(start)
			return "", errs.Extend(err, "unterminated string")
		}
		consumed++
		if c == 0 {
			break
		}
		sb.WriteByte(c)
	}
	if exact && limit > 0 {
		if err := bb.skipBytes(limit - consumed); err != nil {
			bb.rewind(start)
			return "", err
		}
	}
	return sb.String(), nil
}

// rewind moves the cursor back to bit position and restages its byte.
func (bb *BitBuffer) rewind(position int) {
	bb.position = position
	if position/bitsPerByte < len(bb.source) {
		bb.load()
	}
}

// PutString writes the UTF-8 bytes of s followed by a NUL byte.
func (bb *BitBuffer) PutString(s string) error {
	if len(s) >= bb.RemainingBits()/bitsPerByte {
		return errs.NewCapacityViolation(fmt.Sprintf("can not write string of %d bytes at bit %d, only %d bits remaining",
			len(s)+1, bb.position, bb.RemainingBits()))
	}
	for i := 0; i < len(s); i++ {
		if err := bb.PutByte(s[i]); err != nil {
			return err
		}
	}
	return bb.PutByte(0)
}
