package structcodec

import (
	"math"
	"strconv"
)

// Size is the packed size of a record or a field. A size is either known in advance or dynamic,
// the latter means it depends on the content, as for NUL terminated strings.
type Size struct {
	n     int
	known bool
}

// Dynamic is the size of content that can not be measured without encoding it.
var Dynamic = Size{}

func Known(n int) Size {
	return Size{n: n, known: true}
}

// Bytes returns the size in bytes and true, or false if the size is dynamic.
func (s Size) Bytes() (int, bool) {
	return s.n, s.known
}

func (s Size) IsDynamic() bool {
	return !s.known
}

// Add sums two sizes, anything added to a dynamic size is dynamic.
func (s Size) Add(other Size) Size {
	if !s.known || !other.known {
		return Dynamic
	}
	return Known(s.n + other.n)
}

// Int returns the size in bytes, or math.MinInt32 for a dynamic size.
func (s Size) Int() int {
	if !s.known {
		return math.MinInt32
	}
	return s.n
}

func (s Size) String() string {
	if !s.known {
		return "dynamic"
	}
	return strconv.Itoa(s.n)
}
