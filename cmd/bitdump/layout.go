package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/wavesplatform/gostruct/pkg/bitbuffer"
	"github.com/wavesplatform/gostruct/pkg/errs"
)

type kind int

const (
	kindUnsigned kind = iota
	kindBool
	kindSigned
	kindFloat
	kindString
	kindExactString
	kindRaw
)

type rawEncoding int

const (
	rawHex rawEncoding = iota
	rawBase58
)

func parseRawEncoding(s string) (rawEncoding, error) {
	switch strings.ToLower(s) {
	case "hex":
		return rawHex, nil
	case "base58":
		return rawBase58, nil
	default:
		return rawHex, errors.Errorf("unsupported raw bytes encoding %q", s)
	}
}

func (e rawEncoding) encode(b []byte) string {
	if e == rawBase58 {
		return base58.Encode(b)
	}
	return hex.EncodeToString(b)
}

// item is a single element of a layout, such as "len:u12" or "s16".
type item struct {
	name  string
	kind  kind
	width int
}

func parseLayout(spec string) ([]item, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.New("empty layout")
	}
	parts := strings.Split(spec, ",")
	items := make([]item, 0, len(parts))
	for i, p := range parts {
		it, err := parseItem(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "layout item %d", i)
		}
		if it.name == "" {
			it.name = strconv.Itoa(i)
		}
		items = append(items, it)
	}
	return items, nil
}

func parseItem(s string) (item, error) {
	var it item
	if name, code, ok := strings.Cut(s, ":"); ok {
		if name == "" {
			return it, errors.Errorf("empty name in %q", s)
		}
		it.name, s = name, code
	}
	if s == "" {
		return it, errors.New("empty item")
	}
	switch s {
	case "b":
		it.kind, it.width = kindBool, 1
		return it, nil
	case "s":
		it.kind = kindString
		return it, nil
	case "i8", "i16", "i32", "i64":
		it.kind = kindSigned
	case "f32", "f64":
		it.kind = kindFloat
	default:
		switch s[0] {
		case 'u':
			it.kind = kindUnsigned
		case 's':
			it.kind = kindExactString
		case 'r':
			it.kind = kindRaw
		default:
			return it, errors.Errorf("unknown item %q", s)
		}
	}
	w, err := strconv.Atoi(s[1:])
	if err != nil {
		return it, errors.Wrapf(err, "invalid width of %q", s)
	}
	if w <= 0 || (it.kind == kindUnsigned && w > 64) {
		return it, errors.Errorf("width of %q is out of range", s)
	}
	it.width = w
	return it, nil
}

func (it item) decode(bb *bitbuffer.BitBuffer, raw rawEncoding) (string, error) {
	switch it.kind {
	case kindUnsigned:
		v, err := bb.GetBits(it.width)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	case kindBool:
		v, err := bb.Bool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case kindSigned:
		v, err := bb.GetBits(it.width)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(signExtend(v, it.width), 10), nil
	case kindFloat:
		if it.width == 32 {
			v, err := bb.Float32()
			if err != nil {
				return "", err
			}
			return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
		}
		v, err := bb.Float64()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case kindString:
		v, err := bb.String(0, false)
		if err != nil {
			return "", err
		}
		return strconv.Quote(v), nil
	case kindExactString:
		v, err := bb.String(it.width, true)
		if err != nil {
			return "", err
		}
		return strconv.Quote(v), nil
	case kindRaw:
		if rem := bb.Remaining(); it.width > rem {
			return "", errs.NewCapacityViolation(fmt.Sprintf("can not read %d raw bytes, only %d bytes remaining",
				it.width, rem))
		}
		b := make([]byte, it.width)
		if err := bb.Get(b); err != nil {
			return "", err
		}
		return raw.encode(b), nil
	default:
		return "", errors.Errorf("unsupported item kind %d", it.kind)
	}
}

func signExtend(v uint64, width int) int64 {
	shift := 64 - width
	return int64(v<<shift) >> shift
}
