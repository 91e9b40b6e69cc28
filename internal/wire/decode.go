package wire

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// MaxUvarintLen is the longest valid encoding of a uint64.
const MaxUvarintLen = binary.MaxVarintLen64

// ReadInto copies len(dst) bytes at off into dst and returns the next offset.
func ReadInto(buf []byte, off int, dst []byte, what string) (int, error) {
	if len(buf)-off < len(dst) {
		return off, NewDecodeError(what, off, ErrTruncated)
	}
	copy(dst, buf[off:])
	return off + len(dst), nil
}

// ReadFixed returns a copy of the size bytes at off.
func ReadFixed(buf []byte, off, size int, what string) ([]byte, int, error) {
	out := make([]byte, size)
	next, err := ReadInto(buf, off, out, what)
	if err != nil {
		return nil, off, err
	}
	return out, next, nil
}

// ReadUvarint decodes an unsigned LEB128 integer at off. Encodings longer
// than necessary are rejected so that every value has one representation.
func ReadUvarint(buf []byte, off int, what string) (uint64, int, error) {
	var v uint64
	for i := 0; ; i++ {
		if off+i >= len(buf) {
			return 0, off, NewDecodeError(what, off, ErrTruncated)
		}
		b := buf[off+i]
		if i == MaxUvarintLen-1 && b > 1 {
			return 0, off, NewDecodeError(what, off, ErrVarintOverflow)
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			if i > 0 && b == 0 {
				return 0, off, NewDecodeError(what, off, ErrNonCanonicalVarint)
			}
			return v, off + i + 1, nil
		}
	}
}

// ReadVariable decodes a uvarint length followed by that many bytes. The
// returned slice is a fresh copy, never nil.
func ReadVariable(buf []byte, off int, what string) ([]byte, int, error) {
	n, next, err := ReadUvarint(buf, off, what+" length")
	if err != nil {
		return nil, off, err
	}
	if n > uint64(len(buf)-next) {
		return nil, off, NewDecodeError(what, next, ErrTruncated)
	}
	out := bytes.Clone(buf[next : next+int(n)])
	if out == nil {
		out = []byte{}
	}
	return out, next + int(n), nil
}

// ReadBool decodes a single 0/1 byte.
func ReadBool(buf []byte, off int, what string) (bool, int, error) {
	if off >= len(buf) {
		return false, off, NewDecodeError(what, off, ErrTruncated)
	}
	switch buf[off] {
	case 0:
		return false, off + 1, nil
	case 1:
		return true, off + 1, nil
	default:
		return false, off, NewDecodeError(what, off, ErrInvalidBool)
	}
}

// ReadList decodes a uvarint count followed by that many elements, each at
// least itemSize bytes wide. A count that could not fit in the remaining
// bytes is rejected before anything is allocated. The result is never nil.
func ReadList[T any](buf []byte, off int, what string, itemSize int, decodeItem func(buf []byte, off int) (T, int, error)) ([]T, int, error) {
	n, next, err := ReadUvarint(buf, off, what+" count")
	if err != nil {
		return nil, off, err
	}
	if n > uint64((len(buf)-next)/max(itemSize, 1)) {
		return nil, off, NewDecodeError(what, next, ErrTruncated)
	}
	items := make([]T, 0, n)
	for range n {
		item, after, err := decodeItem(buf, next)
		if err != nil {
			return nil, off, err
		}
		items = append(items, item)
		next = after
	}
	return items, next, nil
}

// ExpectEnd fails with ErrTrailingBytes unless off is the end of buf.
func ExpectEnd(buf []byte, off int, what string) error {
	if off != len(buf) {
		return NewDecodeError(what, off, ErrTrailingBytes)
	}
	return nil
}

// UvarintLen returns the number of bytes v occupies as a uvarint.
func UvarintLen(v uint64) int {
	return max(1, (bits.Len64(v)+6)/7)
}
