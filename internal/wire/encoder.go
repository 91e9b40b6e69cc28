package wire

import "encoding/binary"

// Encoder appends fields to a buffer. The first assertion failure is kept
// and later calls become no-ops, so a serializer can write all its fields
// and check once.
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an Encoder with capacity for sizeHint bytes.
func NewEncoder(sizeHint int) *Encoder {
	return &Encoder{buf: make([]byte, 0, sizeHint)}
}

// Fixed appends field, asserting it is exactly size bytes long.
func (e *Encoder) Fixed(name string, field []byte, size int) {
	if e.err != nil {
		return
	}
	if len(field) != size {
		e.err = Assertf("%s: wrong size: want %d bytes, got %d", name, size, len(field))
		return
	}
	e.buf = append(e.buf, field...)
}

// Variable appends the uvarint length of b followed by b.
func (e *Encoder) Variable(b []byte) {
	e.Uvarint(uint64(len(b)))
	if e.err == nil {
		e.buf = append(e.buf, b...)
	}
}

// Uvarint appends v as unsigned LEB128.
func (e *Encoder) Uvarint(v uint64) {
	if e.err == nil {
		e.buf = binary.AppendUvarint(e.buf, v)
	}
}

// Bool appends 1 for true and 0 for false.
func (e *Encoder) Bool(v bool) {
	if e.err != nil {
		return
	}
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

// Bytes returns the encoded buffer, or the first recorded failure and no
// bytes.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

// AppendList writes the uvarint element count followed by each element.
func AppendList[T any](e *Encoder, items []T, encodeItem func(*Encoder, T)) {
	e.Uvarint(uint64(len(items)))
	for _, item := range items {
		encodeItem(e, item)
	}
}
