package payload

import "trustchain/internal/wire"

// field is one fixed-size wire field: its name for error messages, the
// bytes to write or the buffer to read into, and the protocol size.
type field struct {
	name string
	b    []byte
	size int
}

func fixed(name string, b []byte, size int) field { return field{name: name, b: b, size: size} }

func writeFields(e *wire.Encoder, fields ...field) {
	for _, f := range fields {
		e.Fixed(f.name, f.b, f.size)
	}
}

func readFields(buf []byte, off int, fields ...field) (int, error) {
	var err error
	for _, f := range fields {
		if off, err = wire.ReadInto(buf, off, f.b[:f.size], f.name); err != nil {
			return off, err
		}
	}
	return off, nil
}
