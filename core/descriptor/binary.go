package descriptor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// marker opens and closes a descriptor frame on the wire. Checking it on
// both sides lets a reader detect stream desynchronization immediately: the
// start word catches a wrong cursor position, the end word verifies the
// reader consumed exactly the bytes in between.
const marker uint32 = 0xDDDDDDDD

// maxFieldLen bounds a single string field on decode so a corrupt length
// prefix cannot trigger an arbitrarily large allocation.
const maxFieldLen = 1 << 20

// FormatError reports a framing violation in a binary descriptor stream.
// It is non-recoverable: no resynchronization mechanism exists, so a caller
// should treat the stream as corrupt beyond the point of failure.
type FormatError string

func (e FormatError) Error() string { return string(e) }

const (
	ErrStartMarkerNotFound = FormatError("descriptor: start marker not found")
	ErrEndMarkerNotFound   = FormatError("descriptor: end marker not found")
	ErrFieldTooLong        = FormatError("descriptor: string field exceeds length limit")
)

// EncodeBinary writes the descriptor to w, framed by the start and end
// marker words. Wire order is factory tag, instance name, instance tag —
// NOT declaration order — and must stay that way for compatibility with
// previously persisted data. Strings travel as a big-endian uint32 byte
// length followed by UTF-8 bytes; the marker words share that endianness.
func (d InstanceDescriptor) EncodeBinary(w io.Writer) error {
	if err := writeWord(w, marker); err != nil {
		return err
	}
	for _, s := range []string{d.FactoryTag, d.InstanceName, d.InstanceTag} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return writeWord(w, marker)
}

// DecodeBinary reads a descriptor previously written by EncodeBinary.
// Decoding is not transactional: on failure the fields read so far stay
// populated and the caller must treat the descriptor as unusable.
func (d *InstanceDescriptor) DecodeBinary(r io.Reader) error {
	word, err := readWord(r)
	if err != nil {
		return fmt.Errorf("descriptor: read start marker: %w", err)
	}
	if word != marker {
		return ErrStartMarkerNotFound
	}
	if d.FactoryTag, err = readString(r); err != nil {
		return fmt.Errorf("descriptor: read factory tag: %w", err)
	}
	if d.InstanceName, err = readString(r); err != nil {
		return fmt.Errorf("descriptor: read instance name: %w", err)
	}
	if d.InstanceTag, err = readString(r); err != nil {
		return fmt.Errorf("descriptor: read instance tag: %w", err)
	}
	if word, err = readWord(r); err != nil {
		return fmt.Errorf("descriptor: read end marker: %w", err)
	}
	if word != marker {
		return ErrEndMarkerNotFound
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d InstanceDescriptor) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.EncodeBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *InstanceDescriptor) UnmarshalBinary(data []byte) error {
	return d.DecodeBinary(bytes.NewReader(data))
}

func writeWord(w io.Writer, v uint32) error {
	return binary.Write(w, binary.BigEndian, v)
}

func readWord(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func writeString(w io.Writer, s string) error {
	if err := writeWord(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readWord(r)
	if err != nil {
		return "", err
	}
	if n > maxFieldLen {
		return "", ErrFieldTooLong
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
