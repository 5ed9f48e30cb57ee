package descriptor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendWord(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

func appendString(b []byte, s string) []byte {
	b = appendWord(b, uint32(len(s)))
	return append(b, s...)
}

func TestEncodeBinary_WireLayout(t *testing.T) {
	d := New("Qtilities.ObserverFactory", "Observer", "MyObserver")
	require.True(t, d.IsValid())

	var buf bytes.Buffer
	require.NoError(t, d.EncodeBinary(&buf))

	// Two sentinel words surrounding three strings in the order
	// factory tag, instance name, instance tag.
	var want []byte
	want = appendWord(want, 0xDDDDDDDD)
	want = appendString(want, "Qtilities.ObserverFactory")
	want = appendString(want, "MyObserver")
	want = appendString(want, "Observer")
	want = appendWord(want, 0xDDDDDDDD)
	assert.Equal(t, want, buf.Bytes())
}

func TestBinaryRoundTrip(t *testing.T) {
	tests := []InstanceDescriptor{
		New("Qtilities.ObserverFactory", "Observer", "MyObserver"),
		New("f", "t", ""),
		New("", "Observer", ""), // invalid descriptors still round-trip
		{},
	}
	for _, d := range tests {
		var buf bytes.Buffer
		require.NoError(t, d.EncodeBinary(&buf))
		var back InstanceDescriptor
		require.NoError(t, back.DecodeBinary(&buf))
		assert.Equal(t, d, back)
		assert.Zero(t, buf.Len(), "decode must consume the whole frame")
	}
}

func TestDecodeBinary_StartMarkerMismatch(t *testing.T) {
	var raw []byte
	raw = appendWord(raw, 0xCAFEBABE)
	raw = appendString(raw, "f")
	raw = appendString(raw, "n")
	raw = appendString(raw, "t")
	raw = appendWord(raw, 0xDDDDDDDD)

	var d InstanceDescriptor
	err := d.DecodeBinary(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrStartMarkerNotFound)
	// Nothing from the corrupt buffer may leak into the descriptor.
	assert.Equal(t, InstanceDescriptor{}, d)
}

func TestDecodeBinary_EndMarkerMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("f", "t", "n").EncodeBinary(&buf))
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0x01 // flip one byte of the trailing sentinel

	var d InstanceDescriptor
	err := d.DecodeBinary(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrEndMarkerNotFound)
	// Decoding is not transactional: the well-formed strings before the
	// corrupt end marker were already read.
	assert.Equal(t, "f", d.FactoryTag)
	assert.Equal(t, "t", d.InstanceTag)
	assert.Equal(t, "n", d.InstanceName)
}

func TestDecodeBinary_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("factory", "tag", "name").EncodeBinary(&buf))
	raw := buf.Bytes()

	for cut := 0; cut < len(raw); cut++ {
		var d InstanceDescriptor
		if err := d.DecodeBinary(bytes.NewReader(raw[:cut])); err == nil {
			t.Fatalf("decode of %d/%d bytes succeeded", cut, len(raw))
		}
	}
}

func TestDecodeBinary_FieldLengthBounded(t *testing.T) {
	var raw []byte
	raw = appendWord(raw, 0xDDDDDDDD)
	raw = appendWord(raw, 0xFFFFFFFF) // absurd factory tag length

	var d InstanceDescriptor
	err := d.DecodeBinary(bytes.NewReader(raw))
	require.Error(t, err)
	var fe FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestMarshalUnmarshalBinary(t *testing.T) {
	d := New("Qtilities.ObserverFactory", "Observer", "MyObserver")
	data, err := d.MarshalBinary()
	require.NoError(t, err)
	var back InstanceDescriptor
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, d, back)
}
