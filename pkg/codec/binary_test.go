package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/aretw0/nfa/pkg/codec"
	"github.com/aretw0/nfa/pkg/core"
)

func sampleNote() core.Note {
	created := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)
	return core.Note{
		ID:        "00ff00ff00ff00ff",
		Title:     "Meeting Notes",
		Content:   "Discuss project timeline\nwith ünïcödé and emoji 🗒",
		CreatedAt: created,
		UpdatedAt: created.Add(90 * time.Minute),
	}
}

func TestBinary_RoundTrip(t *testing.T) {
	c := codec.Binary{}

	t.Run("Full note", func(t *testing.T) {
		in := sampleNote()
		data, err := c.Encode(in)
		require.NoError(t, err)

		out, err := c.Decode(data)
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "expected %+v, got %+v", in, out)
		assert.Equal(t, in, out)
	})

	t.Run("Empty title and content", func(t *testing.T) {
		in := sampleNote()
		in.Title, in.Content = "", ""
		data, err := c.Encode(in)
		require.NoError(t, err)

		out, err := c.Decode(data)
		require.NoError(t, err)
		assert.Empty(t, out.Title)
		assert.Empty(t, out.Content)
	})

	t.Run("Times before the epoch", func(t *testing.T) {
		in := sampleNote()
		in.CreatedAt = time.Date(1955, 11, 5, 6, 0, 0, 42, time.UTC)
		data, err := c.Encode(in)
		require.NoError(t, err)

		out, err := c.Decode(data)
		require.NoError(t, err)
		assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	})

	t.Run("Decoded times are UTC", func(t *testing.T) {
		in := sampleNote()
		in.CreatedAt = in.CreatedAt.In(time.FixedZone("X", 3*3600))
		data, err := c.Encode(in)
		require.NoError(t, err)

		out, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, out.CreatedAt.Location())
		assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	})
}

func TestBinary_EncodeErrors(t *testing.T) {
	c := codec.Binary{}

	n := sampleNote()
	n.ID = ""
	_, err := c.Encode(n)
	assert.ErrorIs(t, err, codec.ErrEmptyID)

	n = sampleNote()
	n.Content = string([]byte{0xff, 0xfe})
	_, err = c.Encode(n)
	assert.ErrorIs(t, err, codec.ErrInvalidUTF8)
}

func TestBinary_DecodeErrors(t *testing.T) {
	c := codec.Binary{}
	valid, err := c.Encode(sampleNote())
	require.NoError(t, err)

	str := func(b []byte, num protowire.Number, s string) []byte {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		return protowire.AppendString(b, s)
	}
	ts := func(b []byte, num protowire.Number, nested []byte) []byte {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		return protowire.AppendBytes(b, nested)
	}
	nested := func(sec int64, nanos uint64) []byte {
		var b []byte
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(sec))
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		return protowire.AppendVarint(b, nanos)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "Unknown field",
			data: str(append([]byte(nil), valid...), 9, "extra"),
			want: codec.ErrUnknownField,
		},
		{
			name: "Duplicate field",
			data: str(append([]byte(nil), valid...), 2, "again"),
			want: codec.ErrDuplicateField,
		},
		{
			name: "Missing timestamps",
			data: str(str(str(nil, 1, "id"), 2, "t"), 3, "c"),
			want: codec.ErrMissingField,
		},
		{
			name: "Wrong wire type",
			data: protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 7),
			want: codec.ErrWireType,
		},
		{
			name: "Nanos out of range",
			data: ts(ts(str(str(str(nil, 1, "id"), 2, "t"), 3, "c"), 4, nested(0, 2e9)), 5, nested(0, 0)),
			want: codec.ErrNanos,
		},
		{
			name: "Invalid UTF-8",
			data: str(nil, 1, string([]byte{0xc3, 0x28})),
			want: codec.ErrInvalidUTF8,
		},
		{
			name: "Empty ID",
			data: ts(ts(str(str(str(nil, 1, ""), 2, "t"), 3, "c"), 4, nested(1, 0)), 5, nested(1, 0)),
			want: codec.ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Truncated value", func(t *testing.T) {
		_, err := c.Decode(valid[:len(valid)-3])
		assert.Error(t, err)
	})

	t.Run("Empty value", func(t *testing.T) {
		_, err := c.Decode(nil)
		assert.ErrorIs(t, err, codec.ErrMissingField)
	})
}
