package codec

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/aretw0/nfa/pkg/core"
)

// Decoding and encoding failures.
var (
	ErrEmptyID        = errors.New("note has no ID")
	ErrInvalidUTF8    = errors.New("string field is not valid UTF-8")
	ErrUnknownField   = errors.New("unknown field")
	ErrDuplicateField = errors.New("duplicate field")
	ErrMissingField   = errors.New("missing field")
	ErrWireType       = errors.New("unexpected wire type")
	ErrNanos          = errors.New("nanoseconds out of range")
)

const (
	fieldID        protowire.Number = 1
	fieldTitle     protowire.Number = 2
	fieldContent   protowire.Number = 3
	fieldCreatedAt protowire.Number = 4
	fieldUpdatedAt protowire.Number = 5

	fieldSeconds protowire.Number = 1
	fieldNanos   protowire.Number = 2
)

var fieldNames = map[protowire.Number]string{
	fieldID:        "id",
	fieldTitle:     "title",
	fieldContent:   "content",
	fieldCreatedAt: "created_at",
	fieldUpdatedAt: "updated_at",
}

// Binary is the default core.Codec.
type Binary struct{}

var _ core.Codec = Binary{}

// Encode serializes n. It fails only for an empty ID or invalid UTF-8.
func (Binary) Encode(n core.Note) ([]byte, error) {
	if n.ID == "" {
		return nil, ErrEmptyID
	}
	for num, s := range map[protowire.Number]string{fieldID: n.ID, fieldTitle: n.Title, fieldContent: n.Content} {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%s: %w", fieldNames[num], ErrInvalidUTF8)
		}
	}

	b := make([]byte, 0, len(n.ID)+len(n.Title)+len(n.Content)+48)
	b = appendString(b, fieldID, n.ID)
	b = appendString(b, fieldTitle, n.Title)
	b = appendString(b, fieldContent, n.Content)
	b = appendTime(b, fieldCreatedAt, n.CreatedAt)
	b = appendTime(b, fieldUpdatedAt, n.UpdatedAt)
	return b, nil
}

// Decode parses a value produced by Encode.
func (Binary) Decode(data []byte) (core.Note, error) {
	var n core.Note
	seen := make(map[protowire.Number]bool, len(fieldNames))

	for len(data) > 0 {
		num, typ, l := protowire.ConsumeTag(data)
		if l < 0 {
			return core.Note{}, protowire.ParseError(l)
		}
		data = data[l:]

		name, known := fieldNames[num]
		if !known {
			return core.Note{}, fmt.Errorf("field %d: %w", num, ErrUnknownField)
		}
		if seen[num] {
			return core.Note{}, fmt.Errorf("%s: %w", name, ErrDuplicateField)
		}
		seen[num] = true
		if typ != protowire.BytesType {
			return core.Note{}, fmt.Errorf("%s: %w %d", name, ErrWireType, typ)
		}

		v, l := protowire.ConsumeBytes(data)
		if l < 0 {
			return core.Note{}, fmt.Errorf("%s: %w", name, protowire.ParseError(l))
		}
		data = data[l:]

		switch num {
		case fieldID, fieldTitle, fieldContent:
			if !utf8.Valid(v) {
				return core.Note{}, fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
			}
			switch num {
			case fieldID:
				n.ID = string(v)
			case fieldTitle:
				n.Title = string(v)
			default:
				n.Content = string(v)
			}
		case fieldCreatedAt, fieldUpdatedAt:
			t, err := decodeTime(v)
			if err != nil {
				return core.Note{}, fmt.Errorf("%s: %w", name, err)
			}
			if num == fieldCreatedAt {
				n.CreatedAt = t
			} else {
				n.UpdatedAt = t
			}
		}
	}

	for num := fieldID; num <= fieldUpdatedAt; num++ {
		if !seen[num] {
			return core.Note{}, fmt.Errorf("%s: %w", fieldNames[num], ErrMissingField)
		}
	}
	if n.ID == "" {
		return core.Note{}, ErrEmptyID
	}
	return n, nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	var nested []byte
	nested = protowire.AppendTag(nested, fieldSeconds, protowire.VarintType)
	nested = protowire.AppendVarint(nested, protowire.EncodeZigZag(t.Unix()))
	nested = protowire.AppendTag(nested, fieldNanos, protowire.VarintType)
	nested = protowire.AppendVarint(nested, uint64(t.Nanosecond()))

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, nested)
}

func decodeTime(data []byte) (time.Time, error) {
	var (
		sec, nsec        int64
		hasSec, hasNanos bool
	)

	for len(data) > 0 {
		num, typ, l := protowire.ConsumeTag(data)
		if l < 0 {
			return time.Time{}, protowire.ParseError(l)
		}
		data = data[l:]
		if typ != protowire.VarintType {
			return time.Time{}, fmt.Errorf("%w %d", ErrWireType, typ)
		}

		v, l := protowire.ConsumeVarint(data)
		if l < 0 {
			return time.Time{}, protowire.ParseError(l)
		}
		data = data[l:]

		switch num {
		case fieldSeconds:
			if hasSec {
				return time.Time{}, fmt.Errorf("seconds: %w", ErrDuplicateField)
			}
			sec, hasSec = protowire.DecodeZigZag(v), true
		case fieldNanos:
			if hasNanos {
				return time.Time{}, fmt.Errorf("nanos: %w", ErrDuplicateField)
			}
			if v >= uint64(time.Second) {
				return time.Time{}, ErrNanos
			}
			nsec, hasNanos = int64(v), true
		default:
			return time.Time{}, fmt.Errorf("field %d: %w", num, ErrUnknownField)
		}
	}

	if !hasSec || !hasNanos {
		return time.Time{}, ErrMissingField
	}
	return time.Unix(sec, nsec).UTC(), nil
}
