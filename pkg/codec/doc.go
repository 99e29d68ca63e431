// Package codec holds the on-disk encoding of notes.
//
// The format is a fixed, versionless sequence of protobuf wire fields:
//
//	1 id         bytes (UTF-8)
//	2 title      bytes (UTF-8)
//	3 content    bytes (UTF-8)
//	4 created_at bytes (nested: 1 seconds zigzag varint, 2 nanos varint)
//	5 updated_at bytes (nested, same layout)
//
// Every field is written exactly once. Decoding rejects unknown, duplicate
// or missing fields, so any change to the field set is a breaking change.
package codec
