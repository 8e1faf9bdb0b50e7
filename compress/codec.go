package compress

import (
	"fmt"
	"strings"
)

// Type identifies a compression codec in archive names and CLI flags.
type Type uint8

const (
	// TypeNone stores archives uncompressed.
	TypeNone Type = 0x1
	// TypeZstd uses Zstandard compression (best ratio, archival default).
	TypeZstd Type = 0x2
	// TypeS2 uses S2 compression (fast, moderate ratio).
	TypeS2 Type = 0x3
	// TypeLZ4 uses LZ4 block compression (fastest).
	TypeLZ4 Type = 0x4
)

// String returns the string representation of the codec type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// TypeFromString returns the codec type for a given name (case-insensitive).
func TypeFromString(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return TypeNone, nil
	case "zstd":
		return TypeZstd, nil
	case "s2":
		return TypeS2, nil
	case "lz4":
		return TypeLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression codec: %q (supported: none, zstd, s2, lz4)", name)
	}
}

// Compressor compresses a complete archive payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// codec. Returns an error if the data is corrupted or was produced by an
// incompatible codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec returns the codec implementation for the given type.
func NewCodec(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoopCodec(), nil
	case TypeZstd:
		return NewZstdCodec(), nil
	case TypeS2:
		return NewS2Codec(), nil
	case TypeLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unknown compression type: %d", t)
	}
}
