package compress

import "fmt"

// Type identifies a compression algorithm for trace snapshot payloads.
type Type uint8

const (
	// TypeNone stores the payload uncompressed.
	TypeNone Type = 0x1
	// TypeZstd uses Zstandard, best ratio for long traces.
	TypeZstd Type = 0x2
	// TypeS2 uses S2, a balanced speed/ratio default.
	TypeS2 Type = 0x3
	// TypeLZ4 uses LZ4 block compression, fastest decode.
	TypeLZ4 Type = 0x4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the supported compression types.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a payload. The returned slice is owned by the
// caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. Corrupted or mismatched input returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NoopCodec{},
	TypeZstd: ZstdCodec{},
	TypeS2:   S2Codec{},
	TypeLZ4:  LZ4Codec{},
}

// ForType returns the built-in Codec for the given compression type.
func ForType(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
