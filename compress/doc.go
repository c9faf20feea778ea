// Package compress provides the payload codecs used by trace snapshots.
//
// A snapshot stores a training run's diagnostic distance trace as a
// flat little-endian float64 payload; this package supplies the
// optional compression layer applied to that payload.
//
// Supported algorithms:
//   - None: no compression, fastest, largest
//   - Zstd: best ratio, for archival of long traces
//   - S2: balanced speed and ratio, the snapshot default
//   - LZ4: fastest decompression, moderate ratio
//
// All codecs are stateless values safe for concurrent use; the zstd
// and lz4 implementations pool their internal encoder state.
//
// Usage:
//
//	codec, err := compress.ForType(compress.TypeS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
