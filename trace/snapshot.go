package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/odakyildiz/proxfit/compress"
)

// Snapshot binary layout, little-endian throughout:
//
//	offset 0: magic "PFTR" (4 bytes)
//	offset 4: format version (1 byte)
//	offset 5: compression type (1 byte)
//	offset 6: reserved (2 bytes, zero)
//	offset 8: entry count (uint64)
//	offset 16: payload, count float64 values, compressed per the type byte
const (
	snapshotVersion    = 0x1
	snapshotHeaderSize = 16
)

var snapshotMagic = [4]byte{'P', 'F', 'T', 'R'}

// ErrBadSnapshot reports a snapshot that is truncated, corrupted, or
// written by an incompatible version.
var ErrBadSnapshot = errors.New("malformed trace snapshot")

// Snapshot serializes the trace for offline consumers (plotting and
// reporting tools) using the given payload compression.
func (tr *Trace) Snapshot(compression compress.Type) ([]byte, error) {
	codec, err := compress.ForType(compression)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(tr.distances)*8)
	for _, v := range tr.distances {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(v))
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress trace payload: %w", err)
	}

	out := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(compressed))
	copy(out[0:4], snapshotMagic[:])
	out[4] = snapshotVersion
	out[5] = byte(compression)
	binary.LittleEndian.PutUint64(out[8:16], uint64(len(tr.distances)))

	return append(out, compressed...), nil
}

// FromSnapshot reconstructs a trace from data produced by Snapshot.
// The compression type is read from the header.
func FromSnapshot(data []byte) (*Trace, error) {
	if len(data) < snapshotHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrBadSnapshot, len(data))
	}
	if [4]byte(data[0:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}
	if data[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, data[4])
	}

	compression := compress.Type(data[5])
	codec, err := compress.ForType(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	count := binary.LittleEndian.Uint64(data[8:16])
	if count > uint64(math.MaxInt)/8 {
		return nil, fmt.Errorf("%w: header promises %d entries", ErrBadSnapshot, count)
	}

	payload, err := codec.Decompress(data[snapshotHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if uint64(len(payload)) != count*8 {
		return nil, fmt.Errorf("%w: payload holds %d bytes, header promises %d entries", ErrBadSnapshot, len(payload), count)
	}

	tr := New(int(count))
	for i := uint64(0); i < count; i++ {
		bits := binary.LittleEndian.Uint64(payload[i*8 : i*8+8])
		tr.Append(math.Float64frombits(bits))
	}

	return tr, nil
}
