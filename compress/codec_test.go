package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// tracePayload builds a payload shaped like a real snapshot body: a
// slowly decaying sequence of float64 distances.
func tracePayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	dist := 10.0
	for i := 0; i < n; i++ {
		dist *= 0.999
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(dist))
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payload := tracePayload(2048)

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, typ := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		codec, err := ForType(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestForTypeUnknown(t *testing.T) {
	_, err := ForType(Type(0x7f))
	require.Error(t, err)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "None", TypeNone.String())
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "S2", TypeS2.String())
	require.Equal(t, "LZ4", TypeLZ4.String())
	require.Equal(t, "Unknown", Type(0).String())
	require.False(t, Type(0).Valid())
	require.True(t, TypeS2.Valid())
}

func TestNoopSharesBuffer(t *testing.T) {
	payload := tracePayload(8)
	codec := NoopCodec{}

	out, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Same(t, &payload[0], &out[0], "noop must not copy")
}
