package compress

// NoopCodec passes payloads through untouched. Useful as a baseline
// and for short traces where compression overhead is not worth it.
//
// Both methods return the input slice without copying, so callers must
// not mutate the input while the returned slice is in use.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// Compress returns data as-is.
func (NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
