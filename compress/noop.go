package compress

// NoopCodec bypasses compression, leaving archives as plain JSONL. Useful
// for debugging a session file with ordinary text tools.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a pass-through codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares the input's memory; callers must not mutate the
// input afterwards if they keep the result.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
