package compress

import "github.com/valyala/gozstd"

// zstdLevel balances ratio against export latency; level 3 is plenty for
// line-oriented JSON.
const zstdLevel = 3

// ZstdCodec provides Zstandard compression, the archival default: session
// records are textual and repetitive, so zstd typically shrinks them by an
// order of magnitude.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with the default level.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses the input data using Zstandard.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses the input data using Zstandard.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
