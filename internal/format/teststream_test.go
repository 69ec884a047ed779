package format

import (
	"bytes"

	"github.com/gomantics/imgsize/internal/stream"
)

// newStream wraps data in a PullStream backed by a small-chunk offset
// source, so tests exercise the same chunk-boundary behavior parsers see in
// production rather than handing them one giant in-memory buffer.
func newStream(data []byte) *stream.PullStream {
	return stream.NewPullStream(stream.NewOffsetChunkSource(bytes.NewReader(data), 8))
}
