package stream

import "errors"

// ErrEndOfInput is returned by Peek, Read, or Skip when the underlying
// ChunkSource is exhausted before the requested number of bytes could be
// produced. Callers map this to a parse failure.
var ErrEndOfInput = errors.New("stream: unexpected end of input")

// PullStream is a forward-only byte cursor over a ChunkSource. It offers
// peek(n), read(n), and skip(n), backed by a rolling buffer that holds the
// bytes between the cursor and the most recently fetched chunk. There is no
// rewind: once bytes are consumed they are gone.
type PullStream struct {
	src       ChunkSource
	buf       []byte // bytes from the cursor forward; consumed prefix already dropped
	pos       int64  // absolute bytes consumed since construction
	exhausted bool   // the ChunkSource has signalled end-of-input
}

// NewPullStream returns a PullStream drawing chunks from src.
func NewPullStream(src ChunkSource) *PullStream {
	return &PullStream{src: src}
}

// Position returns the absolute byte offset of the cursor.
func (p *PullStream) Position() int64 {
	return p.pos
}

// Peek returns the next n bytes without advancing the cursor, fetching
// chunks as needed. It fails with ErrEndOfInput if the source ends before n
// bytes become available.
func (p *PullStream) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("stream: negative peek length")
	}
	if err := p.fill(n); err != nil {
		return nil, err
	}
	return p.buf[:n:n], nil
}

// Read returns the next n bytes and advances the cursor by n.
func (p *PullStream) Read(n int) ([]byte, error) {
	b, err := p.Peek(n)
	if err != nil {
		return nil, err
	}
	p.buf = p.buf[n:]
	p.pos += int64(n)
	return b, nil
}

// Skip advances the cursor by n bytes, discarding whole chunks from the
// ChunkSource without concatenating them onto the buffer. Only the fragment
// straddling the skip target is retained.
func (p *PullStream) Skip(n int64) error {
	if n < 0 {
		return errors.New("stream: negative skip length")
	}

	if n <= int64(len(p.buf)) {
		p.buf = p.buf[n:]
		p.pos += n
		return nil
	}

	remaining := n - int64(len(p.buf))
	p.pos += int64(len(p.buf))
	p.buf = p.buf[:0]

	for remaining > 0 {
		chunk, err := p.next()
		if err != nil {
			return err
		}

		if int64(len(chunk)) <= remaining {
			remaining -= int64(len(chunk))
			p.pos += int64(len(chunk))
			continue
		}

		// This chunk straddles the skip target: keep the tail.
		p.buf = append(p.buf, chunk[remaining:]...)
		p.pos += remaining
		remaining = 0
	}

	return nil
}

// fill grows buf until it holds at least n bytes, pulling whole chunks from
// the ChunkSource and discarding nothing (peek/read never drop data early).
func (p *PullStream) fill(n int) error {
	for len(p.buf) < n {
		chunk, err := p.next()
		if err != nil {
			return err
		}
		p.buf = append(p.buf, chunk...)
	}
	return nil
}

// next pulls one non-empty chunk from the source, or returns ErrEndOfInput.
func (p *PullStream) next() ([]byte, error) {
	if p.exhausted {
		return nil, ErrEndOfInput
	}
	chunk, err := p.src.Next()
	if err != nil {
		return nil, err
	}
	if len(chunk) == 0 {
		p.exhausted = true
		return nil, ErrEndOfInput
	}
	return chunk, nil
}
