package imgsize

import "io"

// Source names where Size, Type, and Parse read an image from: a filesystem
// path, a positional reader, or a sequential-only reader. Construct one with
// FromPath, FromReaderAt, or FromReader.
type Source struct {
	path     string
	readerAt io.ReaderAt
	reader   io.Reader
}

// FromPath builds a Source that opens and closes path itself for the
// duration of one call.
func FromPath(path string) Source {
	return Source{path: path}
}

// FromReaderAt builds a Source over a caller-owned positional reader. The
// caller is responsible for closing r; if r also implements io.Seeker, it is
// rewound to position 0 on every exit path.
func FromReaderAt(r io.ReaderAt) Source {
	return Source{readerAt: r}
}

// FromReader builds a Source over a caller-owned sequential reader. The
// caller is responsible for closing r; if r also implements io.Seeker, it is
// rewound to position 0 on every exit path.
func FromReader(r io.Reader) Source {
	return Source{reader: r}
}

// rewind puts a caller-supplied, seekable source back at position 0. Sources
// opened internally from a path are closed instead, never rewound, since the
// caller never holds a reference to them.
func (s Source) rewind() {
	if seeker, ok := s.readerAt.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
		return
	}
	if seeker, ok := s.reader.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}
}
