//go:build unix

package stream

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// File adapts an open file descriptor, typically a pipe or terminal on
// stdin, into a Source. Reads go through the raw descriptor so that
// readiness reported by Ready always refers to the same stream position
// the next Read will consume.
type File struct {
	fd int
}

// NewFile wraps f. The caller keeps ownership of the file and is
// responsible for closing it.
func NewFile(f *os.File) *File {
	return &File{fd: int(f.Fd())}
}

// Ready reports whether the descriptor has data to read or has reached
// end of stream. It uses select(2) rather than poll(2) because select
// keeps microsecond timeout resolution, which the short fragment-hold
// probe depends on.
func (f *File) Ready(timeout time.Duration) (bool, error) {
	for {
		var fds unix.FdSet
		fds.Set(f.fd)

		var tv *unix.Timeval
		if timeout >= 0 {
			t := unix.NsecToTimeval(timeout.Nanoseconds())
			tv = &t
		}

		n, err := unix.Select(f.fd+1, &fds, nil, nil, tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("select: %w", err)
		}
		return n > 0, nil
	}
}

// Read pulls at most len(p) bytes from the descriptor. A zero-length
// read means the peer closed the stream and is reported as io.EOF.
func (f *File) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}
