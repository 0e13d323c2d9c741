package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	isbnerrors "isbnsplit/internal/isbn/errors"
)

// LineReader reads single lines of at most max bytes, excluding the newline.
type LineReader struct {
	r   *bufio.Reader
	max int
}

func NewLineReader(r io.Reader, maxLength int) *LineReader {
	return &LineReader{
		r:   bufio.NewReader(r),
		max: maxLength,
	}
}

// ReadLine returns the next line with its newline removed. An overlong line
// is consumed up to and including its newline and reported as
// isbnerrors.ErrInputTooLong. A final line without a newline is returned
// as is. Hitting end of input before any byte is read, or any other read
// error, yields isbnerrors.ErrReadFailed.
func (lr *LineReader) ReadLine() (string, error) {
	var line []byte
	read := 0
	tooLong := false

	for {
		chunk, err := lr.r.ReadSlice('\n')
		read += len(chunk)

		if !tooLong {
			line = append(line, chunk...)
			if contentLength(line) > lr.max {
				tooLong = true
				line = nil
			}
		}

		switch {
		case err == nil:
			return lr.finish(line, tooLong)
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return "", fmt.Errorf("%w: %w", isbnerrors.ErrReadFailed, io.EOF)
			}
			return lr.finish(line, tooLong)
		default:
			return "", fmt.Errorf("%w: %w", isbnerrors.ErrReadFailed, err)
		}
	}
}

func (lr *LineReader) finish(line []byte, tooLong bool) (string, error) {
	if tooLong {
		return "", fmt.Errorf("%w: more than %d characters", isbnerrors.ErrInputTooLong, lr.max)
	}
	return string(line[:contentLength(line)]), nil
}

func contentLength(line []byte) int {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return n - 1
	}
	return len(line)
}
