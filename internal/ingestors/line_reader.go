package ingestors

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

const readBufferSize = 64 * 1024

// lineReader splits a log into lines like bufio.ScanLines, except that a line longer than
// maxLineBytes is read to its end and reported as oversized instead of failing the read.
type lineReader struct {
	reader       *bufio.Reader
	buf          []byte
	maxLineBytes int
	eof          bool
}

func newLineReader(r io.Reader, maxLineBytes int) *lineReader {
	return &lineReader{
		reader:       bufio.NewReaderSize(r, min(readBufferSize, maxLineBytes)),
		maxLineBytes: maxLineBytes,
	}
}

// next returns the next line without its "\n" or "\r\n" terminator.
// The returned slice is only valid until the following call.
// io.EOF is returned once the input is exhausted; a final line without terminator is still returned.
func (lr *lineReader) next() (line []byte, oversized bool, err error) {
	if lr.eof {
		return nil, false, io.EOF
	}

	lr.buf = lr.buf[:0]
	for {
		chunk, readErr := lr.reader.ReadSlice('\n')
		if !oversized {
			lr.buf = append(lr.buf, chunk...)
			// room for the "\r\n" terminator
			if len(lr.buf) > lr.maxLineBytes+2 {
				oversized = true
				lr.buf = lr.buf[:0]
			}
		}

		switch {
		case readErr == nil:
			return lr.finish(oversized)
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			lr.eof = true
			if len(lr.buf) == 0 && !oversized {
				return nil, false, io.EOF
			}
			return lr.finish(oversized)
		default:
			return nil, false, readErr
		}
	}
}

func (lr *lineReader) finish(oversized bool) ([]byte, bool, error) {
	if oversized {
		return nil, true, nil
	}
	line := bytes.TrimSuffix(lr.buf, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) > lr.maxLineBytes {
		return nil, true, nil
	}
	return line, false, nil
}
