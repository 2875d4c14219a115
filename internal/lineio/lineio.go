// Package lineio reads and writes newline-delimited values, transparently
// handling zstd-compressed streams.
package lineio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// NewReader returns a reader over r that decompresses r if it starts with
// a zstd frame and passes it through unchanged otherwise.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("lineio: peek input: %w", err)
	}
	if !bytes.Equal(head, zstdMagic) {
		return io.NopCloser(br), nil
	}
	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("lineio: init zstd decoder: %w", err)
	}
	return dec.IOReadCloser(), nil
}

// Open opens path for reading, or returns stdin when path is "" or "-".
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return NewReader(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &readCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// Create opens path for writing, or returns stdout when path is "" or
// "-". Paths ending in ".zst" are zstd-compressed.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lineio: init zstd encoder: %w", err)
	}
	return &writeCloser{Writer: enc, closers: []io.Closer{enc, f}}, nil
}

// MaxLineLen caps the bytes Each keeps of one line.
const MaxLineLen = 1 << 20

// ErrLineTooLong is passed to Each's callback for a line over MaxLineLen.
var ErrLineTooLong = fmt.Errorf("lineio: line longer than %d bytes", MaxLineLen)

// Each calls fn for every non-blank line of r with surrounding whitespace
// removed. lineNo counts from 1 and includes blank lines. A line longer
// than MaxLineLen is consumed whole and reported as its first MaxLineLen
// bytes with ErrLineTooLong, so the caller can skip it and go on.
// Iteration stops at the first error fn returns.
func Each(r io.Reader, fn func(lineNo int, line string, err error) error) error {
	br := bufio.NewReader(r)
	n := 0
	for {
		raw, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if len(raw) == 0 && err != nil {
			return nil
		}
		n++
		var ferr error
		if tooLong {
			ferr = fn(n, string(raw), ErrLineTooLong)
		} else if line := strings.TrimSpace(string(raw)); line != "" {
			ferr = fn(n, line, nil)
		}
		if ferr != nil {
			return ferr
		}
		if err != nil {
			return nil
		}
	}
}

// readLine reads through the next '\n', keeping at most MaxLineLen bytes.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLen {
				line, tooLong = line[:MaxLineLen], true
			}
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, tooLong, err
		}
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (wc *writeCloser) Close() error {
	var errs []error
	for _, c := range wc.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
