package tail

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamieabc/stream-monitor/fault"
)

// Source - interface for an append-only record source
type Source interface {
	Reader
	io.Closer
}

// Reader - interface for reading next complete record
// ok is false when no complete record is available yet
type Reader interface {
	ReadLine() (line string, ok bool, err error)
}

// Opener - open source by path, positioned at its end
type Opener func(string) (Source, error)

type file struct {
	f       *os.File
	reader  *bufio.Reader
	partial strings.Builder
}

// Open - open file and seek to its end, only records appended afterwards
// are read
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("open %s: %w: %s", path, fault.ErrSourceUnavailable, err)
	}

	if _, err := f.Seek(0, io.SeekEnd); nil != err {
		f.Close()
		return nil, fmt.Errorf("seek %s: %w: %s", path, fault.ErrSourceUnavailable, err)
	}

	return &file{
		f:      f,
		reader: bufio.NewReader(f),
	}, nil
}

// ReadLine - read next newline terminated record, without line ending
func (t *file) ReadLine() (string, bool, error) {
	chunk, err := t.reader.ReadString('\n')
	t.partial.WriteString(chunk)

	if io.EOF == err {
		return "", false, nil
	}
	if nil != err {
		return "", false, err
	}

	line := strings.TrimRight(t.partial.String(), "\r\n")
	t.partial.Reset()

	return line, true, nil
}

// Close - close file
func (t *file) Close() error {
	return t.f.Close()
}
