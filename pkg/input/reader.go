package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

var (
	// ErrFileUnreadable is returned when the input path cannot be opened
	ErrFileUnreadable = errors.New("input file not found or unreadable")

	// ErrReadFailed is returned when an opened file fails mid-read
	ErrReadFailed = errors.New("input file read failed")
)

// maxLineSize bounds a single input line; graph descriptions can be long
const maxLineSize = 16 * 1024 * 1024

// File is a memory-mapped, read-only input file
type File struct {
	path   string
	reader *mmap.ReaderAt
}

// Open maps the file at path for reading
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileUnreadable, path)
	}

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}

	return &File{path: path, reader: reader}, nil
}

// Path returns the path the file was opened from
func (f *File) Path() string {
	return f.path
}

// Size returns the mapped length in bytes
func (f *File) Size() int {
	return f.reader.Len()
}

// Lines returns every line of the file with line terminators removed
func (f *File) Lines() ([]string, error) {
	section := io.NewSectionReader(f.reader, 0, int64(f.reader.Len()))
	return ScanLines(section)
}

// Close unmaps the file
func (f *File) Close() error {
	return f.reader.Close()
}

// ScanLines splits r into lines, accepting both \n and \r\n endings
func ScanLines(r io.Reader) ([]string, error) {
	scanner := NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return lines, nil
}

// NewScanner returns a line scanner sized for long graph lines. bufio.ScanLines
// already drops a trailing \r.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
