// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package source reads the rows of a movies file.
//
// # Format
//
// The first line is a header and is discarded. Every following non-empty line
// is a data row. Input passes through a BOM-aware decoder: a UTF-8 byte order
// mark is dropped and UTF-16 files that start with a BOM are transcoded to UTF-8.
package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/taibuivan/movies/internal/platform/apperr"
)

// maxLineSize bounds a single row.
const maxLineSize = 1 << 20

// Reader yields data rows from an [io.Reader].
//
// A Reader is single-use: the underlying stream is consumed by the first
// traversal of [Reader.Lines].
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps r with the BOM-aware decoder.
func NewReader(r io.Reader) *Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &Reader{r: transform.NewReader(r, decoder)}
}

// Lines yields (line number, text) for every non-empty line after the header.
// Line numbers are 1-based and count the header. Line endings, including CRLF,
// are stripped.
//
// After the loop ends, [Reader.Err] reports whether the stream failed.
func (r *Reader) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		scanner := bufio.NewScanner(r.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		number := 0
		for scanner.Scan() {
			number++
			if number == 1 || scanner.Text() == "" {
				continue
			}
			if !yield(number, scanner.Text()) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.err = apperr.IO(fmt.Sprintf("Failed to read line %d", number+1), err)
		}
	}
}

// Err returns the first read error, or nil.
func (r *Reader) Err() error {
	return r.err
}

// File is a [Reader] over an opened file.
type File struct {
	*Reader
	name string
	f    *os.File
}

// Open opens the file at path. A missing or unreadable file yields an IO_ERROR.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("Failed to open file %q", path), err)
	}

	return &File{
		Reader: NewReader(f),
		name:   path,
		f:      f,
	}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
