// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie holds the movie catalog and the queries answered over it.

Architecture:

  - Movie: an immutable record parsed from one row of the source file.
  - Catalog: every Movie of a run, stored in a prepend-only [list.List]. The
    catalog therefore reads in reverse of the file's row order.
  - Queries: read-only traversals of the catalog returning a [Result].

The catalog is built once and never mutated afterwards, so queries need no locking
as long as [Build] returns before the first query starts.
*/
package movie

import (
	"iter"

	"github.com/taibuivan/movies/internal/platform/apperr"
	"github.com/taibuivan/movies/pkg/list"
)

// Catalog is the in-memory collection of movies for one run.
type Catalog struct {
	movies *list.List[Movie]
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{movies: list.New[Movie]()}
}

// Build parses every (line number, text) pair and prepends the resulting movie.
//
// The first malformed row aborts construction: the error names the line and no
// partial catalog is returned.
func Build(lines iter.Seq2[int, string]) (*Catalog, error) {
	catalog := NewCatalog()

	var err error
	for number, line := range lines {
		var m Movie
		if m, err = ParseLine(line); err != nil {
			if ae := apperr.As(err); ae != nil {
				err = ae.AtLine(number)
			}
			break
		}
		catalog.add(m)
	}

	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func (c *Catalog) add(m Movie) {
	c.movies.Prepend(m)
}

// Len returns the number of movies.
func (c *Catalog) Len() int { return c.movies.Len() }

// All returns the movies in catalog order.
func (c *Catalog) All() iter.Seq[Movie] { return c.movies.All() }
