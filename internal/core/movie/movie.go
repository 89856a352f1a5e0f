// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/taibuivan/movies/pkg/list"
)

// Movie is one parsed entry of the source file.
//
// A Movie is immutable: its fields are only set by [New] and read through accessors.
type Movie struct {
	title     string
	year      int
	languages *list.List[string]
	rating    float32
}

// New builds a Movie. languages may be nil for a movie without languages.
func New(title string, year int, languages *list.List[string], rating float32) Movie {
	return Movie{
		title:     title,
		year:      year,
		languages: languages,
		rating:    rating,
	}
}

func (m Movie) Title() string   { return m.title }
func (m Movie) Year() int       { return m.year }
func (m Movie) Rating() float32 { return m.rating }

// Languages returns the language tokens, in reverse of their source order.
func (m Movie) Languages() iter.Seq[string] { return m.languages.All() }

// String renders the movie as "<year> <rating> <title>".
//
// The rating uses the shortest representation that round-trips a float32,
// so 7.4 prints as "7.4" and 8.0 as "8".
func (m Movie) String() string {
	return fmt.Sprintf("%d %s %s", m.year, strconv.FormatFloat(float64(m.rating), 'f', -1, 32), m.title)
}
