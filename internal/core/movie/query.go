// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"fmt"
	"slices"

	"github.com/taibuivan/movies/internal/platform/constants"
	"github.com/taibuivan/movies/pkg/list"
	"github.com/taibuivan/movies/pkg/seq"
)

// Result is the output of a query: the matches in catalog order, plus a notice
// when a parameterised query matched nothing.
type Result struct {
	Movies []Movie
	Notice string
}

// # Queries

// InYear returns every movie released in year.
func (c *Catalog) InYear(year int) Result {
	res := Result{
		Movies: slices.Collect(seq.Filter(c.All(), func(m Movie) bool {
			return m.year == year
		})),
	}

	if len(res.Movies) == 0 {
		res.Notice = fmt.Sprintf(constants.NoYearData, year)
	}
	return res
}

// HighestRatedPerYear returns one movie per distinct year: the highest rated one.
//
// Years are reported in the order they first appear in the catalog. On equal
// ratings the movie that comes first in the catalog wins. The cost is quadratic
// in the number of movies.
func (c *Catalog) HighestRatedPerYear() Result {
	var res Result
	seen := list.New[int]()

	position := 0
	for m := range c.All() {
		position++
		if seq.Contains(seen.All(), m.year) {
			continue
		}
		seen.Prepend(m.year)

		best := m
		for later := range seq.Skip(c.All(), position) {
			if later.year == best.year && later.rating > best.rating {
				best = later
			}
		}
		res.Movies = append(res.Movies, best)
	}

	return res
}

// InLanguage returns every movie with a language token equal to language.
// The match is exact and case-sensitive.
func (c *Catalog) InLanguage(language string) Result {
	res := Result{
		Movies: slices.Collect(seq.Filter(c.All(), func(m Movie) bool {
			return seq.Contains(m.Languages(), language)
		})),
	}

	if len(res.Movies) == 0 {
		res.Notice = fmt.Sprintf(constants.NoLanguageData, language)
	}
	return res
}
