// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/movies/internal/platform/apperr"
	"github.com/taibuivan/movies/internal/platform/constants"
	"github.com/taibuivan/movies/pkg/list"
)

// ParseLine parses one data row of the form title,year,languages,rating.
//
// The title is kept verbatim. A row with the wrong number of fields, or with a
// year or rating that is not numeric, yields a PARSE_ERROR.
func ParseLine(line string) (Movie, error) {
	fields := strings.Split(line, constants.FieldSeparator)
	if len(fields) != constants.FieldCount {
		return Movie{}, apperr.Parse(
			fmt.Sprintf("expected %d fields, got %d", constants.FieldCount, len(fields)), nil)
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return Movie{}, apperr.Parse(fmt.Sprintf("invalid year %q", fields[1]), err)
	}

	rating, err := strconv.ParseFloat(fields[3], 32)
	if err != nil {
		return Movie{}, apperr.Parse(fmt.Sprintf("invalid rating %q", fields[3]), err)
	}

	return New(fields[0], year, parseLanguages(fields[2]), float32(rating)), nil
}

// parseLanguages splits a field such as "[English;French]" into tokens.
//
// Bracket markers are stripped from any token that carries them. Tokens are
// prepended, so the list reads in reverse of the field.
func parseLanguages(field string) *list.List[string] {
	languages := list.New[string]()
	for token := range strings.SplitSeq(field, constants.LanguageSeparator) {
		token = strings.TrimLeft(token, constants.LanguageOpen)
		token = strings.TrimRight(token, constants.LanguageClose)
		languages.Prepend(token)
	}
	return languages
}
