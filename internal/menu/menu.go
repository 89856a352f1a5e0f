// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package menu runs the interactive loop over a built catalog.
//
// # Contract
//
// The menu owns all terminal text. It turns raw user input into query
// parameters, calls the catalog, and renders the [movie.Result]. Bad input to a
// query is reported and the loop continues; only end of input or the exit option
// stop it.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/movies/internal/core/movie"
	"github.com/taibuivan/movies/internal/platform/apperr"
	"github.com/taibuivan/movies/internal/platform/constants"
	"github.com/taibuivan/movies/internal/platform/ctxutil"
	"github.com/taibuivan/movies/internal/platform/validate"
)

// Menu options.
const (
	optionInYear = iota + 1
	optionHighestRated
	optionInLanguage
	optionExit
)

// Menu reads choices from in and writes results to out.
type Menu struct {
	catalog *movie.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

// New returns a menu over catalog.
func New(catalog *movie.Catalog, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user exits or input ends.
//
// It only returns an error when reading the input fails.
func (m *Menu) Run(ctx context.Context) error {
	log := ctxutil.GetLogger(ctx)

	for {
		fmt.Fprint(m.out, constants.MenuText)
		fmt.Fprint(m.out, constants.ChoicePrompt)

		raw, ok := m.readLine()
		if !ok {
			return m.inputErr()
		}

		var choice int
		v := &validate.Validator{}
		if err := v.Integer("choice", raw, &choice).Range("choice", choice, optionInYear, optionExit).Err(); err != nil {
			log.Debug("invalid_choice", slog.String("input", raw))
			fmt.Fprintln(m.out, constants.InvalidChoice)
			continue
		}

		var res movie.Result
		switch choice {
		case optionInYear:
			fmt.Fprint(m.out, constants.YearPrompt)
			raw, ok := m.readLine()
			if !ok {
				return m.inputErr()
			}
			var year int
			if err := (&validate.Validator{}).Integer("year", raw, &year).Err(); err != nil {
				log.Warn("invalid_query_input", slog.String("query", "in_year"), slog.Any("error", err))
				fmt.Fprintln(m.out, constants.InvalidInput)
				continue
			}
			res = m.catalog.InYear(year)

		case optionHighestRated:
			res = m.catalog.HighestRatedPerYear()

		case optionInLanguage:
			fmt.Fprint(m.out, constants.LanguagePrompt)
			raw, ok := m.readLine()
			if !ok {
				return m.inputErr()
			}
			res = m.catalog.InLanguage(strings.TrimSpace(raw))

		case optionExit:
			return nil
		}

		log.Debug("query_completed", slog.Int("option", choice), slog.Int("matches", len(res.Movies)))
		m.render(res)
	}
}

// render writes every match on its own line, then the notice if there is one.
func (m *Menu) render(res movie.Result) {
	for _, mv := range res.Movies {
		fmt.Fprintln(m.out, mv.String())
	}
	if res.Notice != "" {
		fmt.Fprintln(m.out, res.Notice)
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// inputErr wraps a failed read of the input stream. End of input is not an error.
func (m *Menu) inputErr() error {
	if err := m.in.Err(); err != nil {
		return apperr.IO("Failed to read input", err)
	}
	return nil
}
