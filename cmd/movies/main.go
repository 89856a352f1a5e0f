// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command movies loads a movies file and answers queries about it interactively.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize structured logger (stderr) tagged with a session id.
//  3. Open the source file.
//  4. Build the catalog (fatal on any malformed row).
//  5. Run the interactive menu until the user exits.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/movies/internal/core/movie"
	"github.com/taibuivan/movies/internal/menu"
	"github.com/taibuivan/movies/internal/platform/apperr"
	"github.com/taibuivan/movies/internal/platform/config"
	"github.com/taibuivan/movies/internal/platform/constants"
	"github.com/taibuivan/movies/internal/platform/ctxutil"
	"github.com/taibuivan/movies/internal/platform/logging"
	"github.com/taibuivan/movies/internal/source"
	"github.com/taibuivan/movies/pkg/uuidv7"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		reportFatal(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command over the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "movies [file]",
		Short:   "Query a movies file interactively",
		Version: constants.AppVersion,
		Long: `movies reads a comma-separated movies file (title,year,languages,rating),
keeps every row in memory, and answers three queries from a menu:

  1. movies released in a given year
  2. the highest rated movie of each year
  3. movies available in a given language

The file may be given as an argument or through MOVIES_FILE.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, stdin, stdout, stderr)
		},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	sessionID := uuidv7.New()
	log := logging.New(stderr, cfg).With(slog.String("session", sessionID))
	ctx = ctxutil.WithLogger(ctxutil.WithSessionID(ctx, sessionID), log)

	// ── 3. Source ─────────────────────────────────────────────────────────
	path := cfg.MoviesFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return apperr.Usage(constants.MissingFile)
	}

	src, err := source.Open(path)
	if err != nil {
		log.Error("startup failure", slog.String("context", "open source"), slog.Any("error", err))
		return err
	}
	defer src.Close()

	// ── 4. Catalog ────────────────────────────────────────────────────────
	catalog, err := movie.Build(src.Lines())
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		log.Error("startup failure", slog.String("context", "build catalog"), slog.Any("error", err))
		return err
	}

	log.Info("catalog_built", slog.String("file", src.Name()), slog.Int("movies", catalog.Len()))
	fmt.Fprintf(stdout, "\n"+constants.Processed+"\n", src.Name(), catalog.Len())

	// ── 5. Menu ───────────────────────────────────────────────────────────
	if err := menu.New(catalog, stdin, stdout).Run(ctx); err != nil {
		log.Error("session aborted", slog.Any("error", err))
		return err
	}

	fmt.Fprintln(stdout, constants.Exiting)
	return nil
}

// reportFatal prints an error for the user before the process exits.
func reportFatal(w io.Writer, err error) {
	ae := apperr.As(err)
	if ae != nil && ae.Code == apperr.CodeUsage {
		fmt.Fprintln(w, ae.Message)
		fmt.Fprintln(w, constants.UsageHint)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
