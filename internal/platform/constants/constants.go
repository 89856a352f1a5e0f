// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire CLI.

Categories:

  - Metadata: application name and version.
  - Source Format: field and sub-list delimiters of the movies file.
  - Terminal Text: menu, prompts, and the notices printed by the queries.

Using this package keeps magic strings out of the parsing and query logic.
*/
package constants

// # Metadata

const (
	AppName    = "movies"
	AppVersion = "0.1.0-dev"
)

// # Source Format

const (
	// FieldSeparator splits a row into title, year, languages, rating.
	FieldSeparator = ","

	// FieldCount is the number of fields every data row must carry.
	FieldCount = 4

	// LanguageSeparator splits the languages field into tokens.
	LanguageSeparator = ";"

	// LanguageOpen and LanguageClose optionally delimit the languages field.
	LanguageOpen  = "["
	LanguageClose = "]"
)

// # Terminal Text

const (
	MenuText = "\n1. Show movies released in specified year.\n" +
		"2. Show highest rated movie for each year.\n" +
		"3. Show the title and year of release of all movies in a specific language.\n" +
		"4. Exit program\n"

	ChoicePrompt   = "\nEnter 1 to 4: "
	YearPrompt     = "Enter the year for which you want to see movies: "
	LanguagePrompt = "Enter the language for which you want to see movies: "

	InvalidChoice = "\nInvalid Input, Try again"
	InvalidInput  = "Failed to parse input"

	// NoYearData and NoLanguageData are formatted with the requested year / language.
	NoYearData     = "No data about movies released in the year %d"
	NoLanguageData = "No data about movies released in %s"

	// Processed is formatted with the file name and the number of movies.
	Processed = "Processed File %s and parsed data for %d movies"

	MissingFile = "You must provide the name of the file to process"
	UsageHint   = "Example usage: movies movies_sample.csv"
	Exiting     = "\nExiting program..."
)
