// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sample = []string{
	"Amélie,2001,[French],7.4",
	"City of God,2002,[Portuguese],8.6",
	"Parasite,2019,[Korean],8.5",
}

/*
TestInYear covers matches, order, and the no-data notice.
*/
func TestInYear(t *testing.T) {
	catalog := mustBuild(t,
		"A,2001,[English],6.0",
		"B,2002,[English],7.0",
		"C,2001,[French],8.0",
	)

	tests := []struct {
		name   string
		year   int
		want   []string
		notice string
	}{
		{"two_matches_in_catalog_order", 2001, []string{"C", "A"}, ""},
		{"single_match", 2002, []string{"B"}, ""},
		{"no_match", 1999, []string{}, "No data about movies released in the year 1999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := catalog.InYear(tt.year)
			assert.Equal(t, tt.want, titles(res.Movies))
			assert.Equal(t, tt.notice, res.Notice)
		})
	}
}

/*
TestHighestRatedPerYear_OnePerYear picks the maximum rating for each year.
*/
func TestHighestRatedPerYear_OnePerYear(t *testing.T) {
	// Catalog order: F, E, D, C, B, A
	catalog := mustBuild(t,
		"A,2001,[English],6.0",
		"B,2002,[English],9.0",
		"C,2001,[English],8.5",
		"D,2003,[English],5.0",
		"E,2002,[English],7.0",
		"F,2001,[English],7.0",
	)

	res := catalog.HighestRatedPerYear()

	// Years in order of first appearance: 2001 (F), 2002 (E), 2003 (D).
	assert.Equal(t, []string{"C", "B", "D"}, titles(res.Movies))
	assert.Empty(t, res.Notice)
}

/*
TestHighestRatedPerYear_TieKeepsEarliest applies the first-in-catalog tie-break.
*/
func TestHighestRatedPerYear_TieKeepsEarliest(t *testing.T) {
	// Catalog order: Third, Second, First
	catalog := mustBuild(t,
		"First,2010,[English],8.0",
		"Second,2010,[English],8.0",
		"Third,2010,[English],7.0",
	)

	res := catalog.HighestRatedPerYear()
	assert.Equal(t, []string{"Second"}, titles(res.Movies))
}

/*
TestHighestRatedPerYear_Empty returns nothing for an empty catalog.
*/
func TestHighestRatedPerYear_Empty(t *testing.T) {
	res := mustBuild(t).HighestRatedPerYear()

	assert.Empty(t, res.Movies)
	assert.Empty(t, res.Notice)
}

/*
TestInLanguage covers exact matching and the no-data notice.
*/
func TestInLanguage(t *testing.T) {
	catalog := mustBuild(t,
		"A,2001,[English;French],6.0",
		"B,2002,[French;French],7.0",
		"C,2003,[german],8.0",
	)

	tests := []struct {
		name     string
		language string
		want     []string
		notice   string
	}{
		{"duplicate_token_emitted_once", "French", []string{"B", "A"}, ""},
		{"single_match", "English", []string{"A"}, ""},
		{"case_sensitive", "German", []string{}, "No data about movies released in German"},
		{"no_partial_match", "Fren", []string{}, "No data about movies released in Fren"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := catalog.InLanguage(tt.language)
			assert.Equal(t, tt.want, titles(res.Movies))
			assert.Equal(t, tt.notice, res.Notice)
		})
	}
}

/*
TestQueries_EndToEnd runs every query over the reference sample.
*/
func TestQueries_EndToEnd(t *testing.T) {
	catalog := mustBuild(t, sample...)

	assert.Equal(t, []string{"Amélie"}, titles(catalog.InYear(2001).Movies))
	assert.Equal(t, []string{"Parasite", "City of God", "Amélie"}, titles(catalog.HighestRatedPerYear().Movies))
	assert.Equal(t, []string{"Amélie"}, titles(catalog.InLanguage("French").Movies))
}

/*
TestQueries_DoNotMutateCatalog ensures queries are read-only.
*/
func TestQueries_DoNotMutateCatalog(t *testing.T) {
	catalog := mustBuild(t, sample...)

	catalog.HighestRatedPerYear()
	catalog.InYear(2002)
	catalog.InLanguage("Korean")

	assert.Equal(t, 3, catalog.Len())
	first := catalog.HighestRatedPerYear()
	second := catalog.HighestRatedPerYear()
	assert.Equal(t, titles(first.Movies), titles(second.Movies))
}
