// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seq_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/movies/pkg/seq"
)

// counting wraps values in a sequence that records how many were pulled.
func counting[T any](values []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

/*
TestContains covers membership results over a plain slice sequence.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		target string
		want   bool
	}{
		{"first", []string{"English", "French"}, "English", true},
		{"last", []string{"English", "French"}, "French", true},
		{"missing", []string{"English", "French"}, "German", false},
		{"case_sensitive", []string{"English"}, "english", false},
		{"empty", nil, "English", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seq.Contains(slices.Values(tt.values), tt.target))
		})
	}
}

/*
TestContains_ShortCircuits verifies the scan stops on the first match.
*/
func TestContains_ShortCircuits(t *testing.T) {
	pulled := 0
	found := seq.Contains(counting([]int{2001, 2002, 2003, 2004}, &pulled), 2002)

	assert.True(t, found)
	assert.Equal(t, 2, pulled)
}

/*
TestAny_NoMatchWalksEverything ensures a miss inspects every value.
*/
func TestAny_NoMatchWalksEverything(t *testing.T) {
	pulled := 0
	found := seq.Any(counting([]int{1, 3, 5}, &pulled), func(v int) bool { return v%2 == 0 })

	assert.False(t, found)
	assert.Equal(t, 3, pulled)
}

/*
TestFilter keeps order and honours early termination.
*/
func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, slices.Collect(seq.Filter(slices.Values([]int{1, 2, 3, 4, 5, 6}), even)))
	assert.Empty(t, slices.Collect(seq.Filter(slices.Values([]int{1, 3}), even)))

	pulled := 0
	for v := range seq.Filter(counting([]int{1, 2, 3, 4}, &pulled), even) {
		assert.Equal(t, 2, v)
		break
	}
	assert.Equal(t, 2, pulled)
}

/*
TestSkip drops the leading values and keeps the rest in order.
*/
func TestSkip(t *testing.T) {
	values := []int{1, 2, 3, 4}

	assert.Equal(t, []int{3, 4}, slices.Collect(seq.Skip(slices.Values(values), 2)))
	assert.Equal(t, values, slices.Collect(seq.Skip(slices.Values(values), 0)))
	assert.Empty(t, slices.Collect(seq.Skip(slices.Values(values), 10)))
}
