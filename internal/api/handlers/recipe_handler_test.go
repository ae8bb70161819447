package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []uint
	}{
		{name: "empty input", raw: "", want: nil},
		{name: "single id", raw: "7", want: []uint{7}},
		{name: "multiple ids", raw: "1,2,3", want: []uint{1, 2, 3}},
		{name: "whitespace around entries", raw: " 4 , 5 ", want: []uint{4, 5}},
		{name: "non-numeric entries dropped", raw: "1,abc,3", want: []uint{1, 3}},
		{name: "zero dropped", raw: "0,2", want: []uint{2}},
		{name: "negative dropped", raw: "-1,2", want: []uint{2}},
		{name: "all invalid", raw: "x,y,z", want: nil},
		{name: "trailing comma", raw: "8,", want: []uint{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIDList(tt.raw))
		})
	}
}

func TestFilterParamsCoverEveryKind(t *testing.T) {
	seen := make(map[string]bool, len(filterParams))
	for param := range filterParams {
		seen[param] = true
	}

	for _, param := range []string{
		"categories", "cuisines", "seasons", "dietary_restrictions",
		"cooking_methods", "main_ingredients", "difficulty_levels", "occasions",
	} {
		assert.True(t, seen[param], "missing filter param %s", param)
	}
	assert.Len(t, filterParams, 8)
}
