package domain

import (
	"errors"
)

var (
	MessageSuccessGetFilters = "success get filter data"
	MessageFailedGetFilters  = "failed to get filter data"

	ErrUnknownTaxonomy = errors.New("unknown taxonomy kind")
)

type (
	TaxonomyEntry struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		SortRank int    `json:"sort_rank,omitempty"`
	}

	FilterDataResponse struct {
		Categories          []TaxonomyEntry `json:"categories"`
		Cuisines            []TaxonomyEntry `json:"cuisines"`
		Seasons             []TaxonomyEntry `json:"seasons"`
		DietaryRestrictions []TaxonomyEntry `json:"dietary_restrictions"`
		CookingMethods      []TaxonomyEntry `json:"cooking_methods"`
		MainIngredients     []TaxonomyEntry `json:"main_ingredients"`
		DifficultyLevels    []TaxonomyEntry `json:"difficulty_levels"`
		Occasions           []TaxonomyEntry `json:"occasions"`
	}
)
