package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		kind      Kind
		name      string
		table     string
		joinTable string
		fkColumn  string
	}{
		{KindCategory, "categories", "categories", "recipe_categories", "category_id"},
		{KindCuisine, "cuisines", "cuisines", "recipe_cuisines", "cuisine_id"},
		{KindSeason, "seasons", "seasons", "recipe_seasons", "season_id"},
		{KindDietaryRestriction, "dietary_restrictions", "dietary_restrictions", "recipe_dietary_restrictions", "dietary_restriction_id"},
		{KindCookingMethod, "cooking_methods", "cooking_methods", "recipe_cooking_methods", "cooking_method_id"},
		{KindMainIngredient, "main_ingredients", "main_ingredients", "recipe_main_ingredients", "main_ingredient_id"},
		{KindDifficultyLevel, "difficulty_levels", "difficulty_levels", "recipe_difficulty_levels", "difficulty_level_id"},
		{KindOccasion, "occasions", "occasions", "recipe_occasions", "occasion_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.table, tt.kind.Table())
			assert.Equal(t, tt.joinTable, tt.kind.JoinTable())
			assert.Equal(t, tt.fkColumn, tt.kind.ForeignKey())
		})
	}
}

func TestAllKindsCoversEveryKind(t *testing.T) {
	kinds := AllKinds()
	assert.Len(t, kinds, len(kindInfos))

	seen := make(map[Kind]bool, len(kinds))
	for _, kind := range kinds {
		assert.False(t, seen[kind], "kind %s listed twice", kind)
		seen[kind] = true
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "sort_rank asc", KindDifficultyLevel.OrderClause())
	assert.Equal(t, "name asc", KindCuisine.OrderClause())
}

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, dedupeIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs(nil))
}
