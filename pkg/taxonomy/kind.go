package taxonomy

// Kind identifies one of the eight recipe classification dimensions.
// Each kind maps to a reference table plus a recipe junction table; the
// replace/fetch logic is written once and parameterized by this mapping
// instead of being repeated per table.
type Kind int

const (
	KindCategory Kind = iota
	KindCuisine
	KindSeason
	KindDietaryRestriction
	KindCookingMethod
	KindMainIngredient
	KindDifficultyLevel
	KindOccasion
)

type kindInfo struct {
	name      string
	table     string
	joinTable string
	fkColumn  string
}

var kindInfos = map[Kind]kindInfo{
	KindCategory:           {"categories", "categories", "recipe_categories", "category_id"},
	KindCuisine:            {"cuisines", "cuisines", "recipe_cuisines", "cuisine_id"},
	KindSeason:             {"seasons", "seasons", "recipe_seasons", "season_id"},
	KindDietaryRestriction: {"dietary_restrictions", "dietary_restrictions", "recipe_dietary_restrictions", "dietary_restriction_id"},
	KindCookingMethod:      {"cooking_methods", "cooking_methods", "recipe_cooking_methods", "cooking_method_id"},
	KindMainIngredient:     {"main_ingredients", "main_ingredients", "recipe_main_ingredients", "main_ingredient_id"},
	KindDifficultyLevel:    {"difficulty_levels", "difficulty_levels", "recipe_difficulty_levels", "difficulty_level_id"},
	KindOccasion:           {"occasions", "occasions", "recipe_occasions", "occasion_id"},
}

// AllKinds returns the kinds in a fixed order so query composition and
// response assembly stay deterministic.
func AllKinds() []Kind {
	return []Kind{
		KindCategory,
		KindCuisine,
		KindSeason,
		KindDietaryRestriction,
		KindCookingMethod,
		KindMainIngredient,
		KindDifficultyLevel,
		KindOccasion,
	}
}

// Valid reports whether the kind is one of the eight known dimensions.
func (k Kind) Valid() bool {
	_, ok := kindInfos[k]
	return ok
}

func (k Kind) String() string {
	return kindInfos[k].name
}

// Table is the taxonomy reference table for the kind.
func (k Kind) Table() string {
	return kindInfos[k].table
}

// JoinTable is the recipe junction table for the kind.
func (k Kind) JoinTable() string {
	return kindInfos[k].joinTable
}

// ForeignKey is the taxonomy id column inside the junction table.
func (k Kind) ForeignKey() string {
	return kindInfos[k].fkColumn
}

// OrderClause is the listing order for the kind's reference table.
// Difficulty levels carry an explicit rank; everything else sorts by
// name.
func (k Kind) OrderClause() string {
	if k == KindDifficultyLevel {
		return "sort_rank asc"
	}
	return "name asc"
}
