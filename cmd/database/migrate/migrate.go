package migration

import (
	"Recipehub-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.Category{},
		&entities.Cuisine{},
		&entities.Season{},
		&entities.DietaryRestriction{},
		&entities.CookingMethod{},
		&entities.MainIngredient{},
		&entities.DifficultyLevel{},
		&entities.Occasion{},
	); err != nil {
		log.Fatalf("Error migrating reference tables: %v", err)
		return err
	}

	if err := db.AutoMigrate(
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeRating{},
		&entities.RecipeFavorite{},
		&entities.RecipeCategory{},
		&entities.RecipeCuisine{},
		&entities.RecipeSeason{},
		&entities.RecipeDietaryRestriction{},
		&entities.RecipeCookingMethod{},
		&entities.RecipeMainIngredient{},
		&entities.RecipeDifficultyLevel{},
		&entities.RecipeOccasion{},
		&entities.UserDietaryRestriction{},
		&entities.PantryItem{},
		&entities.ShoppingListItem{},
	); err != nil {
		log.Fatalf("Error migrating recipe tables: %v", err)
		return err
	}

	if err := seedTaxonomies(db); err != nil {
		log.Fatalf("Error seeding taxonomy tables: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedTaxonomies fills the reference tables with their default rows.
// Rows are upserted by name so re-running the migration is safe.
func seedTaxonomies(db *gorm.DB) error {
	seed := func(rows any) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(rows).Error
	}

	if err := seed(&[]entities.Category{
		{Name: "appetizer"}, {Name: "main course"}, {Name: "side dish"},
		{Name: "dessert"}, {Name: "snack"}, {Name: "breakfast"},
		{Name: "soup"}, {Name: "salad"}, {Name: "beverage"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.Cuisine{
		{Name: "italian"}, {Name: "french"}, {Name: "mexican"},
		{Name: "chinese"}, {Name: "japanese"}, {Name: "indian"},
		{Name: "thai"}, {Name: "mediterranean"}, {Name: "american"},
		{Name: "middle eastern"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.Season{
		{Name: "spring"}, {Name: "summer"}, {Name: "autumn"}, {Name: "winter"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.DietaryRestriction{
		{Name: "vegetarian"}, {Name: "vegan"}, {Name: "gluten-free"},
		{Name: "dairy-free"}, {Name: "nut-free"}, {Name: "halal"},
		{Name: "kosher"}, {Name: "low-carb"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.CookingMethod{
		{Name: "baking"}, {Name: "grilling"}, {Name: "frying"},
		{Name: "steaming"}, {Name: "boiling"}, {Name: "roasting"},
		{Name: "slow cooking"}, {Name: "no-cook"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.MainIngredient{
		{Name: "chicken"}, {Name: "beef"}, {Name: "pork"},
		{Name: "fish"}, {Name: "seafood"}, {Name: "eggs"},
		{Name: "tofu"}, {Name: "legumes"}, {Name: "vegetables"},
		{Name: "pasta"}, {Name: "rice"},
	}); err != nil {
		return err
	}

	if err := seed(&[]entities.DifficultyLevel{
		{Name: "beginner", SortRank: 1},
		{Name: "easy", SortRank: 2},
		{Name: "intermediate", SortRank: 3},
		{Name: "advanced", SortRank: 4},
		{Name: "expert", SortRank: 5},
	}); err != nil {
		return err
	}

	return seed(&[]entities.Occasion{
		{Name: "weeknight dinner"}, {Name: "holiday"}, {Name: "birthday"},
		{Name: "picnic"}, {Name: "barbecue"}, {Name: "brunch"},
		{Name: "party"},
	})
}
