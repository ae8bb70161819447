package recipe

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"Recipehub-Backend/pkg/ingredient"
	"Recipehub-Backend/pkg/taxonomy"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		ListRecipes(ctx context.Context, params ListRecipesParams) ([]RecipeListRow, int64, error)
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]domain.RecipeIngredientView, error)
		GetTaxonomyLinks(ctx context.Context, recipeID uuid.UUID) (map[taxonomy.Kind][]uint, error)
		GetRatingSummary(ctx context.Context, recipeID uuid.UUID) (float64, int64, error)
		GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (int, error)
		SubmitRating(ctx context.Context, userID, recipeID uuid.UUID, value int) (bool, error)
		IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, limit int) ([]RecipeListRow, int64, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.RecipeIngredientInput, links map[taxonomy.Kind][]uint) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.RecipeIngredientInput, links map[taxonomy.Kind][]uint) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		UpdateRecipeImage(ctx context.Context, id uuid.UUID, imageURL string) error
	}

	recipeRepository struct {
		db          *gorm.DB
		junctions   taxonomy.JunctionManager
		ingredients ingredient.IngredientRepository
	}

	// ListRecipesParams carries the listing query: optional substring
	// search, per-kind taxonomy id lists (AND across kinds, OR within a
	// kind) and 1-based pagination.
	ListRecipesParams struct {
		Search  string
		Filters map[taxonomy.Kind][]uint
		Page    int
		Limit   int
	}

	RecipeListRow struct {
		entities.Recipe
		OwnerUsername string
	}
)

func NewRecipeRepository(db *gorm.DB, junctions taxonomy.JunctionManager, ingredients ingredient.IngredientRepository) RecipeRepository {
	return &recipeRepository{db: db, junctions: junctions, ingredients: ingredients}
}

// applyListFilters applies search and taxonomy constraints to a query.
// The count query and the page query go through the same function so
// the two can never drift apart.
func (r *recipeRepository) applyListFilters(query *gorm.DB, params ListRecipesParams) *gorm.DB {
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?", pattern, pattern)
	}

	for _, kind := range taxonomy.AllKinds() {
		ids := params.Filters[kind]
		if len(ids) == 0 {
			continue
		}
		joinTable := kind.JoinTable()
		query = query.
			Joins(fmt.Sprintf("JOIN %s ON %s.recipe_id = recipes.id", joinTable, joinTable)).
			Where(fmt.Sprintf("%s.%s IN ?", joinTable, kind.ForeignKey()), ids)
	}

	return query
}

func (r *recipeRepository) ListRecipes(ctx context.Context, params ListRecipesParams) ([]RecipeListRow, int64, error) {
	var count int64
	countQuery := r.applyListFilters(r.db.WithContext(ctx).Model(&entities.Recipe{}), params)
	if err := countQuery.Distinct("recipes.id").Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit

	var rows []RecipeListRow
	pageQuery := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select("DISTINCT recipes.*, users.username AS owner_username").
		Joins("LEFT JOIN users ON users.id = recipes.user_id")
	pageQuery = r.applyListFilters(pageQuery, params)

	if err := pageQuery.
		Order("recipes.created_at desc, recipes.id desc").
		Offset(offset).
		Limit(params.Limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]domain.RecipeIngredientView, error) {
	views := make([]domain.RecipeIngredientView, 0)
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name, recipe_ingredients.quantity, recipe_ingredients.unit, recipe_ingredients.notes").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name asc").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *recipeRepository) GetTaxonomyLinks(ctx context.Context, recipeID uuid.UUID) (map[taxonomy.Kind][]uint, error) {
	links := make(map[taxonomy.Kind][]uint, len(taxonomy.AllKinds()))
	for _, kind := range taxonomy.AllKinds() {
		ids, err := r.junctions.FetchLinkedIDs(ctx, r.db, recipeID, kind)
		if err != nil {
			return nil, err
		}
		links[kind] = ids
	}
	return links, nil
}

func (r *recipeRepository) GetRatingSummary(ctx context.Context, recipeID uuid.UUID) (float64, int64, error) {
	var summary struct {
		Average float64
		Count   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&summary).Error; err != nil {
		return 0, 0, err
	}
	return summary.Average, summary.Count, nil
}

func (r *recipeRepository) GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (int, error) {
	var rating entities.RecipeRating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rating.Value, nil
}

// SubmitRating keeps one rating per user per recipe: an existing row is
// updated in place, otherwise a new one is inserted. The returned bool
// reports whether a row was created.
func (r *recipeRepository) SubmitRating(ctx context.Context, userID, recipeID uuid.UUID, value int) (bool, error) {
	var existing entities.RecipeRating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		existing.Value = value
		return false, r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	rating := entities.RecipeRating{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
	}
	err = r.db.WithContext(ctx).Create(&rating).Error
	if err == nil {
		return true, nil
	}
	// A concurrent first rating may have taken the (user, recipe) slot;
	// the unique index decides the winner and the loser updates in place.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, r.db.WithContext(ctx).
			Model(&entities.RecipeRating{}).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Update("value", value).Error
	}
	return false, err
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeFavorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleFavorite flips the favorite row for (user, recipe) and returns
// the new state.
func (r *recipeRepository) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	favorited, err := r.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return false, err
	}

	if favorited {
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&entities.RecipeFavorite{}).Error
		return false, err
	}

	favorite := entities.RecipeFavorite{UserID: userID, RecipeID: recipeID}
	return true, r.db.WithContext(ctx).Create(&favorite).Error
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, limit int) ([]RecipeListRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var rows []RecipeListRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.*, users.username AS owner_username").
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Joins("LEFT JOIN users ON users.id = recipes.user_id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, count, nil
}

// CreateRecipe writes the recipe row, its ingredient list and all eight
// taxonomy link sets in one transaction. A bad taxonomy id fails the
// foreign key and rolls back everything.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.RecipeIngredientInput, links map[taxonomy.Kind][]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := r.insertIngredients(ctx, tx, recipe.ID, ingredients); err != nil {
			return err
		}
		for _, kind := range taxonomy.AllKinds() {
			if err := r.junctions.AddLinks(ctx, tx, recipe.ID, kind, links[kind]); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe fully replaces the mutable fields, the ingredient list
// and every link set, all inside one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.RecipeIngredientInput, links map[taxonomy.Kind][]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := r.insertIngredients(ctx, tx, recipe.ID, ingredients); err != nil {
			return err
		}
		for _, kind := range taxonomy.AllKinds() {
			if err := r.junctions.ReplaceLinks(ctx, tx, recipe.ID, kind, links[kind]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) insertIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, inputs []domain.RecipeIngredientInput) error {
	seen := make(map[uint]bool, len(inputs))
	for _, input := range inputs {
		ing, err := r.ingredients.GetOrCreate(ctx, tx, input.Name)
		if err != nil {
			return err
		}
		if seen[ing.ID] {
			continue
		}
		seen[ing.ID] = true

		row := entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ing.ID,
			Quantity:     input.Quantity,
			Unit:         input.Unit,
			Notes:        input.Notes,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteRecipe removes the recipe row; junction rows, ingredient links,
// ratings and favorites go with it through the cascade constraints.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) UpdateRecipeImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
