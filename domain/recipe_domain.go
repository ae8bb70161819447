package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessRateRecipe      = "recipe rated successfully"
	MessageSuccessToggleFavorite  = "favorite updated successfully"
	MessageSuccessGetFavorites    = "success get favorite recipes"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedRateRecipe      = "failed to rate recipe"
	MessageFailedToggleFavorite  = "failed to update favorite"
	MessageFailedGetFavorites    = "failed to get favorite recipes"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidPagination = errors.New("page and limit must be positive")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyIngredients  = errors.New("recipe must have at least one ingredient")
	ErrMissingFields     = errors.New("title, instructions and ingredients are required")
)

type (
	RecipeIngredientInput struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gte=0"`
		Unit     string  `json:"unit" validate:"required"`
		Notes    string  `json:"notes,omitempty"`
	}

	SaveRecipeRequest struct {
		Title           string                  `json:"title" validate:"required"`
		Description     string                  `json:"description"`
		Instructions    string                  `json:"instructions" validate:"required"`
		PrepTimeMinutes int                     `json:"prep_time_minutes" validate:"gte=0"`
		CookTimeMinutes int                     `json:"cook_time_minutes" validate:"gte=0"`
		Servings        int                     `json:"servings" validate:"gte=0"`
		ImageURL        string                  `json:"image_url"`
		VideoURL        string                  `json:"video_url"`
		Ingredients     []RecipeIngredientInput `json:"ingredients" validate:"required,min=1,dive"`

		Categories          []uint `json:"categories"`
		Cuisines            []uint `json:"cuisines"`
		Seasons             []uint `json:"seasons"`
		DietaryRestrictions []uint `json:"dietary_restrictions"`
		CookingMethods      []uint `json:"cooking_methods"`
		MainIngredients     []uint `json:"main_ingredients"`
		DifficultyLevels    []uint `json:"difficulty_levels"`
		Occasions           []uint `json:"occasions"`
	}

	CreateRecipeResponse struct {
		RecipeID string `json:"recipe_id"`
		Title    string `json:"title"`
		Owner    string `json:"owner"`
	}

	RecipeSummary struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		ImageURL        string    `json:"image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		Owner           string    `json:"owner"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeListResponse struct {
		Recipes     []RecipeSummary `json:"recipes"`
		CurrentPage int             `json:"currentPage"`
		PerPage     int             `json:"perPage"`
		TotalItems  int64           `json:"totalItems"`
		TotalPages  int64           `json:"totalPages"`
		HasMore     bool            `json:"hasMore"`
	}

	RecipeIngredientView struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Notes    string  `json:"notes,omitempty"`
	}

	RecipeDetail struct {
		RecipeSummary
		Instructions  string                 `json:"instructions"`
		VideoURL      string                 `json:"video_url,omitempty"`
		Ingredients   []RecipeIngredientView `json:"ingredients"`
		Taxonomies    map[string][]uint      `json:"taxonomies"`
		AverageRating float64                `json:"average_rating"`
		RatingCount   int64                  `json:"rating_count"`
		UserRating    int                    `json:"user_rating"`
		IsFavorited   bool                   `json:"is_favorited"`
	}

	RateRecipeRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}

	RateRecipeResponse struct {
		Rating  int  `json:"rating"`
		Created bool `json:"created"`
	}

	ToggleFavoriteResponse struct {
		Favorited bool `json:"favorited"`
	}

	UploadRecipeImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
