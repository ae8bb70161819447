package recipe

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"Recipehub-Backend/internal/utils/storage"
	"Recipehub-Backend/pkg/taxonomy"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, search string, filters map[taxonomy.Kind][]uint, page, limit int) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string, isAdmin bool) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.SaveRecipeRequest, userID string, isAdmin bool) error
		DeleteRecipe(ctx context.Context, recipeID string, userID string, isAdmin bool) error
		RateRecipe(ctx context.Context, recipeID string, userID string, value int) (domain.RateRecipeResponse, error)
		ToggleFavorite(ctx context.Context, recipeID string, userID string) (domain.ToggleFavoriteResponse, error)
		GetFavoriteRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID string, userID string, isAdmin bool, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// CanMutate is the owner-or-admin predicate gating recipe mutation.
// Creation is gated separately by the admin flag since the recipe does
// not exist yet.
func CanMutate(actorID uuid.UUID, isAdmin bool, ownerID uuid.UUID) bool {
	return isAdmin || actorID == ownerID
}

func (s *recipeService) ListRecipes(ctx context.Context, search string, filters map[taxonomy.Kind][]uint, page, limit int) (domain.RecipeListResponse, error) {
	if page < 1 || limit < 1 {
		return domain.RecipeListResponse{}, domain.ErrInvalidPagination
	}

	rows, count, err := s.recipeRepository.ListRecipes(ctx, ListRecipesParams{
		Search:  search,
		Filters: filters,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return buildListResponse(rows, count, page, limit), nil
}

func buildListResponse(rows []RecipeListRow, count int64, page, limit int) domain.RecipeListResponse {
	summaries := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.RecipeSummary{
			ID:              row.ID.String(),
			Title:           row.Title,
			Description:     row.Description,
			ImageURL:        row.ImageURL,
			PrepTimeMinutes: row.PrepTimeMinutes,
			CookTimeMinutes: row.CookTimeMinutes,
			Servings:        row.Servings,
			Owner:           row.OwnerUsername,
			CreatedAt:       row.CreatedAt,
		})
	}

	return domain.RecipeListResponse{
		Recipes:     summaries,
		CurrentPage: page,
		PerPage:     limit,
		TotalItems:  count,
		TotalPages:  (count + int64(limit) - 1) / int64(limit),
		HasMore:     int64(page)*int64(limit) < count,
	}
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	links, err := s.recipeRepository.GetTaxonomyLinks(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	taxonomies := make(map[string][]uint, len(links))
	for kind, ids := range links {
		taxonomies[kind.String()] = ids
	}

	average, ratingCount, err := s.recipeRepository.GetRatingSummary(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	userRating := 0
	isFavorited := false
	if viewerID != "" {
		viewerUUID, err := uuid.Parse(viewerID)
		if err != nil {
			return domain.RecipeDetail{}, domain.ErrParseUUID
		}
		if userRating, err = s.recipeRepository.GetUserRating(ctx, viewerUUID, id); err != nil {
			return domain.RecipeDetail{}, err
		}
		if isFavorited, err = s.recipeRepository.IsFavorited(ctx, viewerUUID, id); err != nil {
			return domain.RecipeDetail{}, err
		}
	}

	owner := ""
	if recipe.User != nil {
		owner = recipe.User.Username
	}

	return domain.RecipeDetail{
		RecipeSummary: domain.RecipeSummary{
			ID:              recipe.ID.String(),
			Title:           recipe.Title,
			Description:     recipe.Description,
			ImageURL:        recipe.ImageURL,
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			CookTimeMinutes: recipe.CookTimeMinutes,
			Servings:        recipe.Servings,
			Owner:           owner,
			CreatedAt:       recipe.CreatedAt,
		},
		Instructions:  recipe.Instructions,
		VideoURL:      recipe.VideoURL,
		Ingredients:   ingredients,
		Taxonomies:    taxonomies,
		AverageRating: average,
		RatingCount:   ratingCount,
		UserRating:    userRating,
		IsFavorited:   isFavorited,
	}, nil
}

// validateSaveRequest enforces the write invariants before any
// transaction is opened: title and instructions present, at least one
// ingredient, and each ingredient fully specified.
func validateSaveRequest(req domain.SaveRecipeRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Instructions) == "" {
		return domain.ErrMissingFields
	}
	if len(req.Ingredients) == 0 {
		return domain.ErrEmptyIngredients
	}
	for _, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Unit) == "" || ing.Quantity < 0 {
			return domain.ErrMissingFields
		}
	}
	return nil
}

func linksFromRequest(req domain.SaveRecipeRequest) map[taxonomy.Kind][]uint {
	return map[taxonomy.Kind][]uint{
		taxonomy.KindCategory:           req.Categories,
		taxonomy.KindCuisine:            req.Cuisines,
		taxonomy.KindSeason:             req.Seasons,
		taxonomy.KindDietaryRestriction: req.DietaryRestrictions,
		taxonomy.KindCookingMethod:      req.CookingMethods,
		taxonomy.KindMainIngredient:     req.MainIngredients,
		taxonomy.KindDifficultyLevel:    req.DifficultyLevels,
		taxonomy.KindOccasion:           req.Occasions,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string, isAdmin bool) (domain.CreateRecipeResponse, error) {
	if !isAdmin {
		return domain.CreateRecipeResponse{}, domain.ErrUserNotAllowed
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	if err := validateSaveRequest(req); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	recipe := entities.Recipe{
		ID:              uuid.New(),
		UserID:          ownerID,
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe, req.Ingredients, linksFromRequest(req)); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	owner := ""
	if created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID); err == nil && created.User != nil {
		owner = created.User.Username
	}

	return domain.CreateRecipeResponse{
		RecipeID: recipe.ID.String(),
		Title:    recipe.Title,
		Owner:    owner,
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.SaveRecipeRequest, userID string, isAdmin bool) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}
	actorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !CanMutate(actorID, isAdmin, recipe.UserID) {
		return domain.ErrUserNotAllowed
	}

	if err := validateSaveRequest(req); err != nil {
		return err
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Instructions = req.Instructions
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.CookTimeMinutes = req.CookTimeMinutes
	recipe.Servings = req.Servings
	recipe.ImageURL = req.ImageURL
	recipe.VideoURL = req.VideoURL
	recipe.User = nil

	return s.recipeRepository.UpdateRecipe(ctx, recipe, req.Ingredients, linksFromRequest(req))
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string, isAdmin bool) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}
	actorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !CanMutate(actorID, isAdmin, recipe.UserID) {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, userID string, value int) (domain.RateRecipeResponse, error) {
	if value < 1 || value > 5 {
		return domain.RateRecipeResponse{}, domain.ErrInvalidRating
	}

	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RateRecipeResponse{}, domain.ErrRecipeNotFound
	}
	raterID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RateRecipeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RateRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RateRecipeResponse{}, err
	}

	created, err := s.recipeRepository.SubmitRating(ctx, raterID, id, value)
	if err != nil {
		return domain.RateRecipeResponse{}, err
	}

	return domain.RateRecipeResponse{Rating: value, Created: created}, nil
}

func (s *recipeService) ToggleFavorite(ctx context.Context, recipeID string, userID string) (domain.ToggleFavoriteResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, domain.ErrRecipeNotFound
	}
	favoriterID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleFavoriteResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleFavoriteResponse{}, err
	}

	favorited, err := s.recipeRepository.ToggleFavorite(ctx, favoriterID, id)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}

	return domain.ToggleFavoriteResponse{Favorited: favorited}, nil
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	if page < 1 || limit < 1 {
		return domain.RecipeListResponse{}, domain.ErrInvalidPagination
	}

	favoriterID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeListResponse{}, domain.ErrParseUUID
	}

	rows, count, err := s.recipeRepository.GetFavoriteRecipes(ctx, favoriterID, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return buildListResponse(rows, count, page, limit), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, userID string, isAdmin bool, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, domain.ErrRecipeNotFound
	}
	actorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadRecipeImageResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadRecipeImageResponse{}, err
	}

	if !CanMutate(actorID, isAdmin, recipe.UserID) {
		return domain.UploadRecipeImageResponse{}, domain.ErrUserNotAllowed
	}

	key := fmt.Sprintf("recipes/%s/%s", recipe.ID, image.Filename)
	imageURL, err := s.s3.UploadFile(ctx, image, key)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	if err := s.recipeRepository.UpdateRecipeImage(ctx, id, imageURL); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{ImageURL: imageURL}, nil
}
