package taxonomy

import (
	"Recipehub-Backend/domain"
	"context"
)

type (
	TaxonomyService interface {
		GetFilterData(ctx context.Context) (domain.FilterDataResponse, error)
	}

	taxonomyService struct {
		taxonomyRepository TaxonomyRepository
	}
)

func NewTaxonomyService(taxonomyRepository TaxonomyRepository) TaxonomyService {
	return &taxonomyService{taxonomyRepository: taxonomyRepository}
}

// GetFilterData returns all eight taxonomy lists in one payload for
// building filter UIs.
func (s *taxonomyService) GetFilterData(ctx context.Context) (domain.FilterDataResponse, error) {
	var res domain.FilterDataResponse

	targets := map[Kind]*[]domain.TaxonomyEntry{
		KindCategory:           &res.Categories,
		KindCuisine:            &res.Cuisines,
		KindSeason:             &res.Seasons,
		KindDietaryRestriction: &res.DietaryRestrictions,
		KindCookingMethod:      &res.CookingMethods,
		KindMainIngredient:     &res.MainIngredients,
		KindDifficultyLevel:    &res.DifficultyLevels,
		KindOccasion:           &res.Occasions,
	}

	for _, kind := range AllKinds() {
		entries, err := s.taxonomyRepository.ListAll(ctx, kind)
		if err != nil {
			return domain.FilterDataResponse{}, err
		}
		*targets[kind] = entries
	}

	return res, nil
}
