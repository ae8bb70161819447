package taxonomy

import (
	"Recipehub-Backend/domain"
	"context"

	"gorm.io/gorm"
)

type (
	// TaxonomyRepository reads the eight reference tables. Seeding is a
	// migration concern; the API never writes them.
	TaxonomyRepository interface {
		ListAll(ctx context.Context, kind Kind) ([]domain.TaxonomyEntry, error)
	}

	taxonomyRepository struct {
		db *gorm.DB
	}
)

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListAll(ctx context.Context, kind Kind) ([]domain.TaxonomyEntry, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownTaxonomy
	}

	entries := make([]domain.TaxonomyEntry, 0)

	query := r.db.WithContext(ctx).Table(kind.Table()).Order(kind.OrderClause())
	if kind == KindDifficultyLevel {
		query = query.Select("id, name, sort_rank")
	} else {
		query = query.Select("id, name")
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
