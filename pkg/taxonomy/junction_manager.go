package taxonomy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// JunctionManager associates a recipe with zero or more entries of a
	// single taxonomy kind. Methods take the *gorm.DB explicitly so the
	// write operations can run inside the caller's transaction.
	JunctionManager interface {
		ReplaceLinks(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind, ids []uint) error
		AddLinks(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind, ids []uint) error
		FetchLinkedIDs(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind) ([]uint, error)
	}

	junctionManager struct{}
)

func NewJunctionManager() JunctionManager {
	return junctionManager{}
}

func (junctionManager) ReplaceLinks(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind, ids []uint) error {
	deleteStmt := fmt.Sprintf("DELETE FROM %s WHERE recipe_id = ?", kind.JoinTable())
	if err := db.WithContext(ctx).Exec(deleteStmt, recipeID).Error; err != nil {
		return err
	}
	return junctionManager{}.AddLinks(ctx, db, recipeID, kind, ids)
}

func (junctionManager) AddLinks(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind, ids []uint) error {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]interface{}{
			"recipe_id":       recipeID,
			kind.ForeignKey(): id,
		})
	}
	return db.WithContext(ctx).Table(kind.JoinTable()).Create(rows).Error
}

func (junctionManager) FetchLinkedIDs(ctx context.Context, db *gorm.DB, recipeID uuid.UUID, kind Kind) ([]uint, error) {
	ids := make([]uint, 0)
	if err := db.WithContext(ctx).
		Table(kind.JoinTable()).
		Where("recipe_id = ?", recipeID).
		Pluck(kind.ForeignKey(), &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// dedupeIDs keeps the insert phase idempotent with respect to duplicate
// ids in the input; a repeated id would otherwise hit the composite
// primary key.
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
