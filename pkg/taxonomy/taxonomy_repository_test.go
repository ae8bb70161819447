package taxonomy

import (
	"Recipehub-Backend/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyRepository_ListAllRejectsUnknownKind(t *testing.T) {
	repo := NewTaxonomyRepository(nil)

	_, err := repo.ListAll(context.Background(), Kind(99))
	assert.ErrorIs(t, err, domain.ErrUnknownTaxonomy)
}

func TestKindValid(t *testing.T) {
	for _, kind := range AllKinds() {
		assert.True(t, kind.Valid(), "kind %s should be valid", kind)
	}
	assert.False(t, Kind(-1).Valid())
	assert.False(t, Kind(99).Valid())
}
