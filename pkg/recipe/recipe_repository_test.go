package recipe

import (
	"Recipehub-Backend/pkg/ingredient"
	"Recipehub-Backend/pkg/taxonomy"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)
	return db, mock
}

func newMockRepository(t *testing.T) (RecipeRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewRecipeRepository(db, taxonomy.NewJunctionManager(), ingredient.NewIngredientRepository()), mock
}

// Filtering on two kinds must AND the kinds together while a kind's own
// id list stays a single IN (OR within the kind), and both the count and
// the page must deduplicate by recipe id so a recipe linked to two of the
// requested categories is returned and counted once.
func TestRecipeRepository_ListRecipesFilterComposition(t *testing.T) {
	repo, mock := newMockRepository(t)
	recipeID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\(recipes\.id\)\) FROM "recipes" JOIN recipe_categories ON recipe_categories\.recipe_id = recipes\.id JOIN recipe_cuisines ON recipe_cuisines\.recipe_id = recipes\.id WHERE recipe_categories\.category_id IN \(\$1,\$2\) AND recipe_cuisines\.cuisine_id IN \(\$3\)`).
		WithArgs(1, 2, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT DISTINCT recipes\.\*, users\.username AS owner_username FROM "recipes" LEFT JOIN users ON users\.id = recipes\.user_id JOIN recipe_categories ON recipe_categories\.recipe_id = recipes\.id JOIN recipe_cuisines ON recipe_cuisines\.recipe_id = recipes\.id WHERE recipe_categories\.category_id IN \(\$1,\$2\) AND recipe_cuisines\.cuisine_id IN \(\$3\) ORDER BY recipes\.created_at desc, recipes\.id desc LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "owner_username"}).
			AddRow(recipeID.String(), "Pad Thai", "chef"))

	rows, count, err := repo.ListRecipes(context.Background(), ListRecipesParams{
		Filters: map[taxonomy.Kind][]uint{
			taxonomy.KindCategory: {1, 2},
			taxonomy.KindCuisine:  {7},
		},
		Page:  1,
		Limit: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, rows, 1)
	assert.Equal(t, recipeID, rows[0].ID)
	assert.Equal(t, "chef", rows[0].OwnerUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The search clause is ANDed with the taxonomy constraints and matches
// title or description case-insensitively.
func TestRecipeRepository_ListRecipesSearchClause(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\(recipes\.id\)\) FROM "recipes" JOIN recipe_seasons ON recipe_seasons\.recipe_id = recipes\.id WHERE \(LOWER\(recipes\.title\) LIKE \$1 OR LOWER\(recipes\.description\) LIKE \$2\) AND recipe_seasons\.season_id IN \(\$3\)`).
		WithArgs("%noodle%", "%noodle%", 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT DISTINCT recipes\.\*, users\.username AS owner_username FROM "recipes" LEFT JOIN users ON users\.id = recipes\.user_id JOIN recipe_seasons ON recipe_seasons\.recipe_id = recipes\.id WHERE \(LOWER\(recipes\.title\) LIKE \$1 OR LOWER\(recipes\.description\) LIKE \$2\) AND recipe_seasons\.season_id IN \(\$3\) ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "owner_username"}))

	rows, count, err := repo.ListRecipes(context.Background(), ListRecipesParams{
		Search: "Noodle",
		Filters: map[taxonomy.Kind][]uint{
			taxonomy.KindSeason: {4},
		},
		Page:  1,
		Limit: 20,
	})

	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_ToggleFavoriteFlips(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()

	t.Run("absent row is inserted", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "recipe_favorites" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO "recipe_favorites"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		favorited, err := repo.ToggleFavorite(context.Background(), userID, recipeID)

		assert.NoError(t, err)
		assert.True(t, favorited)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("present row is deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "recipe_favorites" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(`DELETE FROM "recipe_favorites" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		favorited, err := repo.ToggleFavorite(context.Background(), userID, recipeID)

		assert.NoError(t, err)
		assert.False(t, favorited)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Deleting a recipe issues exactly one statement against recipes; the
// junction, ingredient-link, rating and favorite rows ride on the FK
// cascade constraints instead of manual deletes.
func TestRecipeRepository_DeleteRecipeSingleStatement(t *testing.T) {
	repo, mock := newMockRepository(t)
	recipeID := uuid.New()

	mock.ExpectExec(`DELETE FROM "recipes" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteRecipe(context.Background(), recipeID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_SubmitRating(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()

	ratingColumns := []string{"id", "user_id", "recipe_id", "value", "created_at", "updated_at"}

	t.Run("first rating inserts", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "recipe_ratings" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnRows(sqlmock.NewRows(ratingColumns))
		mock.ExpectQuery(`INSERT INTO "recipe_ratings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

		created, err := repo.SubmitRating(context.Background(), userID, recipeID, 4)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing rating updated in place", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "recipe_ratings" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnRows(sqlmock.NewRows(ratingColumns).
				AddRow(uuid.New().String(), userID.String(), recipeID.String(), 4, time.Now(), time.Now()))
		mock.ExpectExec(`UPDATE "recipe_ratings" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.SubmitRating(context.Background(), userID, recipeID, 2)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent first rating falls back to update", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "recipe_ratings" WHERE user_id = \$1 AND recipe_id = \$2`).
			WillReturnRows(sqlmock.NewRows(ratingColumns))
		mock.ExpectQuery(`INSERT INTO "recipe_ratings"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectExec(`UPDATE "recipe_ratings" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.SubmitRating(context.Background(), userID, recipeID, 5)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
