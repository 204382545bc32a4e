package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.UserForm{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testForm(email string) *entity.UserForm {
	return &entity.UserForm{
		FirstName:          "Jane",
		LastName:           "Doe",
		Email:              email,
		Address:            "1 Main St",
		Phone:              "0400000000",
		PostCode:           "2000",
		Gender:             "female",
		Birthday:           time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpectedIncome:     entity.IncomeLessThan50K,
		PregnantOrAdopting: false,
		Coverage:           entity.CoverageFamily,
		TobaccoUser:        true,
	}
}

func TestFormPostgres_Create(t *testing.T) {
	t.Run("successful creation assigns identity", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewFormPostgres(db)

		form := testForm("jane@example.com")
		err := repo.Create(context.Background(), form)

		assert.NoError(t, err, "failed to create form")
		assert.NotZero(t, form.ID, "ID is not set")
		assert.False(t, form.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("submissions are append-only with no uniqueness constraint", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewFormPostgres(db)

		first := testForm("same@example.com")
		second := testForm("same@example.com")

		require.NoError(t, repo.Create(context.Background(), first))
		require.NoError(t, repo.Create(context.Background(), second))

		assert.NotEqual(t, first.ID, second.ID, "each submission gets its own identity")
	})
}

func TestFormPostgres_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormPostgres(db)

	older := testForm("first@example.com")
	newer := testForm("second@example.com")
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	forms, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, newer.ID, forms[0].ID, "list is newest first")
	assert.Equal(t, older.ID, forms[1].ID)
}

func TestFormPostgres_FindByID(t *testing.T) {
	t.Run("find form by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewFormPostgres(db)

		expected := testForm("jane@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.Email, found.Email)
		assert.Equal(t, entity.CoverageFamily, found.Coverage)
		assert.True(t, found.TobaccoUser)
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewFormPostgres(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrFormNotFound)
	})
}
