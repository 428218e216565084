package feecategory_test

import (
	"testing"

	"github.com/campuscore/api-fees/internal/feecategory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, feecategory.Migrate(db))
	return db
}

func TestListActiveOrdersByNameAndSkipsInactive(t *testing.T) {
	repo := feecategory.NewRepository(newTestDB(t))

	for _, name := range []string{"Tuition", "Hostel", "Library"} {
		require.NoError(t, repo.Create(&feecategory.FeeCategory{CategoryName: name, BaseAmount: 1000}))
	}

	library, err := repo.FindByID(3)
	require.NoError(t, err)
	require.Equal(t, "Library", library.CategoryName)
	require.NoError(t, repo.Deactivate(library.ID))

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Hostel", active[0].CategoryName)
	assert.Equal(t, "Tuition", active[1].CategoryName)
}

func TestCreateRejectsNegativeBaseAmount(t *testing.T) {
	repo := feecategory.NewRepository(newTestDB(t))

	err := repo.Create(&feecategory.FeeCategory{CategoryName: "Sports", BaseAmount: -1})
	assert.ErrorIs(t, err, feecategory.ErrInvalidBaseAmount)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := feecategory.NewRepository(newTestDB(t))

	require.NoError(t, repo.Create(&feecategory.FeeCategory{CategoryName: "Tuition", BaseAmount: 50000}))
	err := repo.Create(&feecategory.FeeCategory{CategoryName: "Tuition", BaseAmount: 60000})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateRewritesDisplayFields(t *testing.T) {
	repo := feecategory.NewRepository(newTestDB(t))

	require.NoError(t, repo.Create(&feecategory.FeeCategory{CategoryName: "Tution", BaseAmount: 50000}))

	updated, err := repo.Update(1, &feecategory.FeeCategory{
		CategoryName: "Tuition",
		BaseAmount:   55000,
		Description:  "Annual tuition",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tuition", updated.CategoryName)
	assert.Equal(t, 55000.0, updated.BaseAmount)
	assert.True(t, updated.IsActive)
}

func TestDeactivateMissingCategory(t *testing.T) {
	repo := feecategory.NewRepository(newTestDB(t))

	err := repo.Deactivate(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
