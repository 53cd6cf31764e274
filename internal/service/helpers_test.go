package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tabebui/internal/model"
	"tabebui/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---

// setupTestDB はテストごとに独立したインメモリDBを作る
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(context.Background(), db))
	return db
}

// fixedClock は常に同じ時刻を返す
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// testParts は 牛3・豚1・鳥1 のカタログ
func testParts() []model.AnimalPart {
	return []model.AnimalPart{
		{ID: 3, AnimalType: model.AnimalBeef, PartCategory: model.CategoryMeat, PartName: "harami", PartNameJa: "ハラミ", DifficultyLevel: 1},
		{ID: 5, AnimalType: model.AnimalBeef, PartCategory: model.CategoryOrgan, PartName: "tongue", PartNameJa: "タン", DifficultyLevel: 1},
		{ID: 7, AnimalType: model.AnimalBeef, PartCategory: model.CategoryMeat, PartName: "misuji", PartNameJa: "ミスジ", DifficultyLevel: 3},
		{ID: 20, AnimalType: model.AnimalPork, PartCategory: model.CategoryMeat, PartName: "loin", PartNameJa: "ロース", DifficultyLevel: 1},
		{ID: 30, AnimalType: model.AnimalChicken, PartCategory: model.CategoryOrgan, PartName: "sori", PartNameJa: "ソリレス", DifficultyLevel: 4},
	}
}

func seedTestParts(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, repository.NewGormPartRepository().Upsert(context.Background(), db, testParts()))
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
