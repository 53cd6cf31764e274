package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tabebui/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを作り、マイグレーションまで済ませる
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

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// seedParts はテスト用の部位を投入する
func seedParts(t *testing.T, db *gorm.DB) []model.AnimalPart {
	t.Helper()
	parts := []model.AnimalPart{
		{ID: 1, AnimalType: model.AnimalBeef, PartCategory: model.CategoryMeat, PartName: "sirloin", PartNameJa: "サーロイン", DifficultyLevel: 1},
		{ID: 2, AnimalType: model.AnimalBeef, PartCategory: model.CategoryMeat, PartName: "misuji", PartNameJa: "ミスジ", DifficultyLevel: 3},
		{ID: 3, AnimalType: model.AnimalBeef, PartCategory: model.CategoryOrgan, PartName: "tongue", PartNameJa: "タン", DifficultyLevel: 1},
		{ID: 4, AnimalType: model.AnimalPork, PartCategory: model.CategoryMeat, PartName: "loin", PartNameJa: "ロース", DifficultyLevel: 1},
		{ID: 5, AnimalType: model.AnimalChicken, PartCategory: model.CategoryOrgan, PartName: "sori", PartNameJa: "ソリレス", DifficultyLevel: 4},
		{ID: 6, AnimalType: model.AnimalBeef, PartCategory: model.CategoryMeat, PartName: "zabuton", PartNameJa: "ザブトン", DifficultyLevel: 1},
	}
	require.NoError(t, NewGormPartRepository().Upsert(context.Background(), db, parts))
	return parts
}

// createSession はセッションと記録をまとめて作る
func createSession(t *testing.T, db *gorm.DB, userID uuid.UUID, eatenAt time.Time, restaurant *string, partIDs ...int) *model.EatingSession {
	t.Helper()
	ctx := context.Background()
	session := &model.EatingSession{UserID: userID, EatenAt: eatenAt, RestaurantName: restaurant}
	require.NoError(t, NewGormSessionRepository().Create(ctx, db, session))
	for _, id := range partIDs {
		rec := &model.EatingRecord{UserID: userID, AnimalPartID: id, SessionID: session.ID, EatenAt: eatenAt}
		require.NoError(t, NewGormRecordRepository().Create(ctx, db, rec))
	}
	return session
}
