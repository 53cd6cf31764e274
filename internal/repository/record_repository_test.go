package repository

import (
	"context"
	"testing"
	"time"

	"tabebui/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormRecordRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedParts(t, db)
	repo := NewGormRecordRepository()

	userID := uuid.New()
	base := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	s1 := createSession(t, db, userID, base, strPtr("焼肉A"), 1, 2)
	s1.Rating = intPtr(5)
	require.NoError(t, db.Save(s1).Error)
	createSession(t, db, userID, base.AddDate(0, 0, 1), nil, 5)
	createSession(t, db, uuid.New(), base, nil, 3)

	t.Run("全動物", func(t *testing.T) {
		records, err := repo.ListByUser(ctx, db, userID, nil)
		require.NoError(t, err)
		require.Len(t, records, 3)

		first := records[0]
		assert.Equal(t, 1, first.PartID)
		assert.Equal(t, s1.ID, first.SessionID)
		assert.Equal(t, model.AnimalBeef, first.AnimalType)
		assert.Equal(t, model.CategoryMeat, first.PartCategory)
		assert.Equal(t, "サーロイン", first.PartNameJa)
		assert.True(t, first.EatenAt.Equal(base))
		require.NotNil(t, first.RestaurantName)
		assert.Equal(t, "焼肉A", *first.RestaurantName)
		require.NotNil(t, first.Rating)
		assert.Equal(t, 5, *first.Rating)

		last := records[2]
		assert.Equal(t, 5, last.PartID)
		assert.Equal(t, 4, last.DifficultyLevel)
		assert.Nil(t, last.RestaurantName)
	})

	t.Run("動物で絞り込み", func(t *testing.T) {
		chicken := model.AnimalChicken
		records, err := repo.ListByUser(ctx, db, userID, &chicken)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 5, records[0].PartID)
	})
}

func Test_gormRecordRepository_FindConqueredPartIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedParts(t, db)
	repo := NewGormRecordRepository()

	userID := uuid.New()
	createSession(t, db, userID, time.Now().UTC(), nil, 1, 1, 3)
	createSession(t, db, uuid.New(), time.Now().UTC(), nil, 2)

	conquered, err := repo.FindConqueredPartIDs(ctx, db, userID, []int{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{1: {}}, conquered)
}

func Test_gormRecordRepository_Create_UnknownPart(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedParts(t, db)

	userID := uuid.New()
	session := &model.EatingSession{UserID: userID, EatenAt: time.Now().UTC()}
	require.NoError(t, NewGormSessionRepository().Create(ctx, db, session))

	err := NewGormRecordRepository().Create(ctx, db, &model.EatingRecord{
		UserID: userID, AnimalPartID: 999, SessionID: session.ID, EatenAt: session.EatenAt,
	})
	assert.Error(t, err)
}
