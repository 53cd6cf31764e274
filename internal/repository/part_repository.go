//go:generate mockery --name PartRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"tabebui/internal/middleware"
	"tabebui/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartRepository は部位マスターへのアクセスを提供する
type PartRepository interface {
	List(ctx context.Context, db *gorm.DB, filter model.PartFilter) ([]model.AnimalPart, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*model.AnimalPart, error)
	FindExistingIDs(ctx context.Context, db *gorm.DB, ids []int) (map[int]struct{}, error)
	Upsert(ctx context.Context, tx *gorm.DB, parts []model.AnimalPart) error
}

type gormPartRepository struct{}

func NewGormPartRepository() PartRepository {
	return &gormPartRepository{}
}

// catalogOrder は部位一覧の並び順
const catalogOrder = "animal_type, part_category, difficulty_level, id"

func (r *gormPartRepository) List(ctx context.Context, db *gorm.DB, filter model.PartFilter) ([]model.AnimalPart, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Model(&model.AnimalPart{})
	if filter.AnimalType != nil {
		query = query.Where("animal_type = ?", *filter.AnimalType)
	}
	if filter.PartCategory != nil {
		query = query.Where("part_category = ?", *filter.PartCategory)
	}

	parts := []model.AnimalPart{}
	if err := query.Order(catalogOrder).Find(&parts).Error; err != nil {
		logger.Error("Error listing animal parts in DB", "error", err)
		return nil, fmt.Errorf("gormPartRepository.List: %w", err)
	}
	return parts, nil
}

func (r *gormPartRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*model.AnimalPart, error) {
	logger := middleware.GetLogger(ctx)
	var part model.AnimalPart
	result := db.WithContext(ctx).First(&part, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding animal part by ID in DB", "error", result.Error, "part_id", id)
		return nil, fmt.Errorf("gormPartRepository.FindByID: %w", result.Error)
	}
	return &part, nil
}

// FindExistingIDs は ids のうちカタログに存在するものを1回のクエリで返す
func (r *gormPartRepository) FindExistingIDs(ctx context.Context, db *gorm.DB, ids []int) (map[int]struct{}, error) {
	logger := middleware.GetLogger(ctx)
	existing := make(map[int]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []int
	result := db.WithContext(ctx).Model(&model.AnimalPart{}).Where("id IN ?", ids).Pluck("id", &found)
	if result.Error != nil {
		logger.Error("Error checking animal part existence in DB", "error", result.Error, "count", len(ids))
		return nil, fmt.Errorf("gormPartRepository.FindExistingIDs: %w", result.Error)
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// Upsert はシードデータを投入する。既存の部位は内容を更新する
func (r *gormPartRepository) Upsert(ctx context.Context, tx *gorm.DB, parts []model.AnimalPart) error {
	logger := middleware.GetLogger(ctx)
	if len(parts) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"animal_type", "part_category", "part_name", "part_name_ja", "description", "difficulty_level",
		}),
	}).Create(&parts)
	if result.Error != nil {
		logger.Error("Error upserting animal parts in DB", "error", result.Error, "count", len(parts))
		return fmt.Errorf("gormPartRepository.Upsert: %w", translateDBError(result.Error))
	}
	return nil
}
