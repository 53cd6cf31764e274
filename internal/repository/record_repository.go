//go:generate mockery --name RecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"tabebui/internal/middleware"
	"tabebui/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRepository は部位ごとの食事記録へのアクセスを提供する
type RecordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.EatingRecord) error
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, animalType *model.AnimalType) ([]model.UserRecord, error)
	FindConqueredPartIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, partIDs []int) (map[int]struct{}, error)
}

type gormRecordRepository struct{}

func NewGormRecordRepository() RecordRepository {
	return &gormRecordRepository{}
}

func (r *gormRecordRepository) Create(ctx context.Context, tx *gorm.DB, record *model.EatingRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Omit("AnimalPart", "Session").Create(record)
	if result.Error != nil {
		logger.Error("Error creating eating record in DB",
			"error", result.Error,
			"user_id", record.UserID.String(),
			"session_id", record.SessionID,
			"animal_part_id", record.AnimalPartID,
		)
		return fmt.Errorf("gormRecordRepository.Create: %w", translateDBError(result.Error))
	}
	return nil
}

// ListByUser は記録に部位とセッションの情報を結合して返す。
// animalType を指定するとその動物の部位に絞り込む
func (r *gormRecordRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, animalType *model.AnimalType) ([]model.UserRecord, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).
		Table("eating_records AS er").
		Select(`er.id AS record_id,
			er.session_id AS session_id,
			er.animal_part_id AS part_id,
			er.eaten_at AS eaten_at,
			ap.animal_type AS animal_type,
			ap.part_category AS part_category,
			ap.part_name AS part_name,
			ap.part_name_ja AS part_name_ja,
			ap.difficulty_level AS difficulty_level,
			es.restaurant_name AS restaurant_name,
			es.rating AS rating`).
		Joins("JOIN animal_parts AS ap ON ap.id = er.animal_part_id").
		Joins("JOIN eating_sessions AS es ON es.id = er.session_id").
		Where("er.user_id = ?", userID)
	if animalType != nil {
		query = query.Where("ap.animal_type = ?", *animalType)
	}

	records := []model.UserRecord{}
	if err := query.Order("er.eaten_at ASC, er.id ASC").Scan(&records).Error; err != nil {
		logger.Error("Error listing eating records in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormRecordRepository.ListByUser: %w", err)
	}
	return records, nil
}

// FindConqueredPartIDs は partIDs のうち既に記録のある部位を返す
func (r *gormRecordRepository) FindConqueredPartIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, partIDs []int) (map[int]struct{}, error) {
	logger := middleware.GetLogger(ctx)
	conquered := make(map[int]struct{}, len(partIDs))
	if len(partIDs) == 0 {
		return conquered, nil
	}

	var found []int
	result := db.WithContext(ctx).Model(&model.EatingRecord{}).
		Distinct("animal_part_id").
		Where("user_id = ? AND animal_part_id IN ?", userID, partIDs).
		Pluck("animal_part_id", &found)
	if result.Error != nil {
		logger.Error("Error finding conquered parts in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormRecordRepository.FindConqueredPartIDs: %w", result.Error)
	}
	for _, id := range found {
		conquered[id] = struct{}{}
	}
	return conquered, nil
}
