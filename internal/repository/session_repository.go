//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"tabebui/internal/middleware"
	"tabebui/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository は食事セッションへのアクセスを提供する
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.EatingSession) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID, sessionID int) (*model.EatingSession, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, page, perPage int) ([]model.EatingSession, int64, error)
	FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.EatingSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

// preloadRecords はセッションの記録を部位付きで id 順に読み込む
func preloadRecords(db *gorm.DB) *gorm.DB {
	return db.Preload("Records", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("eating_records.id ASC")
	}).Preload("Records.AnimalPart")
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.EatingSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Omit("Records").Create(session)
	if result.Error != nil {
		logger.Error("Error creating eating session in DB",
			"error", result.Error,
			"user_id", session.UserID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", translateDBError(result.Error))
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID, sessionID int) (*model.EatingSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.EatingSession
	result := preloadRecords(db.WithContext(ctx)).
		Where("user_id = ? AND id = ?", userID, sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding eating session by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID,
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

// ListByUser はセッションを新しい順にページ単位で返す。total は全件数
func (r *gormSessionRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, page, perPage int) ([]model.EatingSession, int64, error) {
	logger := middleware.GetLogger(ctx)

	var total int64
	if err := db.WithContext(ctx).Model(&model.EatingSession{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		logger.Error("Error counting eating sessions in DB", "error", err, "user_id", userID.String())
		return nil, 0, fmt.Errorf("gormSessionRepository.ListByUser: %w", err)
	}

	sessions := []model.EatingSession{}
	if total == 0 {
		return sessions, 0, nil
	}

	result := preloadRecords(db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("eaten_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error listing eating sessions in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"page", page,
			"per_page", perPage,
		)
		return nil, 0, fmt.Errorf("gormSessionRepository.ListByUser: %w", result.Error)
	}
	return sessions, total, nil
}

// FindLatestByUser は直近のセッションを返す。1件もなければ nil, nil
func (r *gormSessionRepository) FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.EatingSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []model.EatingSession
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at DESC, id DESC").
		Limit(1).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding latest eating session in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormSessionRepository.FindLatestByUser: %w", result.Error)
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}
