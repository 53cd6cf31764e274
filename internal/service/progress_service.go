// internal/service/progress_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tabebui/internal/conquest"
	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetProgress(ctx context.Context, userID uuid.UUID, animalType *model.AnimalType) (*model.ProgressReport, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardSummary, error)
	// BuildChatContext はチャット用の要約文を作る。
	// 部位マスターが空なら ok=false。取得に失敗した場合は ErrEnrichmentUnavailable を返す
	BuildChatContext(ctx context.Context, userID uuid.UUID) (digest string, ok bool, err error)
}

type progressService struct {
	db          *gorm.DB
	partRepo    repository.PartRepository
	sessionRepo repository.SessionRepository
	recordRepo  repository.RecordRepository
	clock       Clock
	loc         *time.Location
}

func NewProgressService(db *gorm.DB, partRepo repository.PartRepository, sessionRepo repository.SessionRepository, recordRepo repository.RecordRepository, clock Clock, loc *time.Location) ProgressService {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &progressService{
		db:          db,
		partRepo:    partRepo,
		sessionRepo: sessionRepo,
		recordRepo:  recordRepo,
		clock:       clock,
		loc:         loc,
	}
}

// loadInputs は集計の入力 (カタログとユーザーの記録) を読み込む
func (s *progressService) loadInputs(ctx context.Context, userID uuid.UUID, animalType *model.AnimalType) ([]model.AnimalPart, []model.UserRecord, error) {
	catalog, err := s.partRepo.List(ctx, s.db, model.PartFilter{AnimalType: animalType})
	if err != nil {
		return nil, nil, err
	}
	records, err := s.recordRepo.ListByUser(ctx, s.db, userID, animalType)
	if err != nil {
		return nil, nil, err
	}
	return catalog, records, nil
}

func (s *progressService) GetProgress(ctx context.Context, userID uuid.UUID, animalType *model.AnimalType) (*model.ProgressReport, error) {
	scope := conquest.AllAnimals
	if animalType != nil {
		if err := validateAnimalType(*animalType); err != nil {
			return nil, err
		}
		scope = conquest.OneAnimal(*animalType)
	}

	catalog, records, err := s.loadInputs(ctx, userID, animalType)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load progress inputs", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}
	return conquest.ComputeProgress(catalog, records, scope), nil
}

func (s *progressService) GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardSummary, error) {
	catalog, records, err := s.loadInputs(ctx, userID, nil)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load dashboard inputs", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}
	// 週や日付の境界は設定のタイムゾーンで判定する
	ref := s.clock.Now().In(s.loc)
	return conquest.ComputeDashboard(catalog, records, ref), nil
}

func (s *progressService) BuildChatContext(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	catalog, records, err := s.loadInputs(ctx, userID, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", model.ErrEnrichmentUnavailable, err)
	}
	latest, err := s.sessionRepo.FindLatestByUser(ctx, s.db, userID)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", model.ErrEnrichmentUnavailable, err)
	}
	if latest != nil {
		latest.EatenAt = latest.EatenAt.In(s.loc)
	}

	report := conquest.ComputeProgress(catalog, records, conquest.AllAnimals)
	digest, ok := conquest.FormatContext(conquest.NewDigestInput(report, latest))
	return digest, ok, nil
}
