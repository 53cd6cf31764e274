// internal/service/record_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordService interface {
	RecordSession(ctx context.Context, userID uuid.UUID, req *model.CreateRecordRequest) (*model.CreateRecordResponse, error)
	ListSessions(ctx context.Context, userID uuid.UUID, page, perPage int) (*model.SessionListResponse, error)
	GetSession(ctx context.Context, userID uuid.UUID, sessionID int) (*model.SessionDetail, error)
}

type recordService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	partRepo    repository.PartRepository
	sessionRepo repository.SessionRepository
	recordRepo  repository.RecordRepository
	clock       Clock
	maxPerPage  int
}

func NewRecordService(db *gorm.DB, partRepo repository.PartRepository, sessionRepo repository.SessionRepository, recordRepo repository.RecordRepository, clock Clock, maxPerPage int) RecordService {
	if clock == nil {
		clock = RealClock{}
	}
	return &recordService{
		db:          db,
		partRepo:    partRepo,
		sessionRepo: sessionRepo,
		recordRepo:  recordRepo,
		clock:       clock,
		maxPerPage:  maxPerPage,
	}
}

// RecordSession は1回の食事を記録する。
// セッション1件と、part_ids の順に1件ずつの記録 (重複もそのまま) を1トランザクションで作成し、
// 存在しない部位IDが1つでもあれば何も書き込まない。
func (s *recordService) RecordSession(ctx context.Context, userID uuid.UUID, req *model.CreateRecordRequest) (*model.CreateRecordResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("user_id", userID.String()))

	if req == nil || len(req.PartIDs) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "部位IDを1つ以上指定してください。", "part_ids", model.ErrInvalidInput)
	}

	eatenAt := s.clock.Now()
	if req.EatenAt != nil {
		eatenAt = *req.EatenAt
	}
	distinctIDs := distinctInOrder(req.PartIDs)

	var resp *model.CreateRecordResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 部位の存在チェック (1クエリ)
		existing, err := s.partRepo.FindExistingIDs(ctx, tx, distinctIDs)
		if err != nil {
			return err
		}
		var unknown []int
		for _, id := range distinctIDs {
			if _, ok := existing[id]; !ok {
				unknown = append(unknown, id)
			}
		}
		if len(unknown) > 0 {
			return model.NewUnknownPartsError(unknown)
		}

		// 2. 今回はじめて食べる部位を調べる
		conquered, err := s.recordRepo.FindConqueredPartIDs(ctx, tx, userID, distinctIDs)
		if err != nil {
			return err
		}

		// 3. セッションを作成
		session := &model.EatingSession{
			UserID:         userID,
			RestaurantName: req.RestaurantName,
			EatenAt:        eatenAt,
			Memo:           req.Memo,
			Rating:         req.Rating,
			PhotoURL:       req.PhotoURL,
		}
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			return err
		}

		// 4. 部位ごとの記録を入力順に作成
		created := make([]model.CreatedRecord, 0, len(req.PartIDs))
		for _, partID := range req.PartIDs {
			record := &model.EatingRecord{
				UserID:       userID,
				AnimalPartID: partID,
				SessionID:    session.ID,
				EatenAt:      session.EatenAt,
			}
			if err := s.recordRepo.Create(ctx, tx, record); err != nil {
				return err
			}
			created = append(created, model.CreatedRecord{ID: record.ID, AnimalPartID: partID})
		}

		newly := []int{}
		for _, id := range distinctIDs {
			if _, ok := conquered[id]; !ok {
				newly = append(newly, id)
			}
		}

		resp = &model.CreateRecordResponse{
			SessionID:             session.ID,
			EatenAt:               session.EatenAt,
			Records:               created,
			NewlyConqueredPartIDs: newly,
		}
		return nil // コミット
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Rejected eating session", slog.String("code", appErr.Detail.Code), slog.Any("part_ids", req.PartIDs))
			return nil, appErr
		}
		if errors.Is(err, model.ErrInvalidInput) {
			// 存在チェック後に部位が消えた場合など (外部キー制約違反)
			logger.Warn("Constraint violation while recording session", slog.Any("error", err))
			return nil, model.NewAppError("VALIDATION_ERROR", "記録できない部位が含まれています。", "part_ids", err)
		}
		logger.Error("Transaction failed for RecordSession", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}

	logger.Info("Eating session recorded",
		slog.Int("session_id", resp.SessionID),
		slog.Int("records", len(resp.Records)),
		slog.Int("newly_conquered", len(resp.NewlyConqueredPartIDs)),
	)
	return resp, nil
}

// ListSessions はセッション履歴を新しい順にページ単位で返す
func (s *recordService) ListSessions(ctx context.Context, userID uuid.UUID, page, perPage int) (*model.SessionListResponse, error) {
	if page < 1 {
		return nil, model.NewAppError("VALIDATION_ERROR", "pageは1以上で指定してください。", "page", model.ErrInvalidInput)
	}
	if perPage < 1 || perPage > s.maxPerPage {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("per_pageは1から%dの範囲で指定してください。", s.maxPerPage), "per_page", model.ErrInvalidInput)
	}

	sessions, total, err := s.sessionRepo.ListByUser(ctx, s.db, userID, page, perPage)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list eating sessions", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}

	summaries := make([]model.SessionSummary, 0, len(sessions))
	for i := range sessions {
		summaries = append(summaries, toSessionSummary(&sessions[i]))
	}
	return &model.SessionListResponse{
		Sessions:   summaries,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}

func (s *recordService) GetSession(ctx context.Context, userID uuid.UUID, sessionID int) (*model.SessionDetail, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "指定された食事記録が見つかりません。", "session_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to get eating session", slog.Any("error", err), slog.Int("session_id", sessionID))
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}

	detail := &model.SessionDetail{
		SessionSummary: toSessionSummary(session),
		CreatedAt:      session.CreatedAt,
		Parts:          make([]model.SessionPart, 0, len(session.Records)),
	}
	for _, r := range session.Records {
		part := model.SessionPart{RecordID: r.ID, AnimalPartID: r.AnimalPartID}
		if r.AnimalPart != nil {
			part.AnimalType = r.AnimalPart.AnimalType
			part.PartCategory = r.AnimalPart.PartCategory
			part.PartName = r.AnimalPart.PartName
			part.PartNameJa = r.AnimalPart.PartNameJa
		}
		detail.Parts = append(detail.Parts, part)
	}
	return detail, nil
}

func toSessionSummary(session *model.EatingSession) model.SessionSummary {
	names := make([]string, 0, len(session.Records))
	for _, r := range session.Records {
		if r.AnimalPart != nil {
			names = append(names, r.AnimalPart.PartNameJa)
		}
	}
	return model.SessionSummary{
		ID:             session.ID,
		RestaurantName: session.RestaurantName,
		EatenAt:        session.EatenAt,
		Memo:           session.Memo,
		Rating:         session.Rating,
		PhotoURL:       session.PhotoURL,
		PartCount:      len(session.Records),
		PartNames:      names,
	}
}

// distinctInOrder は最初に出現した順で重複を除く
func distinctInOrder(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
