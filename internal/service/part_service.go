// internal/service/part_service.go
package service

import (
	"context"
	"fmt"

	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/repository"

	"gorm.io/gorm"
)

type PartService interface {
	ListParts(ctx context.Context, filter model.PartFilter) ([]model.AnimalPart, error)
}

type partService struct {
	db       *gorm.DB
	partRepo repository.PartRepository
}

func NewPartService(db *gorm.DB, partRepo repository.PartRepository) PartService {
	return &partService{db: db, partRepo: partRepo}
}

// ListParts は部位マスターを animal_type, part_category, difficulty_level, id の順で返す
func (s *partService) ListParts(ctx context.Context, filter model.PartFilter) ([]model.AnimalPart, error) {
	if err := validatePartFilter(filter); err != nil {
		return nil, err
	}
	parts, err := s.partRepo.List(ctx, s.db, filter)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list animal parts", "error", err)
		return nil, fmt.Errorf("%w: %v", model.ErrInternalServer, err)
	}
	return parts, nil
}

func validatePartFilter(filter model.PartFilter) error {
	if filter.AnimalType != nil {
		if err := validateAnimalType(*filter.AnimalType); err != nil {
			return err
		}
	}
	if filter.PartCategory != nil && !filter.PartCategory.IsValid() {
		return model.NewAppError("VALIDATION_ERROR", "part_categoryは meat, organ のいずれかを指定してください。", "part_category", model.ErrInvalidInput)
	}
	return nil
}

func validateAnimalType(t model.AnimalType) error {
	if !t.IsValid() {
		return model.NewAppError("VALIDATION_ERROR", "animal_typeは beef, pork, chicken のいずれかを指定してください。", "animal_type", model.ErrInvalidInput)
	}
	return nil
}
