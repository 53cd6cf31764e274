// Package seed は部位マスターの初期データを扱う。
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed parts.yaml
var partsYAML []byte

type partEntry struct {
	ID           int    `yaml:"id"`
	AnimalType   string `yaml:"animal_type"`
	PartCategory string `yaml:"part_category"`
	PartName     string `yaml:"part_name"`
	PartNameJa   string `yaml:"part_name_ja"`
	Rarity       string `yaml:"rarity"`
	Description  string `yaml:"description"`
}

type catalogFile struct {
	Parts []partEntry `yaml:"parts"`
}

// rarityLevels は希少度から difficulty_level への対応
var rarityLevels = map[string]int{
	"common":    1,
	"uncommon":  2,
	"rare":      3,
	"legendary": 4,
}

// Load は埋め込みの部位マスターを読み込む
func Load() ([]model.AnimalPart, error) {
	return Parse(partsYAML)
}

// Parse は YAML の部位マスターを検証して AnimalPart に変換する
func Parse(data []byte) ([]model.AnimalPart, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed.Parse: %w", err)
	}

	seen := make(map[int]struct{}, len(file.Parts))
	parts := make([]model.AnimalPart, 0, len(file.Parts))
	for i, e := range file.Parts {
		if e.ID <= 0 {
			return nil, fmt.Errorf("seed.Parse: parts[%d]: id must be positive", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("seed.Parse: parts[%d]: duplicate id %d", i, e.ID)
		}
		seen[e.ID] = struct{}{}

		animal := model.AnimalType(e.AnimalType)
		if !animal.IsValid() {
			return nil, fmt.Errorf("seed.Parse: id %d: unknown animal_type %q", e.ID, e.AnimalType)
		}
		category := model.PartCategory(e.PartCategory)
		if !category.IsValid() {
			return nil, fmt.Errorf("seed.Parse: id %d: unknown part_category %q", e.ID, e.PartCategory)
		}
		level, ok := rarityLevels[e.Rarity]
		if !ok {
			return nil, fmt.Errorf("seed.Parse: id %d: unknown rarity %q", e.ID, e.Rarity)
		}
		if e.PartName == "" || e.PartNameJa == "" {
			return nil, fmt.Errorf("seed.Parse: id %d: part_name and part_name_ja are required", e.ID)
		}

		part := model.AnimalPart{
			ID:              e.ID,
			AnimalType:      animal,
			PartCategory:    category,
			PartName:        e.PartName,
			PartNameJa:      e.PartNameJa,
			DifficultyLevel: level,
		}
		if e.Description != "" {
			desc := e.Description
			part.Description = &desc
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Apply は部位マスターを1トランザクションで登録・更新し、件数を返す
func Apply(ctx context.Context, db *gorm.DB, repo repository.PartRepository, parts []model.AnimalPart) (int, error) {
	logger := middleware.GetLogger(ctx)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.Upsert(ctx, tx, parts)
	})
	if err != nil {
		logger.Error("Failed to seed animal parts", slog.Any("error", err))
		return 0, fmt.Errorf("seed.Apply: %w", err)
	}
	logger.Info("Animal parts seeded", slog.Int("count", len(parts)))
	return len(parts), nil
}
