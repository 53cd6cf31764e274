// internal/model/animal_part.go
package model

import "time"

type AnimalType string

const (
	AnimalBeef    AnimalType = "beef"
	AnimalPork    AnimalType = "pork"
	AnimalChicken AnimalType = "chicken"
)

// AnimalTypes は表示順に並べた動物の一覧
var AnimalTypes = []AnimalType{AnimalBeef, AnimalPork, AnimalChicken}

func (a AnimalType) IsValid() bool {
	switch a {
	case AnimalBeef, AnimalPork, AnimalChicken:
		return true
	}
	return false
}

// Label は日本語の表示名を返す
func (a AnimalType) Label() string {
	switch a {
	case AnimalBeef:
		return "牛"
	case AnimalPork:
		return "豚"
	case AnimalChicken:
		return "鳥"
	}
	return string(a)
}

type PartCategory string

const (
	CategoryMeat  PartCategory = "meat"
	CategoryOrgan PartCategory = "organ"
)

var PartCategories = []PartCategory{CategoryMeat, CategoryOrgan}

func (c PartCategory) IsValid() bool {
	return c == CategoryMeat || c == CategoryOrgan
}

// AnimalPart は部位マスター (読み取り専用)
type AnimalPart struct {
	ID              int          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	AnimalType      AnimalType   `gorm:"type:varchar(16);not null;index:idx_parts_order,priority:1" json:"animal_type"`
	PartCategory    PartCategory `gorm:"type:varchar(16);not null;index:idx_parts_order,priority:2" json:"part_category"`
	PartName        string       `gorm:"type:varchar(100);not null" json:"part_name"`
	PartNameJa      string       `gorm:"type:varchar(100);not null" json:"part_name_ja"`
	Description     *string      `json:"description,omitempty"`
	DifficultyLevel int          `gorm:"not null;default:1;index:idx_parts_order,priority:3" json:"difficulty_level"`
	CreatedAt       time.Time    `json:"-"`
}

func (AnimalPart) TableName() string {
	return "animal_parts"
}

// PartFilter は部位一覧の絞り込み条件
type PartFilter struct {
	AnimalType   *AnimalType
	PartCategory *PartCategory
}
