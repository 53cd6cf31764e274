package conquest

import (
	"time"

	"tabebui/internal/model"
)

var jst = time.FixedZone("JST", 9*60*60)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// beefCatalog は牛10部位 (精肉6, ホルモン4) のカタログを作る
func beefCatalog() []model.AnimalPart {
	parts := make([]model.AnimalPart, 0, 10)
	for i := 1; i <= 10; i++ {
		cat := model.CategoryMeat
		if i > 6 {
			cat = model.CategoryOrgan
		}
		parts = append(parts, model.AnimalPart{
			ID:              i,
			AnimalType:      model.AnimalBeef,
			PartCategory:    cat,
			PartName:        "beef_part",
			PartNameJa:      "牛部位",
			DifficultyLevel: (i % 4) + 1,
		})
	}
	return parts
}

// mixedCatalog は牛・豚・鳥を含むカタログ
func mixedCatalog() []model.AnimalPart {
	parts := beefCatalog()
	parts = append(parts,
		model.AnimalPart{ID: 101, AnimalType: model.AnimalPork, PartCategory: model.CategoryMeat, PartName: "loin", PartNameJa: "ロース", DifficultyLevel: 1},
		model.AnimalPart{ID: 102, AnimalType: model.AnimalPork, PartCategory: model.CategoryOrgan, PartName: "kashira", PartNameJa: "カシラ", DifficultyLevel: 2},
		model.AnimalPart{ID: 201, AnimalType: model.AnimalChicken, PartCategory: model.CategoryMeat, PartName: "momo", PartNameJa: "もも", DifficultyLevel: 1},
		model.AnimalPart{ID: 202, AnimalType: model.AnimalChicken, PartCategory: model.CategoryOrgan, PartName: "sori", PartNameJa: "ソリレス", DifficultyLevel: 4},
	)
	return parts
}

func record(id, partID int, at time.Time, restaurant *string) model.UserRecord {
	return model.UserRecord{RecordID: id, SessionID: id, PartID: partID, EatenAt: at, RestaurantName: restaurant}
}
