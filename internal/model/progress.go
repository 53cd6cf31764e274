// internal/model/progress.go
package model

import "time"

// ConquestStats は制覇状況の集計値
// ConqueredCount + UnconqueredCount は常に TotalCount と一致する
type ConquestStats struct {
	ConqueredCount   int     `json:"conquered_count"`
	UnconqueredCount int     `json:"unconquered_count"`
	TotalCount       int     `json:"total_count"`
	Rate             float64 `json:"rate"`
}

// ConqueredPart は制覇済みの部位に食事記録の集計を付けたもの
type ConqueredPart struct {
	AnimalPart
	FirstConqueredDate time.Time `json:"first_conquered_date"`
	LastEatenDate      time.Time `json:"last_eaten_date"`
	EatCount           int       `json:"eat_count"`
	Restaurants        []string  `json:"restaurants"`
}

// PartBuckets は (動物, カテゴリ) ごとの制覇済み/未制覇の部位
type PartBuckets struct {
	Conquered   []ConqueredPart `json:"conquered"`
	Unconquered []AnimalPart    `json:"unconquered"`
}

// ProgressReport はユーザーの制覇進捗
type ProgressReport struct {
	// nil のときは全動物が対象
	AnimalType *AnimalType                                   `json:"animal_type,omitempty"`
	Overall    ConquestStats                                 `json:"overall"`
	Animals    map[AnimalType]ConquestStats                  `json:"animals"`
	Categories map[AnimalType]map[PartCategory]ConquestStats `json:"categories,omitempty"`
	Parts      map[AnimalType]map[PartCategory]*PartBuckets  `json:"parts"`
}

// RecentRecord はダッシュボードの「最近の記録」
type RecentRecord struct {
	RecordID       int        `json:"record_id"`
	PartID         int        `json:"part_id"`
	PartName       string     `json:"part_name"`
	AnimalType     AnimalType `json:"animal_type"`
	RestaurantName *string    `json:"restaurant_name,omitempty"`
	EatenAt        time.Time  `json:"eaten_at"`
}

type Badge struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DashboardSummary はトップ画面用の集計
type DashboardSummary struct {
	TotalParts     int                          `json:"total_parts"`
	ConqueredParts int                          `json:"conquered_parts"`
	OverallRate    float64                      `json:"overall_rate"`
	Animals        map[AnimalType]ConquestStats `json:"animals"`
	WeekRecords    int                          `json:"week_records"`
	StreakDays     int                          `json:"streak_days"`
	RecentRecords  []RecentRecord               `json:"recent_records"`
	Badges         []Badge                      `json:"badges"`
}
