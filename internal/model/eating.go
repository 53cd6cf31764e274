// internal/model/eating.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EatingSession は1回の食事 (お店での1回の訪問など) を表します
type EatingSession struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_user_eaten,priority:1" json:"-"`
	RestaurantName *string   `gorm:"type:varchar(100)" json:"restaurant_name,omitempty"`
	EatenAt        time.Time `gorm:"not null;index:idx_sessions_user_eaten,priority:2" json:"eaten_at"`
	Memo           *string   `gorm:"type:text" json:"memo,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	PhotoURL       *string   `gorm:"type:varchar(500)" json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Records []EatingRecord `gorm:"foreignKey:SessionID" json:"-"`
}

func (EatingSession) TableName() string {
	return "eating_sessions"
}

// EatingRecord は1セッション内で食べた1部位の記録
type EatingRecord struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	AnimalPartID int       `gorm:"not null;index" json:"animal_part_id"`
	SessionID    int       `gorm:"not null;index" json:"session_id"`
	EatenAt      time.Time `gorm:"not null" json:"eaten_at"`
	CreatedAt    time.Time `json:"created_at"`

	AnimalPart *AnimalPart    `gorm:"foreignKey:AnimalPartID;constraint:OnDelete:RESTRICT" json:"-"`
	Session    *EatingSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EatingRecord) TableName() string {
	return "eating_records"
}

// UserRecord は記録に部位とセッションの情報を結合したもの (集計の入力)
type UserRecord struct {
	RecordID        int
	SessionID       int
	PartID          int
	EatenAt         time.Time
	AnimalType      AnimalType
	PartCategory    PartCategory
	PartName        string
	PartNameJa      string
	DifficultyLevel int
	RestaurantName  *string
	Rating          *int
}

// 食事記録作成リクエストDTO
type CreateRecordRequest struct {
	PartIDs        []int      `json:"part_ids" validate:"required,min=1,max=50,dive,gt=0"`
	RestaurantName *string    `json:"restaurant_name,omitempty" validate:"omitempty,max=100"`
	EatenAt        *time.Time `json:"eaten_at,omitempty"`
	Memo           *string    `json:"memo,omitempty" validate:"omitempty,max=1000"`
	Rating         *int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	PhotoURL       *string    `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
}

type CreatedRecord struct {
	ID           int `json:"id"`
	AnimalPartID int `json:"animal_part_id"`
}

// 食事記録作成レスポンスDTO
type CreateRecordResponse struct {
	SessionID int             `json:"session_id"`
	EatenAt   time.Time       `json:"eaten_at"`
	Records   []CreatedRecord `json:"records"`

	// 今回はじめて食べた (制覇した) 部位
	NewlyConqueredPartIDs []int `json:"newly_conquered_part_ids"`
}

// SessionSummary はセッション一覧の1件
type SessionSummary struct {
	ID             int       `json:"id"`
	RestaurantName *string   `json:"restaurant_name,omitempty"`
	EatenAt        time.Time `json:"eaten_at"`
	Memo           *string   `json:"memo,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	PhotoURL       *string   `json:"photo_url,omitempty"`
	PartCount      int       `json:"part_count"`
	PartNames      []string  `json:"part_names"`
}

type SessionListResponse struct {
	Sessions   []SessionSummary `json:"sessions"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

type SessionPart struct {
	RecordID     int          `json:"record_id"`
	AnimalPartID int          `json:"animal_part_id"`
	AnimalType   AnimalType   `json:"animal_type"`
	PartCategory PartCategory `json:"part_category"`
	PartName     string       `json:"part_name"`
	PartNameJa   string       `json:"part_name_ja"`
}

// SessionDetail はセッション詳細
type SessionDetail struct {
	SessionSummary
	CreatedAt time.Time     `json:"created_at"`
	Parts     []SessionPart `json:"parts"`
}
