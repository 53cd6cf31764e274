package service

import (
	"context"
	"testing"

	"tabebui/internal/model"
	"tabebui/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_partService_ListParts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedTestParts(t, db)
	svc := NewPartService(db, repository.NewGormPartRepository())

	beef := model.AnimalBeef
	organ := model.CategoryOrgan
	bad := model.AnimalType("horse")
	badCategory := model.PartCategory("bone")

	tests := []struct {
		name    string
		filter  model.PartFilter
		wantIDs []int
		wantErr error
	}{
		{
			name:    "正常系: 全件を動物・カテゴリ・難易度順で返す",
			filter:  model.PartFilter{},
			wantIDs: []int{3, 7, 5, 30, 20},
		},
		{
			name:    "正常系: 動物で絞り込む",
			filter:  model.PartFilter{AnimalType: &beef},
			wantIDs: []int{3, 7, 5},
		},
		{
			name:    "正常系: 動物とカテゴリで絞り込む",
			filter:  model.PartFilter{AnimalType: &beef, PartCategory: &organ},
			wantIDs: []int{5},
		},
		{
			name:    "異常系: 未知の動物",
			filter:  model.PartFilter{AnimalType: &bad},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 未知のカテゴリ",
			filter:  model.PartFilter{PartCategory: &badCategory},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := svc.ListParts(ctx, tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]int, 0, len(parts))
			for _, p := range parts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
