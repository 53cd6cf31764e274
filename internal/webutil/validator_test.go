package webutil

import (
	"errors"
	"testing"

	"tabebui/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_JapaneseMessages(t *testing.T) {
	tests := []struct {
		name      string
		target    interface{}
		wantField string
		wantMsg   string
	}{
		{
			name:      "必須",
			target:    model.ChatRequest{},
			wantField: "message",
			wantMsg:   "メッセージは必須項目です。",
		},
		{
			name:      "件数の下限",
			target:    model.CreateRecordRequest{PartIDs: []int{}},
			wantField: "part_ids",
			wantMsg:   "部位IDは1件以上で入力してください。",
		},
		{
			name:      "数値の上限",
			target:    model.CreateRecordRequest{PartIDs: []int{1}, Rating: func() *int { v := 6; return &v }()},
			wantField: "rating",
			wantMsg:   "評価は5以下で入力してください。",
		},
		{
			name:      "配列要素",
			target:    model.CreateRecordRequest{PartIDs: []int{1, 0}},
			wantField: "part_ids[1]",
			wantMsg:   "部位IDは正の値で指定してください。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator.Struct(tt.target)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)

			appErr := NewValidationError(verrs)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
			assert.Equal(t, tt.wantField, appErr.Detail.Field)
			assert.Equal(t, tt.wantMsg, appErr.Detail.Message)
			assert.ErrorIs(t, appErr, model.ErrInvalidInput)
		})
	}
}
