package webutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tabebui/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "正常系", body: `{"name":"ハラミ"}`},
		{name: "異常系: 空", body: ``, wantErr: true},
		{name: "異常系: 未知のフィールド", body: `{"name":"a","extra":1}`, wantErr: true},
		{name: "異常系: 複数のJSON", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "異常系: 型違い", body: `{"name":1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ハラミ", dst.Name)
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&per_page=x", nil)

	v, err := QueryInt(req, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = QueryInt(req, "missing", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = QueryInt(req, "per_page", 20)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
