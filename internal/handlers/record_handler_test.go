// internal/handlers/record_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"tabebui/internal/middleware"
	"tabebui/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordHandler_PostEatingRecord(t *testing.T) {
	otherUser := uuid.New()
	eatenAt := time.Date(2024, 6, 5, 19, 30, 0, 0, time.UTC)
	validReq := model.CreateRecordRequest{
		PartIDs:        []int{3, 7},
		RestaurantName: strPtr("焼肉A"),
		EatenAt:        &eatenAt,
		Rating:         intPtr(4),
	}
	created := &model.CreateRecordResponse{
		SessionID:             10,
		EatenAt:               eatenAt,
		Records:               []model.CreatedRecord{{ID: 1, AnimalPartID: 3}, {ID: 2, AnimalPartID: 7}},
		NewlyConqueredPartIDs: []int{7},
	}

	tests := []struct {
		name         string
		body         interface{}
		headers      map[string]string
		setupMock    func(m *mockedServices)
		expectedCode int
		errorCode    string
		errorField   string
	}{
		{
			name: "正常系: 既定ユーザーで作成",
			body: validReq,
			setupMock: func(m *mockedServices) {
				m.record.On("RecordSession", mock.Anything, defaultTestUserID, mock.MatchedBy(func(req *model.CreateRecordRequest) bool {
					return assert.ObjectsAreEqual([]int{3, 7}, req.PartIDs) && *req.RestaurantName == "焼肉A" && req.EatenAt.Equal(eatenAt)
				})).Return(created, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "正常系: ヘッダーでユーザーを指定",
			body:    validReq,
			headers: map[string]string{middleware.UserIDHeader: otherUser.String()},
			setupMock: func(m *mockedServices) {
				m.record.On("RecordSession", mock.Anything, otherUser, mock.Anything).Return(created, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "異常系: ユーザーIDの形式が不正",
			body:         validReq,
			headers:      map[string]string{middleware.UserIDHeader: "not-a-uuid"},
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_USER_ID",
			errorField:   "user_id",
		},
		{
			name:         "異常系: part_ids が空",
			body:         model.CreateRecordRequest{PartIDs: []int{}},
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "part_ids",
		},
		{
			name:         "異常系: 評価が範囲外",
			body:         model.CreateRecordRequest{PartIDs: []int{1}, Rating: intPtr(6)},
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "rating",
		},
		{
			name:         "異常系: 未知のフィールド",
			body:         `{"part_ids":[1],"user_id":"x"}`,
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_REQUEST_BODY",
		},
		{
			name:         "異常系: JSONが壊れている",
			body:         `{"part_ids":[1]`,
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 存在しない部位",
			body: model.CreateRecordRequest{PartIDs: []int{1, 999}},
			setupMock: func(m *mockedServices) {
				m.record.On("RecordSession", mock.Anything, defaultTestUserID, mock.Anything).
					Return(nil, model.NewUnknownPartsError([]int{999})).Once()
			},
			expectedCode: http.StatusBadRequest,
			errorCode:    "UNKNOWN_PART_IDS",
			errorField:   "part_ids",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _, send := newMockedServer(t)
			tc.setupMock(m)

			body := send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/eating-records", Body: tc.body, Headers: tc.headers},
				httpResponseExpectations{ExpectedCode: tc.expectedCode, ExpectedErrorCode: tc.errorCode})

			if tc.errorCode != "" {
				detail := verifyErrorResponse(t, body, tc.errorCode)
				assert.Equal(t, tc.errorField, detail.Field)
				return
			}
			got := decodeBody[model.CreateRecordResponse](t, body)
			assert.Equal(t, 10, got.SessionID)
			assert.Len(t, got.Records, 2)
			assert.Equal(t, []int{7}, got.NewlyConqueredPartIDs)
		})
	}
}

func TestRecordHandler_PostEatingRecord_UnknownIDsInBody(t *testing.T) {
	m, _, send := newMockedServer(t)
	m.record.On("RecordSession", mock.Anything, defaultTestUserID, mock.Anything).
		Return(nil, model.NewUnknownPartsError([]int{998, 999})).Once()

	body := send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/eating-records", Body: model.CreateRecordRequest{PartIDs: []int{999, 998}}},
		httpResponseExpectations{ExpectedCode: http.StatusBadRequest})

	detail := verifyErrorResponse(t, body, "UNKNOWN_PART_IDS")
	assert.ElementsMatch(t, []int{998, 999}, detail.InvalidIDs)
}

func TestRecordHandler_GetEatingSessions(t *testing.T) {
	list := &model.SessionListResponse{Sessions: []model.SessionSummary{{ID: 1}}, Total: 1, Page: 2, PerPage: 5, TotalPages: 1}

	tests := []struct {
		name         string
		path         string
		setupMock    func(m *mockedServices)
		expectedCode int
		errorCode    string
	}{
		{
			name: "正常系: 既定のページング",
			path: "/api/v1/eating-sessions",
			setupMock: func(m *mockedServices) {
				m.record.On("ListSessions", mock.Anything, defaultTestUserID, 1, 20).Return(list, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "正常系: ページ指定",
			path: "/api/v1/eating-sessions?page=2&per_page=5",
			setupMock: func(m *mockedServices) {
				m.record.On("ListSessions", mock.Anything, defaultTestUserID, 2, 5).Return(list, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: page が整数でない",
			path:         "/api/v1/eating-sessions?page=abc",
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name: "異常系: per_page が範囲外",
			path: "/api/v1/eating-sessions?per_page=1000",
			setupMock: func(m *mockedServices) {
				m.record.On("ListSessions", mock.Anything, defaultTestUserID, 1, 1000).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "per_pageは1から100の範囲で指定してください。", "per_page", model.ErrInvalidInput)).Once()
			},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _, send := newMockedServer(t)
			tc.setupMock(m)

			body := send(httpRequestDetails{Method: http.MethodGet, Path: tc.path},
				httpResponseExpectations{ExpectedCode: tc.expectedCode, ExpectedErrorCode: tc.errorCode})

			if tc.errorCode == "" {
				got := decodeBody[model.SessionListResponse](t, body)
				assert.Equal(t, int64(1), got.Total)
			}
		})
	}
}

func TestRecordHandler_GetEatingSession(t *testing.T) {
	detail := &model.SessionDetail{
		SessionSummary: model.SessionSummary{ID: 42, PartCount: 1, PartNames: []string{"ハラミ"}},
		Parts:          []model.SessionPart{{RecordID: 1, AnimalPartID: 3, PartNameJa: "ハラミ"}},
	}

	tests := []struct {
		name         string
		path         string
		setupMock    func(m *mockedServices)
		expectedCode int
		errorCode    string
	}{
		{
			name: "正常系",
			path: "/api/v1/eating-sessions/42",
			setupMock: func(m *mockedServices) {
				m.record.On("GetSession", mock.Anything, defaultTestUserID, 42).Return(detail, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: IDが数値でない",
			path:         "/api/v1/eating-sessions/abc",
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_URL_PARAM",
		},
		{
			name:         "異常系: IDが0",
			path:         "/api/v1/eating-sessions/0",
			setupMock:    func(m *mockedServices) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_URL_PARAM",
		},
		{
			name: "異常系: 見つからない",
			path: "/api/v1/eating-sessions/43",
			setupMock: func(m *mockedServices) {
				m.record.On("GetSession", mock.Anything, defaultTestUserID, 43).
					Return(nil, model.NewAppError("SESSION_NOT_FOUND", "指定された食事記録が見つかりません。", "session_id", model.ErrNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
			errorCode:    "SESSION_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _, send := newMockedServer(t)
			tc.setupMock(m)

			body := send(httpRequestDetails{Method: http.MethodGet, Path: tc.path},
				httpResponseExpectations{ExpectedCode: tc.expectedCode, ExpectedErrorCode: tc.errorCode})

			if tc.errorCode == "" {
				got := decodeBody[model.SessionDetail](t, body)
				assert.Equal(t, 42, got.ID)
				assert.Len(t, got.Parts, 1)
			}
		})
	}
}
