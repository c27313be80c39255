package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firex_service/internal/adapter/http/handlers/mocks"
	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceRequestUseCase, *mocks.MockIServiceRequestQueryUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIServiceRequestUseCase(ctrl)
	queries := mocks.NewMockIServiceRequestQueryUseCase(ctrl)
	h := NewServiceRequestHandler(uc, queries)

	r := gin.New()
	group := r.Group("/v1/service-requests")
	group.POST("", h.CreateRequest)
	group.GET("", h.GetAllRequests)
	group.GET("/request/:businessId", h.GetRequestByBusinessID)
	group.GET("/my-requests", h.GetMyRequests)
	group.GET("/status/:status", h.GetRequestsByStatus)
	group.GET("/stats", h.GetStats)
	group.GET("/:id", h.GetRequestByID)
	group.PUT("/:id/status", h.UpdateStatus)
	group.DELETE("/:id", h.DeleteRequest)
	return r, uc, queries
}

func sampleRequest() entities.ServiceRequest {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return entities.ServiceRequest{
		ID:                    "id-1",
		BusinessID:            "SR-01K3ZJ5W9PTEST",
		RequesterID:           "user-1",
		RequesterEmail:        "user@example.com",
		ExtinguisherType:      entities.ExtinguisherTypeABC,
		ExtinguisherCondition: entities.ExtinguisherConditionDischarged,
		ScheduledDate:         "2026-09-02",
		TimeSlot:              entities.TimeSlotMorning,
		Address:               "Calle 10",
		Phone:                 "3001234567",
		Status:                entities.RequestStatusPending,
		Timeline: []entities.TimelineEntry{
			{Timestamp: now, Status: entities.RequestStatusPending, Actor: "user@example.com"},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func createPayload() map[string]string {
	return map[string]string{
		"extinguisher_type":      "ABC",
		"extinguisher_condition": "DISCHARGED",
		"scheduled_date":         "2026-09-02",
		"time_slot":              "MORNING",
		"address":                "Calle 10",
		"phone":                  "3001234567",
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Code
}

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	identity := map[string]string{"User-Id": "user-1", "User-Email": "user@example.com"}

	t.Run("missing identity headers", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/service-requests", createPayload(), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "MISSING_IDENTITY" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", bytes.NewBufferString("{"))
		req.Header.Set("User-Id", "user-1")
		req.Header.Set("User-Email", "user@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		payload := createPayload()
		delete(payload, "phone")
		w := doJSON(t, r, http.MethodPost, "/v1/service-requests", payload, identity)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().Create(gomock.Any(), "user-1", "user@example.com", gomock.Any()).
			Return(entities.ServiceRequest{}, &usecase.ValidationError{Field: "scheduled_date", Message: "date is in the past"})

		w := doJSON(t, r, http.MethodPost, "/v1/service-requests", createPayload(), identity)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_REQUEST" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		sample := sampleRequest()
		uc.EXPECT().Create(gomock.Any(), "user-1", "user@example.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, draft usecase.ServiceRequestDraft) (entities.ServiceRequest, error) {
				if draft.ExtinguisherType != "ABC" || draft.ScheduledDate != "2026-09-02" {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return sample, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/service-requests", createPayload(), identity)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			BusinessID string `json:"business_id"`
			RequestID  string `json:"request_id"`
			Status     string `json:"status"`
			Timeline   []struct {
				Actor string `json:"actor"`
			} `json:"timeline"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.BusinessID != sample.BusinessID || body.RequestID != sample.BusinessID {
			t.Fatalf("unexpected identifiers: %+v", body)
		}
		if body.Status != "PENDING" || len(body.Timeline) != 1 || body.Timeline[0].Actor != "user@example.com" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().Create(gomock.Any(), "user-1", "user@example.com", gomock.Any()).
			Return(entities.ServiceRequest{}, errors.New("db down"))

		w := doJSON(t, r, http.MethodPost, "/v1/service-requests", createPayload(), identity)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})
}

func TestServiceRequestHandler_GetRequestByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().GetByID(gomock.Any(), "id-1").Return(sampleRequest(), nil)

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/id-1", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().GetByID(gomock.Any(), "missing").
			Return(entities.ServiceRequest{}, &usecase.NotFoundError{Resource: "service request", Field: "id", Value: "missing"})

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/missing", nil, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "REQUEST_NOT_FOUND" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})
}

func TestServiceRequestHandler_GetRequestByBusinessID(t *testing.T) {
	r, _, queries := newTestRouter(t)
	sample := sampleRequest()
	queries.EXPECT().GetByBusinessID(gomock.Any(), sample.BusinessID).Return(sample, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/service-requests/request/"+sample.BusinessID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServiceRequestHandler_GetMyRequests(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().ListByRequester(gomock.Any(), "").Return(nil, usecase.ErrInvalidRequesterEmail)

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/my-requests", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns requester requests", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().ListByRequester(gomock.Any(), "user@example.com").
			Return([]entities.ServiceRequest{sampleRequest()}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/my-requests?email=user@example.com", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 request, got %d", len(body))
		}
	})
}

func TestServiceRequestHandler_GetAllRequests(t *testing.T) {
	r, _, queries := newTestRouter(t)
	queries.EXPECT().ListAll(gomock.Any()).Return([]entities.ServiceRequest{}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/service-requests", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// Empty result renders as [], not null.
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestServiceRequestHandler_GetRequestsByStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().ListByStatus(gomock.Any(), "SHIPPED").
			Return(nil, &usecase.ValidationError{Field: "status", Message: "unknown status"})

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/status/SHIPPED", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("known status", func(t *testing.T) {
		r, _, queries := newTestRouter(t)
		queries.EXPECT().ListByStatus(gomock.Any(), "PENDING").
			Return([]entities.ServiceRequest{sampleRequest()}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/service-requests/status/PENDING", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_UpdateStatus(t *testing.T) {
	t.Run("missing actor header", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := doJSON(t, r, http.MethodPut, "/v1/service-requests/id-1/status", map[string]string{"status": "COLLECTED"}, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "MISSING_ACTOR" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "id-1", "operator", "COLLECTED").
			Return(entities.ServiceRequest{}, &entities.InvalidTransitionError{
				RequestID: "SR-1",
				Current:   entities.RequestStatusDone,
				Requested: entities.RequestStatusCollected,
			})

		w := doJSON(t, r, http.MethodPut, "/v1/service-requests/id-1/status",
			map[string]string{"status": "COLLECTED"}, map[string]string{"Updated-By": "operator"})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "id-1", "operator", "COLLECTED").
			Return(entities.ServiceRequest{}, &usecase.ConflictError{RequestID: "SR-1"})

		w := doJSON(t, r, http.MethodPut, "/v1/service-requests/id-1/status",
			map[string]string{"status": "COLLECTED"}, map[string]string{"Updated-By": "operator"})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "CONCURRENT_UPDATE" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		sample := sampleRequest()
		sample.AppendTimeline(entities.RequestStatusCollected, "operator", sample.UpdatedAt.Add(time.Hour))
		uc.EXPECT().UpdateStatus(gomock.Any(), "id-1", "operator", "COLLECTED").Return(sample, nil)

		w := doJSON(t, r, http.MethodPut, "/v1/service-requests/id-1/status",
			map[string]string{"status": "COLLECTED"}, map[string]string{"Updated-By": "operator"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status   string `json:"status"`
			Timeline []struct {
				Status string `json:"status"`
			} `json:"timeline"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Status != "COLLECTED" || len(body.Timeline) != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestServiceRequestHandler_DeleteRequest(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/service-requests/id-1", nil, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("blocked by status", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "id-1").
			Return(&usecase.ValidationError{Field: "status", Message: "only PENDING or DONE requests can be deleted"})

		w := doJSON(t, r, http.MethodDelete, "/v1/service-requests/id-1", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "missing").
			Return(&usecase.NotFoundError{Resource: "service request", Field: "id", Value: "missing"})

		w := doJSON(t, r, http.MethodDelete, "/v1/service-requests/missing", nil, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_GetStats(t *testing.T) {
	r, _, queries := newTestRouter(t)
	queries.EXPECT().Stats(gomock.Any()).Return(map[string]int64{
		"PENDING": 3,
		"DONE":    7,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/service-requests/stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if stats["PENDING"] != 3 || stats["DONE"] != 7 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}
