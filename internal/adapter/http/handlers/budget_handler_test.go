package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(t *testing.T) (*gin.Engine, *mocks.MockIBudgetUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.POST("/v1/work-orders/:id/budgets", h.CreateBudget)
	r.GET("/v1/work-orders/:id/budgets", h.ListBudgetsByWorkOrder)
	r.GET("/v1/budgets/:id", h.GetBudget)
	r.PATCH("/v1/budgets/:id/approve", h.ApproveBudget)
	r.PATCH("/v1/budgets/:id/reject", h.RejectBudget)
	return r, uc
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("missing company header", func(t *testing.T) {
		r, _ := newBudgetRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/budgets", bytes.NewBufferString(`{"service_value":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with optional values", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateBudgetParams{})).DoAndReturn(
			func(_ context.Context, params usecase.CreateBudgetParams) (entities.Budget, error) {
				if params.WorkOrderID != "wo-1" || params.ServiceValue != 100 {
					t.Fatalf("unexpected params: %+v", params)
				}
				if params.PartsValue == nil || *params.PartsValue != 50.5 {
					t.Fatalf("expected parts value pointer, got %+v", params.PartsValue)
				}
				if params.TotalValue != nil {
					t.Fatalf("expected nil total, got %v", *params.TotalValue)
				}
				return entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/budgets", bytes.NewBufferString(`{"service_value":100,"parts_value":50.5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("total mismatch maps to 400", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetTotalMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/budgets", bytes.NewBufferString(`{"service_value":100,"total_value":500}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closed work order maps to 409", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrWorkOrderClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/budgets", bytes.NewBufferString(`{"service_value":100}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ApproveBudget(t *testing.T) {
	t.Run("passes method and acting user", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "co-1", "b-1", entities.ApprovalMethodPresencial, "user-1").
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", bytes.NewBufferString(`{"method":"presencial"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "aprovado" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("already processed maps to 409", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "co-1", "b-1", entities.ApprovalMethodLink, "").
			Return(entities.Budget{}, usecase.ErrBudgetAlreadyProcessed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", bytes.NewBufferString(`{"method":"link"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid method maps to 400", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "co-1", "b-1", entities.ApprovalMethod("email"), "").
			Return(entities.Budget{}, usecase.ErrInvalidApprovalMethod)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", bytes.NewBufferString(`{"method":"email"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_RejectBudget(t *testing.T) {
	t.Run("short reason maps to 400", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "co-1", "b-1", "too short").
			Return(entities.Budget{}, usecase.ErrRejectionReasonTooShort)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/reject", bytes.NewBufferString(`{"reason":"too short"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "co-1", "b-1", "customer declined the price").
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusRejeitado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/reject", bytes.NewBufferString(`{"reason":"customer declined the price"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ListBudgetsByWorkOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().ListByWorkOrderID(gomock.Any(), "co-1", "wo-1").
			Return([]entities.Budget{{ID: "b-1"}, {ID: "b-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/budgets", nil)
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected two budgets, got %d", len(resp))
		}
	})

	t.Run("work order not found maps to 404", func(t *testing.T) {
		r, uc := newBudgetRouter(t)
		uc.EXPECT().ListByWorkOrderID(gomock.Any(), "co-1", "wo-1").Return(nil, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/budgets", nil)
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
