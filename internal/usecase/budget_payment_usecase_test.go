package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo       *mock_interfaces.MockIBudgetPaymentRepository
	budgetRepo *mock_interfaces.MockIBudgetRepository
	gateway    *mock_interfaces.MockIPaymentGateway
}

func newBudgetPaymentUseCaseForTest(t *testing.T) (*BudgetPaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := paymentMocks{
		repo:       mock_interfaces.NewMockIBudgetPaymentRepository(ctrl),
		budgetRepo: mock_interfaces.NewMockIBudgetRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewBudgetPaymentUseCase(m.repo, m.budgetRepo, m.gateway), m
}

func approvedBudget() entities.Budget {
	return entities.Budget{ID: "b-1", CompanyID: "co-1", WorkOrderID: "wo-1", TotalValue: 150.5, Status: entities.BudgetStatusAprovado}
}

func TestBudgetPaymentUseCase_CreateAndCharge(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newBudgetPaymentUseCaseForTest(t)
		_, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)
		_, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", nil)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		b := approvedBudget()
		b.Status = entities.BudgetStatusPendente
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		_, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", nil)
		if !errors.Is(err, ErrBudgetNotApproved) {
			t.Fatalf("expected ErrBudgetNotApproved, got %v", err)
		}
	})

	t.Run("charges with enriched payload and stores provider response", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid forwarded payload: %v", err)
				}
				if req["external_reference"] != "b-1" {
					t.Fatalf("expected external_reference b-1, got %v", req["external_reference"])
				}
				if req["transaction_amount"] != 150.5 {
					t.Fatalf("expected amount from budget, got %v", req["transaction_amount"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
				if p.ID != "pay-1" || p.BudgetID != "b-1" || p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.ProviderPayload["status"] != "approved" {
					t.Fatalf("expected parsed provider payload, got %+v", p.ProviderPayload)
				}
				return p, nil
			},
		)

		payload := json.RawMessage(`{"transaction_amount":999,"payment_method_id":"pix"}`)
		p, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pay-1" {
			t.Fatalf("expected provider payment id, got %q", p.ID)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", nil)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndCharge(context.Background(), "co-1", "b-1", nil)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestBudgetPaymentUseCase_ListByBudgetID(t *testing.T) {
	t.Run("budget from another company", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		b := approvedBudget()
		b.CompanyID = "co-2"
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		_, err := uc.ListByBudgetID(context.Background(), "co-1", "b-1")
		if !errors.Is(err, ErrCompanyMismatch) {
			t.Fatalf("expected ErrCompanyMismatch, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		uc, m := newBudgetPaymentUseCaseForTest(t)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)
		m.repo.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return([]entities.BudgetPayment{{ID: "pay-1"}}, nil)
		payments, err := uc.ListByBudgetID(context.Background(), "co-1", "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected one payment, got %d", len(payments))
		}
	})
}
