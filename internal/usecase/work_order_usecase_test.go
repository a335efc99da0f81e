package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	repo        *mock_interfaces.MockIWorkOrderRepository
	historyRepo *mock_interfaces.MockIWorkOrderHistoryRepository
	budgetRepo  *mock_interfaces.MockIBudgetRepository
	userRepo    *mock_interfaces.MockIUserRepository
	clientRepo  *mock_interfaces.MockIClientRepository
	equipRepo   *mock_interfaces.MockIEquipmentRepository
}

func newWorkOrderUseCaseForTest(t *testing.T, warrantyDays int) (*WorkOrderUseCase, workOrderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := workOrderMocks{
		repo:        mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		historyRepo: mock_interfaces.NewMockIWorkOrderHistoryRepository(ctrl),
		budgetRepo:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		userRepo:    mock_interfaces.NewMockIUserRepository(ctrl),
		clientRepo:  mock_interfaces.NewMockIClientRepository(ctrl),
		equipRepo:   mock_interfaces.NewMockIEquipmentRepository(ctrl),
	}
	uc := NewWorkOrderUseCase(m.repo, m.historyRepo, m.budgetRepo, m.userRepo, m.clientRepo, m.equipRepo, warrantyDays)
	return uc, m
}

func validCreateParams() CreateWorkOrderParams {
	return CreateWorkOrderParams{
		CompanyID:      "co-1",
		ClientID:       "cl-1",
		EquipmentID:    "eq-1",
		TechnicianID:   "tech-1",
		ReportedDefect: "does not turn on",
		ActingUserID:   "user-1",
	}
}

func expectRegistryLookups(m workOrderMocks) {
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{ID: "cl-1", CompanyID: "co-1"}, nil)
	m.equipRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", CompanyID: "co-1", ClientID: "cl-1"}, nil)
	m.userRepo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.User{ID: "tech-1", CompanyID: "co-1", Role: entities.RoleMecanico}, nil)
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t, 0)
		params := validCreateParams()
		params.CompanyID = "   "
		_, err := uc.Create(context.Background(), params)
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("invalid reported defect", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t, 0)
		params := validCreateParams()
		params.ReportedDefect = "  "
		_, err := uc.Create(context.Background(), params)
		if !errors.Is(err, ErrInvalidReportedDefect) {
			t.Fatalf("expected ErrInvalidReportedDefect, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{}, nil)
		_, err := uc.Create(context.Background(), validCreateParams())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("client from another company", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{ID: "cl-1", CompanyID: "co-2"}, nil)
		_, err := uc.Create(context.Background(), validCreateParams())
		if !errors.Is(err, ErrCompanyMismatch) {
			t.Fatalf("expected ErrCompanyMismatch, got %v", err)
		}
	})

	t.Run("equipment belongs to another client", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{ID: "cl-1", CompanyID: "co-1"}, nil)
		m.equipRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", CompanyID: "co-1", ClientID: "cl-other"}, nil)
		_, err := uc.Create(context.Background(), validCreateParams())
		if !errors.Is(err, ErrEquipmentClientMismatch) {
			t.Fatalf("expected ErrEquipmentClientMismatch, got %v", err)
		}
	})

	t.Run("assignee is not a technician", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{ID: "cl-1", CompanyID: "co-1"}, nil)
		m.equipRepo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", CompanyID: "co-1", ClientID: "cl-1"}, nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.User{ID: "tech-1", CompanyID: "co-1", Role: entities.RoleAtendente}, nil)
		_, err := uc.Create(context.Background(), validCreateParams())
		if !errors.Is(err, ErrNotATechnician) {
			t.Fatalf("expected ErrNotATechnician, got %v", err)
		}
	})

	t.Run("create success writes creation history", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		expectRegistryLookups(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{}), gomock.AssignableToTypeOf(entities.WorkOrderHistory{})).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, hist entities.WorkOrderHistory) (entities.WorkOrder, error) {
				if wo.ID == "" || wo.Status != entities.StatusRecebido {
					t.Fatalf("unexpected work order: %+v", wo)
				}
				if wo.IsReturnOrder || wo.OriginWorkOrderID != "" {
					t.Fatalf("expected a regular order, got %+v", wo)
				}
				if hist.WorkOrderID != wo.ID || hist.StatusBefore != "" || hist.StatusAfter != entities.StatusRecebido {
					t.Fatalf("unexpected history: %+v", hist)
				}
				if hist.UserID != "user-1" {
					t.Fatalf("expected attributed history, got %q", hist.UserID)
				}
				return wo, nil
			},
		)

		wo, err := uc.Create(context.Background(), validCreateParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.ID == "" {
			t.Fatal("expected generated id")
		}
	})

	t.Run("return order within warranty", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 30)
		expectRegistryLookups(m)
		deliveredAt := time.Now().UTC().AddDate(0, 0, -29)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-origin").Return(entities.WorkOrder{
			ID: "wo-origin", CompanyID: "co-1", Status: entities.StatusEntregue, DeliveredAt: &deliveredAt,
		}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, hist entities.WorkOrderHistory) (entities.WorkOrder, error) {
				if !wo.IsReturnOrder || wo.OriginWorkOrderID != "wo-origin" {
					t.Fatalf("expected return order linked to origin, got %+v", wo)
				}
				return wo, nil
			},
		)

		params := validCreateParams()
		params.OriginWorkOrderID = "wo-origin"
		if _, err := uc.Create(context.Background(), params); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("return order past warranty", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 30)
		expectRegistryLookups(m)
		deliveredAt := time.Now().UTC().AddDate(0, 0, -31)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-origin").Return(entities.WorkOrder{
			ID: "wo-origin", CompanyID: "co-1", Status: entities.StatusEntregue, DeliveredAt: &deliveredAt,
		}, nil)

		params := validCreateParams()
		params.OriginWorkOrderID = "wo-origin"
		_, err := uc.Create(context.Background(), params)
		if !errors.Is(err, ErrWarrantyExpired) {
			t.Fatalf("expected ErrWarrantyExpired, got %v", err)
		}
	})

	t.Run("return order origin not delivered", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 30)
		expectRegistryLookups(m)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-origin").Return(entities.WorkOrder{
			ID: "wo-origin", CompanyID: "co-1", Status: entities.StatusPronto,
		}, nil)

		params := validCreateParams()
		params.OriginWorkOrderID = "wo-origin"
		_, err := uc.Create(context.Background(), params)
		if !errors.Is(err, ErrOriginNotDelivered) {
			t.Fatalf("expected ErrOriginNotDelivered, got %v", err)
		}
	})

	t.Run("return order origin from another company", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 30)
		expectRegistryLookups(m)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-origin").Return(entities.WorkOrder{
			ID: "wo-origin", CompanyID: "co-2", Status: entities.StatusEntregue,
		}, nil)

		params := validCreateParams()
		params.OriginWorkOrderID = "wo-origin"
		_, err := uc.Create(context.Background(), params)
		if !errors.Is(err, ErrCompanyMismatch) {
			t.Fatalf("expected ErrCompanyMismatch, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid target status", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t, 0)
		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", "finalizado", "", "user-1")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, nil)
		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, "", "user-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("soft-deleted order is not found", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		deletedAt := time.Now().UTC()
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{
			ID: "wo-1", CompanyID: "co-1", Status: entities.StatusRecebido, DeletedAt: &deletedAt,
		}, nil)
		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, "", "user-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("another company", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-2", Status: entities.StatusRecebido}, nil)
		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, "", "user-1")
		if !errors.Is(err, ErrCompanyMismatch) {
			t.Fatalf("expected ErrCompanyMismatch, got %v", err)
		}
	})

	t.Run("terminal order rejects any change without writing", func(t *testing.T) {
		for _, status := range []entities.WorkOrderStatus{entities.StatusEntregue, entities.StatusCancelado} {
			uc, m := newWorkOrderUseCaseForTest(t, 0)
			m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: status}, nil)
			_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, "", "user-1")
			if !errors.Is(err, ErrWorkOrderClosed) {
				t.Fatalf("status %s: expected ErrWorkOrderClosed, got %v", status, err)
			}
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusRecebido}, nil)
		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEntregue, "", "user-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("legal transition writes attributed history", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusRecebido}, nil)
		m.repo.EXPECT().SaveStatusWithHistory(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, hist *entities.WorkOrderHistory) (entities.WorkOrder, error) {
				if wo.Status != entities.StatusEmAnalise {
					t.Fatalf("expected em_analise, got %s", wo.Status)
				}
				if hist == nil {
					t.Fatal("expected history row")
				}
				if hist.StatusBefore != entities.StatusRecebido || hist.StatusAfter != entities.StatusEmAnalise {
					t.Fatalf("unexpected history: %+v", hist)
				}
				if hist.UserID != "user-1" || hist.Observation != "starting diagnosis" {
					t.Fatalf("unexpected history attribution: %+v", hist)
				}
				return wo, nil
			},
		)

		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, " starting diagnosis ", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("anonymous transition skips history", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusRecebido}, nil)
		m.repo.EXPECT().SaveStatusWithHistory(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, _ *entities.WorkOrderHistory) (entities.WorkOrder, error) {
				return wo, nil
			},
		)

		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEmAnalise, "", "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery stamps delivered_at", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusPronto}, nil)
		m.repo.EXPECT().SaveStatusWithHistory(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, _ *entities.WorkOrderHistory) (entities.WorkOrder, error) {
				if wo.Status != entities.StatusEntregue || wo.DeliveredAt == nil {
					t.Fatalf("expected delivered order with timestamp, got %+v", wo)
				}
				return wo, nil
			},
		)

		_, err := uc.ChangeStatus(context.Background(), "co-1", "wo-1", entities.StatusEntregue, "", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Cancel(t *testing.T) {
	t.Run("cancel mid-flow", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusEmConserto}, nil)
		m.repo.EXPECT().SaveStatusWithHistory(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder, hist *entities.WorkOrderHistory) (entities.WorkOrder, error) {
				if wo.Status != entities.StatusCancelado {
					t.Fatalf("expected cancelado, got %s", wo.Status)
				}
				if hist == nil || hist.Observation != "work order cancelled" {
					t.Fatalf("unexpected history: %+v", hist)
				}
				return wo, nil
			},
		)

		if _, err := uc.Cancel(context.Background(), "co-1", "wo-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel delivered order", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusEntregue}, nil)
		_, err := uc.Cancel(context.Background(), "co-1", "wo-1", "user-1")
		if !errors.Is(err, ErrWorkOrderClosed) {
			t.Fatalf("expected ErrWorkOrderClosed, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_GetDetails(t *testing.T) {
	t.Run("aggregates budgets and history", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusEmAnalise}, nil)
		m.budgetRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Budget{{ID: "b-1"}}, nil)
		m.historyRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.WorkOrderHistory{{ID: "h-1"}, {ID: "h-2"}}, nil)

		details, err := uc.GetDetails(context.Background(), "co-1", "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details.Budgets) != 1 || len(details.History) != 2 {
			t.Fatalf("unexpected aggregate: %+v", details)
		}
	})
}

func TestWorkOrderUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t, 0)
		_, err := uc.ListByStatus(context.Background(), "co-1", "unknown")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t, 0)
		m.repo.EXPECT().ListByCompanyAndStatus(gomock.Any(), "co-1", entities.StatusPronto).Return([]entities.WorkOrder{{ID: "wo-1"}}, nil)
		orders, err := uc.ListByStatus(context.Background(), "co-1", entities.StatusPronto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected one order, got %d", len(orders))
		}
	})
}
