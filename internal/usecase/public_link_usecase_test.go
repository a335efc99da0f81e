package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type publicLinkMocks struct {
	repo          *mock_interfaces.MockIPublicLinkRepository
	workOrderRepo *mock_interfaces.MockIWorkOrderRepository
	budgetRepo    *mock_interfaces.MockIBudgetRepository
	userRepo      *mock_interfaces.MockIUserRepository
}

func newPublicLinkUseCaseForTest(t *testing.T, budgets IBudgetUseCase) (*PublicLinkUseCase, publicLinkMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := publicLinkMocks{
		repo:          mock_interfaces.NewMockIPublicLinkRepository(ctrl),
		workOrderRepo: mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		budgetRepo:    mock_interfaces.NewMockIBudgetRepository(ctrl),
		userRepo:      mock_interfaces.NewMockIUserRepository(ctrl),
	}
	return NewPublicLinkUseCase(m.repo, m.workOrderRepo, m.budgetRepo, m.userRepo, budgets), m
}

func awaitingApprovalOrder() entities.WorkOrder {
	return entities.WorkOrder{ID: "wo-1", CompanyID: "co-1", Status: entities.StatusAguardandoAprovacao}
}

func TestPublicLinkUseCase_Issue(t *testing.T) {
	t.Run("work order not found", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, nil)
		_, err := uc.Issue(context.Background(), "co-1", "wo-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("another company", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", CompanyID: "co-2"}, nil)
		_, err := uc.Issue(context.Background(), "co-1", "wo-1")
		if !errors.Is(err, ErrCompanyMismatch) {
			t.Fatalf("expected ErrCompanyMismatch, got %v", err)
		}
	})

	t.Run("issues unique token", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		m.repo.EXPECT().ExistsByToken(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PublicLink{})).DoAndReturn(
			func(_ context.Context, link entities.PublicLink) (entities.PublicLink, error) {
				if link.WorkOrderID != "wo-1" || link.CompanyID != "co-1" {
					t.Fatalf("unexpected link: %+v", link)
				}
				if len(link.Token) != 64 {
					t.Fatalf("expected sha256 hex token, got %q", link.Token)
				}
				return link, nil
			},
		)

		link, err := uc.Issue(context.Background(), "co-1", "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ID == "" {
			t.Fatal("expected generated id")
		}
	})

	t.Run("regenerates on collision", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		gomock.InOrder(
			m.repo.EXPECT().ExistsByToken(gomock.Any(), gomock.Any()).Return(true, nil),
			m.repo.EXPECT().ExistsByToken(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, link entities.PublicLink) (entities.PublicLink, error) {
				return link, nil
			},
		)

		if _, err := uc.Issue(context.Background(), "co-1", "wo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries when concurrent insert takes the token", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		m.repo.EXPECT().ExistsByToken(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		gomock.InOrder(
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PublicLink{}, nil),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, link entities.PublicLink) (entities.PublicLink, error) {
					return link, nil
				},
			),
		)

		if _, err := uc.Issue(context.Background(), "co-1", "wo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		m.repo.EXPECT().ExistsByToken(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxTokenAttempts)

		_, err := uc.Issue(context.Background(), "co-1", "wo-1")
		if !errors.Is(err, ErrTokenGenerationExhausted) {
			t.Fatalf("expected ErrTokenGenerationExhausted, got %v", err)
		}
	})
}

func TestPublicLinkUseCase_GetWorkOrderByToken(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc, _ := newPublicLinkUseCaseForTest(t, nil)
		_, err := uc.GetWorkOrderByToken(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PublicLink{}, nil)
		_, err := uc.GetWorkOrderByToken(context.Background(), "tok")
		if !errors.Is(err, ErrPublicLinkNotFound) {
			t.Fatalf("expected ErrPublicLinkNotFound, got %v", err)
		}
	})

	t.Run("returns work order with budgets", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		m.repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PublicLink{ID: "l-1", WorkOrderID: "wo-1"}, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		m.budgetRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Budget{{ID: "b-1"}}, nil)

		view, err := uc.GetWorkOrderByToken(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.WorkOrder.ID != "wo-1" || len(view.Budgets) != 1 {
			t.Fatalf("unexpected view: %+v", view)
		}
	})
}

func TestPublicLinkUseCase_DecisionsByToken(t *testing.T) {
	expectResolvedLink := func(m publicLinkMocks, wo entities.WorkOrder, b entities.Budget) {
		m.repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PublicLink{ID: "l-1", WorkOrderID: wo.ID}, nil)
		m.workOrderRepo.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)
		m.budgetRepo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	}

	pendingBudget := func() entities.Budget {
		return entities.Budget{ID: "b-1", CompanyID: "co-1", WorkOrderID: "wo-1", Status: entities.BudgetStatusPendente}
	}

	t.Run("budget from another work order", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		b := pendingBudget()
		b.WorkOrderID = "wo-other"
		expectResolvedLink(m, awaitingApprovalOrder(), b)
		_, err := uc.ApproveByToken(context.Background(), "tok", "b-1", "")
		if !errors.Is(err, ErrBudgetLinkMismatch) {
			t.Fatalf("expected ErrBudgetLinkMismatch, got %v", err)
		}
	})

	t.Run("work order no longer awaiting approval", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		wo := awaitingApprovalOrder()
		wo.Status = entities.StatusEmConserto
		expectResolvedLink(m, wo, pendingBudget())
		_, err := uc.ApproveByToken(context.Background(), "tok", "b-1", "")
		if !errors.Is(err, ErrApprovalPhaseClosed) {
			t.Fatalf("expected ErrApprovalPhaseClosed, got %v", err)
		}
	})

	t.Run("budget already processed", func(t *testing.T) {
		uc, m := newPublicLinkUseCaseForTest(t, nil)
		b := pendingBudget()
		b.Status = entities.BudgetStatusAprovado
		expectResolvedLink(m, awaitingApprovalOrder(), b)
		_, err := uc.RejectByToken(context.Background(), "tok", "b-1", "price is way too high")
		if !errors.Is(err, ErrBudgetAlreadyProcessed) {
			t.Fatalf("expected ErrBudgetAlreadyProcessed, got %v", err)
		}
	})

	t.Run("approve delegates with link method and attribution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		budgets := NewBudgetUseCase(budgetRepo, workOrderRepo, userRepo)
		linkRepo := mock_interfaces.NewMockIPublicLinkRepository(ctrl)
		uc := NewPublicLinkUseCase(linkRepo, workOrderRepo, budgetRepo, userRepo, budgets)

		linkRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PublicLink{ID: "l-1", WorkOrderID: "wo-1"}, nil)
		workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBudget(), nil).Times(2)
		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", CompanyID: "co-1"}, nil).Times(2)
		budgetRepo.EXPECT().ListByWorkOrderIDAndStatus(gomock.Any(), "wo-1", entities.BudgetStatusAprovado).Return(nil, nil)
		budgetRepo.EXPECT().ApplyApprovalSwap(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, promoted entities.Budget, _ []entities.Budget) (entities.Budget, error) {
				if promoted.ApprovalMethod != entities.ApprovalMethodLink {
					t.Fatalf("expected link method, got %s", promoted.ApprovalMethod)
				}
				if promoted.ApprovedBy != "user-1" {
					t.Fatalf("expected attributed approval, got %q", promoted.ApprovedBy)
				}
				return promoted, nil
			},
		)

		_, err := uc.ApproveByToken(context.Background(), "tok", "b-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unresolvable acting user stays anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		budgets := NewBudgetUseCase(budgetRepo, workOrderRepo, userRepo)
		linkRepo := mock_interfaces.NewMockIPublicLinkRepository(ctrl)
		uc := NewPublicLinkUseCase(linkRepo, workOrderRepo, budgetRepo, userRepo, budgets)

		linkRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PublicLink{ID: "l-1", WorkOrderID: "wo-1"}, nil)
		workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(awaitingApprovalOrder(), nil)
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBudget(), nil).Times(2)
		userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)
		budgetRepo.EXPECT().ListByWorkOrderIDAndStatus(gomock.Any(), "wo-1", entities.BudgetStatusAprovado).Return(nil, nil)
		budgetRepo.EXPECT().ApplyApprovalSwap(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, promoted entities.Budget, _ []entities.Budget) (entities.Budget, error) {
				if promoted.ApprovedBy != "" {
					t.Fatalf("expected anonymous approval, got %q", promoted.ApprovedBy)
				}
				return promoted, nil
			},
		)

		_, err := uc.ApproveByToken(context.Background(), "tok", "b-1", "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGenerateToken(t *testing.T) {
	a, err := generateToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := generateToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 64 || len(b) != 64 {
		t.Fatalf("expected 64-char hex tokens, got %d and %d", len(a), len(b))
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
}
