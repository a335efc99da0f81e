package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidBudgetValue      = errors.New("invalid budget value")
	ErrBudgetTotalMismatch     = errors.New("total value does not match service plus parts")
	ErrInvalidApprovalMethod   = errors.New("invalid approval method")
	ErrBudgetAlreadyProcessed  = errors.New("budget already processed")
	ErrBudgetAlreadyRejected   = errors.New("budget already rejected")
	ErrRejectionReasonTooShort = errors.New("rejection reason must have at least 10 characters")
)

const (
	minRejectionReasonLen = 10
	totalValueTolerance   = 0.01
)

// CreateBudgetParams carries the inputs for quoting a work order. PartsValue
// and TotalValue are optional: parts default to zero and the total defaults
// to service plus parts.
type CreateBudgetParams struct {
	CompanyID    string
	WorkOrderID  string
	ServiceValue float64
	PartsValue   *float64
	TotalValue   *float64
	CreatedBy    string
}

// IBudgetUseCase exposes the budget approval workflow.
//
// Budgets are never edited or deleted: the only mutations are the approval
// and rejection transitions below. Corrections require a new budget.
//
// Approve enforces the single-approved-budget rule: any other approved
// budget of the same work order is demoted back to pendente in the same
// atomic repository write that promotes the target.

type IBudgetUseCase interface {
	Create(ctx context.Context, params CreateBudgetParams) (entities.Budget, error)
	Approve(ctx context.Context, companyID, budgetID string, method entities.ApprovalMethod, approverUserID string) (entities.Budget, error)
	Reject(ctx context.Context, companyID, budgetID, reason string) (entities.Budget, error)
	GetByID(ctx context.Context, companyID, budgetID string) (entities.Budget, error)
	ListByWorkOrderID(ctx context.Context, companyID, workOrderID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo          interfaces.IBudgetRepository
	workOrderRepo interfaces.IWorkOrderRepository
	userRepo      interfaces.IUserRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, workOrderRepo interfaces.IWorkOrderRepository, userRepo interfaces.IUserRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, workOrderRepo: workOrderRepo, userRepo: userRepo}
}

func (u *BudgetUseCase) Create(ctx context.Context, params CreateBudgetParams) (entities.Budget, error) {
	companyID := strings.TrimSpace(params.CompanyID)
	if companyID == "" {
		return entities.Budget{}, ErrInvalidCompanyID
	}
	workOrderID := strings.TrimSpace(params.WorkOrderID)
	if workOrderID == "" {
		return entities.Budget{}, ErrInvalidWorkOrderID
	}

	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if wo.ID == "" || wo.DeletedAt != nil {
		return entities.Budget{}, ErrWorkOrderNotFound
	}
	if wo.CompanyID != companyID {
		return entities.Budget{}, ErrCompanyMismatch
	}
	if wo.Status.IsTerminal() {
		return entities.Budget{}, ErrWorkOrderClosed
	}

	creator, err := u.userRepo.GetByID(ctx, strings.TrimSpace(params.CreatedBy))
	if err != nil {
		return entities.Budget{}, err
	}
	if creator.ID == "" {
		return entities.Budget{}, ErrUserNotFound
	}
	if creator.CompanyID != companyID {
		return entities.Budget{}, ErrCompanyMismatch
	}

	serviceValue := params.ServiceValue
	partsValue := 0.0
	if params.PartsValue != nil {
		partsValue = *params.PartsValue
	}
	if serviceValue < 0 || partsValue < 0 || serviceValue+partsValue <= 0 {
		return entities.Budget{}, ErrInvalidBudgetValue
	}

	totalValue := serviceValue + partsValue
	if params.TotalValue != nil {
		// Small epsilon keeps values exactly at the tolerance boundary from
		// failing on float representation noise.
		if math.Abs(*params.TotalValue-totalValue) > totalValueTolerance+1e-9 {
			return entities.Budget{}, ErrBudgetTotalMismatch
		}
		totalValue = *params.TotalValue
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		WorkOrderID:  wo.ID,
		ServiceValue: entities.Round2(serviceValue),
		PartsValue:   entities.Round2(partsValue),
		TotalValue:   entities.Round2(totalValue),
		Status:       entities.BudgetStatusPendente,
		CreatedBy:    creator.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) Approve(ctx context.Context, companyID, budgetID string, method entities.ApprovalMethod, approverUserID string) (entities.Budget, error) {
	if !method.IsValid() {
		return entities.Budget{}, ErrInvalidApprovalMethod
	}

	b, err := u.loadOwned(ctx, companyID, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusPendente {
		return entities.Budget{}, ErrBudgetAlreadyProcessed
	}

	// In-person approvals are intentionally not attributed to a user.
	approvedBy := ""
	if approverUserID = strings.TrimSpace(approverUserID); approverUserID != "" {
		approver, err := u.userRepo.GetByID(ctx, approverUserID)
		if err != nil {
			return entities.Budget{}, err
		}
		if approver.ID == "" {
			return entities.Budget{}, ErrUserNotFound
		}
		if method != entities.ApprovalMethodPresencial {
			approvedBy = approver.ID
		}
	}

	now := time.Now().UTC()

	approved, err := u.repo.ListByWorkOrderIDAndStatus(ctx, b.WorkOrderID, entities.BudgetStatusAprovado)
	if err != nil {
		return entities.Budget{}, err
	}
	demoted := make([]entities.Budget, 0, len(approved))
	for _, other := range approved {
		if other.ID == b.ID {
			continue
		}
		other.Status = entities.BudgetStatusPendente
		other.ApprovedAt = nil
		other.ApprovalMethod = ""
		other.ApprovedBy = ""
		other.UpdatedAt = now
		demoted = append(demoted, other)
	}

	b.Status = entities.BudgetStatusAprovado
	b.ApprovedAt = &now
	b.ApprovalMethod = method
	b.ApprovedBy = approvedBy
	b.UpdatedAt = now

	return u.repo.ApplyApprovalSwap(ctx, b, demoted)
}

func (u *BudgetUseCase) Reject(ctx context.Context, companyID, budgetID, reason string) (entities.Budget, error) {
	b, err := u.loadOwned(ctx, companyID, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status == entities.BudgetStatusRejeitado {
		return entities.Budget{}, ErrBudgetAlreadyRejected
	}

	reason = strings.TrimSpace(reason)
	if len(reason) < minRejectionReasonLen {
		return entities.Budget{}, ErrRejectionReasonTooShort
	}

	// Rejecting a previously approved budget only removes it from
	// consideration; no other budget is promoted in its place.
	now := time.Now().UTC()
	b.Status = entities.BudgetStatusRejeitado
	b.RejectionReason = reason
	b.ApprovedAt = nil
	b.ApprovalMethod = ""
	b.ApprovedBy = ""
	b.UpdatedAt = now

	return u.repo.Save(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, companyID, budgetID string) (entities.Budget, error) {
	return u.loadOwned(ctx, companyID, budgetID)
}

func (u *BudgetUseCase) ListByWorkOrderID(ctx context.Context, companyID, workOrderID string) ([]entities.Budget, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}

	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo.ID == "" || wo.DeletedAt != nil {
		return nil, ErrWorkOrderNotFound
	}
	if wo.CompanyID != companyID {
		return nil, ErrCompanyMismatch
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func (u *BudgetUseCase) loadOwned(ctx context.Context, companyID, budgetID string) (entities.Budget, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Budget{}, ErrInvalidCompanyID
	}
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if b.CompanyID != companyID {
		return entities.Budget{}, ErrCompanyMismatch
	}
	return b, nil
}
