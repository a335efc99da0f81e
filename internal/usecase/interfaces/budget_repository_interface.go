package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// ApplyApprovalSwap is the explicit atomic unit behind the single-approved-
// budget rule: the demotions and the promotion are applied in one
// TransactWriteItems call so no reader ever observes two approved budgets
// for the same work order.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Budget, error)
	ListByWorkOrderIDAndStatus(ctx context.Context, workOrderID string, status entities.BudgetStatus) ([]entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ApplyApprovalSwap(ctx context.Context, promoted entities.Budget, demoted []entities.Budget) (entities.Budget, error)
}
