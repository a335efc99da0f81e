package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Status changes and their audit entries must be observable together, so the
// write operations take the history row and apply both inside a single
// TransactWriteItems call. A nil history means the transition was anonymous
// and no audit row is written.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder, hist entities.WorkOrderHistory) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByCompanyAndStatus(ctx context.Context, companyID string, status entities.WorkOrderStatus) ([]entities.WorkOrder, error)
	SaveStatusWithHistory(ctx context.Context, wo entities.WorkOrder, hist *entities.WorkOrderHistory) (entities.WorkOrder, error)
}
