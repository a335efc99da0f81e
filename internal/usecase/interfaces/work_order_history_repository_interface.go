package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IWorkOrderHistoryRepository reads the append-only audit ledger. Writes go
// through IWorkOrderRepository so they share the status-change transaction.

type IWorkOrderHistoryRepository interface {
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderHistory, error)
}
