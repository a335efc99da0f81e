package entities

import "time"

// WorkOrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// Domain notes:
//   - The OS service is the source of truth for work order state.
//   - Legal transitions are enumerated in allowedTransitions below; cancellation
//     is a cross-cutting rule checked before the table (any non-terminal status
//     may be cancelled).
//   - "entregue" and "cancelado" are terminal: once reached, the order accepts
//     no further changes.

type WorkOrderStatus string

const (
	StatusRecebido            WorkOrderStatus = "recebido"
	StatusEmAnalise           WorkOrderStatus = "em_analise"
	StatusAguardandoAprovacao WorkOrderStatus = "aguardando_aprovacao"
	StatusEmConserto          WorkOrderStatus = "em_conserto"
	StatusPronto              WorkOrderStatus = "pronto"
	StatusEntregue            WorkOrderStatus = "entregue"
	StatusCancelado           WorkOrderStatus = "cancelado"
)

// allowedTransitions is the forward-flow table of the physical repair
// workflow. aguardando_aprovacao may fall back to em_analise when the
// customer rejects the budget and a new diagnosis/budget is needed.
var allowedTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	StatusRecebido:            {StatusEmAnalise},
	StatusEmAnalise:           {StatusAguardandoAprovacao},
	StatusAguardandoAprovacao: {StatusEmConserto, StatusEmAnalise},
	StatusEmConserto:          {StatusPronto},
	StatusPronto:              {StatusEntregue},
	StatusEntregue:            {},
	StatusCancelado:           {},
}

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case StatusRecebido, StatusEmAnalise, StatusAguardandoAprovacao,
		StatusEmConserto, StatusPronto, StatusEntregue, StatusCancelado:
		return true
	default:
		return false
	}
}

func (s WorkOrderStatus) IsTerminal() bool {
	return s == StatusEntregue || s == StatusCancelado
}

// CanTransitionTo reports whether moving from s to target is legal. The
// cancellation carve-out is evaluated before the forward-flow table.
func (s WorkOrderStatus) CanTransitionTo(target WorkOrderStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelado {
		return true
	}
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// WorkOrder is the repair job aggregate root. Budgets, public links and
// history records reference it by id; related entities (client, equipment,
// technician) are referenced by id and resolved through their repositories
// at the point of use.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-status-index): company_id / status
//
// DeliveredAt is set if and only if Status is entregue. DeletedAt is a
// soft-delete marker; work orders are never hard-deleted.
type WorkOrder struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	ClientID          string          `json:"client_id"`
	EquipmentID       string          `json:"equipment_id"`
	TechnicianID      string          `json:"technician_id"`
	Status            WorkOrderStatus `json:"status"`
	ReportedDefect    string          `json:"reported_defect"`
	InternalNotes     string          `json:"internal_notes,omitempty"`
	IsReturnOrder     bool            `json:"is_return_order"`
	OriginWorkOrderID string          `json:"origin_work_order_id,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`
}
