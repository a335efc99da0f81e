package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type BudgetResponse struct {
	ID              string     `json:"id"`
	WorkOrderID     string     `json:"work_order_id"`
	ServiceValue    float64    `json:"service_value"`
	PartsValue      float64    `json:"parts_value"`
	TotalValue      float64    `json:"total_value"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ApprovalMethod  string     `json:"approval_method,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedBy       string     `json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID,
		WorkOrderID:     b.WorkOrderID,
		ServiceValue:    b.ServiceValue,
		PartsValue:      b.PartsValue,
		TotalValue:      b.TotalValue,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		ApprovalMethod:  string(b.ApprovalMethod),
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      b.ApprovedAt,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBudgetList(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
