package entities

import (
	"math"
	"time"
)

// BudgetStatus represents the approval state of a budget (orçamento).

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "pendente"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
)

// ApprovalMethod records through which channel a budget was approved.
//
//   - presencial: the customer approved in person at the shop; the approval
//     is intentionally not attributed to an individual user.
//   - link: the decision came through the public tokenized link; when an
//     operator acted on the customer's behalf the approval is attributed.

type ApprovalMethod string

const (
	ApprovalMethodPresencial ApprovalMethod = "presencial"
	ApprovalMethodLink       ApprovalMethod = "link"
)

func (m ApprovalMethod) IsValid() bool {
	return m == ApprovalMethodPresencial || m == ApprovalMethodLink
}

// Budget is a price quote attached to a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Budgets are immutable once created except for the status/approval/rejection
// fields; corrections are made by creating a new budget. At most one budget
// per work order may be aprovado at any time.
//
// Monetary representation:
//   - Values are rounded half-up to 2 decimal places.
//   - TotalValue = ServiceValue + PartsValue within a 0.01 tolerance.
type Budget struct {
	ID              string         `json:"id"`
	CompanyID       string         `json:"company_id"`
	WorkOrderID     string         `json:"work_order_id"`
	ServiceValue    float64        `json:"service_value"`
	PartsValue      float64        `json:"parts_value"`
	TotalValue      float64        `json:"total_value"`
	Status          BudgetStatus   `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	ApprovalMethod  ApprovalMethod `json:"approval_method,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	CreatedBy       string         `json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Round2 rounds a monetary value half-up to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
