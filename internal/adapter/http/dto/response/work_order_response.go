package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type WorkOrderResponse struct {
	ID                string     `json:"id"`
	CompanyID         string     `json:"company_id"`
	ClientID          string     `json:"client_id"`
	EquipmentID       string     `json:"equipment_id"`
	TechnicianID      string     `json:"technician_id"`
	Status            string     `json:"status"`
	ReportedDefect    string     `json:"reported_defect"`
	InternalNotes     string     `json:"internal_notes,omitempty"`
	IsReturnOrder     bool       `json:"is_return_order"`
	OriginWorkOrderID string     `json:"origin_work_order_id,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type WorkOrderHistoryResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	StatusBefore string    `json:"status_before,omitempty"`
	StatusAfter  string    `json:"status_after"`
	Observation  string    `json:"observation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type WorkOrderDetailsResponse struct {
	WorkOrderResponse
	Budgets []BudgetResponse           `json:"budgets"`
	History []WorkOrderHistoryResponse `json:"history"`
}

// PublicWorkOrderResponse is the customer-facing view behind a public link.
// Internal notes are deliberately not exposed.
type PublicWorkOrderResponse struct {
	ID             string           `json:"id"`
	Status         string           `json:"status"`
	ReportedDefect string           `json:"reported_defect"`
	CreatedAt      time.Time        `json:"created_at"`
	Budgets        []BudgetResponse `json:"budgets"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                wo.ID,
		CompanyID:         wo.CompanyID,
		ClientID:          wo.ClientID,
		EquipmentID:       wo.EquipmentID,
		TechnicianID:      wo.TechnicianID,
		Status:            string(wo.Status),
		ReportedDefect:    wo.ReportedDefect,
		InternalNotes:     wo.InternalNotes,
		IsReturnOrder:     wo.IsReturnOrder,
		OriginWorkOrderID: wo.OriginWorkOrderID,
		DeliveredAt:       wo.DeliveredAt,
		CreatedAt:         wo.CreatedAt,
		UpdatedAt:         wo.UpdatedAt,
	}
}

func FromWorkOrderList(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}

func FromWorkOrderHistory(h entities.WorkOrderHistory) WorkOrderHistoryResponse {
	return WorkOrderHistoryResponse{
		ID:           h.ID,
		UserID:       h.UserID,
		StatusBefore: string(h.StatusBefore),
		StatusAfter:  string(h.StatusAfter),
		Observation:  h.Observation,
		CreatedAt:    h.CreatedAt,
	}
}

func FromWorkOrderDetails(d usecase.WorkOrderDetails) WorkOrderDetailsResponse {
	budgets := make([]BudgetResponse, 0, len(d.Budgets))
	for _, b := range d.Budgets {
		budgets = append(budgets, FromBudget(b))
	}
	history := make([]WorkOrderHistoryResponse, 0, len(d.History))
	for _, h := range d.History {
		history = append(history, FromWorkOrderHistory(h))
	}
	return WorkOrderDetailsResponse{
		WorkOrderResponse: FromWorkOrder(d.WorkOrder),
		Budgets:           budgets,
		History:           history,
	}
}

func FromPublicWorkOrderView(v usecase.PublicWorkOrderView) PublicWorkOrderResponse {
	budgets := make([]BudgetResponse, 0, len(v.Budgets))
	for _, b := range v.Budgets {
		budgets = append(budgets, FromBudget(b))
	}
	return PublicWorkOrderResponse{
		ID:             v.WorkOrder.ID,
		Status:         string(v.WorkOrder.Status),
		ReportedDefect: v.WorkOrder.ReportedDefect,
		CreatedAt:      v.WorkOrder.CreatedAt,
		Budgets:        budgets,
	}
}
