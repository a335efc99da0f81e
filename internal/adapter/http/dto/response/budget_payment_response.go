package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type BudgetPaymentResponse struct {
	ID              string                 `json:"id"`
	BudgetID        string                 `json:"budget_id"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBudgetPayment(p entities.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		ID:              p.ID,
		BudgetID:        p.BudgetID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
}

func FromBudgetPaymentList(payments []entities.BudgetPayment) []BudgetPaymentResponse {
	out := make([]BudgetPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromBudgetPayment(p))
	}
	return out
}
