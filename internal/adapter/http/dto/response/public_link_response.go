package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PublicLinkResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	Token       string    `json:"token"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPublicLink(link entities.PublicLink) PublicLinkResponse {
	return PublicLinkResponse{
		ID:          link.ID,
		WorkOrderID: link.WorkOrderID,
		Token:       link.Token,
		CreatedAt:   link.CreatedAt,
	}
}
