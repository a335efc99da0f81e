package entities

import "time"

// PublicLink grants unauthenticated read access to a work order and the
// ability to approve or reject its pending budget. The opaque token is the
// sole external identity of the link; a work order may have several links.
//
// Storage model (DynamoDB):
//   - PK: token
type PublicLink struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	CompanyID   string    `json:"company_id"`
	Token       string    `json:"token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
