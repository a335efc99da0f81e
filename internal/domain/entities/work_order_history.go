package entities

import "time"

// WorkOrderHistory is an append-only audit entry written whenever a work
// order changes status. Entries are never updated or deleted.
//
// StatusBefore is empty only on the creation record. UserID is empty when
// the action was not attributed to a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
type WorkOrderHistory struct {
	ID           string          `json:"id"`
	WorkOrderID  string          `json:"work_order_id"`
	UserID       string          `json:"user_id,omitempty"`
	StatusBefore WorkOrderStatus `json:"status_before,omitempty"`
	StatusAfter  WorkOrderStatus `json:"status_after"`
	Observation  string          `json:"observation,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
