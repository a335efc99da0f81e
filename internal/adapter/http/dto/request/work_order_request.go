package request

// CreateWorkOrderRequest opens a work order. Related entities are referenced
// by id; tenancy comes from the X-Company-ID header.
type CreateWorkOrderRequest struct {
	ClientID          string `json:"client_id" binding:"required"`
	EquipmentID       string `json:"equipment_id" binding:"required"`
	TechnicianID      string `json:"technician_id" binding:"required"`
	ReportedDefect    string `json:"reported_defect" binding:"required"`
	InternalNotes     string `json:"internal_notes"`
	OriginWorkOrderID string `json:"origin_work_order_id"`
}

// ChangeWorkOrderStatusRequest applies a lifecycle transition.
type ChangeWorkOrderStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	Observation string `json:"observation"`
}
