package request

// CreateBudgetRequest quotes the work order in the path. PartsValue defaults
// to zero and TotalValue to service plus parts when omitted.
type CreateBudgetRequest struct {
	ServiceValue float64  `json:"service_value" binding:"required"`
	PartsValue   *float64 `json:"parts_value"`
	TotalValue   *float64 `json:"total_value"`
}

type ApproveBudgetRequest struct {
	Method string `json:"method" binding:"required"`
}

type RejectBudgetRequest struct {
	Reason string `json:"reason" binding:"required"`
}
