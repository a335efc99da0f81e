package handlers

import (
	"errors"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for the budget approval workflow.
//
// There is no update or delete endpoint: budgets only move through the
// approve/reject transitions, corrections require a new budget.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget quotes the work order in the path.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), usecase.CreateBudgetParams{
		CompanyID:    companyID,
		WorkOrderID:  c.Param("id"),
		ServiceValue: payload.ServiceValue,
		PartsValue:   payload.PartsValue,
		TotalValue:   payload.TotalValue,
		CreatedBy:    userIDFromHeader(c),
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	b, err := h.usecase.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) ListBudgetsByWorkOrder(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	budgets, err := h.usecase.ListByWorkOrderID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetList(budgets))
}

// ApproveBudget approves the budget in person or through the link channel.
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	var payload request.ApproveBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Approve(c.Request.Context(), companyID, c.Param("id"),
		entities.ApprovalMethod(payload.Method), userIDFromHeader(c))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	var payload request.RejectBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Reject(c.Request.Context(), companyID, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetValue),
		errors.Is(err, usecase.ErrInvalidApprovalMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetTotalMismatch):
		return pkg.NewDomainErrorSimple("BUDGET_TOTAL_MISMATCH", "Total value does not match service plus parts", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRejectionReasonTooShort):
		return pkg.NewDomainErrorSimple("REJECTION_REASON_TOO_SHORT", "Rejection reason must have at least 10 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyMismatch):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Entity belongs to another company", http.StatusForbidden)
	case errors.Is(err, usecase.ErrWorkOrderClosed):
		return pkg.NewDomainErrorSimple("WORK_ORDER_CLOSED", "Work order is delivered or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetAlreadyProcessed):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_PROCESSED", "Budget already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetAlreadyRejected):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_REJECTED", "Budget already rejected", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
