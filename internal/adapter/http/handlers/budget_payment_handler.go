package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetPaymentHandler charges approved budgets through the payment gateway.
//
// The request body is forwarded to the provider as-is, so it is read raw
// instead of bound to a DTO.

type BudgetPaymentHandler struct {
	usecase usecase.IBudgetPaymentUseCase
}

func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc}
}

func (h *BudgetPaymentHandler) CreatePayment(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateAndCharge(c.Request.Context(), companyID, c.Param("id"), json.RawMessage(body))
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetPayment(p))
}

func (h *BudgetPaymentHandler) GetPayment(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPayment(p))
}

func (h *BudgetPaymentHandler) ListPaymentsByBudget(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPaymentList(payments))
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID),
		errors.Is(err, usecase.ErrInvalidProviderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider rejected the credentials", err, http.StatusBadGateway)
	default:
		return mapBudgetError(err)
	}
}
