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

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for the work order lifecycle.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder opens a work order in recebido for the acting company.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), usecase.CreateWorkOrderParams{
		CompanyID:         companyID,
		ClientID:          payload.ClientID,
		EquipmentID:       payload.EquipmentID,
		TechnicianID:      payload.TechnicianID,
		ReportedDefect:    payload.ReportedDefect,
		InternalNotes:     payload.InternalNotes,
		OriginWorkOrderID: payload.OriginWorkOrderID,
		ActingUserID:      userIDFromHeader(c),
	})
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	details, err := h.usecase.GetDetails(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderDetails(details))
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListByStatus(c.Request.Context(), companyID, entities.WorkOrderStatus(c.Query("status")))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderList(orders))
}

func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	var payload request.ChangeWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.ChangeStatus(c.Request.Context(), companyID, c.Param("id"),
		entities.WorkOrderStatus(payload.Status), payload.Observation, userIDFromHeader(c))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	wo, err := h.usecase.Cancel(c.Request.Context(), companyID, c.Param("id"), userIDFromHeader(c))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidReportedDefect),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOriginWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("ORIGIN_WORK_ORDER_NOT_FOUND", "Origin work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyMismatch):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Entity belongs to another company", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEquipmentClientMismatch):
		return pkg.NewDomainErrorSimple("EQUIPMENT_CLIENT_MISMATCH", "Equipment does not belong to the client", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotATechnician):
		return pkg.NewDomainErrorSimple("NOT_A_TECHNICIAN", "User is not a technician", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOriginNotDelivered):
		return pkg.NewDomainErrorSimple("ORIGIN_NOT_DELIVERED", "Origin work order was not delivered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWarrantyExpired):
		return pkg.NewDomainErrorSimple("WARRANTY_EXPIRED", "Warranty window expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderClosed):
		return pkg.NewDomainErrorSimple("WORK_ORDER_CLOSED", "Work order is delivered or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
