package handlers

import (
	"errors"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PublicLinkHandler issues approval links and serves the unauthenticated
// customer-facing routes keyed by token.

type PublicLinkHandler struct {
	usecase usecase.IPublicLinkUseCase
}

func NewPublicLinkHandler(uc usecase.IPublicLinkUseCase) *PublicLinkHandler {
	return &PublicLinkHandler{usecase: uc}
}

// IssueLink creates a tokenized approval link for the work order in the path.
func (h *PublicLinkHandler) IssueLink(c *gin.Context) {
	companyID, ok := companyIDFromHeader(c)
	if !ok {
		return
	}

	link, err := h.usecase.Issue(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		appErr := mapPublicLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPublicLink(link))
}

// GetPublicWorkOrder returns the customer view for a token. No tenant or user
// headers are required on this route.
func (h *PublicLinkHandler) GetPublicWorkOrder(c *gin.Context) {
	view, err := h.usecase.GetWorkOrderByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPublicLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicWorkOrderView(view))
}

// ApproveByToken approves a pending budget through the link channel.
func (h *PublicLinkHandler) ApproveByToken(c *gin.Context) {
	b, err := h.usecase.ApproveByToken(c.Request.Context(), c.Param("token"), c.Param("budgetId"), userIDFromHeader(c))
	if err != nil {
		appErr := mapPublicLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

// RejectByToken rejects a pending budget through the link channel.
func (h *PublicLinkHandler) RejectByToken(c *gin.Context) {
	var payload request.RejectBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.RejectByToken(c.Request.Context(), c.Param("token"), c.Param("budgetId"), payload.Reason)
	if err != nil {
		appErr := mapPublicLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

func mapPublicLinkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPublicLinkNotFound):
		return pkg.NewDomainErrorSimple("PUBLIC_LINK_NOT_FOUND", "Public link not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetLinkMismatch):
		return pkg.NewDomainErrorSimple("BUDGET_LINK_MISMATCH", "Budget does not belong to the linked work order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovalPhaseClosed):
		return pkg.NewDomainErrorSimple("APPROVAL_PHASE_CLOSED", "Work order is not awaiting approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrTokenGenerationExhausted):
		return pkg.NewDomainError("TOKEN_GENERATION_EXHAUSTED", "Could not generate a unique token", err, http.StatusInternalServerError)
	default:
		// Decisions delegate to the budget workflow, so its errors surface
		// here with the same mapping.
		return mapBudgetError(err)
	}
}
