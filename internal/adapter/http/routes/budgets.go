package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets  = "/budgets"
	PathPayments = "/payments"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, paymentHandler *handlers.BudgetPaymentHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)

		budgets.POST("/:id/payments", paymentHandler.CreatePayment)
		budgets.GET("/:id/payments", paymentHandler.ListPaymentsByBudget)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}
