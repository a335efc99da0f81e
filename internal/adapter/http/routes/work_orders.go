package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorkOrders = "/work-orders"

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, budgetHandler *handlers.BudgetHandler, publicLinkHandler *handlers.PublicLinkHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("", workOrderHandler.ListWorkOrders)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
		workOrders.PATCH("/:id/status", workOrderHandler.ChangeStatus)
		workOrders.PATCH("/:id/cancel", workOrderHandler.CancelWorkOrder)

		workOrders.POST("/:id/budgets", budgetHandler.CreateBudget)
		workOrders.GET("/:id/budgets", budgetHandler.ListBudgetsByWorkOrder)

		workOrders.POST("/:id/public-links", publicLinkHandler.IssueLink)
	}
}
