package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPublic = "/public"

// addPublicRoutes registers the unauthenticated customer routes keyed by
// token.
func addPublicRoutes(rg *gin.RouterGroup, publicLinkHandler *handlers.PublicLinkHandler) {
	public := rg.Group(PathPublic)
	{
		public.GET("/:token", publicLinkHandler.GetPublicWorkOrder)
		public.PATCH("/:token/budgets/:budgetId/approve", publicLinkHandler.ApproveByToken)
		public.PATCH("/:token/budgets/:budgetId/reject", publicLinkHandler.RejectByToken)
	}
}
