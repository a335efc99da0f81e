package handlers

import (
	"net/http"
	"strings"

	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// Session handling is out of scope for this service: the acting company and
// user arrive as explicit headers set by the gateway, replacing any ambient
// security context.
const (
	HeaderCompanyID = "X-Company-ID"
	HeaderUserID    = "X-User-ID"
)

var errMissingCompany = pkg.NewDomainErrorSimple("MISSING_COMPANY", "X-Company-ID header is required", http.StatusBadRequest)

// companyIDFromHeader aborts with 400 when the tenant header is absent.
func companyIDFromHeader(c *gin.Context) (string, bool) {
	companyID := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
	if companyID == "" {
		c.JSON(errMissingCompany.HTTPStatus, errMissingCompany.ToHTTPError())
		return "", false
	}
	return companyID, true
}

func userIDFromHeader(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}
