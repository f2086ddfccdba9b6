package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
)

// writeDomainError maps business errors onto the HTTP envelope. Anything
// without a business code is reported as internal under the fallback code.
func writeDomainError(c *gin.Context, err error, fallbackCode string) {
	code := httperr.BusinessCode(err)
	switch code {
	case "":
		httperr.Internal(c, fallbackCode, "Unexpected error.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Record not found.")
	case httperr.CodeInvalidTransition:
		httperr.Conflict(c, code, "Status transition not allowed.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
