package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"vitanet.io/elder-care-service/pkg/care"
	"vitanet.io/elder-care-service/pkg/common"
)

// respondError maps a service error kind to its HTTP status. Duplicate-key
// conflicts surface as 400 to keep the contract the dashboard clients
// already rely on.
func respondError(c *gin.Context, err error) {
	switch care.KindOf(err) {
	case care.KindValidation, care.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case care.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case care.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case care.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
