package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAdmin is the aggregate read surface for the admin dashboard, shaped
// per sub-endpoint selected by query parameter.
func (rs *RestfulServer) GetAdmin(c *gin.Context) {
	switch c.Query("endpoint") {
	case "users":
		users, err := rs.Care.Admin.ListUsers()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})

	case "devices":
		devices, err := rs.Care.Admin.ListDevices()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"devices": devices})

	case "alerts":
		alerts, err := rs.Care.Admin.RecentAlerts(0)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"alerts": alerts})

	case "analytics":
		analytics, err := rs.Care.Admin.Analytics(7)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"analytics": analytics})

	case "stats":
		stats, err := rs.Care.Admin.Stats()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endpoint"})
	}
}
