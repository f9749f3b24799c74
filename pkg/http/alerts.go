package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"vitanet.io/elder-care-service/pkg/care"
	"vitanet.io/elder-care-service/pkg/models"
)

type AlertRequest struct {
	DeviceID string `json:"deviceId"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"DeviceID": z.String().Required(),
	"Type":     z.String().Required(),
	"Message":  z.String(),
	"Priority": z.String(),
})

func parseAlertType(raw string) (models.AlertType, bool) {
	switch models.AlertType(raw) {
	case models.AlertTypeHelp,
		models.AlertTypeWater,
		models.AlertTypeTemperatureHigh,
		models.AlertTypeTemperatureLow,
		models.AlertTypeMotionDetected,
		models.AlertTypeMotionTimeout,
		models.AlertTypeMedicationReminder,
		models.AlertTypeDeviceOffline,
		models.AlertTypeEmergency,
		models.AlertTypeOther:
		return models.AlertType(raw), true
	}
	return "", false
}

func parsePriority(raw string) (models.Priority, bool) {
	switch models.Priority(raw) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
		return models.Priority(raw), true
	}
	return "", false
}

// PostAlert is the device-facing path for manually raised alerts, like the
// help and water buttons on the sensor node.
func (rs *RestfulServer) PostAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alertType, ok := parseAlertType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown alert type"})
		return
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		parsed, ok := parsePriority(req.Priority)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority"})
			return
		}
		priority = parsed
	}

	alert, err := rs.Care.Alert.CreateAlert(req.DeviceID, alertType, req.Message, priority)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	filter := care.AlertFilter{DeviceID: c.Query("deviceId")}

	if raw := c.Query("acknowledged"); raw != "" {
		acknowledged, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "acknowledged must be a boolean"})
			return
		}
		filter.Acknowledged = &acknowledged
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		filter.Limit = limit
	}

	alerts, err := rs.Care.Alert.ListAlerts(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (rs *RestfulServer) PostAcknowledge(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert id must be an integer"})
		return
	}

	alert, err := rs.Care.Alert.AcknowledgeAlert(uint(alertID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert": alert})
}
