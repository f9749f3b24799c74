package care

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

// Fixed comfort bounds for the monitored room, in °C. Strict inequalities:
// a reading of exactly 30.0 or 15.0 raises nothing, and exactly 35.0 or
// 10.0 stays at HIGH rather than CRITICAL.
const (
	tempHighThreshold     = 30.0
	tempLowThreshold      = 15.0
	tempCriticalHighBound = 35.0
	tempCriticalLowBound  = 10.0
)

const defaultAlertLimit = 50

// TemperatureAlert evaluates a single reading against the fixed bounds and
// returns the alert to raise, or nil when the reading is in range. It looks
// at one reading only; sustained out-of-range conditions raise one alert
// per ingested reading. Humidity, motion and fan state are stored but never
// evaluated here.
func TemperatureAlert(reading *models.SensorReading) *models.Alert {
	t := reading.Temperature
	if t <= tempHighThreshold && t >= tempLowThreshold {
		return nil
	}

	alertType := models.AlertTypeTemperatureLow
	if t > tempHighThreshold {
		alertType = models.AlertTypeTemperatureHigh
	}

	priority := models.PriorityHigh
	if t > tempCriticalHighBound || t < tempCriticalLowBound {
		priority = models.PriorityCritical
	}

	return &models.Alert{
		DeviceID:  reading.DeviceID,
		Type:      alertType,
		Message:   fmt.Sprintf("Temperature is %g°C", t),
		Priority:  priority,
		Timestamp: reading.Timestamp,
	}
}

func (c *Care) createAlert(deviceID string, alertType models.AlertType, message string, priority models.Priority) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryAlert),
	)

	if deviceID == "" {
		return nil, Validationf("device id is required")
	}

	var device models.Device
	if err := c.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("device not found")
		}
		return nil, err
	}

	alert := models.Alert{
		DeviceID:  deviceID,
		Type:      alertType,
		Message:   message,
		Priority:  priority,
		Timestamp: time.Now(),
	}

	if err := c.Db.Conn.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	return &alert, nil
}

// acknowledgeAlert is one-way and idempotent: the first call stamps
// acknowledgedAt, later calls return the record unchanged.
func (c *Care) acknowledgeAlert(alertID uint) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryAlert),
	)

	var alert models.Alert
	if err := c.Db.Conn.First(&alert, "id = ?", alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("alert not found")
		}
		return nil, err
	}

	if alert.Acknowledged {
		return &alert, nil
	}

	now := time.Now()
	updates := map[string]any{"acknowledged": true, "acknowledged_at": now}
	if err := c.Db.Conn.Model(&alert).Updates(updates).Error; err != nil {
		return nil, err
	}
	alert.Acknowledged = true
	alert.AcknowledgedAt = &now

	logger.Info("Alert acknowledged", zap.Uint("alert_id", alert.ID))

	return &alert, nil
}

type AlertFilter struct {
	DeviceID     string
	Acknowledged *bool
	Limit        int
}

func (c *Care) listAlerts(filter AlertFilter) ([]models.Alert, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAlertLimit
	}

	query := c.Db.Conn.Order("timestamp desc").Limit(limit)
	if filter.DeviceID != "" {
		query = query.Where("device_id = ?", filter.DeviceID)
	}
	if filter.Acknowledged != nil {
		query = query.Where("acknowledged = ?", *filter.Acknowledged)
	}

	var alerts []models.Alert
	err := query.Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	care *Care
}

func (ia *IAlertImpl) CreateAlert(deviceID string, alertType models.AlertType, message string, priority models.Priority) (*models.Alert, error) {
	return ia.care.createAlert(deviceID, alertType, message, priority)
}

func (ia *IAlertImpl) AcknowledgeAlert(alertID uint) (*models.Alert, error) {
	return ia.care.acknowledgeAlert(alertID)
}

func (ia *IAlertImpl) ListAlerts(filter AlertFilter) ([]models.Alert, error) {
	return ia.care.listAlerts(filter)
}

func (c *Care) GetIAlert() IAlert {
	return &IAlertImpl{care: c}
}
