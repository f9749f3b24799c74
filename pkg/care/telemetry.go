package care

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

const defaultReadingLimit = 50

// ingestReading is the write path for a device heartbeat: mark the device
// online, append the reading, and evaluate temperature thresholds. The
// three mutations commit or abort as one transaction so a failed insert
// never leaves a half-applied heartbeat.
func (c *Care) ingestReading(deviceID string, input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryTelemetry),
	)

	if deviceID == "" {
		return nil, Validationf("device id is required")
	}

	now := time.Now()
	reading := models.SensorReading{
		DeviceID:    deviceID,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		Motion:      input.Motion,
		FanActive:   input.FanActive,
		Timestamp:   now,
	}

	logger.Info("Received reading for device", zap.Reflect("reading", reading))

	err := c.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var device models.Device
		if err := tx.First(&device, "id = ?", deviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("device not found")
			}
			return err
		}

		updates := map[string]any{"is_online": true, "last_heartbeat": now}
		if err := tx.Model(&device).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Create(&reading).Error; err != nil {
			return err
		}

		if alert := TemperatureAlert(&reading); alert != nil {
			logger.Info("Alert found", zap.Reflect("alert", alert))
			if err := tx.Create(alert).Error; err != nil {
				return err
			}
			logger.Info("Alert saved", zap.Reflect("alert", alert))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Stored reading for device", zap.Reflect("reading", reading))

	return &reading, nil
}

func (c *Care) listReadings(deviceID string, limit int) ([]models.SensorReading, error) {
	if deviceID == "" {
		return nil, Validationf("device id is required")
	}
	if limit <= 0 {
		limit = defaultReadingLimit
	}

	var readings []models.SensorReading
	err := c.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

type ITelemetryImpl struct {
	care *Care
}

func (it *ITelemetryImpl) IngestReading(deviceID string, input *models.SensorReading) (*models.SensorReading, error) {
	return it.care.ingestReading(deviceID, input)
}

func (it *ITelemetryImpl) ListReadings(deviceID string, limit int) ([]models.SensorReading, error) {
	return it.care.listReadings(deviceID, limit)
}

func (c *Care) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{care: c}
}
