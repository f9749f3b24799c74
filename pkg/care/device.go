package care

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

func (c *Care) registerDevice(userID string, input *models.Device) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryDevice),
	)

	if input.SerialNumber == "" {
		return nil, Validationf("serial number is required")
	}

	var existing models.Device
	err := c.Db.Conn.First(&existing, "serial_number = ?", input.SerialNumber).Error
	if err == nil {
		return nil, Conflictf("device already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("Device %s", input.SerialNumber)
	}

	device := models.Device{
		ID:           uuid.NewString(),
		SerialNumber: input.SerialNumber,
		Name:         name,
		Location:     input.Location,
		UserID:       userID,
		IsOnline:     false,
	}

	if err := c.Db.Conn.Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered device", zap.Reflect("device", device))

	return &device, nil
}

func (c *Care) listDevicesForAccount(userID string) ([]models.Device, error) {
	var devices []models.Device
	err := c.Db.Conn.
		Preload("Patient").
		Preload("Alerts", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("acknowledged = ?", false).Order("timestamp desc")
		}).
		Where("user_id = ?", userID).
		Find(&devices).Error
	if err != nil {
		return nil, err
	}

	// latest reading per device; gorm Preload cannot limit per parent row
	for i := range devices {
		var reading models.SensorReading
		err := c.Db.Conn.
			Where("device_id = ?", devices[i].ID).
			Order("timestamp desc").
			First(&reading).Error
		if err == nil {
			devices[i].Readings = []models.SensorReading{reading}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return devices, nil
}

type IDeviceImpl struct {
	care *Care
}

func (id *IDeviceImpl) RegisterDevice(userID string, input *models.Device) (*models.Device, error) {
	return id.care.registerDevice(userID, input)
}

func (id *IDeviceImpl) ListDevicesForAccount(userID string) ([]models.Device, error) {
	return id.care.listDevicesForAccount(userID)
}

func (c *Care) GetIDevice() IDevice {
	return &IDeviceImpl{care: c}
}
