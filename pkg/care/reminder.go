package care

import (
	"errors"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

var reminderTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (c *Care) listReminders(deviceID string) ([]models.Reminder, error) {
	if deviceID == "" {
		return nil, Validationf("device id is required")
	}

	var reminders []models.Reminder
	err := c.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("time asc").
		Find(&reminders).Error
	return reminders, err
}

func (c *Care) createReminder(deviceID string, input *models.Reminder) (*models.Reminder, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryReminder),
	)

	if input.Medication == "" {
		return nil, Validationf("medication is required")
	}
	if !reminderTimePattern.MatchString(input.Time) {
		return nil, Validationf("time must be HH:MM")
	}

	var device models.Device
	if err := c.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("device not found")
		}
		return nil, err
	}

	reminder := models.Reminder{
		DeviceID:   deviceID,
		Medication: input.Medication,
		Dosage:     input.Dosage,
		Time:       input.Time,
		IsActive:   input.IsActive,
		Notes:      input.Notes,
	}

	if err := c.Db.Conn.Create(&reminder).Error; err != nil {
		return nil, err
	}

	logger.Info("Reminder created", zap.Reflect("reminder", reminder))

	return &reminder, nil
}

func (c *Care) updateReminder(reminderID uint, input *models.Reminder) (*models.Reminder, error) {
	if input.Time != "" && !reminderTimePattern.MatchString(input.Time) {
		return nil, Validationf("time must be HH:MM")
	}

	var reminder models.Reminder
	if err := c.Db.Conn.First(&reminder, "id = ?", reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("reminder not found")
		}
		return nil, err
	}

	updates := map[string]any{"is_active": input.IsActive}
	if input.Medication != "" {
		updates["medication"] = input.Medication
	}
	if input.Dosage != "" {
		updates["dosage"] = input.Dosage
	}
	if input.Time != "" {
		updates["time"] = input.Time
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}
	if input.LastTriggered != nil {
		updates["last_triggered"] = *input.LastTriggered
	}

	if err := c.Db.Conn.Model(&reminder).Updates(updates).Error; err != nil {
		return nil, err
	}

	var saved models.Reminder
	if err := c.Db.Conn.First(&saved, "id = ?", reminderID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Care) deleteReminder(reminderID uint) error {
	result := c.Db.Conn.Delete(&models.Reminder{}, "id = ?", reminderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundf("reminder not found")
	}
	return nil
}

type IReminderImpl struct {
	care *Care
}

func (ir *IReminderImpl) ListReminders(deviceID string) ([]models.Reminder, error) {
	return ir.care.listReminders(deviceID)
}

func (ir *IReminderImpl) CreateReminder(deviceID string, input *models.Reminder) (*models.Reminder, error) {
	return ir.care.createReminder(deviceID, input)
}

func (ir *IReminderImpl) UpdateReminder(reminderID uint, input *models.Reminder) (*models.Reminder, error) {
	return ir.care.updateReminder(reminderID, input)
}

func (ir *IReminderImpl) DeleteReminder(reminderID uint) error {
	return ir.care.deleteReminder(reminderID)
}

func (c *Care) GetIReminder() IReminder {
	return &IReminderImpl{care: c}
}
