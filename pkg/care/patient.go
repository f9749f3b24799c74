package care

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

// upsertPatient keeps the one-patient-per-device relation: inserting for a
// device that already has a patient overwrites the profile in place.
func (c *Care) upsertPatient(deviceID string, input *models.Patient) (*models.Patient, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryPatient),
	)

	if deviceID == "" {
		return nil, Validationf("device id is required")
	}
	if input.Name == "" {
		return nil, Validationf("patient name is required")
	}

	var device models.Device
	if err := c.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("device not found")
		}
		return nil, err
	}

	patient := models.Patient{
		DeviceID:         deviceID,
		Name:             input.Name,
		Age:              input.Age,
		Relationship:     input.Relationship,
		Conditions:       input.Conditions,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
	}

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "age", "relationship", "conditions", "emergency_contact", "emergency_phone", "updated_at"}),
	}).Create(&patient).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Upserted patient for device", zap.Reflect("patient", patient))

	var saved models.Patient
	if err := c.Db.Conn.First(&saved, "device_id = ?", deviceID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Care) getPatient(deviceID string) (*models.Patient, error) {
	var patient models.Patient
	if err := c.Db.Conn.First(&patient, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("patient not found")
		}
		return nil, err
	}
	return &patient, nil
}

type IPatientImpl struct {
	care *Care
}

func (ip *IPatientImpl) UpsertPatient(deviceID string, input *models.Patient) (*models.Patient, error) {
	return ip.care.upsertPatient(deviceID, input)
}

func (ip *IPatientImpl) GetPatient(deviceID string) (*models.Patient, error) {
	return ip.care.getPatient(deviceID)
}

func (c *Care) GetIPatient() IPatient {
	return &IPatientImpl{care: c}
}
