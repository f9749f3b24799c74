package db

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

// SeedDemoData inserts a demo caregiver/admin pair, one device with a
// patient profile, a day of readings and a few alerts and reminders.
// Safe to call repeatedly; it is a no-op once the caregiver exists.
func (d *DB) SeedDemoData() error {
	logger := common.GetLoggerWith(common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, "seed"))

	var existing models.User
	err := d.Conn.First(&existing, "email = ?", "demo@caregiver.com").Error
	if err == nil {
		logger.Info("Demo data already present, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	caregiverPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	caregiver := models.User{
		ID:       uuid.NewString(),
		Email:    "demo@caregiver.com",
		Name:     "Demo Caregiver",
		Password: string(caregiverPassword),
		Role:     models.RoleCaregiver,
	}
	admin := models.User{
		ID:       uuid.NewString(),
		Email:    "admin@vitanet.com",
		Name:     "System Administrator",
		Password: string(adminPassword),
		Role:     models.RoleAdmin,
	}

	now := time.Now()
	heartbeat := now

	device := models.Device{
		ID:            uuid.NewString(),
		SerialNumber:  "EDC_DEMO_001",
		Name:          "Demo Living Room Monitor",
		Location:      "Living Room",
		UserID:        caregiver.ID,
		IsOnline:      true,
		LastHeartbeat: &heartbeat,
	}

	patient := models.Patient{
		DeviceID:         device.ID,
		Name:             "Margaret Johnson",
		Age:              78,
		Relationship:     "Grandmother",
		Conditions:       "Hypertension, Diabetes Type 2",
		EmergencyContact: "Dr. Sarah Smith",
		EmergencyPhone:   "+1-555-123-4567",
	}

	readings := make([]models.SensorReading, 0, 24)
	for i := 0; i < 24; i++ {
		readings = append(readings, models.SensorReading{
			DeviceID:    device.ID,
			Temperature: 20 + rand.Float64()*8,
			Humidity:    40 + rand.Float64()*20,
			Motion:      rand.Float64() > 0.5,
			FanActive:   rand.Float64() > 0.8,
			Timestamp:   now.Add(-time.Duration(i) * time.Hour),
		})
	}

	ackedAt := now.Add(-60 * time.Minute)
	alerts := []models.Alert{
		{
			DeviceID:  device.ID,
			Type:      models.AlertTypeHelp,
			Message:   "Emergency help button pressed",
			Priority:  models.PriorityHigh,
			Timestamp: now.Add(-15 * time.Minute),
		},
		{
			DeviceID:       device.ID,
			Type:           models.AlertTypeWater,
			Message:        "Water assistance requested",
			Priority:       models.PriorityMedium,
			Acknowledged:   true,
			AcknowledgedAt: &ackedAt,
			Timestamp:      now.Add(-65 * time.Minute),
		},
	}

	reminders := []models.Reminder{
		{
			DeviceID:   device.ID,
			Medication: "Blood Pressure Medication",
			Dosage:     "1 tablet (Lisinopril 10mg)",
			Time:       "09:00",
			IsActive:   true,
			Notes:      "Take with breakfast",
		},
		{
			DeviceID:   device.ID,
			Medication: "Diabetes Medication",
			Dosage:     "1 tablet (Metformin 500mg)",
			Time:       "19:00",
			IsActive:   true,
			Notes:      "Take with dinner",
		},
	}

	err = d.Conn.Transaction(func(tx *gorm.DB) error {
		for _, user := range []models.User{caregiver, admin} {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&device).Error; err != nil {
			return err
		}
		if err := tx.Create(&patient).Error; err != nil {
			return err
		}
		if err := tx.Create(&readings).Error; err != nil {
			return err
		}
		if err := tx.Create(&alerts).Error; err != nil {
			return err
		}
		return tx.Create(&reminders).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded demo data", zap.String("device_id", device.ID))
	return nil
}
