package models

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCaregiver Role = "CAREGIVER"
)

type AlertType string

const (
	AlertTypeHelp               AlertType = "HELP"
	AlertTypeWater              AlertType = "WATER"
	AlertTypeTemperatureHigh    AlertType = "TEMPERATURE_HIGH"
	AlertTypeTemperatureLow     AlertType = "TEMPERATURE_LOW"
	AlertTypeMotionDetected     AlertType = "MOTION_DETECTED"
	AlertTypeMotionTimeout      AlertType = "MOTION_TIMEOUT"
	AlertTypeMedicationReminder AlertType = "MEDICATION_REMINDER"
	AlertTypeDeviceOffline      AlertType = "DEVICE_OFFLINE"
	AlertTypeEmergency          AlertType = "EMERGENCY"
	AlertTypeOther              AlertType = "OTHER"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Role      Role      `gorm:"type:varchar(16);check:role IN ('ADMIN','CAREGIVER')" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Devices []Device `gorm:"foreignKey:UserID;references:ID" json:"devices,omitempty"`
}

type Device struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	SerialNumber  string     `gorm:"uniqueIndex" json:"serialNumber"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	UserID        string     `gorm:"index" json:"userId"`
	IsOnline      bool       `json:"isOnline"`
	LastHeartbeat *time.Time `json:"lastHeartbeat"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Patient   *Patient        `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Readings  []SensorReading `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE" json:"readings,omitempty"`
	Alerts    []Alert         `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE" json:"alerts,omitempty"`
	Reminders []Reminder      `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE" json:"reminders,omitempty"`
}

type Patient struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	DeviceID         string    `gorm:"uniqueIndex" json:"deviceId"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Relationship     string    `json:"relationship"`
	Conditions       string    `json:"conditions"`
	EmergencyContact string    `json:"emergencyContact"`
	EmergencyPhone   string    `json:"emergencyPhone"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SensorReading rows are append-only and never updated after creation.
type SensorReading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    string    `gorm:"index" json:"deviceId"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Motion      bool      `json:"motion"`
	FanActive   bool      `json:"fanActive"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

type Alert struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	DeviceID       string     `gorm:"index" json:"deviceId"`
	Type           AlertType  `gorm:"type:varchar(32)" json:"type"`
	Message        string     `json:"message"`
	Priority       Priority   `gorm:"type:varchar(16);check:priority IN ('LOW','MEDIUM','HIGH','CRITICAL')" json:"priority"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	Timestamp      time.Time  `gorm:"index" json:"timestamp"`
}

type Reminder struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	DeviceID      string     `gorm:"index" json:"deviceId"`
	Medication    string     `json:"medication"`
	Dosage        string     `json:"dosage"`
	Time          string     `json:"time"` // scheduled time of day, "HH:MM"
	IsActive      bool       `json:"isActive"`
	Notes         string     `json:"notes"`
	LastTriggered *time.Time `json:"lastTriggered,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
