package care

import (
	"vitanet.io/elder-care-service/pkg/db"
	"vitanet.io/elder-care-service/pkg/models"
)

type IDevice interface {
	RegisterDevice(userID string, input *models.Device) (*models.Device, error)
	ListDevicesForAccount(userID string) ([]models.Device, error)
}

type ITelemetry interface {
	IngestReading(deviceID string, input *models.SensorReading) (*models.SensorReading, error)
	ListReadings(deviceID string, limit int) ([]models.SensorReading, error)
}

type IAlert interface {
	CreateAlert(deviceID string, alertType models.AlertType, message string, priority models.Priority) (*models.Alert, error)
	AcknowledgeAlert(alertID uint) (*models.Alert, error)
	ListAlerts(filter AlertFilter) ([]models.Alert, error)
}

type IReminder interface {
	ListReminders(deviceID string) ([]models.Reminder, error)
	CreateReminder(deviceID string, input *models.Reminder) (*models.Reminder, error)
	UpdateReminder(reminderID uint, input *models.Reminder) (*models.Reminder, error)
	DeleteReminder(reminderID uint) error
}

type IPatient interface {
	UpsertPatient(deviceID string, input *models.Patient) (*models.Patient, error)
	GetPatient(deviceID string) (*models.Patient, error)
}

type IAccount interface {
	CreateAccount(email, name, password string, role models.Role) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetAccount(userID string) (*models.User, error)
}

type IAdmin interface {
	Stats() (*AdminStats, error)
	Analytics(days int) ([]AnalyticsPoint, error)
	ListUsers() ([]AdminUserView, error)
	ListDevices() ([]AdminDeviceView, error)
	RecentAlerts(limit int) ([]AdminAlertView, error)
}

type Care struct {
	Db      db.DB
	Metrics SyntheticMetrics

	Device    IDevice
	Telemetry ITelemetry
	Alert     IAlert
	Reminder  IReminder
	Patient   IPatient
	Account   IAccount
	Admin     IAdmin
}

type ServiceOpts struct {
	Device    IDevice
	Telemetry ITelemetry
	Alert     IAlert
	Reminder  IReminder
	Patient   IPatient
	Account   IAccount
	Admin     IAdmin
}

func (c *Care) WithServices(opts ServiceOpts) *Care {
	if opts.Device != nil {
		c.Device = opts.Device
	}
	if opts.Telemetry != nil {
		c.Telemetry = opts.Telemetry
	}
	if opts.Alert != nil {
		c.Alert = opts.Alert
	}
	if opts.Reminder != nil {
		c.Reminder = opts.Reminder
	}
	if opts.Patient != nil {
		c.Patient = opts.Patient
	}
	if opts.Account != nil {
		c.Account = opts.Account
	}
	if opts.Admin != nil {
		c.Admin = opts.Admin
	}
	return c
}

// WithAllServices wires every service to its default implementation.
func (c *Care) WithAllServices() *Care {
	return c.WithServices(ServiceOpts{
		Device:    c.GetIDevice(),
		Telemetry: c.GetITelemetry(),
		Alert:     c.GetIAlert(),
		Reminder:  c.GetIReminder(),
		Patient:   c.GetIPatient(),
		Account:   c.GetIAccount(),
		Admin:     c.GetIAdmin(),
	})
}
