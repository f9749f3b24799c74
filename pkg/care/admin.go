package care

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

const defaultRecentAlerts = 20

// Nothing ever clears is_online, so the admin views treat a device as live
// only while its heartbeat is fresh.
const heartbeatFreshWindow = 5 * time.Minute

type AdminStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	ActiveDevices   int64   `json:"activeDevices"`
	TotalAlerts     int64   `json:"totalAlerts"`
	AvgUptime       float64 `json:"avgUptime"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

type AnalyticsPoint struct {
	Date         string  `json:"date"`
	ActiveUsers  int     `json:"activeUsers"`
	Alerts       int64   `json:"alerts"`
	DeviceUptime float64 `json:"deviceUptime"`
	ResponseTime float64 `json:"responseTime"`
}

type AdminPatientSummary struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type AdminUserView struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Role               models.Role          `json:"role"`
	DeviceSerialNumber string               `json:"deviceSerialNumber,omitempty"`
	DeviceStatus       string               `json:"deviceStatus"`
	LastActive         string               `json:"lastActive"`
	Patient            *AdminPatientSummary `json:"patient,omitempty"`
}

type AdminDeviceView struct {
	ID             string  `json:"id"`
	SerialNumber   string  `json:"serialNumber"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	LastHeartbeat  string  `json:"lastHeartbeat"`
	BatteryLevel   int     `json:"batteryLevel"`
	SignalStrength int     `json:"signalStrength"`
	Location       string  `json:"location"`
	Owner          string  `json:"owner"`
	Uptime         float64 `json:"uptime"`
}

type AdminAlertView struct {
	ID           uint             `json:"id"`
	Type         models.AlertType `json:"type"`
	Severity     models.Priority  `json:"severity"`
	Message      string           `json:"message"`
	DeviceID     string           `json:"deviceId"`
	Timestamp    string           `json:"timestamp"`
	Acknowledged bool             `json:"acknowledged"`
}

func (c *Care) adminStats() (*AdminStats, error) {
	var totalUsers int64
	if err := c.Db.Conn.Model(&models.User{}).
		Where("role = ?", models.RoleCaregiver).
		Count(&totalUsers).Error; err != nil {
		return nil, err
	}

	var activeDevices int64
	if err := c.Db.Conn.Model(&models.Device{}).
		Where("is_online = ?", true).
		Count(&activeDevices).Error; err != nil {
		return nil, err
	}

	var unacknowledged int64
	if err := c.Db.Conn.Model(&models.Alert{}).
		Where("acknowledged = ?", false).
		Count(&unacknowledged).Error; err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:      totalUsers,
		ActiveDevices:   activeDevices,
		TotalAlerts:     unacknowledged,
		AvgUptime:       c.Metrics.AvgUptime(),
		AvgResponseTime: c.Metrics.AvgResponseTime(),
	}, nil
}

// adminAnalytics builds one bucket per day, oldest first. Alert counts are
// real; user activity and uptime numbers come from the synthetic source.
func (c *Care) adminAnalytics(days int) ([]AnalyticsPoint, error) {
	if days <= 0 {
		days = 7
	}

	var caregiverCount int64
	if err := c.Db.Conn.Model(&models.User{}).
		Where("role = ?", models.RoleCaregiver).
		Count(&caregiverCount).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	points := make([]AnalyticsPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.Add(24 * time.Hour)

		var alertCount int64
		if err := c.Db.Conn.Model(&models.Alert{}).
			Where("timestamp >= ? AND timestamp < ?", dayStart, dayEnd).
			Count(&alertCount).Error; err != nil {
			return nil, err
		}

		activeUsers := int(caregiverCount) + c.Metrics.ActiveUserJitter()
		if activeUsers < 1 {
			activeUsers = 1
		}

		points = append(points, AnalyticsPoint{
			Date:         day.Format("Jan 2"),
			ActiveUsers:  activeUsers,
			Alerts:       alertCount,
			DeviceUptime: 97 + c.Metrics.AvgUptime()/100*3,
			ResponseTime: c.Metrics.AvgResponseTime(),
		})
	}

	return points, nil
}

func (c *Care) adminListUsers() ([]AdminUserView, error) {
	var users []models.User
	err := c.Db.Conn.
		Preload("Devices").
		Preload("Devices.Patient").
		Where("role = ?", models.RoleCaregiver).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return common.Mapper(users, func(user models.User) AdminUserView {
		view := AdminUserView{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			DeviceStatus: "OFFLINE",
			LastActive:   "Never",
		}
		if len(user.Devices) == 0 {
			return view
		}

		device := user.Devices[0]
		view.DeviceSerialNumber = device.SerialNumber
		if device.IsOnline && common.IsFresh(device.LastHeartbeat, now, heartbeatFreshWindow) {
			view.DeviceStatus = "ONLINE"
		}
		if device.LastHeartbeat != nil {
			view.LastActive = common.RelativeTime(*device.LastHeartbeat, now)
		}
		if device.Patient != nil {
			view.Patient = &AdminPatientSummary{
				Name: device.Patient.Name,
				Age:  device.Patient.Age,
			}
		}
		return view
	}), nil
}

func (c *Care) adminListDevices() ([]AdminDeviceView, error) {
	var devices []models.Device
	err := c.Db.Conn.
		Preload("Patient").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]AdminDeviceView, 0, len(devices))
	for _, device := range devices {
		owner := "Unknown"
		if device.Patient != nil && device.Patient.Name != "" {
			owner = device.Patient.Name
		} else {
			var user models.User
			err := c.Db.Conn.First(&user, "id = ?", device.UserID).Error
			if err == nil && user.Name != "" {
				owner = user.Name
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}

		status := "INACTIVE"
		uptime := 0.0
		if device.IsOnline && common.IsFresh(device.LastHeartbeat, now, heartbeatFreshWindow) {
			status = "ACTIVE"
			uptime = c.Metrics.DeviceUptimeHours()
		}

		heartbeat := "Never"
		if device.LastHeartbeat != nil {
			heartbeat = common.RelativeTime(*device.LastHeartbeat, now)
		}

		location := device.Location
		if location == "" {
			location = "Unknown"
		}

		views = append(views, AdminDeviceView{
			ID:             device.ID,
			SerialNumber:   device.SerialNumber,
			Name:           device.Name,
			Status:         status,
			LastHeartbeat:  heartbeat,
			BatteryLevel:   c.Metrics.BatteryLevel(),
			SignalStrength: c.Metrics.SignalStrength(),
			Location:       location,
			Owner:          owner,
			Uptime:         uptime,
		})
	}

	return views, nil
}

func (c *Care) adminRecentAlerts(limit int) ([]AdminAlertView, error) {
	if limit <= 0 {
		limit = defaultRecentAlerts
	}

	var alerts []models.Alert
	err := c.Db.Conn.
		Order("timestamp desc").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return common.Mapper(alerts, func(alert models.Alert) AdminAlertView {
		return AdminAlertView{
			ID:           alert.ID,
			Type:         alert.Type,
			Severity:     alert.Priority,
			Message:      alert.Message,
			DeviceID:     alert.DeviceID,
			Timestamp:    common.RelativeTime(alert.Timestamp, now),
			Acknowledged: alert.Acknowledged,
		}
	}), nil
}

type IAdminImpl struct {
	care *Care
}

func (ia *IAdminImpl) Stats() (*AdminStats, error) {
	return ia.care.adminStats()
}

func (ia *IAdminImpl) Analytics(days int) ([]AnalyticsPoint, error) {
	return ia.care.adminAnalytics(days)
}

func (ia *IAdminImpl) ListUsers() ([]AdminUserView, error) {
	return ia.care.adminListUsers()
}

func (ia *IAdminImpl) ListDevices() ([]AdminDeviceView, error) {
	return ia.care.adminListDevices()
}

func (ia *IAdminImpl) RecentAlerts(limit int) ([]AdminAlertView, error) {
	return ia.care.adminRecentAlerts(limit)
}

func (c *Care) GetIAdmin() IAdmin {
	return &IAdminImpl{care: c}
}
