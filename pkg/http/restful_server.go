package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"vitanet.io/elder-care-service/pkg/auth"
	"vitanet.io/elder-care-service/pkg/care"
)

type RestfulServer struct {
	Server           *gin.Engine
	Care             *care.Care
	Tokens           *auth.TokenService
	RateLimiterStore *care.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	authGroup := rs.Server.Group("/auth")
	{
		authGroup.POST("/register", rs.PostRegister)
		authGroup.POST("/login", rs.PostLogin)
	}

	// device-facing, no session: sensor nodes push readings and raise
	// button alerts with nothing but their device id
	sensors := rs.Server.Group("/sensors")
	{
		sensors.POST("/readings", rs.PostReading)
		sensors.GET("/readings", rs.GetReadings)
		sensors.POST("/alerts", rs.PostAlert)
	}

	devices := rs.Server.Group("/devices", rs.RequireSession())
	{
		devices.POST("", rs.PostDevice)
		devices.GET("", rs.GetDevices)
		devices.PUT("/:device_id/patient", rs.PutPatient)
		devices.GET("/:device_id/reminders", rs.GetReminders)
		devices.POST("/:device_id/reminders", rs.PostReminder)
		devices.POST("/:device_id/limiter", rs.RequireAdmin(), rs.PostLimiter)
	}

	alerts := rs.Server.Group("/alerts", rs.RequireSession())
	{
		alerts.GET("", rs.GetAlerts)
		alerts.POST("/:alert_id/acknowledge", rs.PostAcknowledge)
	}

	reminders := rs.Server.Group("/reminders", rs.RequireSession())
	{
		reminders.PUT("/:reminder_id", rs.PutReminder)
		reminders.DELETE("/:reminder_id", rs.DeleteReminder)
	}

	rs.Server.GET("/admin", rs.RequireSession(), rs.RequireAdmin(), rs.GetAdmin)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
