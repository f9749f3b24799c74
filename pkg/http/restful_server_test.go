package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vitanet.io/elder-care-service/pkg/care/mocks"
	_ "vitanet.io/elder-care-service/pkg/testing"

	"vitanet.io/elder-care-service/pkg/auth"
	"vitanet.io/elder-care-service/pkg/care"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/db"
	"vitanet.io/elder-care-service/pkg/models"
)

type testMetrics struct{}

func (testMetrics) AvgUptime() float64         { return 99.0 }
func (testMetrics) AvgResponseTime() float64   { return 1.5 }
func (testMetrics) DeviceUptimeHours() float64 { return 120.0 }
func (testMetrics) BatteryLevel() int          { return 80 }
func (testMetrics) SignalStrength() int        { return 70 }
func (testMetrics) ActiveUserJitter() int      { return 0 }

func setupTestServer() *RestfulServer {
	careObj := care.Care{
		Db:      *db.GetInstance(db.UseMemorySqliteDialector()),
		Metrics: testMetrics{},
	}
	careObj.WithAllServices()

	rs := &RestfulServer{
		Server: gin.Default(),
		Care:   &careObj,
		Tokens: auth.NewTokenService("test-secret"),
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = care.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

// newSession creates an account directly through the service layer and
// returns a bearer token plus the account, bypassing the register endpoint
// so admin sessions can be minted too.
func newSession(t *testing.T, rs *RestfulServer, role models.Role) (string, *models.User) {
	t.Helper()

	user, err := rs.Care.Account.CreateAccount(
		uuid.NewString()+"@example.com", "Session User", "password123", role)
	require.NoError(t, err)

	token, err := rs.Tokens.IssueToken(user)
	require.NoError(t, err)
	return token, user
}

func newSessionDevice(t *testing.T, rs *RestfulServer, userID string) *models.Device {
	t.Helper()

	device, err := rs.Care.Device.RegisterDevice(userID, &models.Device{
		SerialNumber: "EDC_" + uuid.NewString(),
	})
	require.NoError(t, err)
	return device
}

func doJSON(rs *RestfulServer, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	email := uuid.NewString() + "@example.com"
	w := doJSON(rs, "POST", "/auth/register", "", RegisterRequest{
		Email:    email,
		Name:     "New Caregiver",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var registered struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, models.RoleCaregiver, registered.User.Role)
	assert.NotContains(t, w.Body.String(), "password123")

	w = doJSON(rs, "POST", "/auth/login", "", LoginRequest{Email: email, Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/auth/login", "", LoginRequest{Email: email, Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterAndLogin_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// empty payload should be rejected
	w := doJSON(rs, "POST", "/auth/register", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate email
	email := uuid.NewString() + "@example.com"
	req := RegisterRequest{Email: email, Name: "Dup", Password: "password123"}
	w = doJSON(rs, "POST", "/auth/register", "", req)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(rs, "POST", "/auth/register", "", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostDevice(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)

	serial := "EDC_" + uuid.NewString()
	w := doJSON(rs, "POST", "/devices", token, DeviceRequest{SerialNumber: serial, Location: "Bedroom"})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Device models.Device `json:"device"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, serial, created.Device.SerialNumber)
	assert.Equal(t, user.ID, created.Device.UserID)
	assert.False(t, created.Device.IsOnline)

	// duplicate serial number is rejected
	w = doJSON(rs, "POST", "/devices", token, DeviceRequest{SerialNumber: serial})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDevices(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
		DeviceID:    device.ID,
		Temperature: 22.0,
		Humidity:    45.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/devices", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Devices []models.Device `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Devices, 1)
	assert.True(t, listed.Devices[0].IsOnline)
	require.Len(t, listed.Devices[0].Readings, 1)
	assert.Equal(t, 22.0, listed.Devices[0].Readings[0].Temperature)
}

func TestSessionRequired(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	for _, path := range []string{"/devices", "/alerts"} {
		w := doJSON(rs, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "GET %s without token", path)
	}

	w := doJSON(rs, "GET", "/devices", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostReadingAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	// out-of-range temperature raises a critical alert
	w := doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
		DeviceID:    device.ID,
		Temperature: 36.0,
		Humidity:    50.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/alerts?deviceId="+device.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Alerts []models.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Alerts, 1)
	assert.Equal(t, models.AlertTypeTemperatureHigh, listed.Alerts[0].Type)
	assert.Equal(t, models.PriorityCritical, listed.Alerts[0].Priority)
	assert.Contains(t, listed.Alerts[0].Message, "36")
}

func TestPostReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer()
		// empty payload should be rejected
		w := doJSON(rs, "POST", "/sensors/readings", "", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer()
		// unknown device is rejected, not auto-registered
		w := doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
			DeviceID:    uuid.NewString(),
			Temperature: 22.0,
			Humidity:    45.0,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestPostAlert(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "POST", "/sensors/alerts", "", AlertRequest{
		DeviceID: device.ID,
		Type:     string(models.AlertTypeHelp),
		Message:  "Help button pressed",
		Priority: string(models.PriorityCritical),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Alert models.Alert `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.AlertTypeHelp, created.Alert.Type)
	assert.Equal(t, models.PriorityCritical, created.Alert.Priority)

	// priority defaults to MEDIUM when omitted
	w = doJSON(rs, "POST", "/sensors/alerts", "", AlertRequest{
		DeviceID: device.ID,
		Type:     string(models.AlertTypeWater),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.PriorityMedium, created.Alert.Priority)
}

func TestPostAlert_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "POST", "/sensors/alerts", "", AlertRequest{
		DeviceID: device.ID,
		Type:     "NOT_A_TYPE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/sensors/alerts", "", AlertRequest{
		DeviceID: device.ID,
		Type:     string(models.AlertTypeHelp),
		Priority: "URGENT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostAcknowledge(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	alert, err := rs.Care.Alert.CreateAlert(device.ID, models.AlertTypeWater, "Water requested", models.PriorityMedium)
	require.NoError(t, err)

	w := doJSON(rs, "POST", fmt.Sprintf("/alerts/%d/acknowledge", alert.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var acked struct {
		Alert models.Alert `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acked))
	assert.True(t, acked.Alert.Acknowledged)
	require.NotNil(t, acked.Alert.AcknowledgedAt)

	// acknowledging again succeeds and keeps the record acknowledged
	w = doJSON(rs, "POST", fmt.Sprintf("/alerts/%d/acknowledge", alert.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/alerts/999999999/acknowledge", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "POST", "/alerts/not-a-number/acknowledge", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutPatient(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "PUT", "/devices/"+device.ID+"/patient", token, PatientRequest{
		Name: "Margaret Johnson",
		Age:  82,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved struct {
		Patient models.Patient `json:"patient"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "Margaret Johnson", saved.Patient.Name)

	// second PUT overwrites rather than duplicating
	w = doJSON(rs, "PUT", "/devices/"+device.ID+"/patient", token, PatientRequest{
		Name: "Margaret J. Johnson",
		Age:  83,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Patient models.Patient `json:"patient"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, saved.Patient.ID, updated.Patient.ID)
	assert.Equal(t, "Margaret J. Johnson", updated.Patient.Name)

	// missing name is rejected
	w = doJSON(rs, "PUT", "/devices/"+device.ID+"/patient", token, map[string]any{"age": 80})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "POST", "/devices/"+device.ID+"/reminders", token, ReminderRequest{
		Medication: "Lisinopril",
		Dosage:     "10mg",
		Time:       "08:00",
		IsActive:   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Reminder models.Reminder `json:"reminder"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.Reminder.ID)

	w = doJSON(rs, "GET", "/devices/"+device.ID+"/reminders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Reminders []models.Reminder `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Reminders, 1)

	w = doJSON(rs, "PUT", fmt.Sprintf("/reminders/%d", created.Reminder.ID), token, ReminderRequest{
		Dosage:   "20mg",
		IsActive: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Reminder models.Reminder `json:"reminder"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "20mg", updated.Reminder.Dosage)
	assert.Equal(t, "Lisinopril", updated.Reminder.Medication)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/reminders/%d", created.Reminder.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/reminders/%d", created.Reminder.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminder_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	// bad schedule format
	w := doJSON(rs, "POST", "/devices/"+device.ID+"/reminders", token, ReminderRequest{
		Medication: "Aspirin",
		Time:       "25:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty payload should be rejected
	w = doJSON(rs, "POST", "/devices/"+device.ID+"/reminders", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAdmin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	adminToken, _ := newSession(t, rs, models.RoleAdmin)
	caregiverToken, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	w := doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
		DeviceID:    device.ID,
		Temperature: 22.0,
		Humidity:    45.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// role gate
	w = doJSON(rs, "GET", "/admin?endpoint=stats", caregiverToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(rs, "GET", "/admin?endpoint=stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(rs, "GET", "/admin?endpoint=stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Stats care.AdminStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.GreaterOrEqual(t, stats.Stats.TotalUsers, int64(1))
	assert.Equal(t, 99.0, stats.Stats.AvgUptime)

	w = doJSON(rs, "GET", "/admin?endpoint=users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users struct {
		Users []care.AdminUserView `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.NotEmpty(t, users.Users)

	w = doJSON(rs, "GET", "/admin?endpoint=devices", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/admin?endpoint=alerts", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/admin?endpoint=analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var analytics struct {
		Analytics []care.AnalyticsPoint `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analytics))
	assert.Len(t, analytics.Analytics, 7)

	w = doJSON(rs, "GET", "/admin?endpoint=bogus", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid endpoint"}`, w.Body.String())
}

func TestGetAdmin_ServiceError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	adminToken, _ := newSession(t, rs, models.RoleAdmin)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAdmin := mocks.NewMockIAdmin(ctrl)
	rs.Care.Admin = mockIAdmin
	mockIAdmin.EXPECT().
		Stats().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, "GET", "/admin?endpoint=stats", adminToken, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetReadings_ServiceError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	deviceID := uuid.NewString()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockITelemetry := mocks.NewMockITelemetry(ctrl)
	rs.Care.Telemetry = mockITelemetry
	mockITelemetry.EXPECT().
		ListReadings(gomock.Eq(deviceID), gomock.Eq(0)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, "GET", "/sensors/readings?deviceId="+deviceID, "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func setupTestServerWithLimiter(limiter *care.RateLimiterStore) *RestfulServer {
	careObj := care.Care{
		Db:      *db.GetInstance(db.UseMemorySqliteDialector()),
		Metrics: testMetrics{},
	}
	careObj.WithAllServices()

	rs := &RestfulServer{
		Server:           gin.Default(),
		Care:             &careObj,
		Tokens:           auth.NewTokenService("test-secret"),
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(care.NewRateLimiterStore(2, 2))

	adminToken, _ := newSession(t, rs, models.RoleAdmin)
	_, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)

	readingReq := ReadingRequest{
		DeviceID:    device.ID,
		Temperature: 22.0,
		Humidity:    45.0,
	}

	// Simulate 3 requests in quick succession — only 2 should be allowed
	for i := 0; i < 3; i++ {
		w := doJSON(rs, "POST", "/sensors/readings", "", readingReq)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// resetting the device limiter opens the gate again
	w := doJSON(rs, "POST", "/devices/"+device.ID+"/limiter", adminToken, LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, "POST", "/sensors/readings", "", readingReq)
	require.Equal(t, http.StatusOK, w.Code, "request after reset should be allowed")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(care.NewRateLimiterStore(2, 2))

	adminToken, _ := newSession(t, rs, models.RoleAdmin)
	caregiverToken, _ := newSession(t, rs, models.RoleCaregiver)
	deviceID := uuid.NewString()

	// empty payload should be rejected
	w := doJSON(rs, "POST", "/devices/"+deviceID+"/limiter", adminToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// caregivers cannot touch limiters
	w = doJSON(rs, "POST", "/devices/"+deviceID+"/limiter", caregiverToken, LimiterRequest{Rate: 2, Burst: 2})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(care.NewRateLimiterStore(0, 0))

	deviceID := uuid.NewString()

	// nothing should pass below
	{
		w := doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
			DeviceID:    deviceID,
			Temperature: 22.0,
			Humidity:    45.0,
		})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		w := doJSON(rs, "POST", "/sensors/alerts", "", AlertRequest{
			DeviceID: deviceID,
			Type:     string(models.AlertTypeHelp),
		})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer() // default without limiter store

	adminToken, _ := newSession(t, rs, models.RoleAdmin)
	deviceID := uuid.NewString()

	// without limiter store setup limiter should be allowed and just return ok (but no effect)
	w := doJSON(rs, "POST", "/devices/"+deviceID+"/limiter", adminToken, LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	// and readings still flow instead of too many requests
	_, user := newSession(t, rs, models.RoleCaregiver)
	device := newSessionDevice(t, rs, user.ID)
	w = doJSON(rs, "POST", "/sensors/readings", "", ReadingRequest{
		DeviceID:    device.ID,
		Temperature: 22.0,
		Humidity:    45.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
