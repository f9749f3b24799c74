package care

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"vitanet.io/elder-care-service/pkg/db"
	"vitanet.io/elder-care-service/pkg/models"
	_ "vitanet.io/elder-care-service/pkg/testing"
)

// fixedMetrics makes synthetic dashboard numbers deterministic in tests.
type fixedMetrics struct{}

func (fixedMetrics) AvgUptime() float64         { return 99.0 }
func (fixedMetrics) AvgResponseTime() float64   { return 1.5 }
func (fixedMetrics) DeviceUptimeHours() float64 { return 120.0 }
func (fixedMetrics) BatteryLevel() int          { return 80 }
func (fixedMetrics) SignalStrength() int        { return 70 }
func (fixedMetrics) ActiveUserJitter() int      { return 0 }

func newTestCare(t *testing.T) *Care {
	t.Helper()

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	careObj := &Care{
		Db:      *dbInstance,
		Metrics: fixedMetrics{},
	}
	careObj.WithAllServices()
	return careObj
}

func seedAccount(t *testing.T, careObj *Care, role models.Role) *models.User {
	t.Helper()

	user, err := careObj.Account.CreateAccount(
		uuid.NewString()+"@example.com", "Test User", "password123", role)
	require.NoError(t, err)
	return user
}

func seedDevice(t *testing.T, careObj *Care, userID string) *models.Device {
	t.Helper()

	device, err := careObj.Device.RegisterDevice(userID, &models.Device{
		SerialNumber: "EDC_" + uuid.NewString(),
		Location:     "Living Room",
	})
	require.NoError(t, err)
	return device
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
