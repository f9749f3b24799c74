package care

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

func TestUpsertPatient(t *testing.T) {
	common.SetTestLoggerNop()

	careObj := newTestCare(t)
	user := seedAccount(t, careObj, models.RoleCaregiver)
	device := seedDevice(t, careObj, user.ID)

	created, err := careObj.Patient.UpsertPatient(device.ID, &models.Patient{
		Name:             "Harold Finch",
		Age:              79,
		Relationship:     "Father",
		Conditions:       "Hypertension",
		EmergencyContact: "Jane Finch",
		EmergencyPhone:   "555-0101",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, device.ID, created.DeviceID)
	assert.Equal(t, "Harold Finch", created.Name)

	// A second upsert for the same device overwrites in place.
	updated, err := careObj.Patient.UpsertPatient(device.ID, &models.Patient{
		Name: "Harold J. Finch",
		Age:  80,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Harold J. Finch", updated.Name)
	assert.Equal(t, 80, updated.Age)

	var count int64
	err = careObj.Db.Conn.Model(&models.Patient{}).Where("device_id = ?", device.ID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpsertPatient_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	careObj := newTestCare(t)

	_, err := careObj.Patient.UpsertPatient("", &models.Patient{Name: "X"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = careObj.Patient.UpsertPatient(uuid.NewString(), &models.Patient{})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = careObj.Patient.UpsertPatient(uuid.NewString(), &models.Patient{Name: "X"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestGetPatient(t *testing.T) {
	common.SetTestLoggerNop()

	careObj := newTestCare(t)
	user := seedAccount(t, careObj, models.RoleCaregiver)
	device := seedDevice(t, careObj, user.ID)

	_, err := careObj.Patient.GetPatient(device.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = careObj.Patient.UpsertPatient(device.ID, &models.Patient{Name: "Ada"})
	require.NoError(t, err)

	patient, err := careObj.Patient.GetPatient(device.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", patient.Name)
}
