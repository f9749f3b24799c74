package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"vitanet.io/elder-care-service/pkg/models"
)

type DeviceRequest struct {
	SerialNumber string `json:"serialNumber"`
	Name         string `json:"name"`
	Location     string `json:"location"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"SerialNumber": z.String().Required(),
	"Name":         z.String(),
	"Location":     z.String(),
})

func (rs *RestfulServer) PostDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Care.Device.RegisterDevice(c.GetString(ctxKeyUserID), &models.Device{
		SerialNumber: req.SerialNumber,
		Name:         req.Name,
		Location:     req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"device": device})
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Care.Device.ListDevicesForAccount(c.GetString(ctxKeyUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

type PatientRequest struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Relationship     string `json:"relationship"`
	Conditions       string `json:"conditions"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

var patientRequestSchema = z.Struct(z.Shape{
	"Name":             z.String().Required(),
	"Age":              z.Int(),
	"Relationship":     z.String(),
	"Conditions":       z.String(),
	"EmergencyContact": z.String(),
	"EmergencyPhone":   z.String(),
})

func (rs *RestfulServer) PutPatient(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req PatientRequest
	if err := patientRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patient, err := rs.Care.Patient.UpsertPatient(deviceID, &models.Patient{
		Name:             req.Name,
		Age:              req.Age,
		Relationship:     req.Relationship,
		Conditions:       req.Conditions,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
