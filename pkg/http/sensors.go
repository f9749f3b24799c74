package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"vitanet.io/elder-care-service/pkg/models"
)

type ReadingRequest struct {
	DeviceID    string  `json:"deviceId"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Motion      bool    `json:"motion"`
	FanActive   bool    `json:"fanActive"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"DeviceID":    z.String().Required(),
	"Temperature": z.Float64().Required(),
	"Humidity":    z.Float64().Required(),
	"Motion":      z.Bool(),
	"FanActive":   z.Bool(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, err := rs.Care.Telemetry.IngestReading(req.DeviceID, &models.SensorReading{
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Motion:      req.Motion,
		FanActive:   req.FanActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reading": reading})
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	deviceID := c.Query("deviceId")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	readings, err := rs.Care.Telemetry.ListReadings(deviceID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"readings": readings})
}
