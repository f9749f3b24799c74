package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"vitanet.io/elder-care-service/pkg/models"
)

type ReminderRequest struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Time       string `json:"time"`
	IsActive   bool   `json:"isActive"`
	Notes      string `json:"notes"`
}

var createReminderSchema = z.Struct(z.Shape{
	"Medication": z.String().Required(),
	"Dosage":     z.String(),
	"Time":       z.String().Required(),
	"IsActive":   z.Bool(),
	"Notes":      z.String(),
})

var updateReminderSchema = z.Struct(z.Shape{
	"Medication": z.String(),
	"Dosage":     z.String(),
	"Time":       z.String(),
	"IsActive":   z.Bool(),
	"Notes":      z.String(),
})

func (rs *RestfulServer) GetReminders(c *gin.Context) {
	reminders, err := rs.Care.Reminder.ListReminders(c.Param("device_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

func (rs *RestfulServer) PostReminder(c *gin.Context) {
	var req ReminderRequest
	if err := createReminderSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reminder, err := rs.Care.Reminder.CreateReminder(c.Param("device_id"), &models.Reminder{
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Time:       req.Time,
		IsActive:   req.IsActive,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

func (rs *RestfulServer) PutReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("reminder_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminder id must be an integer"})
		return
	}

	var req ReminderRequest
	if err := updateReminderSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reminder, err := rs.Care.Reminder.UpdateReminder(uint(reminderID), &models.Reminder{
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Time:       req.Time,
		IsActive:   req.IsActive,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

func (rs *RestfulServer) DeleteReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("reminder_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminder id must be an integer"})
		return
	}

	if err := rs.Care.Reminder.DeleteReminder(uint(reminderID)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
