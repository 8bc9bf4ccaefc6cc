package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Sleep *services.SleepService
}

func NewSleepController(ss *services.SleepService) *SleepController {
	return &SleepController{Sleep: ss}
}

type sleepUpsertInput struct {
	WokeAt          time.Time `json:"woke_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`
}

// Upsert records last night's sleep. The day it lands on follows wake
// time, so a 23:00–07:00 night belongs to the morning's day.
func (sc *SleepController) Upsert(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	var input sleepUpsertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := sc.Sleep.UpsertSleep(u, input.WokeAt, input.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (sc *SleepController) Get(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	day, ok := parseDayParam(c, "date")
	if !ok {
		return
	}
	row, err := sc.Sleep.GetSleep(u, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sleep recorded for that day"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (sc *SleepController) ListRange(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}
	rows, err := sc.Sleep.ListSleepRange(u, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": rows})
}
