package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BodyController struct {
	Body *services.BodyService
}

func NewBodyController(bs *services.BodyService) *BodyController {
	return &BodyController{Body: bs}
}

type bodyUpsertInput struct {
	MeasuredAt time.Time `json:"measured_at"`
	Weight     string    `json:"weight" binding:"required"` // kg
	BodyFatPct string    `json:"body_fat_pct"`
}

func (bc *BodyController) Upsert(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	var input bodyUpsertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.MeasuredAt.IsZero() {
		input.MeasuredAt = time.Now()
	}

	weight, err := decimal.NewFromString(input.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be a number"})
		return
	}
	var bodyFat *decimal.Decimal
	if input.BodyFatPct != "" {
		bf, err := decimal.NewFromString(input.BodyFatPct)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body_fat_pct must be a number"})
			return
		}
		bodyFat = &bf
	}

	row, err := bc.Body.UpsertMeasurement(u, input.MeasuredAt, weight, bodyFat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (bc *BodyController) Get(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	day, ok := parseDayParam(c, "date")
	if !ok {
		return
	}
	row, err := bc.Body.GetMeasurement(u, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no measurement for that day"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (bc *BodyController) List(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}
	rows, err := bc.Body.ListMeasurements(u, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": rows})
}

// Recalculate re-stamps BMR/TDEE snapshots for the given range using the
// current profile. Explicit opt-in; nothing recomputes retroactively on
// its own.
func (bc *BodyController) Recalculate(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}
	n, err := bc.Body.Recalculate(u, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days_recalculated": n})
}
