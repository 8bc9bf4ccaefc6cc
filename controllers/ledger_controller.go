package controllers

import (
	"net/http"

	"backend/ledger"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type LedgerController struct {
	Ledger *services.LedgerService
}

func NewLedgerController(ls *services.LedgerService) *LedgerController {
	return &LedgerController{Ledger: ls}
}

func ledgerDayJSON(l *ledger.DailyLedger) gin.H {
	out := gin.H{
		"date":             l.Date.Format("2006-01-02"),
		"calories_in":      l.TotalCaloriesIn,
		"carbs":            l.TotalCarbs,
		"protein":          l.TotalProtein,
		"fat":              l.TotalFat,
		"carbs_ratio":      l.CarbsRatio,
		"protein_ratio":    l.ProteinRatio,
		"fat_ratio":        l.FatRatio,
		"bmr":              l.BMR,
		"tdee":             l.TDEE,
		"calories_out":     l.TotalCaloriesOut,
		"exercise_minutes": l.ExerciseMinutes,
		"exercise_count":   l.ExerciseCount,
		"net_calories":     l.NetCalories,
		"sleep_duration":   l.SleepDuration,
		"weight":           l.Weight,
		"body_fat_pct":     l.BodyFatPct,
	}
	if l.SleepStatus != nil {
		out["sleep_status"] = string(*l.SleepStatus)
	} else {
		out["sleep_status"] = nil
	}
	return out
}

// GetDay returns the day's aggregate. A day with no events comes back as
// zero totals, never as 404.
func (lc *LedgerController) GetDay(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	day, ok := parseDayParam(c, "date")
	if !ok {
		return
	}

	l, err := lc.Ledger.GetDay(u, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledgerDayJSON(l))
}

// GetRange returns the stored aggregates between from and to. Days never
// touched by an event are simply absent.
func (lc *LedgerController) GetRange(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	rows, err := lc.Ledger.Range(u.ID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": rows})
}
