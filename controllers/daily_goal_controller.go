package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetDailyGoals(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := services.GetGoals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

type dailyGoalInput struct {
	CaloriesIn       int `json:"calories_in"`
	CaloriesOut      int `json:"calories_out"`
	ExerciseMinutes  int `json:"exercise_minutes"`
	SleepMinutes     int `json:"sleep_minutes"`
	NetCaloriesLimit int `json:"net_calories_limit"`
}

func UpsertDailyGoals(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input dailyGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertGoals(
		uid, input.CaloriesIn, input.CaloriesOut,
		input.ExerciseMinutes, input.SleepMinutes, input.NetCaloriesLimit,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals saved"})
}
