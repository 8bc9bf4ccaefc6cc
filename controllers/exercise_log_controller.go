package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExerciseLogController struct {
	Logs *services.ExerciseLogService
}

func NewExerciseLogController(els *services.ExerciseLogService) *ExerciseLogController {
	return &ExerciseLogController{Logs: els}
}

func (ec *ExerciseLogController) Create(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	var input services.ExerciseLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := ec.Logs.AddExercise(u, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (ec *ExerciseLogController) Update(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input services.ExerciseLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := ec.Logs.UpdateExercise(u, uint(id), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (ec *ExerciseLogController) Delete(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := ec.Logs.DeleteExercise(u, uint(id)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (ec *ExerciseLogController) List(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	if c.Query("date") != "" {
		day, ok := parseDayParam(c, "date")
		if !ok {
			return
		}
		rows, err := ec.Logs.ListExerciseByDay(u, day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": rows})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := ec.Logs.ListRecentExercise(u, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": rows})
}
