package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	Logs *services.FoodLogService
}

func NewFoodLogController(fls *services.FoodLogService) *FoodLogController {
	return &FoodLogController{Logs: fls}
}

func (fc *FoodLogController) Create(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := fc.Logs.AddFood(u, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (fc *FoodLogController) Update(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := fc.Logs.UpdateFood(u, uint(id), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (fc *FoodLogController) Delete(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := fc.Logs.DeleteFood(u, uint(id)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (fc *FoodLogController) Get(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	row, err := fc.Logs.GetFood(u, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// List returns the day's entries when ?date is given, otherwise the most
// recent entries across days.
func (fc *FoodLogController) List(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		return
	}

	if c.Query("date") != "" {
		day, ok := parseDayParam(c, "date")
		if !ok {
			return
		}
		rows, err := fc.Logs.ListFoodByDay(u, day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": rows})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := fc.Logs.ListRecentFood(u, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": rows})
}
