package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Food *services.FoodService
}

func NewFoodController(fs *services.FoodService) *FoodController {
	return &FoodController{Food: fs}
}

// GET /food/search?q=banana
func (fc *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	hits, err := fc.Food.Search(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

// POST /food/recognize — photo in, candidate foods out
func (fc *FoodController) Recognize(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hits, err := fc.Food.Recognize(body.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

// GET /food/preview?food_id=...&measure_uri=...&quantity=1.5
func (fc *FoodController) Preview(c *gin.Context) {
	qty, err := strconv.ParseFloat(c.DefaultQuery("quantity", "1"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a number"})
		return
	}
	preview, err := fc.Food.Preview(c.Query("food_id"), c.Query("measure_uri"), qty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, preview)
}
