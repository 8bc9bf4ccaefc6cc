package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UserController struct {
	Ledger *services.LedgerService
}

func NewUserController(ls *services.LedgerService) *UserController {
	return &UserController{Ledger: ls}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMetabolics returns the user's current BMR/TDEE/BMI derived from the
// profile. This is the live value, not the snapshot stamped on any ledger.
func (uc *UserController) GetMetabolics(c *gin.Context) {
	email := c.GetString("email")
	out, err := services.GetUserMetabolics(email, uc.Ledger.Config())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(email, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

type OnboardInput struct {
	Birthday       string `json:"birthday" binding:"required"` // YYYY-MM-DD
	Sex            string `json:"sex"`
	Height         string `json:"height" binding:"required"` // cm
	Weight         string `json:"weight" binding:"required"` // kg
	BodyFatPct     string `json:"body_fat_pct"`
	ActivityLevel  string `json:"activity_level"`
	FitnessGoals   string `json:"fitness_goals"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
	MFAEnabled     bool   `json:"mfa_enabled"`
}

func (uc *UserController) Onboard(c *gin.Context) {
	email := c.GetString("email")

	var input OnboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birthday must be YYYY-MM-DD"})
		return
	}
	height, err := decimal.NewFromString(input.Height)
	if err != nil || !height.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height must be a positive number"})
		return
	}
	weight, err := decimal.NewFromString(input.Weight)
	if err != nil || !weight.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be a positive number"})
		return
	}
	var bodyFat *decimal.Decimal
	if input.BodyFatPct != "" {
		bf, err := decimal.NewFromString(input.BodyFatPct)
		if err != nil || bf.IsNegative() || bf.GreaterThan(decimal.NewFromInt(100)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body_fat_pct must be between 0 and 100"})
			return
		}
		bodyFat = &bf
	}

	if err := services.CompleteUserOnboarding(
		email, birthday, input.Sex, height, weight, bodyFat,
		input.ActivityLevel, input.FitnessGoals, input.ProfilePicture, input.MFAEnabled,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}

func (uc *UserController) DeleteAccount(c *gin.Context) {
	email := c.GetString("email")
	if err := services.DeleteUser(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account disabled"})
}

func (uc *UserController) ToggleMFA(c *gin.Context) {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	u := currentUser(c)
	if u == nil {
		return
	}
	u.MFAEnabled = input.Enabled
	if err := config.DB.Save(u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mfa_enabled": input.Enabled})
}
