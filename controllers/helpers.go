package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user set by AuthMiddleware. Writes
// the error response itself; callers just return on nil.
func currentUser(c *gin.Context) *models.User {
	email := c.GetString("email")
	var u models.User
	if err := config.DB.First(&u, "email = ?", email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil
	}
	return &u
}

// parseDayParam reads a ?date=YYYY-MM-DD query param, defaulting to now.
func parseDayParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// parseRangeParams reads ?from / ?to, defaulting to the trailing 7 days.
func parseRangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from, to := now.AddDate(0, 0, -6), now

	if raw := c.Query("from"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = d
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
