package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
	"gorm.io/gorm"
)

// publicUser is the teammate-picker projection. Phone numbers and admin flags
// stay out of peer-facing responses.
func publicUser(u models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"college":   u.College,
	}
}

// SearchUserByEmail handles POST /api/users/search
func SearchUserByEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := database.DB.First(&user, "LOWER(email) = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No user found with this email"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
}

// AutocompleteUsers handles GET /api/users/search/autocomplete?q=
func AutocompleteUsers(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if len(q) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Query must be at least 3 characters"})
		return
	}

	var users []models.User
	if err := database.DB.
		Where("LOWER(email) LIKE ?", q+"%").
		Order("email ASC").
		Limit(10).
		Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}

	results := make([]gin.H, 0, len(users))
	for _, u := range users {
		results = append(results, publicUser(u))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": results})
}

// GetUserByID handles GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
}
