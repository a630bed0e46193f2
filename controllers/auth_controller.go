package controllers

import (
	"net/http"
	"os"

	"calorietrack/utils"

	"github.com/gin-gonic/gin"
)

// POST /auth/token  { "passphrase": "..." }
// Exchanges the instance passphrase for a bearer token. The deployment is
// single-user; there are no accounts to register.
func IssueToken(c *gin.Context) {
	var req struct {
		Passphrase string `json:"passphrase" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	expected := os.Getenv("API_PASSPHRASE")
	if expected == "" || req.Passphrase != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid passphrase"})
		return
	}

	token, err := utils.GenerateJWT()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
