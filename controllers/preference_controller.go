package controllers

import (
	"net/http"

	"calorietrack/services"

	"github.com/gin-gonic/gin"
)

// PreferenceController exposes free-form settings (display unit, reminder
// toggle, ...) that live outside the derived budget profile.
type PreferenceController struct {
	Svc *services.PreferenceService
}

func NewPreferenceController(svc *services.PreferenceService) *PreferenceController {
	return &PreferenceController{Svc: svc}
}

// GET /preferences/:key?default=...
func (h *PreferenceController) Get(c *gin.Context) {
	key := c.Param("key")
	value, err := h.Svc.GetString(c.Request.Context(), key, c.Query("default"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// PUT /preferences/:key  { "value": "..." }
func (h *PreferenceController) Put(c *gin.Context) {
	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.PutString(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
