package controllers

import (
	"net/http"

	"calorietrack/services"

	"github.com/gin-gonic/gin"
)

type MassController struct {
	Svc *services.MassService
}

func NewMassController(svc *services.MassService) *MassController {
	return &MassController{Svc: svc}
}

// POST /mass  { "value": 72.4 }
// Replaces today's measurement when one already exists.
func (h *MassController) Add(c *gin.Context) {
	var req struct {
		Value float64 `json:"value" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.Svc.Add(c.Request.Context(), req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /mass
func (h *MassController) List(c *gin.Context) {
	rows, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /mass/today — 404 when nothing was logged today.
func (h *MassController) Today(c *gin.Context) {
	m, err := h.Svc.TodayMass(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no measurement today"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// PUT /mass/:id  { "value": 72.0 }
func (h *MassController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Value float64 `json:"value" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.UpdateByID(c.Request.Context(), id, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /mass/:id
func (h *MassController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /mass
func (h *MassController) DeleteAll(c *gin.Context) {
	if err := h.Svc.DeleteAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
