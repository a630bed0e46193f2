package controllers

import (
	"net/http"

	"calorietrack/services"
	"calorietrack/utils"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	Svc *services.BudgetService
}

func NewBudgetController(svc *services.BudgetService) *BudgetController {
	return &BudgetController{Svc: svc}
}

// GET /budget — the current profile with its derived budget and macros.
func (h *BudgetController) Get(c *gin.Context) {
	p, err := h.Svc.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /budget — edits the biometric inputs and recomputes the derived
// fields. Budget and macro grams cannot be set directly.
func (h *BudgetController) Recompute(c *gin.Context) {
	var req services.BudgetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Svc.Recompute(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /budget/bmi — BMI and category from the stored profile.
func (h *BudgetController) BMI(c *gin.Context) {
	p, err := h.Svc.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bmi, err := utils.CalculateBMI(p.HeightCm, p.BodyMassKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "category": utils.BMICategory(bmi)})
}
