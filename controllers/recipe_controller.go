package controllers

import (
	"net/http"

	"calorietrack/services"
	"calorietrack/utils"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Svc *services.RecipeService
}

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{Svc: svc}
}

// POST /recipes  { "name": "Overnight oats" }
func (h *RecipeController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GET /recipes
func (h *RecipeController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /recipes/:id — recipe with its line items.
func (h *RecipeController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// PUT /recipes/:id  { "name": ... }
func (h *RecipeController) Rename(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.Rename(c.Request.Context(), id, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /recipes/:id — cascades to the recipe's line items.
func (h *RecipeController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /recipes/:id/items  { "name": "oats", "amount": "80g" }
func (h *RecipeController) AddItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Name   string `json:"name" binding:"required"`
		Amount string `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if utils.ParseAmount(req.Amount) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must contain a numeric part"})
		return
	}

	item, err := h.Svc.AddItemWithNutrition(c.Request.Context(), id, req.Name, req.Amount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /recipes/:id/items
func (h *RecipeController) ListItems(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rows, err := h.Svc.ListItems(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DELETE /recipe-items/:id
func (h *RecipeController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /recipes/:id/apply  { "meal": "Dinner" }
// Materializes each line item as a food record for today.
func (h *RecipeController) Apply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Meal string `json:"meal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.Svc.ApplyToLog(c.Request.Context(), id, req.Meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, products)
}
