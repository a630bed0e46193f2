package controllers

import (
	"net/http"
	"strconv"

	"calorietrack/services"
	"calorietrack/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Svc: svc}
}

// POST /products  { "name": "rice", "amount": "136g", "meal": "Lunch" }
func (h *ProductController) Add(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Amount string `json:"amount" binding:"required"`
		Meal   string `json:"meal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if utils.ParseAmount(req.Amount) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must contain a numeric part"})
		return
	}

	p, err := h.Svc.AddWithNutrition(c.Request.Context(), req.Name, req.Amount, req.Meal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /products?scope=today|all
func (h *ProductController) List(c *gin.Context) {
	var (
		rows any
		err  error
	)
	if c.DefaultQuery("scope", "all") == "today" {
		rows, err = h.Svc.ListToday(c.Request.Context())
	} else {
		rows, err = h.Svc.ListAll(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /products/:id
func (h *ProductController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /products/:id  { "name": ..., "amount": ... } — re-runs the lookup.
func (h *ProductController) Update(c *gin.Context) {
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

	p, err := h.Svc.UpdateWithNutrition(c.Request.Context(), id, req.Name, req.Amount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /products/:id
func (h *ProductController) Delete(c *gin.Context) {
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

// DELETE /products
func (h *ProductController) DeleteAll(c *gin.Context) {
	if err := h.Svc.DeleteAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
