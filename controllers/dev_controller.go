package controllers

import (
	"net/http"
	"time"

	"calorietrack/models"
	"calorietrack/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Products *services.ProductService
	Mass     *services.MassService
}

func NewDevController(p *services.ProductService, m *services.MassService) *DevController {
	return &DevController{Products: p, Mass: m}
}

var sampleData = []struct {
	mass    float64
	calorie int
	daysAgo int
}{
	{60.0, 2300, 21},
	{63.0, 2370, 18},
	{62.0, 2137, 11},
	{63.5, 2380, 7},
	{64.4, 2450, 4},
	{63.3, 2390, 3},
	{65.0, 2420, 2},
	{64.4, 2460, 1},
}

// POST /dev/seed — inserts a few weeks of mass and calorie history so the
// charts have something to draw.
func (d *DevController) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()

	for _, s := range sampleData {
		at := now.AddDate(0, 0, -s.daysAgo)
		if _, err := d.Mass.AddAt(ctx, s.mass, at); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := d.Products.AddAt(ctx, "Sample", "100g", models.MealBreakfast, s.calorie, 12.0, 6.0, 4.0, at); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"seeded": len(sampleData)})
}

// POST /dev/clear — wipes the food log and all mass samples.
func (d *DevController) Clear(c *gin.Context) {
	ctx := c.Request.Context()
	if err := d.Products.DeleteAll(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := d.Mass.DeleteAll(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
