package routes

import (
	"calorietrack/controllers"
	"calorietrack/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Products *controllers.ProductController
	Recipes  *controllers.RecipeController
	Mass     *controllers.MassController
	Budget   *controllers.BudgetController
	Charts   *controllers.ChartController
	Realtime *controllers.RealtimeController
	Prefs    *controllers.PreferenceController
	Dev      *controllers.DevController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public
	r.POST("/auth/token", controllers.IssueToken)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/products", ctl.Products.Add)
		api.GET("/products", ctl.Products.List)
		api.GET("/products/:id", ctl.Products.Get)
		api.PUT("/products/:id", ctl.Products.Update)
		api.DELETE("/products/:id", ctl.Products.Delete)
		api.DELETE("/products", ctl.Products.DeleteAll)

		api.POST("/recipes", ctl.Recipes.Create)
		api.GET("/recipes", ctl.Recipes.List)
		api.GET("/recipes/:id", ctl.Recipes.Get)
		api.PUT("/recipes/:id", ctl.Recipes.Rename)
		api.DELETE("/recipes/:id", ctl.Recipes.Delete)
		api.POST("/recipes/:id/items", ctl.Recipes.AddItem)
		api.GET("/recipes/:id/items", ctl.Recipes.ListItems)
		api.DELETE("/recipe-items/:id", ctl.Recipes.DeleteItem)
		api.POST("/recipes/:id/apply", ctl.Recipes.Apply)

		api.POST("/mass", ctl.Mass.Add)
		api.GET("/mass", ctl.Mass.List)
		api.GET("/mass/today", ctl.Mass.Today)
		api.PUT("/mass/:id", ctl.Mass.Update)
		api.DELETE("/mass/:id", ctl.Mass.Delete)
		api.DELETE("/mass", ctl.Mass.DeleteAll)

		api.GET("/budget", ctl.Budget.Get)
		api.PUT("/budget", ctl.Budget.Recompute)
		api.GET("/budget/bmi", ctl.Budget.BMI)

		api.GET("/summary/today", ctl.Charts.SummaryToday)
		api.GET("/summary/by-date", ctl.Charts.SummaryByDate)
		api.GET("/summary/weekly", ctl.Charts.Weekly)
		api.GET("/charts/mass", ctl.Charts.MassTrend)
		api.GET("/charts/calories", ctl.Charts.CalorieTrend)

		api.GET("/ws/summary", ctl.Realtime.SummaryWS)

		api.GET("/preferences/:key", ctl.Prefs.Get)
		api.PUT("/preferences/:key", ctl.Prefs.Put)

		api.POST("/dev/seed", ctl.Dev.Seed)
		api.POST("/dev/clear", ctl.Dev.Clear)
	}

	return r
}
