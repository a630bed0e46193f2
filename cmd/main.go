package main

import (
	"log"

	"calorietrack/config"
	"calorietrack/controllers"
	"calorietrack/routes"
	"calorietrack/services"
)

func main() {
	config.LoadEnv()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	hub := services.NewSummaryHub()
	nutrition := services.NewNutritionService()
	agg := services.NewAggregateService(db)
	products := services.NewProductService(db, nutrition, agg, hub)
	recipes := services.NewRecipeService(db, nutrition, products)
	mass := services.NewMassService(db, agg, hub)
	budget := services.NewBudgetService(db)
	prefs := services.NewPreferenceService(db)

	r := routes.SetupRouter(routes.Controllers{
		Products: controllers.NewProductController(products),
		Recipes:  controllers.NewRecipeController(recipes),
		Mass:     controllers.NewMassController(mass),
		Budget:   controllers.NewBudgetController(budget),
		Charts:   controllers.NewChartController(agg, mass, budget),
		Realtime: controllers.NewRealtimeController(hub),
		Prefs:    controllers.NewPreferenceController(prefs),
		Dev:      controllers.NewDevController(products, mass),
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server: %v", err)
	}
}
