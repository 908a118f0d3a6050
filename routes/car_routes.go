package routes

import (
	handlers "carhub/internal/handlers/shared"
	"carhub/internal/middleware"
	"carhub/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupCarRoutes wires the catalog endpoints. Every route passes the seed
// gate first so a cold start populates the catalog exactly once, without
// blocking the request that triggered it.
func SetupCarRoutes(r *gin.RouterGroup, carHandler *handlers.CarHandler, coordinator *services.SeedCoordinator) {
	cars := r.Group("/cars")
	cars.Use(middleware.SeedGateMiddleware(coordinator))
	{
		cars.GET("", carHandler.ListCars)
		cars.GET("/brands", carHandler.GetBrands)
		cars.GET("/featured", carHandler.GetFeatured)
		cars.POST("/compare", carHandler.CompareCars)
		cars.GET("/:id", carHandler.GetCar)
	}
}
