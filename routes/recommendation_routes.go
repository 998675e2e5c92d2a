package routes

import (
	"github.com/zhu243450/food-buddies-sub001/controllers"
	"github.com/zhu243450/food-buddies-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up routes for dinner match scores
func RegisterRecommendationRoutes(r *mux.Router, recommendationService *services.RecommendationService) {
	controller := controllers.NewRecommendationController(recommendationService)

	r.HandleFunc("/api/recommendations/{userId}", controller.GetRecommendations).Methods("GET")
}
