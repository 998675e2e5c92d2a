package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/zhu243450/food-buddies-sub001/services"

	"github.com/gorilla/mux"
)

// RecommendationController serves per-user match scores for open dinners
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new instance of RecommendationController
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations returns a dinnerId -> score map for the given user.
// Users without a profile get an empty map, not an error.
func (c *RecommendationController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	scores, err := c.RecommendationService.ScoreOpenDinners(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to score dinners for user %s: %v\n", userID, err)
		http.Error(w, "Failed to compute recommendations", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"scores": scores,
	})
}
