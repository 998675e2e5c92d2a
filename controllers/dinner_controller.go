package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/zhu243450/food-buddies-sub001/models"
	"github.com/zhu243450/food-buddies-sub001/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// DinnerController handles requests related to dinner events
type DinnerController struct {
	DinnerService *services.DinnerService
	Feed          *socketio.Server
}

// NewDinnerController creates a new instance of DinnerController
func NewDinnerController(dinnerService *services.DinnerService, feed *socketio.Server) *DinnerController {
	return &DinnerController{DinnerService: dinnerService, Feed: feed}
}

// notifyDinnersChanged tells connected clients the candidate list moved so
// they can re-request their scores
func (c *DinnerController) notifyDinnersChanged(dinnerID string) {
	if c.Feed != nil {
		c.Feed.BroadcastToNamespace("/", "dinnersChanged", dinnerID)
	}
}

func (c *DinnerController) CreateDinner(w http.ResponseWriter, r *http.Request) {
	var dinner models.DinnerEvent

	if err := json.NewDecoder(r.Body).Decode(&dinner); err != nil {
		log.Printf("Failed to decode request body: %v\n", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if dinner.CreatorID == "" || dinner.Title == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	createdDinner, err := c.DinnerService.CreateDinner(context.TODO(), dinner)
	if err != nil {
		log.Printf("Failed to create dinner: %v\n", err)
		http.Error(w, "Failed to create dinner", http.StatusInternalServerError)
		return
	}

	c.notifyDinnersChanged(createdDinner.DinnerID)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Dinner created successfully",
		"dinner":  createdDinner,
	})
}

// GetDinner handles fetching a single dinner by ID
func (c *DinnerController) GetDinner(w http.ResponseWriter, r *http.Request) {
	dinnerID := mux.Vars(r)["dinnerId"]

	dinner, err := c.DinnerService.GetDinner(context.TODO(), dinnerID)
	if err != nil {
		http.Error(w, "Failed to fetch dinner", http.StatusInternalServerError)
		return
	}
	if dinner == nil {
		http.Error(w, "Dinner not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(dinner)
}

// ListOpenDinners handles fetching all dinners currently accepting guests
func (c *DinnerController) ListOpenDinners(w http.ResponseWriter, r *http.Request) {
	dinners, err := c.DinnerService.ListOpenDinners(context.TODO())
	if err != nil {
		http.Error(w, "Failed to list open dinners", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"dinners": dinners,
	})
}

// JoinDinner handles a user joining a dinner
func (c *DinnerController) JoinDinner(w http.ResponseWriter, r *http.Request) {
	dinnerID := mux.Vars(r)["dinnerId"]

	var payload struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	participant, err := c.DinnerService.JoinDinner(context.TODO(), dinnerID, payload.UserID)
	if err != nil {
		log.Printf("Failed to join dinner %s: %v\n", dinnerID, err)
		http.Error(w, "Failed to join dinner", http.StatusConflict)
		return
	}

	c.notifyDinnersChanged(dinnerID)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Joined dinner successfully",
		"participant": participant,
	})
}

// LeaveDinner handles a user leaving a dinner
func (c *DinnerController) LeaveDinner(w http.ResponseWriter, r *http.Request) {
	dinnerID := mux.Vars(r)["dinnerId"]
	userID := mux.Vars(r)["userId"]

	if err := c.DinnerService.LeaveDinner(context.TODO(), dinnerID, userID); err != nil {
		http.Error(w, "Failed to leave dinner", http.StatusInternalServerError)
		return
	}

	c.notifyDinnersChanged(dinnerID)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Left dinner successfully",
	})
}

// GetParticipants handles listing everyone enrolled in a dinner
func (c *DinnerController) GetParticipants(w http.ResponseWriter, r *http.Request) {
	dinnerID := mux.Vars(r)["dinnerId"]

	participants, err := c.DinnerService.GetParticipants(context.TODO(), dinnerID)
	if err != nil {
		http.Error(w, "Failed to fetch participants", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"participants": participants,
	})
}

// GetUserDinnerHistory handles listing every dinner a user created or joined
func (c *DinnerController) GetUserDinnerHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	history, err := c.DinnerService.GetUserDinnerHistory(context.TODO(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch dinner history", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"dinners": history,
	})
}

// UpdateDinnerStatus handles closing or cancelling a dinner
func (c *DinnerController) UpdateDinnerStatus(w http.ResponseWriter, r *http.Request) {
	dinnerID := mux.Vars(r)["dinnerId"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.DinnerService.UpdateDinnerStatus(context.TODO(), dinnerID, payload.Status); err != nil {
		http.Error(w, "Failed to update dinner status", http.StatusInternalServerError)
		return
	}

	c.notifyDinnersChanged(dinnerID)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Dinner status updated successfully",
	})
}
