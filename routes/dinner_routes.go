package routes

import (
	"github.com/zhu243450/food-buddies-sub001/controllers"
	"github.com/zhu243450/food-buddies-sub001/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterDinnerRoutes sets up routes related to dinner events
func RegisterDinnerRoutes(r *mux.Router, dinnerService *services.DinnerService, feed *socketio.Server) {
	controller := controllers.NewDinnerController(dinnerService, feed)

	dinnerRouter := r.PathPrefix("/api/dinners").Subrouter()
	dinnerRouter.HandleFunc("", controller.CreateDinner).Methods("POST")
	dinnerRouter.HandleFunc("/open", controller.ListOpenDinners).Methods("GET")
	dinnerRouter.HandleFunc("/history/{userId}", controller.GetUserDinnerHistory).Methods("GET")
	dinnerRouter.HandleFunc("/{dinnerId}", controller.GetDinner).Methods("GET")
	dinnerRouter.HandleFunc("/{dinnerId}/status", controller.UpdateDinnerStatus).Methods("PATCH")
	dinnerRouter.HandleFunc("/{dinnerId}/participants", controller.GetParticipants).Methods("GET")
	dinnerRouter.HandleFunc("/{dinnerId}/join", controller.JoinDinner).Methods("POST")
	dinnerRouter.HandleFunc("/{dinnerId}/participants/{userId}", controller.LeaveDinner).Methods("DELETE")
}
