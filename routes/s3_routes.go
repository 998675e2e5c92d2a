package routes

import (
	"github.com/zhu243450/food-buddies-sub001/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for poster storage operations
func RegisterS3Routes(r *mux.Router) {
	r.HandleFunc("/generate-poster-upload-url", controllers.GeneratePosterUploadURL).Methods("POST")
	r.HandleFunc("/get-poster-read-url", controllers.GetPosterReadURL).Methods("POST")
}
