package routes

import (
	"aichat/aichat/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func ModelRoutes(ctrl *controllers.ModelsController) chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ctrl.GetAvailable())
	})
	return r
}
