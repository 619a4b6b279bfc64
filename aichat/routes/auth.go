package routes

import (
	"aichat/aichat/config"
	"aichat/aichat/controllers"
	"aichat/aichat/middlewares"
	"aichat/aichat/types"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func AuthRoutes(ctrl *controllers.AuthController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := decodeValid(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		token, user, err := ctrl.Login(r.Context(), req.Username)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.LoginResponse{
			Token: token,
			User:  toWireUser(user),
		})
	})

	// GET /auth/me : session state lookup for the token's user
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			raw, _ := r.Context().Value(middlewares.UserIDKey).(string)
			userID, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			user, err := ctrl.Me(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, toWireUser(user))
		})
	})
	return r
}
