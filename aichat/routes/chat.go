package routes

import (
	"aichat/aichat/config"
	"aichat/aichat/controllers"
	"aichat/aichat/middlewares"
	"aichat/aichat/types"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func ChatRoutes(ctrl *controllers.ConversationController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	// POST /chat/send : persist a user message and its generated reply
	r.Post("/send", func(w http.ResponseWriter, r *http.Request) {
		var req types.SendRequest
		if err := decodeValid(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		userMsg, aiMsg, err := ctrl.Send(r.Context(), req.UserID, req.ModelTag, req.Prompt)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.SendResponse{
			UserMessage: toWireMessage(userMsg),
			AIMessage:   toWireMessage(aiMsg),
		})
	})

	// GET /chat/history?user_id=...&limit=50 : oldest-first transcript
	r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}
		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		msgs, err := ctrl.History(r.Context(), userID, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, toWireMessages(msgs))
	})

	// POST /chat/edit : rewrite a user message and its linked reply
	r.Post("/edit", func(w http.ResponseWriter, r *http.Request) {
		var req types.EditRequest
		if err := decodeValid(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		messageID, err := uuid.Parse(req.MessageID)
		if err != nil {
			http.Error(w, "invalid messageId", http.StatusBadRequest)
			return
		}
		updated, aiMsg, err := ctrl.Edit(r.Context(), messageID, req.NewContent, req.ModelTag, req.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.EditResponse{
			UpdatedMessage: toWireMessage(updated),
			AIMessage:      toWireMessage(aiMsg),
		})
	})

	// POST /chat/regenerate : recompute the reply for a user message
	r.Post("/regenerate", func(w http.ResponseWriter, r *http.Request) {
		var req types.RegenerateRequest
		if err := decodeValid(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		messageID, err := uuid.Parse(req.MessageID)
		if err != nil {
			http.Error(w, "invalid messageId", http.StatusBadRequest)
			return
		}
		aiMsg, err := ctrl.Regenerate(r.Context(), messageID, req.ModelTag, req.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, toWireMessage(aiMsg))
	})

	// POST /chat/delete : remove a user message and its linked reply
	r.Post("/delete", func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteRequest
		if err := decodeValid(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		messageID, err := uuid.Parse(req.MessageID)
		if err != nil {
			http.Error(w, "invalid messageId", http.StatusBadRequest)
			return
		}
		if err := ctrl.Delete(r.Context(), messageID, req.UserID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.DeleteResponse{Success: true})
	})

	return r
}
