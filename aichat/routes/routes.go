package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"aichat/aichat/sources/psql/models"
	"aichat/aichat/types"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

func decodeValid(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func toWireMessage(m *models.Message) types.Message {
	msg := types.Message{
		ID:        m.ID.String(),
		UserID:    m.UserID,
		Role:      m.Role,
		Content:   m.Content,
		ModelTag:  m.ModelTag,
		IsEdited:  m.IsEdited,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentID != nil {
		parent := m.ParentID.String()
		msg.ParentID = &parent
	}
	return msg
}

func toWireMessages(msgs []models.Message) []types.Message {
	out := make([]types.Message, 0, len(msgs))
	for i := range msgs {
		out = append(out, toWireMessage(&msgs[i]))
	}
	return out
}

func toWireUser(u *models.User) types.UserInfo {
	return types.UserInfo{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
