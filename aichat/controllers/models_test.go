package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAvailableModels(t *testing.T) {
	ctrl := NewModelsController()
	models := ctrl.GetAvailable()

	assert.Len(t, models, 4)
	ids := make([]string, 0, len(models))
	for _, m := range models {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"gpt-4o", "gpt-3.5-turbo", "claude-3-5-sonnet", "gemini-pro"}, ids)
}

func TestGetAvailableIsStable(t *testing.T) {
	ctrl := NewModelsController()
	assert.Equal(t, ctrl.GetAvailable(), ctrl.GetAvailable())
}
