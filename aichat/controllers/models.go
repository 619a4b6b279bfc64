package controllers

import "aichat/aichat/types"

type ModelsController struct{}

func NewModelsController() *ModelsController {
	return &ModelsController{}
}

// GetAvailable returns the static model catalog. Nothing downstream checks
// that a submitted model tag is in this list.
func (c *ModelsController) GetAvailable() []types.ModelInfo {
	return []types.ModelInfo{
		{ID: "gpt-4o", Name: "GPT-4o", Description: "Latest GPT-4 model"},
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Fast and efficient"},
		{ID: "claude-3-5-sonnet", Name: "Claude 3.5 Sonnet", Description: "Anthropic's latest model"},
		{ID: "gemini-pro", Name: "Gemini Pro", Description: "Google's advanced model"},
	}
}
