package llm

import (
	"aichat/aichat/utils/logging"
	"context"
	"fmt"
)

// Responder derives the assistant reply for a prompt. With no API key
// configured the reply is a plain echo; a configured key selects the
// external-model path, which currently still echoes with the model tag
// prefixed. This is the single extension point for a real inference call.
type Responder struct {
	apiKey string
}

func NewResponder(apiKey string) *Responder {
	return &Responder{apiKey: apiKey}
}

// Respond interpolates the prompt verbatim; quotes and backslashes in the
// prompt appear unescaped in the reply.
func (r *Responder) Respond(ctx context.Context, modelTag, prompt string) string {
	defer logging.LogDuration(ctx, "llm_respond")()
	if r.apiKey != "" {
		return fmt.Sprintf("AI Response (%s): You said: \"%s\"", modelTag, prompt)
	}
	return fmt.Sprintf("You said: \"%s\"", prompt)
}
