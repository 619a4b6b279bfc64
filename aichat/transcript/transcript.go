package transcript

import (
	"strings"
	"time"

	"aichat/aichat/types"

	"github.com/google/uuid"
)

const pendingPrefix = "temp-"

// Transcript is the session-local ordered view of a conversation. It is
// owned by a single client session: optimistic entries are appended before
// the server confirms and replaced or reverted afterwards.
type Transcript struct {
	messages []types.Message
	loading  bool
}

func New() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Messages() []types.Message {
	out := make([]types.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

func (t *Transcript) Loading() bool {
	return t.loading
}

// BeginSend appends a provisional user entry shown while the request is in
// flight and returns its id.
func (t *Transcript) BeginSend(content string) string {
	id := pendingPrefix + uuid.New().String()
	t.messages = append(t.messages, types.Message{
		ID:        id,
		Role:      types.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	t.loading = true
	return id
}

// ResolveSend swaps all provisional entries for the authoritative pair.
func (t *Transcript) ResolveSend(userMsg, aiMsg types.Message) {
	t.messages = append(t.dropPending(), userMsg, aiMsg)
	t.loading = false
}

// FailSend reverts the optimistic append rather than leaving an orphaned
// pending bubble behind.
func (t *Transcript) FailSend() {
	t.messages = t.dropPending()
	t.loading = false
}

// ApplyEdit replaces the edited message and its reply in place by id,
// preserving sequence position.
func (t *Transcript) ApplyEdit(updated, aiMsg types.Message) {
	for i, m := range t.messages {
		switch m.ID {
		case updated.ID:
			t.messages[i] = updated
		case aiMsg.ID:
			t.messages[i] = aiMsg
		}
	}
}

// ApplyDelete removes the message and its assistant reply. The reply is
// found by parent link; the positional next-assistant heuristic only
// applies to legacy entries without a link.
func (t *Transcript) ApplyDelete(id string) {
	idx := t.indexOf(id)
	if idx < 0 {
		return
	}
	t.remove(idx)

	for i, m := range t.messages {
		if m.Role == types.RoleAssistant && m.ParentID != nil && *m.ParentID == id {
			t.remove(i)
			return
		}
	}
	if idx < len(t.messages) {
		next := t.messages[idx]
		if next.Role == types.RoleAssistant && next.ParentID == nil {
			t.remove(idx)
		}
	}
}

// Reset replaces the whole sequence with a refetched history. An empty
// history clears the transcript.
func (t *Transcript) Reset(history []types.Message) {
	t.messages = make([]types.Message, len(history))
	copy(t.messages, history)
}

func (t *Transcript) dropPending() []types.Message {
	kept := t.messages[:0]
	for _, m := range t.messages {
		if !strings.HasPrefix(m.ID, pendingPrefix) {
			kept = append(kept, m)
		}
	}
	return kept
}

func (t *Transcript) indexOf(id string) int {
	for i, m := range t.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (t *Transcript) remove(i int) {
	t.messages = append(t.messages[:i], t.messages[i+1:]...)
}
