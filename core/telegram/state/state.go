// Package state provides an in-memory per-chat session store for guided
// Telegram conversations. A session tracks the step a chat is currently on
// and the field values collected so far; it is the only state the bot keeps
// and it does not survive a restart.
package state

// Step identifies a conversation step a chat session is waiting on.
type Step string

// StepIdle indicates there is no active conversation with the chat.
const StepIdle Step = "idle"

// Session stores the current step and collected field values for one chat.
// A session is owned by the goroutine handling that chat's update; the
// transport delivers one update at a time per chat, so field access needs no
// locking of its own.
type Session struct {
	Step   Step
	Fields map[string]string
}

// NewSession returns an idle session with no collected fields.
func NewSession() *Session {
	return &Session{Step: StepIdle, Fields: make(map[string]string)}
}

// Set stores a collected field value.
func (s *Session) Set(key, value string) {
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[key] = value
}

// Get returns a collected field value, or "" when absent.
func (s *Session) Get(key string) string {
	return s.Fields[key]
}

// Reset returns the session to idle and discards all collected fields.
func (s *Session) Reset() {
	s.Step = StepIdle
	s.Fields = make(map[string]string)
}

// InProgress reports whether the session is inside a flow.
func (s *Session) InProgress() bool {
	return s != nil && s.Step != StepIdle
}
