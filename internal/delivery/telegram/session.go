package telegram

import (
	"sync"

	"shipnotify/internal/domain/service"
	"shipnotify/internal/extract"
)

// State identifies where a chat currently is in a multi-step conversation.
type State int

const (
	StateIdle State = iota

	// Add-notification flow.
	StateAwaitingName
	StateAwaitingPhone
	StateAwaitingImage
	StateAwaitingDays

	// Admin management flow.
	StateAwaitingAdminID

	// Template editing flow.
	StateAwaitingTemplateText

	// Admin panel searches.
	StateAwaitingSearchName
	StateAwaitingSearchPhone

	// Public /search without an argument.
	StateAwaitingUserPhone

	// Assisted flows.
	StateAIChat
	StateAIImage
)

// adminAction distinguishes which operation an entered admin ID applies to.
type adminAction string

const (
	adminActionAdd    adminAction = "add"
	adminActionRemove adminAction = "remove"
)

// Session holds the per-chat conversation state. A session only lives for
// the duration of a flow; Reset returns the chat to idle.
type Session struct {
	State State

	// Add-notification flow data.
	CustomerName string
	PhoneNumber  string
	ImagePath    string

	// Admin management.
	AdminAction adminAction

	// Template editing.
	TemplateName string

	// Notification list paging.
	Page       int
	TotalPages int

	// Assisted flows.
	ChatTurns []service.ChatTurn
	Extracted extract.ShippingInfo
}

// Reset clears all flow data and returns the session to idle.
func (s *Session) Reset() {
	*s = Session{}
}

// SessionStore keeps one session per chat, guarded for concurrent webhook
// deliveries.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the session for a chat, creating it on first use.
func (st *SessionStore) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[chatID]
	if !ok {
		session = &Session{}
		st.sessions[chatID] = session
	}

	return session
}

// Drop removes a chat's session entirely.
func (st *SessionStore) Drop(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, chatID)
}
