package session

import (
	"time"

	"github.com/google/uuid"

	"orcabase-console/internal/orca"
)

// State is everything the console remembers about one browser: the
// authenticated user, the core API bearer token, the active workspace id and
// the per-workspace database-chat session ids. It survives reloads the way
// the SPA's localStorage blob would; everything else is refetched per page.
type State struct {
	ID                string            `json:"id"`
	User              *orca.User        `json:"user,omitempty"`
	Token             string            `json:"token,omitempty"`
	ActiveWorkspaceID string            `json:"active_workspace_id,omitempty"`
	ChatSessions      map[string]string `json:"chat_sessions,omitempty"`
	RejectedMessages  map[string]bool   `json:"rejected_messages,omitempty"`
	ExecutedMessages  map[string]bool   `json:"executed_messages,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func NewState() *State {
	now := time.Now()
	return &State{
		ID:           uuid.NewString(),
		ChatSessions: make(map[string]string),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *State) SetAuth(user orca.User, token string) {
	u := user
	s.User = &u
	s.Token = token
	s.UpdatedAt = time.Now()
}

// ClearAuth drops everything tied to the authenticated user. Logout is
// client-side only; no revocation call reaches the core API.
func (s *State) ClearAuth() {
	s.User = nil
	s.Token = ""
	s.ActiveWorkspaceID = ""
	s.ChatSessions = make(map[string]string)
	s.RejectedMessages = nil
	s.ExecutedMessages = nil
	s.UpdatedAt = time.Now()
}

func (s *State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Credentials builds the header set attached to every core API request.
func (s *State) Credentials() orca.Credentials {
	return orca.Credentials{
		Token:       s.Token,
		WorkspaceID: s.ActiveWorkspaceID,
	}
}

// ChatSessionID returns the database-chat session bound to the active
// workspace, so a reload reattaches to the same backend conversation.
func (s *State) ChatSessionID() string {
	if s.ActiveWorkspaceID == "" {
		return ""
	}
	return s.ChatSessions[s.ActiveWorkspaceID]
}

func (s *State) SetChatSessionID(id string) {
	if s.ActiveWorkspaceID == "" {
		return
	}
	if s.ChatSessions == nil {
		s.ChatSessions = make(map[string]string)
	}
	s.ChatSessions[s.ActiveWorkspaceID] = id
	s.UpdatedAt = time.Now()
}

func (s *State) ClearChatSession() {
	if s.ActiveWorkspaceID == "" || s.ChatSessions == nil {
		return
	}
	delete(s.ChatSessions, s.ActiveWorkspaceID)
	s.UpdatedAt = time.Now()
}

// MarkRejected records a client-side reject of a pending SQL approval.
// The core API is never told; the flag only masks the approval affordance
// on subsequent history fetches.
func (s *State) MarkRejected(messageID string) {
	if messageID == "" {
		return
	}
	if s.RejectedMessages == nil {
		s.RejectedMessages = make(map[string]bool)
	}
	s.RejectedMessages[messageID] = true
	s.UpdatedAt = time.Now()
}

func (s *State) IsRejected(messageID string) bool {
	return s.RejectedMessages[messageID]
}

// MarkExecuted records that a pending SQL approval already ran. The backend
// may keep reporting the message as pending until it reconciles; the flag
// keeps the approve affordance from resurfacing and the statement from
// running twice.
func (s *State) MarkExecuted(messageID string) {
	if messageID == "" {
		return
	}
	if s.ExecutedMessages == nil {
		s.ExecutedMessages = make(map[string]bool)
	}
	s.ExecutedMessages[messageID] = true
	s.UpdatedAt = time.Now()
}

func (s *State) IsExecuted(messageID string) bool {
	return s.ExecutedMessages[messageID]
}

// IsResolved reports whether an approval was already settled either way.
func (s *State) IsResolved(messageID string) bool {
	return s.IsRejected(messageID) || s.IsExecuted(messageID)
}
