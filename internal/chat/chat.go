package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/session"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoActiveSession   = errors.New("no active chat session")
	ErrNoPendingApproval = errors.New("message has no pending approval")
)

const rejectedNote = "Query discarded. The generated SQL was not executed."

// Service drives the text-to-SQL conversation for the active workspace.
// Session identity lives in the session blob so a page reload reattaches to
// the same backend conversation instead of starting a new one.
type Service struct {
	client *orca.Client
	store  session.Store
}

func NewService(client *orca.Client, store session.Store) *Service {
	return &Service{client: client, store: store}
}

type Thread struct {
	SessionID string             `json:"session_id"`
	Messages  []orca.ChatMessage `json:"messages"`
}

// Send forwards a question. When no chat session is bound to the active
// workspace yet, the backend creates one and its id is persisted here.
func (s *Service) Send(ctx context.Context, state *session.State, question string, webSearch bool) (*Thread, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrInvalidInput
	}

	resp, err := s.client.Query(ctx, state.Credentials(), orca.QueryInput{
		SessionID: state.ChatSessionID(),
		Question:  question,
		WebSearch: webSearch,
	})
	if err != nil {
		return nil, err
	}

	if resp.Session.ID != "" && resp.Session.ID != state.ChatSessionID() {
		state.SetChatSessionID(resp.Session.ID)
		if err := s.store.Put(ctx, state); err != nil {
			return nil, err
		}
	}

	return &Thread{
		SessionID: resp.Session.ID,
		Messages:  s.maskResolved(state, resp.Messages),
	}, nil
}

// History refetches the current conversation. An unbound workspace yields an
// empty thread rather than an error; the page shows the blank chat.
func (s *Service) History(ctx context.Context, state *session.State) (*Thread, error) {
	sessionID := state.ChatSessionID()
	if sessionID == "" {
		return &Thread{}, nil
	}

	messages, err := s.client.SessionMessages(ctx, state.Credentials(), sessionID)
	if err != nil {
		return nil, err
	}
	return &Thread{SessionID: sessionID, Messages: s.maskResolved(state, messages)}, nil
}

// NewChat detaches the active workspace from its conversation. The next Send
// starts a fresh backend session.
func (s *Service) NewChat(ctx context.Context, state *session.State) error {
	state.ClearChatSession()
	return s.store.Put(ctx, state)
}

type ApprovalResult struct {
	Result  orca.QueryResult `json:"result"`
	Message orca.ChatMessage `json:"message"`
}

// Approve executes a pending generated SQL statement server-side. The
// statement is looked up fresh from the backend rather than trusted from the
// request, and the message is marked executed so the affordance never
// resurfaces while the backend still reports it pending.
func (s *Service) Approve(ctx context.Context, state *session.State, messageID string) (*ApprovalResult, error) {
	if messageID == "" {
		return nil, ErrInvalidInput
	}
	sessionID := state.ChatSessionID()
	if sessionID == "" {
		return nil, ErrNoActiveSession
	}

	pending, err := s.findPending(ctx, state, sessionID, messageID)
	if err != nil {
		return nil, err
	}

	result, err := s.client.Approve(ctx, state.Credentials(), orca.ApproveInput{
		SessionID: sessionID,
		MessageID: messageID,
		SQL:       pending.SQL,
	})
	if err != nil {
		return nil, err
	}

	state.MarkExecuted(messageID)
	if err := s.store.Put(ctx, state); err != nil {
		return nil, err
	}

	return &ApprovalResult{
		Result: *result,
		Message: orca.ChatMessage{
			Role:    orca.RoleAssistant,
			Content: FormatResult(result),
		},
	}, nil
}

// Reject clears the approval affordance without any backend call; the
// generated statement simply never executes.
func (s *Service) Reject(ctx context.Context, state *session.State, messageID string) (*orca.ChatMessage, error) {
	if messageID == "" {
		return nil, ErrInvalidInput
	}
	sessionID := state.ChatSessionID()
	if sessionID == "" {
		return nil, ErrNoActiveSession
	}

	if _, err := s.findPending(ctx, state, sessionID, messageID); err != nil {
		return nil, err
	}

	state.MarkRejected(messageID)
	if err := s.store.Put(ctx, state); err != nil {
		return nil, err
	}
	return &orca.ChatMessage{Role: orca.RoleAssistant, Content: rejectedNote}, nil
}

func (s *Service) SetWebSearch(ctx context.Context, state *session.State, enabled bool) error {
	sessionID := state.ChatSessionID()
	if sessionID == "" {
		return ErrNoActiveSession
	}
	return s.client.SetWebSearch(ctx, state.Credentials(), sessionID, enabled)
}

func (s *Service) ListSessions(ctx context.Context, state *session.State) ([]orca.ChatSession, error) {
	return s.client.ListChatSessions(ctx, state.Credentials())
}

func (s *Service) findPending(ctx context.Context, state *session.State, sessionID, messageID string) (*orca.ChatMessage, error) {
	messages, err := s.client.SessionMessages(ctx, state.Credentials(), sessionID)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].ID != messageID {
			continue
		}
		if !messages[i].ApprovalRequired || messages[i].SQL == "" || state.IsResolved(messageID) {
			return nil, ErrNoPendingApproval
		}
		return &messages[i], nil
	}
	return nil, ErrNoPendingApproval
}

// maskResolved strips the approval affordance from messages the user already
// rejected or approved in this browser; the backend may still report them as
// pending until it reconciles.
func (s *Service) maskResolved(state *session.State, messages []orca.ChatMessage) []orca.ChatMessage {
	for i := range messages {
		if messages[i].ApprovalRequired && state.IsResolved(messages[i].ID) {
			messages[i].ApprovalRequired = false
		}
	}
	return messages
}

// FormatResult renders a query result as the assistant message appended after
// an approved execution.
func FormatResult(result *orca.QueryResult) string {
	if result == nil || len(result.Rows) == 0 {
		return "Query executed. No rows returned."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Query executed. %d row(s) returned.\n\n", len(result.Rows))
	b.WriteString(strings.Join(result.Columns, " | "))
	b.WriteString("\n")

	const maxRows = 20
	shown := len(result.Rows)
	if shown > maxRows {
		shown = maxRows
	}
	for _, row := range result.Rows[:shown] {
		cells := make([]string, 0, len(result.Columns))
		for _, col := range result.Columns {
			cells = append(cells, fmt.Sprintf("%v", row[col]))
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}
	if len(result.Rows) > maxRows {
		fmt.Fprintf(&b, "… and %d more row(s)\n", len(result.Rows)-maxRows)
	}
	return strings.TrimRight(b.String(), "\n")
}
