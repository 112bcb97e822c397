package workspace

import (
	"context"
	"errors"
	"strings"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/session"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// Service is the single source of truth for "which workspace is active".
// The list itself is always refetched from the core API; only the active id
// is persisted, in the session blob.
type Service struct {
	client *orca.Client
	store  session.Store
}

func NewService(client *orca.Client, store session.Store) *Service {
	return &Service{client: client, store: store}
}

type View struct {
	Workspaces []orca.Workspace `json:"workspaces"`
	Active     *orca.Workspace  `json:"active,omitempty"`
}

// Resolve picks the active workspace from a fetched list: the persisted id
// when it is still present, otherwise the first workspace, otherwise none.
func Resolve(workspaces []orca.Workspace, persistedID string) *orca.Workspace {
	if persistedID != "" {
		for i := range workspaces {
			if workspaces[i].ID == persistedID {
				return &workspaces[i]
			}
		}
	}
	if len(workspaces) > 0 {
		return &workspaces[0]
	}
	return nil
}

// Refresh fetches the workspace list and reconciles the persisted active id
// against it. A fetch failure returns before any mutation, so a transient
// network error never clears the previous state.
func (s *Service) Refresh(ctx context.Context, state *session.State) (*View, error) {
	workspaces, err := s.client.ListWorkspaces(ctx, state.Credentials())
	if err != nil {
		return nil, err
	}

	active := Resolve(workspaces, state.ActiveWorkspaceID)
	activeID := ""
	if active != nil {
		activeID = active.ID
	}
	if activeID != state.ActiveWorkspaceID {
		state.ActiveWorkspaceID = activeID
		if err := s.store.Put(ctx, state); err != nil {
			return nil, err
		}
	}
	return &View{Workspaces: workspaces, Active: active}, nil
}

// Switch activates the workspace with the given id. Unknown ids are a no-op
// error; no server-side permission re-check happens here, since the core API
// enforces access on every subsequent request carrying the workspace header.
func (s *Service) Switch(ctx context.Context, state *session.State, id string) (*orca.Workspace, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}

	workspaces, err := s.client.ListWorkspaces(ctx, state.Credentials())
	if err != nil {
		return nil, err
	}
	for i := range workspaces {
		if workspaces[i].ID == id {
			state.ActiveWorkspaceID = id
			if err := s.store.Put(ctx, state); err != nil {
				return nil, err
			}
			return &workspaces[i], nil
		}
	}
	return nil, ErrWorkspaceNotFound
}

// Create posts the new workspace and activates it immediately. Optimistic:
// the next Refresh reconciles if the backend disagrees.
func (s *Service) Create(ctx context.Context, state *session.State, name string) (*orca.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	created, err := s.client.CreateWorkspace(ctx, state.Credentials(), name)
	if err != nil {
		return nil, err
	}

	state.ActiveWorkspaceID = created.ID
	if err := s.store.Put(ctx, state); err != nil {
		return nil, err
	}
	return created, nil
}
