package workspace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/session"
)

func TestResolve(t *testing.T) {
	workspaces := []orca.Workspace{
		{ID: "ws-a", Name: "Alpha"},
		{ID: "ws-b", Name: "Beta"},
	}

	active := Resolve(workspaces, "ws-b")
	require.NotNil(t, active)
	assert.Equal(t, "ws-b", active.ID)

	// Stale persisted id falls back to the first workspace.
	active = Resolve(workspaces, "ws-gone")
	require.NotNil(t, active)
	assert.Equal(t, "ws-a", active.ID)

	active = Resolve(workspaces, "")
	require.NotNil(t, active)
	assert.Equal(t, "ws-a", active.ID)

	assert.Nil(t, Resolve(nil, "ws-a"))
	assert.Nil(t, Resolve([]orca.Workspace{}, ""))
}

func newWorkspaceBackend(t *testing.T, workspaces []orca.Workspace) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/workspaces", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(workspaces)
		case http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_ = json.NewEncoder(w).Encode(orca.Workspace{ID: "ws-new", Name: body["name"]})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func authedState(t *testing.T, store session.Store) *session.State {
	t.Helper()
	state := session.NewState()
	state.SetAuth(orca.User{ID: "u-1", Email: "a@b.c"}, "tok")
	require.NoError(t, store.Put(context.Background(), state))
	return state
}

func TestServiceRefreshReconcilesActiveID(t *testing.T) {
	server := newWorkspaceBackend(t, []orca.Workspace{
		{ID: "ws-a"}, {ID: "ws-b"},
	})
	store := session.NewMemoryStore()
	svc := NewService(orca.NewClient(server.URL, time.Second), store)

	state := authedState(t, store)
	state.ActiveWorkspaceID = "ws-deleted"

	view, err := svc.Refresh(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, view.Active)
	assert.Equal(t, "ws-a", view.Active.ID)
	assert.Equal(t, "ws-a", state.ActiveWorkspaceID)
	assert.Len(t, view.Workspaces, 2)

	// Reconciled id was persisted.
	stored, ok, err := store.Get(context.Background(), state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ws-a", stored.ActiveWorkspaceID)
}

func TestServiceRefreshEmptyList(t *testing.T) {
	server := newWorkspaceBackend(t, nil)
	store := session.NewMemoryStore()
	svc := NewService(orca.NewClient(server.URL, time.Second), store)

	state := authedState(t, store)
	state.ActiveWorkspaceID = "ws-a"

	view, err := svc.Refresh(context.Background(), state)
	require.NoError(t, err)
	assert.Nil(t, view.Active)
	assert.Empty(t, state.ActiveWorkspaceID)
}

func TestServiceRefreshFetchFailureLeavesState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	svc := NewService(orca.NewClient(server.URL, time.Second), store)

	state := authedState(t, store)
	state.ActiveWorkspaceID = "ws-keep"

	_, err := svc.Refresh(context.Background(), state)
	require.Error(t, err)
	assert.Equal(t, "ws-keep", state.ActiveWorkspaceID)
}

func TestServiceSwitch(t *testing.T) {
	server := newWorkspaceBackend(t, []orca.Workspace{
		{ID: "ws-a"}, {ID: "ws-b"},
	})
	store := session.NewMemoryStore()
	svc := NewService(orca.NewClient(server.URL, time.Second), store)

	state := authedState(t, store)
	state.ActiveWorkspaceID = "ws-a"

	switched, err := svc.Switch(context.Background(), state, "ws-b")
	require.NoError(t, err)
	assert.Equal(t, "ws-b", switched.ID)
	assert.Equal(t, "ws-b", state.ActiveWorkspaceID)

	_, err = svc.Switch(context.Background(), state, "ws-nope")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	assert.Equal(t, "ws-b", state.ActiveWorkspaceID)

	_, err = svc.Switch(context.Background(), state, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceCreateActivates(t *testing.T) {
	server := newWorkspaceBackend(t, []orca.Workspace{{ID: "ws-a"}})
	store := session.NewMemoryStore()
	svc := NewService(orca.NewClient(server.URL, time.Second), store)

	state := authedState(t, store)
	state.ActiveWorkspaceID = "ws-a"

	created, err := svc.Create(context.Background(), state, "  Research  ")
	require.NoError(t, err)
	assert.Equal(t, "ws-new", created.ID)
	assert.Equal(t, "Research", created.Name)
	assert.Equal(t, "ws-new", state.ActiveWorkspaceID)

	_, err = svc.Create(context.Background(), state, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
