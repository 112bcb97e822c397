package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcabase-console/internal/orca"
)

func TestStateAuthRoundTrip(t *testing.T) {
	state := NewState()
	require.NotEmpty(t, state.ID)
	assert.False(t, state.Authenticated())

	user := orca.User{ID: "u-1", Email: "ada@example.com"}
	state.SetAuth(user, "tok-abc")

	assert.True(t, state.Authenticated())
	require.NotNil(t, state.User)
	assert.Equal(t, user, *state.User)
	assert.Equal(t, "tok-abc", state.Token)

	state.ClearAuth()
	assert.False(t, state.Authenticated())
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
	assert.Empty(t, state.ActiveWorkspaceID)
}

func TestStateCredentials(t *testing.T) {
	state := NewState()
	state.SetAuth(orca.User{ID: "u-1", Email: "a@b.c"}, "tok")
	state.ActiveWorkspaceID = "ws-1"

	creds := state.Credentials()
	assert.Equal(t, "tok", creds.Token)
	assert.Equal(t, "ws-1", creds.WorkspaceID)
}

func TestStateChatSessionPerWorkspace(t *testing.T) {
	state := NewState()

	// No active workspace: writes are dropped, reads are empty.
	state.SetChatSessionID("chat-0")
	assert.Empty(t, state.ChatSessionID())

	state.ActiveWorkspaceID = "ws-1"
	state.SetChatSessionID("chat-1")
	assert.Equal(t, "chat-1", state.ChatSessionID())

	state.ActiveWorkspaceID = "ws-2"
	assert.Empty(t, state.ChatSessionID())
	state.SetChatSessionID("chat-2")

	state.ActiveWorkspaceID = "ws-1"
	assert.Equal(t, "chat-1", state.ChatSessionID())

	state.ClearChatSession()
	assert.Empty(t, state.ChatSessionID())
	state.ActiveWorkspaceID = "ws-2"
	assert.Equal(t, "chat-2", state.ChatSessionID())
}

func TestStateRejectedMessages(t *testing.T) {
	state := NewState()
	assert.False(t, state.IsRejected("m-1"))

	state.MarkRejected("m-1")
	assert.True(t, state.IsRejected("m-1"))
	assert.False(t, state.IsRejected("m-2"))

	state.ClearAuth()
	assert.False(t, state.IsRejected("m-1"))
}

func TestStateResolvedMessages(t *testing.T) {
	state := NewState()
	assert.False(t, state.IsResolved("m-1"))

	state.MarkExecuted("m-1")
	state.MarkRejected("m-2")
	assert.True(t, state.IsExecuted("m-1"))
	assert.True(t, state.IsResolved("m-1"))
	assert.True(t, state.IsResolved("m-2"))
	assert.False(t, state.IsResolved("m-3"))

	state.ClearAuth()
	assert.False(t, state.IsResolved("m-1"))
	assert.False(t, state.IsResolved("m-2"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	state := NewState()
	state.SetAuth(orca.User{ID: "u-1", Email: "a@b.c"}, "tok")
	require.NoError(t, store.Put(ctx, state))

	loaded, ok, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state.ID, loaded.ID)
	assert.Equal(t, "tok", loaded.Token)

	// The store hands out copies; mutating one must not leak into the other.
	loaded.Token = "changed"
	again, ok, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", again.Token)

	require.NoError(t, store.Delete(ctx, state.ID))
	_, ok, err = store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreCopiesMapFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := NewState()
	state.SetAuth(orca.User{ID: "u-1", Email: "a@b.c"}, "tok")
	state.ActiveWorkspaceID = "ws-1"
	state.SetChatSessionID("chat-1")
	state.MarkRejected("m-1")
	state.MarkExecuted("m-2")
	require.NoError(t, store.Put(ctx, state))

	// Writing into a returned copy's maps must not touch the stored state.
	loaded, ok, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	loaded.ChatSessions["ws-1"] = "hijacked"
	loaded.RejectedMessages["m-3"] = true
	loaded.ExecutedMessages["m-4"] = true

	again, ok, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "chat-1", again.ChatSessions["ws-1"])
	assert.False(t, again.IsRejected("m-3"))
	assert.False(t, again.IsExecuted("m-4"))

	// Same isolation on the way in: mutating the put state after Put.
	state.ChatSessions["ws-1"] = "mutated-after-put"
	final, ok, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "chat-1", final.ChatSessions["ws-1"])
}
