package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetCreatesIdleSession(t *testing.T) {
	store := NewStore()

	sess := store.Get(1)
	require.NotNil(t, sess)
	assert.Equal(t, StepIdle, sess.Step)
	assert.Empty(t, sess.Fields)
	assert.False(t, store.InProgress(1))

	// same chat gets the same session back
	sess.Step = Step("awaiting_url")
	again := store.Get(1)
	assert.Equal(t, Step("awaiting_url"), again.Step)
	assert.True(t, store.InProgress(1))
}

func TestStoreClearDiscardsPartialFields(t *testing.T) {
	store := NewStore()

	sess := store.Get(7)
	sess.Step = Step("awaiting_ssid")
	sess.Set("ssid", "TestSSID")

	store.Clear(7)

	_, ok := store.Peek(7)
	assert.False(t, ok)
	assert.False(t, store.InProgress(7))

	fresh := store.Get(7)
	assert.Equal(t, StepIdle, fresh.Step)
	assert.Empty(t, fresh.Fields)
}

func TestStoreSessionsAreIsolatedPerChat(t *testing.T) {
	store := NewStore()

	const chats = 32
	var wg sync.WaitGroup
	for i := 0; i < chats; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sess := store.Get(id)
			sess.Step = Step("awaiting_name")
			sess.Set("name", fmt.Sprintf("user-%d", id))
		}(int64(i))
	}
	wg.Wait()

	require.Equal(t, chats, store.Len())
	for i := 0; i < chats; i++ {
		sess, ok := store.Peek(int64(i))
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("user-%d", i), sess.Get("name"))
	}
}

func TestSessionReset(t *testing.T) {
	sess := NewSession()
	sess.Step = Step("awaiting_password")
	sess.Set("ssid", "TestSSID")

	sess.Reset()

	assert.Equal(t, StepIdle, sess.Step)
	assert.Empty(t, sess.Fields)
	assert.False(t, sess.InProgress())
}
