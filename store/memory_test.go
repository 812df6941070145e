package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/store"
)

func nextDoc(t *testing.T, ch <-chan store.Document) store.Document {
	t.Helper()
	select {
	case doc := <-ch:
		return doc
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a push")
		return nil
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	memory := store.NewMemory()

	_, err := memory.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, memory.Create("game-1", store.Document{"status": "waiting"}))
	assert.ErrorIs(t, memory.Create("game-1", store.Document{}), store.ErrExists)

	doc, err := memory.Get("game-1")
	require.NoError(t, err)
	assert.Equal(t, "waiting", doc["status"])

	// Returned documents never alias store internals.
	doc["status"] = "mangled"
	doc, err = memory.Get("game-1")
	require.NoError(t, err)
	assert.Equal(t, "waiting", doc["status"])
}

func TestMemoryUpdateMergesFields(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.Create("game-1", store.Document{"status": "waiting", "host": "a"}))

	err := memory.Update("game-1", store.Patch{Set: store.Document{"status": "playing"}})
	require.NoError(t, err)

	doc, err := memory.Get("game-1")
	require.NoError(t, err)
	assert.Equal(t, "playing", doc["status"])
	assert.Equal(t, "a", doc["host"], "untouched fields survive the merge")

	assert.ErrorIs(t,
		memory.Update("missing", store.Patch{Set: store.Document{"x": 1}}),
		store.ErrNotFound)
}

func TestMemoryIncrement(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.Create("game-1", store.Document{}))

	require.NoError(t, memory.Update("game-1", store.Patch{Inc: map[string]int64{"turns": 1}}))
	require.NoError(t, memory.Update("game-1", store.Patch{Inc: map[string]int64{"turns": 2}}))

	doc, err := memory.Get("game-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, doc["turns"])
}

// Every subscriber sees the current document first, then every commit in
// order, its own writes included, each exactly once.
func TestMemorySubscribeOrdering(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.Create("game-1", store.Document{"v": 0}))

	pushes := make(chan store.Document, 64)
	unsubscribe, err := memory.Subscribe("game-1", func(doc store.Document) {
		pushes <- doc
	})
	require.NoError(t, err)

	initial := nextDoc(t, pushes)
	assert.EqualValues(t, 0, initial["v"])

	for i := 1; i <= 5; i++ {
		require.NoError(t, memory.Update("game-1", store.Patch{Set: store.Document{"v": i}}))
	}
	for i := 1; i <= 5; i++ {
		doc := nextDoc(t, pushes)
		assert.EqualValues(t, i, doc["v"], "commits must arrive in commit order")
	}

	unsubscribe()
	require.NoError(t, memory.Update("game-1", store.Patch{Set: store.Document{"v": 6}}))
	select {
	case doc := <-pushes:
		t.Fatalf("push after unsubscribe: %v", doc)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMemoryFansOutToAllSubscribers(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.Create("game-1", store.Document{"v": 0}))

	first := make(chan store.Document, 16)
	second := make(chan store.Document, 16)
	_, err := memory.Subscribe("game-1", func(doc store.Document) { first <- doc })
	require.NoError(t, err)
	_, err = memory.Subscribe("game-1", func(doc store.Document) { second <- doc })
	require.NoError(t, err)

	nextDoc(t, first)
	nextDoc(t, second)

	require.NoError(t, memory.Update("game-1", store.Patch{Set: store.Document{"v": 1}}))

	assert.EqualValues(t, 1, nextDoc(t, first)["v"])
	assert.EqualValues(t, 1, nextDoc(t, second)["v"])
}
