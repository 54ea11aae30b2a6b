package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitull1/wonderwhiz-api/types"
)

func TestStoreAssignsUniqueIDsUnderRapidFire(t *testing.T) {
	store := NewMessageStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Append(types.Message{Text: fmt.Sprintf("msg %d", i), IsUser: true})
		}(i)
	}
	wg.Wait()

	msgs := store.Messages()
	require.Len(t, msgs, 50)

	seen := make(map[string]bool)
	for _, msg := range msgs {
		assert.NotEmpty(t, msg.ID)
		assert.False(t, seen[msg.ID], "duplicate id %s", msg.ID)
		seen[msg.ID] = true
	}
}

func TestStorePreservesAppendOrder(t *testing.T) {
	store := NewMessageStore()
	store.Append(types.Message{Text: "first", IsUser: true})
	store.Append(types.Message{Text: "second"})
	store.Append(types.Message{Text: "third", IsUser: true})

	msgs := store.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)
}

func TestStoreMessagesReturnsCopy(t *testing.T) {
	store := NewMessageStore()
	store.Append(types.Message{Text: "original"})

	msgs := store.Messages()
	msgs[0].Text = "mutated"

	assert.Equal(t, "original", store.Messages()[0].Text)
}

func TestStoreClear(t *testing.T) {
	store := NewMessageStore()
	store.Append(types.Message{Text: "gone"})
	store.Clear()
	assert.Zero(t, store.Len())
}
