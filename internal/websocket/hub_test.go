package websocket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	userID   string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
	full     bool
}

func newMockClient(id string, userID string) *mockClient {
	return &mockClient{
		id:       id,
		userID:   userID,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) UserID() string {
	return m.userID
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	if m.full {
		return ErrClientSlow
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1", "auth0|alice")
	client2 := newMockClient("client-2", "auth0|alice")
	client3 := newMockClient("client-3", "auth0|bob")

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount("auth0|alice"))
	assert.Equal(t, 1, hub.ClientCount("auth0|bob"))
	assert.Equal(t, 0, hub.ClientCount("auth0|nobody"))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount("auth0|alice"))

	hub.Unregister(client2)
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.ClientCount("auth0|alice"))
	assert.Equal(t, 0, hub.ClientCount("auth0|bob"))
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_Broadcast_UserIsolation(t *testing.T) {
	hub := NewHub()

	aliceTab1 := newMockClient("client-1a", "auth0|alice")
	aliceTab2 := newMockClient("client-1b", "auth0|alice")
	bob := newMockClient("client-2", "auth0|bob")

	hub.Register(aliceTab1)
	hub.Register(aliceTab2)
	hub.Register(bob)

	hub.Broadcast("auth0|alice", DebtCreated(map[string]interface{}{"name": "Visa"}))

	assert.Len(t, aliceTab1.GetMessages(), 1, "first tab should receive 1 message")
	assert.Len(t, aliceTab2.GetMessages(), 1, "second tab should receive 1 message")

	assert.Len(t, bob.GetMessages(), 0, "bob should not receive alice's events")
}

func TestHub_Broadcast_MultipleFanOut(t *testing.T) {
	hub := NewHub()

	clients := make([]*mockClient, 5)
	for i := 0; i < 5; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), "auth0|alice")
		hub.Register(clients[i])
	}

	hub.Broadcast("auth0|alice", SummaryUpdated(map[string]interface{}{"totalDebt": "5000.00"}))

	for i, c := range clients {
		assert.Len(t, c.GetMessages(), 1, "client %d should receive message", i)
	}
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50
	userFor := func(i int) string { return fmt.Sprintf("auth0|user-%d", i%5) }

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), userFor(i))
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, clientCount, hub.TotalClientCount())

	for i := 0; i < clientCount; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(userFor(idx), DebtUpdated(map[string]interface{}{"index": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, hub.ClientCount(userFor(i)))
	}
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1", "auth0|alice")

	require.NotPanics(t, func() {
		hub.Unregister(client)
	})
}

func TestHub_BroadcastToUserWithoutClients(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast("auth0|nobody", DebtDeleted(map[string]interface{}{"id": "x"}))
	})
}

func TestHub_BroadcastSkipsClosedClient(t *testing.T) {
	hub := NewHub()

	open := newMockClient("open", "auth0|alice")
	closed := newMockClient("closed", "auth0|alice")
	require.NoError(t, closed.Close())

	hub.Register(open)
	hub.Register(closed)

	hub.Broadcast("auth0|alice", IncomeUpdated(map[string]interface{}{"monthlyIncome": "4000.00"}))

	assert.Len(t, open.GetMessages(), 1)
	assert.Len(t, closed.GetMessages(), 0)
}

func TestHub_BroadcastDropsSlowClient(t *testing.T) {
	hub := NewHub()

	fast := newMockClient("fast", "auth0|alice")
	slow := newMockClient("slow", "auth0|alice")
	slow.full = true

	hub.Register(fast)
	hub.Register(slow)

	hub.Broadcast("auth0|alice", IncomeUpdated(map[string]interface{}{"monthlyIncome": "4000.00"}))

	assert.Len(t, fast.GetMessages(), 1)
	assert.Equal(t, 1, hub.ClientCount("auth0|alice"))

	slow.mu.Lock()
	defer slow.mu.Unlock()
	assert.True(t, slow.closed)
}

func TestHub_BroadcastKeepsEventOrder(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1", "auth0|alice")
	hub.Register(client)

	hub.Broadcast("auth0|alice", DebtCreated(map[string]interface{}{"id": "1"}))
	hub.Broadcast("auth0|alice", IncomeUpdated(map[string]interface{}{"monthlyIncome": "4000.00"}))
	hub.Broadcast("auth0|alice", DebtDeleted(map[string]interface{}{"id": "1"}))

	msgs := client.GetMessages()
	require.Len(t, msgs, 3)
	assert.Contains(t, string(msgs[0]), `"type":"debt.created"`)
	assert.Contains(t, string(msgs[1]), `"type":"income.updated"`)
	assert.Contains(t, string(msgs[2]), `"type":"debt.deleted"`)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1", "auth0|alice")
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish("auth0|alice", SummaryUpdated(map[string]interface{}{"debtFreeDate": "July 2029"}))

	assert.Len(t, client.GetMessages(), 1)
}
