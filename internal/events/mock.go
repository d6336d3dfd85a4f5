package events

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Mock is a Bus for tests. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendMessageFunc func(topic Topic, data any) error

	// Call records
	SendMessageCalls []SendMessageCall
}

// SendMessageCall holds the arguments for a call to SendMessage.
type SendMessageCall struct {
	Topic Topic
	Data  any
}

// NewMock creates a new mock Bus.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = nil
}

func (m *Mock) SendMessage(topic Topic, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: topic, Data: data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *Mock) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
