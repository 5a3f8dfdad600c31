package emit

import "sync"

// MockWriter is a test double recording every write for verification,
// optionally simulating a peer disconnect after a given number of
// bytes (grounded on the teacher's transport.MockTransport, which
// records Send calls the same way for assertion-friendly tests).
type MockWriter struct {
	mu            sync.Mutex
	writes        [][]byte
	disconnectAt  int
	written       int
	disconnectSet bool
}

// NewMockWriter returns a MockWriter that never simulates a disconnect.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// NewMockWriterDisconnectingAfter returns a MockWriter whose Write
// starts returning ErrWriterDisconnected once n total bytes have been
// accepted.
func NewMockWriterDisconnectingAfter(n int) *MockWriter {
	return &MockWriter{disconnectAt: n, disconnectSet: true}
}

func (m *MockWriter) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disconnectSet && m.written >= m.disconnectAt {
		return 0, ErrWriterDisconnected
	}
	cp := append([]byte(nil), p...)
	m.writes = append(m.writes, cp)
	m.written += len(cp)
	return len(cp), nil
}

// Bytes concatenates every accepted write into a single buffer.
func (m *MockWriter) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]byte, 0, m.written)
	for _, w := range m.writes {
		out = append(out, w...)
	}
	return out
}

// Writes returns a copy of the recorded per-call byte slices, for
// tests that care about blocksize chunking.
func (m *MockWriter) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}
