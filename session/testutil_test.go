package session

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/jonwraymond/vizexec/payload"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockClient returns a fixed result.
type mockClient struct {
	mu    sync.Mutex
	viz   string
	err   error
	calls []payload.Final
}

func (m *mockClient) Launch(ctx context.Context, req payload.Final) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return m.viz, m.err
}

func (m *mockClient) Calls() []payload.Final {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]payload.Final, len(m.calls))
	copy(out, m.calls)
	return out
}

// blockingClient blocks each call until released or canceled.
type blockingClient struct {
	started chan string
	release chan string
}

func newBlockingClient() *blockingClient {
	return &blockingClient{
		started: make(chan string, 4),
		release: make(chan string),
	}
}

func (b *blockingClient) Launch(ctx context.Context, req payload.Final) (string, error) {
	b.started <- req.Code
	select {
	case viz := <-b.release:
		return viz, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
