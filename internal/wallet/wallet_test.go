package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointsward/loyalcore/internal/config"
)

type stubResponse struct {
	status int
	err    error
}

type stubClient struct {
	mu        sync.Mutex
	responses []stubResponse
	urls      []string
	bodies    [][]byte
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func (c *stubClient) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls = append(c.urls, url)
	c.bodies = append(c.bodies, body)

	resp := stubResponse{status: http.StatusOK}
	if len(c.responses) > 0 {
		resp = c.responses[0]
		c.responses = c.responses[1:]
	}
	return resp.status, nil, resp.err
}

// inlinePool runs tasks on the caller's goroutine so tests see the result
// synchronously.
type inlinePool struct {
	lastErr error
}

func (p *inlinePool) AddTask(_ context.Context, task Task) error {
	p.lastErr = task()
	return nil
}

func (p *inlinePool) Close() {}

func newTestNotifier(client *stubClient) (*Notifier, *inlinePool) {
	pool := &inlinePool{}
	notifier := New(&config.Config{WalletAddress: "http://localhost:8090"}, client)
	notifier.workerPool = pool
	return notifier, pool
}

func TestNotifyBalance(t *testing.T) {
	client := &stubClient{}
	notifier, pool := newTestNotifier(client)

	notifier.NotifyBalance(1, 2, 250)

	require.NoError(t, pool.lastErr)
	require.Len(t, client.urls, 1)
	assert.Equal(t, "http://localhost:8090/api/wallet/balance", client.urls[0])

	var payload balancePayload
	require.NoError(t, json.Unmarshal(client.bodies[0], &payload))
	assert.Equal(t, balancePayload{MembershipID: 1, BusinessID: 2, Balance: 250}, payload)
}

func TestNotifyBalanceRetries(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{status: http.StatusInternalServerError},
		{status: http.StatusOK},
	}}
	notifier, pool := newTestNotifier(client)

	notifier.NotifyBalance(1, 2, 250)

	require.NoError(t, pool.lastErr)
	assert.Len(t, client.urls, 2)
}

func TestNotifyBalanceExhaustsRetries(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: errors.New("connection refused")},
		{err: errors.New("connection refused")},
		{err: errors.New("connection refused")},
	}}
	notifier, pool := newTestNotifier(client)

	notifier.NotifyBalance(1, 2, 250)

	assert.Error(t, pool.lastErr)
	assert.Len(t, client.urls, maxRetries)
}

func TestWorkerPool(t *testing.T) {
	pool := NewWorkerPool(2)
	done := make(chan struct{})

	err := pool.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	require.NoError(t, err)
	<-done
	pool.Close()
}

func TestWorkerPoolContextCancelled(t *testing.T) {
	pool := &WorkerPool{pool: make(chan Task)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
