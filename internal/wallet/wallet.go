package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pointsward/loyalcore/internal/config"
	"github.com/pointsward/loyalcore/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	poolSize      = 10
)

// Notifier pushes balance changes to the wallet-sync service so the
// customer's wallet card shows the fresh balance. Delivery is best-effort:
// pushes run detached from the request, and a failed push is only logged.
type Notifier struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

type balancePayload struct {
	MembershipID int `json:"membership_id"`
	BusinessID   int `json:"business_id"`
	Balance      int `json:"balance"`
}

func New(cfg *config.Config, client clients.HTTPClientI) *Notifier {
	return &Notifier{
		url:        cfg.WalletAddress,
		client:     client,
		workerPool: NewWorkerPool(poolSize),
	}
}

// NotifyBalance queues one push. Never blocks the caller on delivery and
// never reports delivery errors back.
func (n *Notifier) NotifyBalance(membershipID, businessID, balance int) {
	payload := balancePayload{
		MembershipID: membershipID,
		BusinessID:   businessID,
		Balance:      balance,
	}
	err := n.workerPool.AddTask(context.Background(), func() error {
		return n.push(payload)
	})
	if err != nil {
		zap.L().Warn("wallet push dropped", zap.Int("membershipID", membershipID), zap.Error(err))
	}
}

func (n *Notifier) push(payload balancePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet payload: %w", err)
	}

	url := n.url + "/api/wallet/balance"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, err := n.client.Post(url, nil, body)
		if err == nil && statusCode < http.StatusMultipleChoices {
			return nil
		}
		if err != nil {
			zap.L().Warn("wallet push attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		} else {
			zap.L().Warn("wallet push rejected", zap.Int("attempt", attempt), zap.Int("status", statusCode))
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	return fmt.Errorf("failed to push balance for membership %d after %d retries", payload.MembershipID, maxRetries)
}

func (n *Notifier) Close() {
	n.workerPool.Close()
}
