package facades

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seidlp/vault-gateway/internal/logger"
)

// ReceiptPoller is the read-side the watcher falls back to when no
// websocket endpoint is available or the subscription drops.
type ReceiptPoller interface {
	ReadReceipt(ctx context.Context, txHash string) (*Receipt, error)
}

// ReceiptWatcher observes transaction lifecycles. It prefers a websocket
// subscription to the wallet bridge and degrades to polling. Exactly one
// receipt is delivered per watched transaction.
type ReceiptWatcher struct {
	wsURL        string
	poller       ReceiptPoller
	pollInterval time.Duration
	dialer       *websocket.Dialer
}

// NewReceiptWatcher creates a watcher. wsURL may be empty to force polling.
func NewReceiptWatcher(wsURL string, poller ReceiptPoller, pollInterval time.Duration) *ReceiptWatcher {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &ReceiptWatcher{
		wsURL:        wsURL,
		poller:       poller,
		pollInterval: pollInterval,
		dialer:       websocket.DefaultDialer,
	}
}

// WatchReceipt blocks until the transaction settles or ctx expires.
// A broadcast transaction cannot be cancelled; ctx expiry only stops
// watching, never the transaction itself.
func (w *ReceiptWatcher) WatchReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	if w.wsURL != "" {
		receipt, err := w.watchOverWebsocket(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Log.Warnw("websocket receipt watch failed, falling back to polling",
			"tx_hash", txHash, "error", err)
	}
	return w.pollForReceipt(ctx, txHash)
}

// subscribeMessage is the bridge's receipt subscription request.
type subscribeMessage struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

func (w *ReceiptWatcher) watchOverWebsocket(ctx context.Context, txHash string) (*Receipt, error) {
	conn, _, err := w.dialer.DialContext(ctx, w.wsURL, nil)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.WriteJSON(subscribeMessage{
		Method: "tx_subscribeReceipt",
		Params: []string{txHash},
	}); err != nil {
		return nil, err
	}

	type result struct {
		receipt *Receipt
		err     error
	}
	resultCh := make(chan result, 1)

	go func() {
		for {
			var receipt Receipt
			if err := conn.ReadJSON(&receipt); err != nil {
				resultCh <- result{err: err}
				return
			}
			// Subscription acks and unrelated notifications carry no hash.
			if receipt.TxHash == txHash {
				resultCh <- result{receipt: &receipt}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		conn.Close()
		return nil, ctx.Err()
	case res := <-resultCh:
		return res.receipt, res.err
	}
}

func (w *ReceiptWatcher) pollForReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			receipt, err := w.poller.ReadReceipt(ctx, txHash)
			if err != nil {
				logger.Log.Warnw("receipt poll failed, retrying", "tx_hash", txHash, "error", err)
				continue
			}
			if receipt != nil {
				return receipt, nil
			}
		}
	}
}
