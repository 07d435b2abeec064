package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVault  = "0x1111111111111111111111111111111111111111"
	testWallet = "0x2222222222222222222222222222222222222222"
	testHash   = "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
)

// bridgeStub serves canned JSON-RPC responses keyed by method.
func bridgeStub(t *testing.T, handler func(method string, params json.RawMessage) (any, *rpcError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      int64           `json:"id"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)

		result, rpcErr := handler(req.Method, req.Params)

		w.Header().Set("Content-Type", "application/json")
		if rpcErr != nil {
			json.NewEncoder(w).Encode(map[string]any{"id": req.ID, "error": rpcErr})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": req.ID, "result": result})
	}))
}

func TestChainGatewayFacade_ReadBalance(t *testing.T) {
	srv := bridgeStub(t, func(method string, params json.RawMessage) (any, *rpcError) {
		assert.Equal(t, "wallet_getBalance", method)
		var addrs []string
		require.NoError(t, json.Unmarshal(params, &addrs))
		assert.Equal(t, []string{testWallet}, addrs)
		return "1250.5", nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")
	assert.Equal(t, "713715", facade.ChainID())

	balance, err := facade.ReadBalance(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, "1250.5", balance.String())
}

func TestChainGatewayFacade_ReadBalance_Unparseable(t *testing.T) {
	srv := bridgeStub(t, func(string, json.RawMessage) (any, *rpcError) {
		return "not-a-number", nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.ReadBalance(context.Background(), testWallet)
	assert.Error(t, err)
}

func TestChainGatewayFacade_ReadCustomerStats(t *testing.T) {
	srv := bridgeStub(t, func(method string, params json.RawMessage) (any, *rpcError) {
		assert.Equal(t, "vault_getCustomerStats", method)
		var args []string
		require.NoError(t, json.Unmarshal(params, &args))
		assert.Equal(t, []string{testVault, testWallet}, args)
		return map[string]any{
			"shares":              "42.5",
			"share_value":         "1.07",
			"total_deposited":     "100",
			"total_withdrawn":     "60",
			"deposit_timestamp":   1756300000,
			"lock_time_remaining": 3600,
		}, nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	position, err := facade.ReadCustomerStats(context.Background(), testVault, testWallet)
	require.NoError(t, err)
	assert.Equal(t, "42.5", position.Shares.String())
	assert.Equal(t, int64(3600), position.LockTimeRemaining)
}

func TestChainGatewayFacade_WriteDeposit_MethodSelection(t *testing.T) {
	var gotMethod string
	srv := bridgeStub(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		gotMethod = method
		return testHash, nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	// Native vaults go through the gas-optimized entrypoint.
	hash, err := facade.WriteDeposit(context.Background(), DepositCall{
		VaultAddress: testVault,
		Recipient:    testWallet,
		Value:        "25",
		Native:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, testHash, hash)
	assert.Equal(t, "vault_seiOptimizedDeposit", gotMethod)

	_, err = facade.WriteDeposit(context.Background(), DepositCall{
		VaultAddress: testVault,
		Recipient:    testWallet,
		Amount0:      "25",
		Amount1:      "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "vault_deposit", gotMethod)
}

func TestChainGatewayFacade_WriteWithdraw_MethodSelection(t *testing.T) {
	var gotMethod string
	srv := bridgeStub(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		gotMethod = method
		return testHash, nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.WriteWithdraw(context.Background(), WithdrawCall{
		VaultAddress: testVault, Shares: "10", Owner: testWallet, Recipient: testWallet, Native: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "vault_seiOptimizedWithdraw", gotMethod)

	_, err = facade.WriteWithdraw(context.Background(), WithdrawCall{
		VaultAddress: testVault, Shares: "10", Owner: testWallet, Recipient: testWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, "vault_withdraw", gotMethod)
}

func TestChainGatewayFacade_UserRejection(t *testing.T) {
	srv := bridgeStub(t, func(string, json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: 4001, Message: "User rejected the request."}
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.WriteDeposit(context.Background(), DepositCall{VaultAddress: testVault, Native: true})
	assert.ErrorIs(t, err, ErrWalletRejected)
}

func TestChainGatewayFacade_RejectionByMessage(t *testing.T) {
	srv := bridgeStub(t, func(string, json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: -32000, Message: "Transaction rejected by user"}
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.WriteDeposit(context.Background(), DepositCall{VaultAddress: testVault})
	assert.ErrorIs(t, err, ErrWalletRejected)
}

func TestChainGatewayFacade_ExecutionReverted(t *testing.T) {
	srv := bridgeStub(t, func(string, json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: -32000, Message: "execution reverted: deposit cap exceeded"}
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.WriteDeposit(context.Background(), DepositCall{VaultAddress: testVault})
	assert.ErrorIs(t, err, ErrExecutionReverted)
	assert.Contains(t, err.Error(), "deposit cap exceeded")
}

func TestChainGatewayFacade_ReadReceipt(t *testing.T) {
	mined := false
	srv := bridgeStub(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		assert.Equal(t, "tx_getReceipt", method)
		if !mined {
			return nil, nil
		}
		return Receipt{TxHash: testHash, Status: 1}, nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	// Still in flight: nil receipt, nil error.
	receipt, err := facade.ReadReceipt(context.Background(), testHash)
	require.NoError(t, err)
	assert.Nil(t, receipt)

	mined = true
	receipt, err = facade.ReadReceipt(context.Background(), testHash)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, uint64(1), receipt.Status)
}

func TestChainGatewayFacade_ReadVaultInfo(t *testing.T) {
	srv := bridgeStub(t, func(method string, params json.RawMessage) (any, *rpcError) {
		assert.Equal(t, "vault_getVaultInfo", method)
		var args []string
		require.NoError(t, json.Unmarshal(params, &args))
		assert.Equal(t, []string{testVault}, args)
		return map[string]any{
			"token0_address": "0x0000000000000000000000000000000000000000",
			"token1_address": "0x3333333333333333333333333333333333333333",
			"total_shares":   "100000",
			"paused":         true,
		}, nil
	})
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	info, err := facade.ReadVaultInfo(context.Background(), testVault)
	require.NoError(t, err)
	assert.Equal(t, "100000", info.TotalShares)
	assert.True(t, info.Paused)
}

func TestChainGatewayFacade_BridgeUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer srv.Close()

	facade := NewChainGatewayFacade(srv.URL, "713715")

	_, err := facade.ReadBalance(context.Background(), testWallet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
