package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/seidlp/vault-gateway/internal/logger"
)

// addressPattern matches a 0x-prefixed 20-byte hex address.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// SessionTokenGenerator issues session tokens bound to a wallet address.
type SessionTokenGenerator interface {
	Generate(ctx context.Context, address string) (string, error)
}

// SessionRequest represents the JSON body for opening a wallet session
// swagger:model SessionRequest
type SessionRequest struct {
	// Connected wallet address
	// required: true
	// example: 0x1234567890abcdef1234567890abcdef12345678
	Address string `json:"address"`
}

// SessionResponse represents a successful session response
// swagger:model SessionResponse
type SessionResponse struct {
	// Bearer token for subsequent requests
	Token string `json:"token"`

	// Wallet address the session is bound to
	Address string `json:"address"`
}

// SessionErrorResponse represents an error response for session creation
// swagger:model SessionErrorResponse
type SessionErrorResponse struct {
	// Error message
	// example: Invalid wallet address
	Error string `json:"error"`
}

// NewSessionHandler returns an HTTP handler that binds a connected wallet
// address to a session token. Wallet ownership proof lives in the wallet
// itself; the gateway only needs a stable session identity.
// @Summary Open wallet session
// @Description Bind a connected wallet address to a bearer token for the protected routes.
// @Tags session
// @Accept json
// @Produce json
// @Param request body handlers.SessionRequest true "Session Request"
// @Success 200 {object} handlers.SessionResponse "Session opened"
// @Failure 400 {object} handlers.SessionErrorResponse "Invalid wallet address"
// @Router /session [post]
func NewSessionHandler(tokens SessionTokenGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode session request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Invalid request body"})
			return
		}

		if !addressPattern.MatchString(req.Address) {
			logger.Log.Warnw("invalid wallet address", "address", req.Address)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Invalid wallet address"})
			return
		}

		token, err := tokens.Generate(ctx, req.Address)
		if err != nil {
			logger.Log.Errorw("failed to generate session token", "address", req.Address, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SessionResponse{Token: token, Address: req.Address})
	}
}
