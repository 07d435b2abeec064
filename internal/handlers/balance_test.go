package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seidlp/vault-gateway/internal/jwt"
)

func TestGetBalanceHandler(t *testing.T) {
	validToken := "valid-token"

	tests := []struct {
		name               string
		setupMocks         func(mockBalances *MockBalanceProvider, mockTokener *MockBalanceTokener)
		expectedStatusCode int
		expectedBalance    string
	}{
		{
			name: "successful balance fetch",
			setupMocks: func(mockBalances *MockBalanceProvider, mockTokener *MockBalanceTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockBalances.EXPECT().Balance(gomock.Any(), testWalletAddr).Return(decimal.RequireFromString("1250.5"), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBalance:    "1250.5",
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(mockBalances *MockBalanceProvider, mockTokener *MockBalanceTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "unauthorized invalid token",
			setupMocks: func(mockBalances *MockBalanceProvider, mockTokener *MockBalanceTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "gateway unavailable",
			setupMocks: func(mockBalances *MockBalanceProvider, mockTokener *MockBalanceTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockBalances.EXPECT().Balance(gomock.Any(), testWalletAddr).Return(decimal.Zero, errors.New("rpc timeout"))
			},
			expectedStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBalances := NewMockBalanceProvider(ctrl)
			mockTokener := NewMockBalanceTokener(ctrl)
			tt.setupMocks(mockBalances, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			rec := httptest.NewRecorder()

			NewGetBalanceHandler(mockBalances, mockTokener).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp WalletBalanceResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, testWalletAddr, resp.Address)
				assert.Equal(t, tt.expectedBalance, resp.Balance)
			}
		})
	}
}
