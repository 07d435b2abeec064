package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/models"
	"github.com/seidlp/vault-gateway/internal/services"
)

func TestWithdrawHandler(t *testing.T) {
	validToken := "valid-token"
	intent := &models.DepositIntent{
		ID:            uuid.New(),
		VaultAddress:  testVaultAddr,
		Amount:        "25.5",
		WalletAddress: testWalletAddr,
		Operation:     models.OperationWithdraw,
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:        "successful withdrawal",
			requestBody: WithdrawRequest{Shares: "25.5"},
			setupMocks: func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), testWalletAddr, testVaultAddr, "25.5", models.OperationWithdraw).Return(intent, nil)
				mockSvc.EXPECT().Status(testWalletAddr).Return(models.TransactionState{Status: models.StatusPending})
			},
			expectedStatusCode: http.StatusAccepted,
		},
		{
			name:        "unauthorized",
			requestBody: WithdrawRequest{Shares: "25.5"},
			setupMocks: func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "Unauthorized",
		},
		{
			name:        "more shares than owned",
			requestBody: WithdrawRequest{Shares: "9000"},
			setupMocks: func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), testWalletAddr, testVaultAddr, "9000", models.OperationWithdraw).
					Return(nil, services.ErrInsufficientBalance)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Insufficient balance",
		},
		{
			name:        "shares locked",
			requestBody: WithdrawRequest{Shares: "25.5"},
			setupMocks: func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), testWalletAddr, testVaultAddr, "25.5", models.OperationWithdraw).
					Return(nil, services.ErrSharesLocked)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Shares are still in the lock period",
		},
		{
			name:        "duplicate submission",
			requestBody: WithdrawRequest{Shares: "25.5"},
			setupMocks: func(mockSvc *MockWithdrawSubmitter, mockTokener *MockWithdrawTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{Address: testWalletAddr}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), testWalletAddr, testVaultAddr, "25.5", models.OperationWithdraw).
					Return(nil, services.ErrSubmissionPending)
			},
			expectedStatusCode: http.StatusConflict,
			expectedError:      "A transaction is already pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockWithdrawSubmitter(ctrl)
			mockTokener := NewMockWithdrawTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/vaults/"+testVaultAddr+"/withdraw", bytes.NewReader(body))
			req = withVaultAddress(req, testVaultAddr)
			rec := httptest.NewRecorder()

			NewWithdrawHandler(mockSvc, mockTokener).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedError != "" {
				var resp SubmitErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp SubmitResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, intent.ID.String(), resp.IntentID)
		})
	}
}
