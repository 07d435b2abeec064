package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/models"
	"github.com/seidlp/vault-gateway/internal/services"
)

const testTxHash = "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"

func authMocks(mockTokener *MockTransactionTokener) {
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{Address: testWalletAddr}, nil)
}

func TestTransactionStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionStatuser(ctrl)
	mockTokener := NewMockTransactionTokener(ctrl)

	authMocks(mockTokener)
	mockSvc.EXPECT().Status(testWalletAddr).Return(models.TransactionState{
		Status: models.StatusSuccess,
		TxHash: testTxHash,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/current", nil)
	rec := httptest.NewRecorder()

	NewTransactionStatusHandler(mockSvc, mockTokener).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TransactionStateResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, models.StatusSuccess, resp.State.Status)
	assert.Equal(t, testTxHash, resp.State.TxHash)
	// Display hash keeps the first six and last four characters.
	assert.Equal(t, "0xdead…beef", resp.TxHashDisplay)
}

func TestTransactionStatusHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionStatuser(ctrl)
	mockTokener := NewMockTransactionTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/current", nil)
	rec := httptest.NewRecorder()

	NewTransactionStatusHandler(mockSvc, mockTokener).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTransactionResetHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockTransactionStatuser, mockTokener *MockTransactionTokener)
		expectedStatusCode int
	}{
		{
			name: "reset after terminal state",
			setupMocks: func(mockSvc *MockTransactionStatuser, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockSvc.EXPECT().Reset(testWalletAddr).Return(nil)
				mockSvc.EXPECT().Status(testWalletAddr).Return(models.TransactionState{Status: models.StatusIdle})
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "reset while pending",
			setupMocks: func(mockSvc *MockTransactionStatuser, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockSvc.EXPECT().Reset(testWalletAddr).Return(services.ErrResetWhilePending)
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTransactionStatuser(ctrl)
			mockTokener := NewMockTransactionTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/api/transactions/reset", nil)
			rec := httptest.NewRecorder()

			NewTransactionResetHandler(mockSvc, mockTokener).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp TransactionStateResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, models.StatusIdle, resp.State.Status)
				assert.Empty(t, resp.State.TxHash)
			}
		})
	}
}

func TestTransactionHistoryHandler(t *testing.T) {
	records := []models.TransactionRecord{
		{IntentID: uuid.NewString(), WalletAddress: testWalletAddr, Operation: "deposit", Amount: "100", Status: models.StatusSuccess},
		{IntentID: uuid.NewString(), WalletAddress: testWalletAddr, Operation: "withdraw", Amount: "25", Status: models.StatusError},
	}

	tests := []struct {
		name               string
		setupMocks         func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener)
		expectedStatusCode int
		expectedCount      int
	}{
		{
			name: "lists wallet history",
			setupMocks: func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockJournal.EXPECT().GetByWallet(gomock.Any(), testWalletAddr).Return(records, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCount:      2,
		},
		{
			name: "journal unavailable",
			setupMocks: func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockJournal.EXPECT().GetByWallet(gomock.Any(), testWalletAddr).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockJournal := NewMockTransactionHistoryReader(ctrl)
			mockTokener := NewMockTransactionTokener(ctrl)
			tt.setupMocks(mockJournal, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			rec := httptest.NewRecorder()

			NewTransactionHistoryHandler(mockJournal, mockTokener).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp TransactionHistoryResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Len(t, resp.Transactions, tt.expectedCount)
			}
		})
	}
}

func TestTransactionDetailHandler(t *testing.T) {
	intentID := uuid.NewString()
	ownRecord := &models.TransactionRecord{
		IntentID:      intentID,
		WalletAddress: testWalletAddr,
		VaultAddress:  testVaultAddr,
		Operation:     "deposit",
		Amount:        "100",
		Status:        models.StatusSuccess,
		TxHash:        testTxHash,
	}
	foreignRecord := &models.TransactionRecord{
		IntentID:      intentID,
		WalletAddress: "0x9999999999999999999999999999999999999999",
	}

	tests := []struct {
		name               string
		setupMocks         func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener)
		expectedStatusCode int
	}{
		{
			name: "returns own record",
			setupMocks: func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockJournal.EXPECT().GetByIntentID(gomock.Any(), intentID).Return(ownRecord, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockJournal.EXPECT().GetByIntentID(gomock.Any(), intentID).Return(nil, errors.New("no rows"))
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "another wallet's record reads as not found",
			setupMocks: func(mockJournal *MockTransactionHistoryReader, mockTokener *MockTransactionTokener) {
				authMocks(mockTokener)
				mockJournal.EXPECT().GetByIntentID(gomock.Any(), intentID).Return(foreignRecord, nil)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockJournal := NewMockTransactionHistoryReader(ctrl)
			mockTokener := NewMockTransactionTokener(ctrl)
			tt.setupMocks(mockJournal, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/api/transactions/"+intentID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", intentID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			NewTransactionDetailHandler(mockJournal, mockTokener).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp models.TransactionRecord
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, intentID, resp.IntentID)
				assert.Equal(t, testTxHash, resp.TxHash)
			}
		})
	}
}
