package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/server/service"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, code, name string, accType account.Type, nature account.Nature, description, parentID string) (*account.Account, error) {
	args := m.Called(ctx, code, name, accType, nature, description, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	return r
}

func decodeData(t *testing.T, raw interface{}, out interface{}) {
	t.Helper()
	dataBytes, err := json.Marshal(raw)
	require.NoError(t, err, "Failed to marshal response data field")
	require.NoError(t, json.Unmarshal(dataBytes, out), "Failed to unmarshal response data field")
}

func TestAccountHandler_Create(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		now := time.Now()
		expectedAccount := &account.Account{
			ID:          uuid.New().String(),
			Code:        "1.1.9.01",
			Name:        "Aplicações Financeiras",
			Type:        account.TypeAsset,
			Nature:      account.NatureDebit,
			Description: "Investimentos de curto prazo",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		mockService.On("CreateAccount", mock.Anything, "1.1.9.01", "Aplicações Financeiras", account.TypeAsset, account.NatureDebit, "Investimentos de curto prazo", "").
			Return(expectedAccount, nil)

		router := setupTestRouter()
		router.POST("/plano-de-contas", handler.Create)

		reqBody := CreateAccountRequest{
			Code:        "1.1.9.01",
			Name:        "Aplicações Financeiras",
			Type:        "ATIVO",
			Nature:      "DEVEDORA",
			Description: "Investimentos de curto prazo",
		}
		jsonBody, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/plano-de-contas", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))
		require.NotNil(t, topLevelResponse.Data)

		var responseBody AccountResponse
		decodeData(t, topLevelResponse.Data, &responseBody)

		assert.Equal(t, expectedAccount.ID, responseBody.ID)
		assert.Equal(t, expectedAccount.Code, responseBody.Code)
		assert.Equal(t, "ATIVO", responseBody.Type)
		assert.Equal(t, "DEVEDORA", responseBody.Nature)
		assert.True(t, responseBody.Active)

		mockService.AssertExpectations(t)
	})

	t.Run("InvalidRequestBody", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		router := setupTestRouter()
		router.POST("/plano-de-contas", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/plano-de-contas", bytes.NewBufferString(`{"invalid`)) // Malformed JSON
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t) // Ensure no service methods were called
	})

	t.Run("UnknownAccountType", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		router := setupTestRouter()
		router.POST("/plano-de-contas", handler.Create)

		reqBody := CreateAccountRequest{
			Code:   "1.1.9.01",
			Name:   "Conta Estranha",
			Type:   "IMOBILIZADO", // not one of the five classifications
			Nature: "DEVEDORA",
		}
		jsonBody, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/plano-de-contas", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("CreateAccount", mock.Anything, "1.1.1.01", "Caixa Dois", account.TypeAsset, account.NatureDebit, "", "").
			Return(nil, account.ErrDuplicateCode{Code: "1.1.1.01"})

		router := setupTestRouter()
		router.POST("/plano-de-contas", handler.Create)

		reqBody := CreateAccountRequest{
			Code:   "1.1.1.01",
			Name:   "Caixa Dois",
			Type:   "ATIVO",
			Nature: "DEVEDORA",
		}
		jsonBody, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/plano-de-contas", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var response Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		require.NotNil(t, response.Error, "Error field in response should not be nil")
		assert.Equal(t, "CONFLICT", response.Error.Code)
		assert.Contains(t, response.Error.Message, "1.1.1.01")
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("CreateAccount", mock.Anything, "1.1.9.02", "Conta Nova", account.TypeAsset, account.NatureDebit, "", "").
			Return(nil, errors.New("service unavailable"))

		router := setupTestRouter()
		router.POST("/plano-de-contas", handler.Create)

		reqBody := CreateAccountRequest{
			Code:   "1.1.9.02",
			Name:   "Conta Nova",
			Type:   "ATIVO",
			Nature: "DEVEDORA",
		}
		jsonBody, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/plano-de-contas", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAccountHandler_GetByID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		now := time.Now()
		expectedAccount := &account.Account{
			ID:        account.CashAccountID,
			Code:      "1.1.1.01",
			Name:      "Caixa",
			Type:      account.TypeAsset,
			Nature:    account.NatureDebit,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		mockService.On("GetAccountByID", mock.Anything, account.CashAccountID).Return(expectedAccount, nil)

		router := setupTestRouter()
		router.GET("/plano-de-contas/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/plano-de-contas/"+account.CashAccountID, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))
		require.NotNil(t, topLevelResponse.Data)

		var responseBody AccountResponse
		decodeData(t, topLevelResponse.Data, &responseBody)

		assert.Equal(t, expectedAccount.ID, responseBody.ID)
		assert.Equal(t, "Caixa", responseBody.Name)

		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("GetAccountByID", mock.Anything, "missing").Return(nil, nil)

		router := setupTestRouter()
		router.GET("/plano-de-contas/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/plano-de-contas/missing", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("GetAccountByID", mock.Anything, "1").Return(nil, errors.New("database connection lost"))

		router := setupTestRouter()
		router.GET("/plano-de-contas/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/plano-de-contas/1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAccountHandler_List(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("ListAccounts", mock.Anything).Return(account.DefaultChart(), nil)

		router := setupTestRouter()
		router.GET("/plano-de-contas", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/plano-de-contas", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))

		var responseBody []AccountResponse
		decodeData(t, topLevelResponse.Data, &responseBody)
		require.Len(t, responseBody, 7)
		assert.Equal(t, "Caixa", responseBody[0].Name)

		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAccountHandler(logger, mockService)

		mockService.On("ListAccounts", mock.Anything).Return(nil, errors.New("store offline"))

		router := setupTestRouter()
		router.GET("/plano-de-contas", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/plano-de-contas", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

var _ service.AccountService = (*MockAccountService)(nil)
