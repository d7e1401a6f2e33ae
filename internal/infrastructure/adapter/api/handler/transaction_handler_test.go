package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/eaglebank/eagle-bank/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionHandlerPost(t *testing.T) {
	t.Run("Successful deposit returns 201", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		posted := &entity.Transaction{
			ID:          100,
			AccountID:   10,
			Type:        entity.TransactionTypeDeposit,
			AmountCents: 1015,
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
		mockTransactions.EXPECT().Post(mock.Anything, uint64(1), uint64(10), "deposit", "10.15").
			Return(posted, nil).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.POST("/v1/accounts/:accountId/transactions", asUser(1), h.Post)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/10/transactions",
			strings.NewReader(`{"type":"deposit","amount":"10.15"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":100,"type":"deposit","amount":"10.15","accountId":10}`, w.Body.String())
	})

	t.Run("Insufficient funds returns 422", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		mockTransactions.EXPECT().Post(mock.Anything, uint64(1), uint64(10), "withdrawal", "100.00").
			Return(nil, errs.NewInsufficientFundsError(10, "100.00", "10.00")).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.POST("/v1/accounts/:accountId/transactions", asUser(1), h.Post)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/10/transactions",
			strings.NewReader(`{"type":"withdrawal","amount":"100.00"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4220`)
	})

	t.Run("Invalid amount returns 400", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		mockTransactions.EXPECT().Post(mock.Anything, uint64(1), uint64(10), "deposit", "-5.00").
			Return(nil, errs.ErrNegativeAmount).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.POST("/v1/accounts/:accountId/transactions", asUser(1), h.Post)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/10/transactions",
			strings.NewReader(`{"type":"deposit","amount":"-5.00"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown transaction type is rejected by binding", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.POST("/v1/accounts/:accountId/transactions", asUser(1), h.Post)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/10/transactions",
			strings.NewReader(`{"type":"transfer","amount":"5.00"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing account returns 404", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		mockTransactions.EXPECT().Post(mock.Anything, uint64(1), uint64(99), "deposit", "5.00").
			Return(nil, errs.ErrAccountNotFound).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.POST("/v1/accounts/:accountId/transactions", asUser(1), h.Post)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/99/transactions",
			strings.NewReader(`{"type":"deposit","amount":"5.00"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHandlerList(t *testing.T) {
	t.Run("Returns the account's ledger", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		entries := []*entity.Transaction{
			{ID: 1, AccountID: 10, Type: entity.TransactionTypeDeposit, AmountCents: 1000},
			{ID: 2, AccountID: 10, Type: entity.TransactionTypeWithdrawal, AmountCents: 250},
		}
		mockTransactions.EXPECT().List(mock.Anything, uint64(1), uint64(10)).Return(entries, nil).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/v1/accounts/:accountId/transactions", asUser(1), h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/10/transactions", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`[{"id":1,"type":"deposit","amount":"10.00","accountId":10},{"id":2,"type":"withdrawal","amount":"2.50","accountId":10}]`,
			w.Body.String())
	})

	t.Run("Gate failure propagates as 403", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		mockTransactions.EXPECT().List(mock.Anything, uint64(1), uint64(10)).
			Return(nil, errs.ErrForbidden).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/v1/accounts/:accountId/transactions", asUser(1), h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/10/transactions", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestTransactionHandlerGet(t *testing.T) {
	t.Run("Returns one ledger entry", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		entry := &entity.Transaction{ID: 100, AccountID: 10, Type: entity.TransactionTypeDeposit, AmountCents: 1015}
		mockTransactions.EXPECT().Get(mock.Anything, uint64(1), uint64(10), uint64(100)).
			Return(entry, nil).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/v1/accounts/:accountId/transactions/:transactionId", asUser(1), h.Get)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/10/transactions/100", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":100,"type":"deposit","amount":"10.15","accountId":10}`, w.Body.String())
	})

	t.Run("Entry under a different account returns 404", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)
		mockTransactions.EXPECT().Get(mock.Anything, uint64(1), uint64(10), uint64(555)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/v1/accounts/:accountId/transactions/:transactionId", asUser(1), h.Get)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/10/transactions/555", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric transaction id returns 400", func(t *testing.T) {
		mockTransactions := usecasemocks.NewMockTransactionUsecase(t)

		h := NewTransactionHandler(mockTransactions, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/v1/accounts/:accountId/transactions/:transactionId", asUser(1), h.Get)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/10/transactions/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
