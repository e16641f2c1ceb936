package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

type nullSink struct{}

func (nullSink) Apply(context.Context, outbox.Job) error { return nil }

// setupAPI wires fresh shared dependencies and a router matching the
// production route layout for the endpoints under test.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	Store = store.New()
	Queue = outbox.New(nullSink{})
	Queue.Start(context.Background())
	t.Cleanup(Queue.Close)
	JWTSecret = []byte("test-secret")
	AdminEmail = "admin@koperasi.test"
	AdminPassword = "admin-password"

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", Register)
		r.Post("/login", Login)

		r.Group(func(r chi.Router) {
			r.Use(Auth)

			r.Get("/me", Me)
			r.Get("/transactions", ListTransactions)
			r.Post("/transactions", CreateTransaction)
			r.Post("/shop/purchase", Purchase)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)

				r.Put("/transactions/{id}/status", UpdateTransactionStatus)
				r.Get("/journal", ListJournal)
				r.Get("/export", ExportSnapshot)
				r.Post("/import", ImportSnapshot)
			})
		})
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Empty(t, envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := issueToken(models.Member{ID: "ADMIN", Name: "Administrator", Role: models.RoleAdmin})
	require.NoError(t, err)
	return token
}

func memberToken(t *testing.T, m models.Member) string {
	t.Helper()
	token, err := issueToken(m)
	require.NoError(t, err)
	return token
}

func seedMember(t *testing.T, email, password string) models.Member {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	m, err := Store.AddMember(models.Member{
		Name: "Anggota Uji", Email: email, PasswordHash: string(hash),
		Role: models.RoleUser, Status: models.MemberActive,
	})
	require.NoError(t, err)
	return m
}

func TestRegister(t *testing.T) {
	api := setupAPI(t)

	payload := map[string]string{
		"name": "Siti", "email": "siti@example.com", "password": "rahasia1",
	}
	rec := doRequest(t, api, http.MethodPost, "/api/v1/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var member map[string]any
	decodeData(t, rec, &member)
	assert.Equal(t, "USR-001", member["id"])
	assert.NotContains(t, rec.Body.String(), "rahasia1")
	assert.NotContains(t, member, "passwordHash")

	rec = doRequest(t, api, http.MethodPost, "/api/v1/register", "", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	api := setupAPI(t)
	seedMember(t, "siti@example.com", "rahasia1")

	t.Run("member with valid credentials", func(t *testing.T) {
		rec := doRequest(t, api, http.MethodPost, "/api/v1/login", "",
			map[string]string{"email": "siti@example.com", "password": "rahasia1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Token  string        `json:"token"`
			Member models.Member `json:"member"`
		}
		decodeData(t, rec, &result)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, models.RoleUser, result.Member.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doRequest(t, api, http.MethodPost, "/api/v1/login", "",
			map[string]string{"email": "siti@example.com", "password": "salah"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := doRequest(t, api, http.MethodPost, "/api/v1/login", "",
			map[string]string{"email": "nobody@example.com", "password": "rahasia1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("built-in administrator", func(t *testing.T) {
		rec := doRequest(t, api, http.MethodPost, "/api/v1/login", "",
			map[string]string{"email": AdminEmail, "password": AdminPassword})
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Member models.Member `json:"member"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, models.RoleAdmin, result.Member.Role)
	})
}

func TestLogin_InactiveMember(t *testing.T) {
	api := setupAPI(t)
	m := seedMember(t, "siti@example.com", "rahasia1")
	m.Status = models.MemberInactive
	require.NoError(t, Store.UpdateMember(m))

	rec := doRequest(t, api, http.MethodPost, "/api/v1/login", "",
		map[string]string{"email": "siti@example.com", "password": "rahasia1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_RejectsMissingAndBogusTokens(t *testing.T) {
	api := setupAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/transactions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, api, http.MethodGet, "/api/v1/transactions", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransaction_MemberCannotSelfApprove(t *testing.T) {
	api := setupAPI(t)
	m := seedMember(t, "siti@example.com", "rahasia1")
	token := memberToken(t, m)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"memberId": "USR-999",
		"type":     models.TypeDeposit,
		"amount":   50000,
		"status":   models.StatusApproved,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var trx models.Transaction
	decodeData(t, rec, &trx)
	assert.Equal(t, m.ID, trx.MemberID, "member id is taken from the token, not the payload")
	assert.Equal(t, models.StatusPending, trx.Status)
	assert.False(t, Store.HasJournalForTransaction(trx.ID), "nothing hits the books before approval")
}

func TestCreateTransaction_AdminDirectApprovalPostsJournal(t *testing.T) {
	api := setupAPI(t)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/transactions", adminToken(t), map[string]any{
		"memberId":    "USR-001",
		"type":        models.TypeDeposit,
		"amount":      50000,
		"status":      models.StatusApproved,
		"description": "Simpanan Pokok",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var trx models.Transaction
	decodeData(t, rec, &trx)
	assert.Equal(t, models.StatusApproved, trx.Status)
	assert.True(t, Store.HasJournalForTransaction(trx.ID))
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	api := setupAPI(t)
	token := memberToken(t, seedMember(t, "siti@example.com", "rahasia1"))

	rec := doRequest(t, api, http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": models.TypeDeposit, "amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, api, http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "TRANSFER", "amount": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTransactionStatus_ApprovalPostsJournalOnce(t *testing.T) {
	api := setupAPI(t)
	trx := Store.AddTransaction(models.Transaction{
		ID: "TRX-9", MemberID: "USR-001", Date: "2024-05-02",
		Type: models.TypePurchase, Amount: 100000, Profit: 30000,
		Status: models.StatusPending, Description: "Pembelian Beras x2",
	})
	token := adminToken(t)

	rec := doRequest(t, api, http.MethodPut, "/api/v1/transactions/TRX-9/status", token,
		map[string]string{"status": models.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Transaction
	decodeData(t, rec, &updated)
	assert.Equal(t, models.StatusApproved, updated.Status)

	journal := Store.Journal()
	require.Len(t, journal, 3, "purchase posts revenue, cost of goods, and operational expense")

	// A terminal transaction cannot be approved or rejected again.
	rec = doRequest(t, api, http.MethodPut, "/api/v1/transactions/TRX-9/status", token,
		map[string]string{"status": models.StatusApproved})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, Store.Journal(), 3, "repeated approval attempt posts nothing")

	rec = doRequest(t, api, http.MethodPut, fmt.Sprintf("/api/v1/transactions/%s/status", trx.ID), token,
		map[string]string{"status": models.StatusRejected})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateTransactionStatus_MemberForbidden(t *testing.T) {
	api := setupAPI(t)
	Store.AddTransaction(models.Transaction{ID: "TRX-1", Status: models.StatusPending})
	token := memberToken(t, seedMember(t, "siti@example.com", "rahasia1"))

	rec := doRequest(t, api, http.MethodPut, "/api/v1/transactions/TRX-1/status", token,
		map[string]string{"status": models.StatusApproved})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListTransactions_ScopedByRole(t *testing.T) {
	api := setupAPI(t)
	m := seedMember(t, "siti@example.com", "rahasia1")
	Store.AddTransaction(models.Transaction{ID: "TRX-1", MemberID: m.ID})
	Store.AddTransaction(models.Transaction{ID: "TRX-2", MemberID: "USR-999"})

	var txns []models.Transaction
	rec := doRequest(t, api, http.MethodGet, "/api/v1/transactions", memberToken(t, m), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &txns)
	require.Len(t, txns, 1)
	assert.Equal(t, "TRX-1", txns[0].ID)

	rec = doRequest(t, api, http.MethodGet, "/api/v1/transactions", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &txns)
	assert.Len(t, txns, 2)
}

func TestPurchase(t *testing.T) {
	api := setupAPI(t)
	m := seedMember(t, "siti@example.com", "rahasia1")
	Store.AddProduct(models.Product{ID: "PRD-1", Name: "Beras", Price: 50000, BuyPrice: 35000, Stock: 10})
	token := memberToken(t, m)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/shop/purchase", token,
		map[string]any{"productId": "PRD-1", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	var trx models.Transaction
	decodeData(t, rec, &trx)
	assert.Equal(t, m.ID, trx.MemberID)
	assert.Equal(t, models.TypePurchase, trx.Type)
	assert.Equal(t, models.StatusPending, trx.Status)
	assert.Equal(t, int64(100000), trx.Amount)
	assert.Equal(t, int64(30000), trx.Profit)
	assert.Equal(t, "Pembelian Beras x2", trx.Description)

	p, err := Store.Product("PRD-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.Stock, "stock reserved at submission")

	rec = doRequest(t, api, http.MethodPost, "/api/v1/shop/purchase", token,
		map[string]any{"productId": "PRD-1", "quantity": 99})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, api, http.MethodPost, "/api/v1/shop/purchase", token,
		map[string]any{"productId": "PRD-1", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportSnapshot_RequiresConfirmation(t *testing.T) {
	api := setupAPI(t)
	token := adminToken(t)
	Store.AddProduct(models.Product{ID: "PRD-1", Name: "Beras"})

	members := []models.Member{{ID: "USR-001", Name: "Siti", Email: "siti@example.com"}}
	snap := models.Snapshot{Members: &members}

	rec := doRequest(t, api, http.MethodPost, "/api/v1/import", token, snap)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, Store.Members(), "unconfirmed import changes nothing")

	rec = doRequest(t, api, http.MethodPost, "/api/v1/import?confirm=true", token, snap)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, Store.Members(), 1)
	assert.Len(t, Store.Products(), 1, "sets absent from the document stay untouched")
}

func TestExportSnapshot(t *testing.T) {
	api := setupAPI(t)
	seedMember(t, "siti@example.com", "rahasia1")
	Store.AddTransaction(models.Transaction{ID: "TRX-1", MemberID: "USR-001"})

	rec := doRequest(t, api, http.MethodGet, "/api/v1/export", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.Snapshot
	decodeData(t, rec, &snap)
	require.NotNil(t, snap.Members)
	require.NotNil(t, snap.Transactions)
	assert.Len(t, *snap.Members, 1)
	assert.Len(t, *snap.Transactions, 1)
}
