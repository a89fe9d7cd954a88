package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	account "grain-market/internal/accountService"
	auction "grain-market/internal/auctionService"
	"grain-market/internal/auth"
	catalog "grain-market/internal/catalogService"
	model "grain-market/internal/models"
	"grain-market/internal/notify"
	"grain-market/internal/repository"
	"grain-market/internal/server"
	"grain-market/utils"
)

const (
	adminEmail    = "admin@grain.ua"
	adminPassword = "admin-secret"
)

// TestEnv bundles the router with the backing store so tests can seed
// records directly and drive the API over HTTP.
type TestEnv struct {
	Router *gin.Engine
	Store  *repository.MemoryStore
	Tokens *auth.TokenManager
}

// SetupTestEnv initializes the full API against an in-memory store with
// a seeded admin account.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	tokens := auth.NewTokenManager("integration-test-secret", time.Hour)
	mailer := notify.NewLogMailer()

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	require.NoError(t, store.InsertUser(context.Background(), model.User{
		ID:                  utils.GenerateID(),
		Email:               adminEmail,
		PasswordHash:        hash,
		FullName:            "Administrator",
		Role:                model.RoleAdmin,
		AccreditationStatus: model.AccreditationApproved,
		CreatedAt:           time.Now().UTC(),
	}))

	accountService := account.NewAccountService(store, tokens, mailer)
	auctionService := auction.NewAuctionService(store, store, store, mailer)
	catalogService := catalog.NewCatalogService(store)
	authMW := server.NewAuthMiddleware(tokens)

	router := server.SetupRouter(accountService, auctionService, catalogService, authMW)
	return &TestEnv{Router: router, Store: store, Tokens: tokens}
}

// ExecuteRequest executes an HTTP request with an optional bearer token
// and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseData unwraps the data field of the standard response envelope
// into out.
func ParseData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// Login authenticates over the API and returns the bearer token
func Login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	ParseData(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// RegisterBuyer registers a buyer over the API and returns the user id
func RegisterBuyer(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":        email,
		"password":     password,
		"full_name":    "Taras Melnyk",
		"company_name": "AgroTrade LLC",
		"edrpou":       "12345678",
		"phone":        "+380501234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	ParseData(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

// ApproveBuyer flips a buyer's accreditation through the admin endpoint
func ApproveBuyer(t *testing.T, router *gin.Engine, adminToken, userID string) {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/auth/update-accreditation", adminToken, map[string]any{
		"user_id": userID,
		"status":  "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

// SeedAuction inserts an auction record directly into the store
func SeedAuction(t *testing.T, store *repository.MemoryStore, a model.Auction) {
	t.Helper()
	require.NoError(t, store.InsertAuction(context.Background(), a))
}
