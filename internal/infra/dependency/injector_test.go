package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-expenses/backend/config"
	"github.com/household-expenses/backend/internal/integration/persistence/model"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		JWT:       config.JWTConfig{Secret: "test-secret", Issuer: "HouseholdExpensesAPI", Audience: "HouseholdExpensesAPI", Expiry: time.Hour},
		Auth:      config.AuthConfig{Users: []string{"ana:secret"}},
		RateLimit: config.RateLimitConfig{MaxAttempts: 5, Window: time.Minute},
		Currency:  config.CurrencyConfig{Default: "BRL"},
	}

	injector, err := NewInjector(cfg, db, nil)
	require.NoError(t, err)
	return injector.Router.Setup(cfg.Server.Environment)
}

func call(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestInjector_RejectsMalformedCredentials(t *testing.T) {
	_, err := NewInjector(&config.Config{Auth: config.AuthConfig{Users: []string{"no-separator"}}}, nil, nil)
	assert.Error(t, err)
}

func TestInjector_Routes(t *testing.T) {
	engine := newTestEngine(t)

	w := call(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, engine, http.MethodGet, "/api/v1/people", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "ana", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = call(t, engine, http.MethodPost, "/api/v1/people", login.Token, map[string]any{"name": "Ana", "age": 30})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = call(t, engine, http.MethodPost, "/api/v1/categories", login.Token, map[string]any{"description": "Salary", "purpose": "income"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = call(t, engine, http.MethodPost, "/api/v1/transactions", login.Token, map[string]any{
		"amount": "4500.00", "description": "Pay", "type": "income", "category_id": cat.ID, "person_id": created.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, engine, http.MethodGet, "/api/v1/people/summary/totals", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Totals struct {
			TotalIncome string `json:"total_income"`
			Balance     string `json:"balance"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "4500.00", summary.Totals.TotalIncome)
	assert.Equal(t, "4500.00", summary.Totals.Balance)
}
