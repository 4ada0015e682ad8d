// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/household-expenses/backend/config"
	"github.com/household-expenses/backend/internal/infra/dependency"
	"github.com/household-expenses/backend/internal/integration/persistence/model"
	"github.com/household-expenses/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	// loginAttemptsPerWindow is deliberately small so a scenario can exhaust it.
	loginAttemptsPerWindow = 3
)

// suite holds resources shared by every scenario.
var suite struct {
	server *httptest.Server
	db     *mock.Db
	redis  *redis.Client
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	client         *http.Client
	baseURL        string
	db             *mock.Db
	response       *http.Response
	responseBody   []byte
	requestHeaders map[string]string
	accessToken    string
	// ids maps the alias used in feature files to a created resource id.
	ids map[string]int64
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite starts one API server over an in-memory database and
// an in-process Redis before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		suite.db = mock.NewDb(model.AllModels())
		suite.redis = mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "bdd"
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.Expiry = time.Hour
		cfg.Auth.Users = []string{"usuario1:senha123", "admin:admin123"}
		cfg.RateLimit.MaxAttempts = loginAttemptsPerWindow
		cfg.RateLimit.Window = time.Minute
		cfg.Currency.Default = "BRL"

		injector, err := dependency.NewInjector(cfg, suite.db.DbConn, suite.redis)
		if err != nil {
			panic(fmt.Sprintf("failed to wire dependencies: %v", err))
		}
		suite.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	ctx.AfterSuite(func() {
		if suite.server != nil {
			suite.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := suite.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(suite.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			client:         &http.Client{Timeout: 10 * time.Second},
			baseURL:        suite.server.URL,
			db:             suite.db,
			requestHeaders: make(map[string]string),
			ids:            make(map[string]int64),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerDomainSteps(ctx)
	registerResponseSteps(ctx)
}
