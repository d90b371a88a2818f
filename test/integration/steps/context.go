// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/auth"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/category"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/dashboard"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	"github.com/mohamedahmede/expense-tracker-lite/internal/infra/server/router"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/adapters"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/controller"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/middleware"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence/blobstore"
	"github.com/mohamedahmede/expense-tracker-lite/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	demoEmail     = "demo@expense-tracker.dev"
	demoName      = "Shihab Rahman"
	demoPassword  = "expense-tracker"
)

// TestContext holds the test state for each scenario. Every scenario gets
// its own in-process Redis, rate provider and API server, so scenarios
// cannot observe each other's data.
type TestContext struct {
	server       *httptest.Server
	redis        *mock.Redis
	rates        *mock.RatesAPI
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	accessToken    string
}

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

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables login rate limiting across scenarios.
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			redis:          mock.NewRedis(),
			rates:          mock.NewRatesAPI(),
		}
		tc.server = httptest.NewServer(buildEngine(tc))
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.rates != nil {
				tc.rates.Close()
			}
			if tc.redis != nil {
				tc.redis.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// buildEngine wires the full application against the scenario's mocks.
func buildEngine(tc *TestContext) *gin.Engine {
	store := blobstore.NewRedisStore(tc.redis.Client)
	expenseRepo := persistence.NewExpenseRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	converter := adapters.NewExchangeRateService(tc.rates.URL(), "USD", 2*time.Second, 0)

	demoPasswordHash, err := passwordService.HashPassword(demoPassword)
	if err != nil {
		panic(err)
	}

	loginUseCase := auth.NewLoginUserUseCase(demoEmail, demoName, demoPasswordHash, passwordService, tokenService)

	r := router.NewRouter(
		controller.NewHealthController(store),
		controller.NewAuthController(loginUseCase),
		controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewGetCategoryUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
		),
		controller.NewExpenseController(
			expense.NewAddExpenseUseCase(expenseRepo, converter),
			expense.NewListExpensesUseCase(expenseRepo, categoryRepo),
			expense.NewUpdateExpenseUseCase(expenseRepo, converter),
			expense.NewDeleteExpenseUseCase(expenseRepo),
		),
		controller.NewDashboardController(
			dashboard.NewGetSummaryUseCase(expenseRepo, decimal.NewFromFloat(10840)),
		),
		middleware.NewRateLimiter(5, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)
	return r.Setup("test")
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^the exchange rate provider quotes "([^"]*)" at (\d+(?:\.\d+)?)$`, theProviderQuotes)
	ctx.Step(`^the exchange rate provider is down$`, theProviderIsDown)
	ctx.Step(`^I update the last created expense with body:$`, iUpdateTheLastCreatedExpense)
	ctx.Step(`^I delete the last created expense$`, iDeleteTheLastCreatedExpense)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// iAmAuthenticated logs the demo account in and carries the returned token
// on subsequent requests.
func iAmAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{
		"email":    demoEmail,
		"password": demoPassword,
	})
	resp, err := http.Post(tc.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}

	tc.accessToken = parsed.AccessToken
	tc.requestHeaders["Authorization"] = "Bearer " + parsed.AccessToken
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return sendRequest(ctx, method, endpoint, strings.NewReader(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body *strings.Reader) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var reader *strings.Reader
	if body == nil {
		reader = strings.NewReader("")
	} else {
		reader = body
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tc.response = resp
	tc.responseBody = nil
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return err
	}
	tc.responseBody = buf.Bytes()
	return nil
}

// iUpdateTheLastCreatedExpense patches the expense whose id came back in
// the previous response.
func iUpdateTheLastCreatedExpense(ctx context.Context, body *godog.DocString) error {
	id, err := lookupField(ctx, "id")
	if err != nil {
		return fmt.Errorf("no expense id in the previous response: %w", err)
	}
	return sendRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/expenses/%v", id), strings.NewReader(body.Content))
}

// iDeleteTheLastCreatedExpense deletes the expense whose id came back in
// the previous response.
func iDeleteTheLastCreatedExpense(ctx context.Context) error {
	id, err := lookupField(ctx, "id")
	if err != nil {
		return fmt.Errorf("no expense id in the previous response: %w", err)
	}
	return sendRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/expenses/%v", id), nil)
}

func theProviderQuotes(ctx context.Context, currency string, rate float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.rates.SetRate(currency, rate)
	return nil
}

func theProviderIsDown(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.rates.SetDown()
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, want string) error {
	value, err := lookupField(ctx, path)
	if err != nil {
		return err
	}
	if got := fmt.Sprintf("%v", value); got != want {
		return fmt.Errorf("expected field %q to be %q, got %q", path, want, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	_, err := lookupField(ctx, path)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, path string, count int) error {
	value, err := lookupField(ctx, path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

// lookupField resolves a dotted path like "pagination.total" or
// "expenses.0.category.name" in the JSON response.
func lookupField(ctx context.Context, path string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil || tc.responseBody == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	current := parsed
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
		}
	}
	return current, nil
}
