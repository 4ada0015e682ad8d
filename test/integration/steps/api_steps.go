package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/cucumber/godog"
)

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAs)
	ctx.Given(`^I am not logged in$`, iAmNotLoggedIn)
	ctx.Given(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeader)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Then(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseField)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	resp, err := tc.client.Get(tc.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func iAmLoggedInAs(ctx context.Context, username, password string) error {
	tc := GetTestContext(ctx)
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return err
	}
	if err := tc.executeRequest(http.MethodPost, "/api/v1/auth/login", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(tc.responseBody, &login); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if login.Token == "" {
		return errors.New("login response carries no token")
	}
	tc.accessToken = login.Token
	return nil
}

func iAmNotLoggedIn(ctx context.Context) error {
	GetTestContext(ctx).accessToken = ""
	return nil
}

func iSetHeader(ctx context.Context, name, value string) error {
	tc := GetTestContext(ctx)
	tc.requestHeaders[name] = tc.replacePlaceholders(value)
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.executeRequest(method, tc.replacePlaceholders(path), nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(tc.replacePlaceholders(body.Content))
	}
	return tc.executeRequest(method, tc.replacePlaceholders(path), payload)
}

func iSaveTheResponseField(ctx context.Context, field, alias string) error {
	tc := GetTestContext(ctx)
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	number, ok := value.(float64)
	if !ok {
		return fmt.Errorf("field '%s' is not numeric: %v", field, value)
	}
	tc.ids[alias] = int64(number)
	return nil
}

// replacePlaceholders substitutes {{alias}} with a saved id and
// {{access_token}} with the current token.
func (tc *TestContext) replacePlaceholders(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if name == "access_token" {
			return tc.accessToken
		}
		if id, ok := tc.ids[name]; ok {
			return strconv.FormatInt(id, 10)
		}
		return match
	})
}

func (tc *TestContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for name, value := range tc.requestHeaders {
		req.Header.Set(name, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	tc.response = resp
	return nil
}
