package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

var tablesByName = map[string]string{
	"people":       "people",
	"categories":   "categories",
	"transactions": "transactions",
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response error code should be "([^"]*)"$`, theResponseErrorCodeShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHave)
	ctx.Then(`^the database should contain (\d+) (people|categories|transactions)$`, theDatabaseShouldContain)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return errors.New("no response received")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseErrorCodeShouldBe(ctx context.Context, code string) error {
	return theResponseFieldShouldBe(ctx, "code", code)
}

func theResponseShouldContain(ctx context.Context, field string) error {
	_, err := GetTestContext(ctx).responseField(field)
	return err
}

func theResponseListShouldHave(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in '%s', got %d", count, field, len(items))
	}
	return nil
}

func theDatabaseShouldContain(ctx context.Context, quantity int, name string) error {
	tc := GetTestContext(ctx)
	count, err := tc.db.Count(tablesByName[name])
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d rows in '%s', got %d", quantity, name, count)
	}
	return nil
}

// responseField resolves a dotted path such as "people.0.balance" against the
// decoded JSON body.
func (tc *TestContext) responseField(path string) (any, error) {
	if tc.response == nil {
		return nil, errors.New("no response received")
	}

	var body any
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return nil, fmt.Errorf("response is not JSON: %s", tc.responseBody)
	}

	current := body
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, exists := node[part]
			if !exists {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid index '%s' in '%s': %s", part, path, tc.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
		}
	}
	return current, nil
}
