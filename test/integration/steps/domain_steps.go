package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^a person "([^"]*)" aged (\d+) exists$`, aPersonAgedExists)
	ctx.Given(`^a category "([^"]*)" for "([^"]*)" exists$`, aCategoryForExists)
	ctx.Given(`^the category "([^"]*)" is deactivated$`, theCategoryIsDeactivated)
	ctx.Given(`^"([^"]*)" has an? "([^"]*)" of "([^"]*)" in "([^"]*)"$`, personHasTransaction)
}

func aPersonAgedExists(ctx context.Context, name string, age int) error {
	tc := GetTestContext(ctx)
	return tc.createAndRemember(name, "/api/v1/people", map[string]any{
		"name": name,
		"age":  age,
	})
}

func aCategoryForExists(ctx context.Context, description, purpose string) error {
	tc := GetTestContext(ctx)
	return tc.createAndRemember(description, "/api/v1/categories", map[string]any{
		"description": description,
		"purpose":     purpose,
	})
}

func theCategoryIsDeactivated(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)
	id, ok := tc.ids[description]
	if !ok {
		return fmt.Errorf("unknown category '%s'", description)
	}
	path := fmt.Sprintf("/api/v1/categories/%d/deactivate", id)
	if err := tc.executeRequest(http.MethodPost, path, nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("deactivate returned %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

// personHasTransaction records a transaction and remembers its id as
// "last_transaction".
func personHasTransaction(ctx context.Context, name, kind, amount, category string) error {
	tc := GetTestContext(ctx)
	personID, ok := tc.ids[name]
	if !ok {
		return fmt.Errorf("unknown person '%s'", name)
	}
	categoryID, ok := tc.ids[category]
	if !ok {
		return fmt.Errorf("unknown category '%s'", category)
	}
	return tc.createAndRemember("last_transaction", "/api/v1/transactions", map[string]any{
		"amount":      json.Number(amount),
		"description": fmt.Sprintf("%s %s", kind, category),
		"type":        kind,
		"category_id": categoryID,
		"person_id":   personID,
	})
}

func (tc *TestContext) createAndRemember(alias, path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := tc.executeRequest(http.MethodPost, path, body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s returned %d: %s", path, tc.response.StatusCode, tc.responseBody)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to decode created resource: %w", err)
	}
	tc.ids[alias] = created.ID
	return nil
}
