package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string `json:"name" binding:"required,max=5"`
	Age     *int   `json:"age" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=expense income"`
	OwnerID int64  `json:"owner_id" binding:"gt=0"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&sampleRequest{Name: "too long", Type: "transfer"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at most 5 characters long", details["name"])
	assert.Equal(t, "is required", details["age"])
	assert.Equal(t, "must be one of: expense, income", details["type"])
	assert.Equal(t, "must be greater than 0", details["owner_id"])
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var target sampleRequest
	err := json.Unmarshal([]byte(`{"name":`), &target)
	require.Error(t, err)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_Fallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
