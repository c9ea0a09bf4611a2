package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCheckoutMarshalFlattensExtraFields(t *testing.T) {
	id := primitive.NewObjectID()
	ck := Checkout{
		ID:     id,
		Email:  "user@example.com",
		Status: "pending",
		Extra: map[string]interface{}{
			"service": "Engine Oil Change",
			"price":   20.0,
			"date":    "2026-09-01",
		},
	}

	data, err := json.Marshal(ck)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, "user@example.com", out["email"])
	assert.Equal(t, "pending", out["status"])
	assert.Equal(t, "Engine Oil Change", out["service"])
	assert.Equal(t, 20.0, out["price"])
	assert.Equal(t, "2026-09-01", out["date"])
}

func TestCheckoutMarshalUnpersistedRecord(t *testing.T) {
	ck := Checkout{Email: "user@example.com"}

	data, err := json.Marshal(ck)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	// No storage id yet, so none is rendered; status always appears
	_, hasID := out["_id"]
	assert.False(t, hasID)
	assert.Equal(t, "", out["status"])
}
