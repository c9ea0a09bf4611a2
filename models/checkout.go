package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checkout is a submitted order record. Email scopes who may list it and
// status is the only field mutable through the API. Whatever else the client
// sent at creation time is kept verbatim in Extra and stored inline, so the
// document round-trips without losing caller-defined fields.
type Checkout struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty"`
	Email  string                 `bson:"email"`
	Status string                 `bson:"status"`
	Extra  map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens Extra back into the top-level object so responses
// look exactly like the stored document.
func (c Checkout) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Extra)+3)
	for k, v := range c.Extra {
		out[k] = v
	}
	if !c.ID.IsZero() {
		out["_id"] = c.ID.Hex()
	}
	out["email"] = c.Email
	out["status"] = c.Status
	return json.Marshal(out)
}
