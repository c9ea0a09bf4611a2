package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a catalog entry describing an offering and its price.
// Records are seeded out-of-band and exposed read-only by this API.
type Service struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Price       float64            `json:"price" bson:"price"`
	Img         string             `json:"img,omitempty" bson:"img,omitempty"`
	ServiceID   string             `json:"service_id,omitempty" bson:"service_id,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Facility    []Facility         `json:"facility,omitempty" bson:"facility,omitempty"`
}

// Facility is a seed-data sub-document on Service; carried through untouched.
type Facility struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Details string `json:"details,omitempty" bson:"details,omitempty"`
}
