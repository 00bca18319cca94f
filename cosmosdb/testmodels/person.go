package testmodels

import "github.com/go-openapi/strfmt"

// Person is the example entity used across tests, matching the SampleDB
// Persons container shape.
type Person struct {

	// Unique identifier for the person.
	// Required: true
	ID string `json:"id"`

	// First name of the person.
	FirstName string `json:"firstname,omitempty"`

	// Age in years.
	Age int `json:"age,omitempty"`

	// Timestamp when the record was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`
}
