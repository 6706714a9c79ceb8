package model

// Person is an alumni row. The record is owned by the external store and
// never mutated here.
type Person struct {
	Id        string
	FirstName *string
	Birthdate *string
	Consent   int
}
