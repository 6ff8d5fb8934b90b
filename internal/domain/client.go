package domain

// Client is a person who may register for trips.
// ID is assigned by the database on insert.
//
// The validate tags are read by service.ClientService; all five personal
// fields must contain at least one non-whitespace character.
type Client struct {
	ID        int
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Email     string `json:"email" validate:"notblank"`
	Telephone string `json:"telephone" validate:"notblank"`
	Pesel     string `json:"pesel" validate:"notblank"` // national ID number
}
