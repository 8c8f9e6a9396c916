package model

// Person is a registered account holder. A record is immutable after
// registration and is identified solely by its national ID.
type Person struct {
	Name       string
	Address    string
	NationalID string
	BirthDate  string
}
