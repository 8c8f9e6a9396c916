// file: model/request.go

package model

// RegisterPersonRequest defines the payload for registering a new person.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterPersonRequest struct {
	Name       string `validate:"required,min=3,max=100"`
	Address    string `validate:"required"`
	NationalID string `validate:"required,numeric"`
	BirthDate  string `validate:"required"`
}
