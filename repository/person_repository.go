package repository

import (
	"go-bank-teller/logger"
	"go-bank-teller/model"
)

// IPersonRepository is the registry of account holders.
type IPersonRepository interface {
	FindByNationalID(nationalID string) *model.Person
	Create(person *model.Person)
	All() []*model.Person
}

// PersonRepository keeps registered persons in process memory. The slice is
// the whole store and is discarded on exit.
type PersonRepository struct {
	persons []*model.Person
}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// FindByNationalID scans in registration order and returns the first match,
// or nil when the ID is not on file. The national ID is the sole lookup key
// for person identity.
func (r *PersonRepository) FindByNationalID(nationalID string) *model.Person {
	for _, p := range r.persons {
		if p.NationalID == nationalID {
			return p
		}
	}
	return nil
}

func (r *PersonRepository) Create(person *model.Person) {
	logger.Log.WithField("national_id", person.NationalID).Info("Storing new person record")
	r.persons = append(r.persons, person)
}

func (r *PersonRepository) All() []*model.Person {
	return r.persons
}
