package service

import (
	"errors"
	"go-bank-teller/common"
	"go-bank-teller/logger"
	"go-bank-teller/model"
	"go-bank-teller/repository"
)

var ErrDuplicatePerson = errors.New("a person with this national ID is already registered")

// PersonService handles person registration.
type PersonService struct {
	personRepo repository.IPersonRepository
}

func NewPersonService(personRepo repository.IPersonRepository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

// Register validates the payload and adds the person to the registry. A
// second registration under the same national ID is rejected and the
// registry is left unchanged.
func (s *PersonService) Register(req model.RegisterPersonRequest) (*model.Person, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	if s.personRepo.FindByNationalID(req.NationalID) != nil {
		return nil, ErrDuplicatePerson
	}

	person := &model.Person{
		Name:       req.Name,
		Address:    req.Address,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
	}
	s.personRepo.Create(person)

	logger.Log.WithField("national_id", person.NationalID).Info("Person registered")
	return person, nil
}
