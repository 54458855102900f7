package record

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"

	"schoolbook/internal/shared"
)

// Service holds the record-mutation logic. Each operation validates its
// input, reads the affected record(s), mutates in memory, and writes back
// through whole-document saves.
type Service struct {
	store    Store
	validate *validator.Validate
}

func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// CreateStudent enrolls a new record with every sub-collection initialized
// empty. The duplicate pre-checks are best-effort reads; a concurrent create
// slipping between check and write is caught by the store's unique indexes.
func (s *Service) CreateStudent(ctx context.Context, in CreateStudentInput) (*Student, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, NewValidationError("all fields are required")
	}

	roll, rollErr := shared.ToInt64(in.RollNumber)
	reg, regErr := shared.ToInt64(in.RegistrationNumber)
	if rollErr != nil || regErr != nil {
		return nil, NewValidationError("roll number and registration number must be numeric")
	}

	dob, err := shared.ToTime(in.DateOfBirth)
	if err != nil {
		return nil, NewValidationError("dob must be a valid date")
	}

	if _, err := s.store.FindByRoll(ctx, roll); err == nil {
		return nil, NewConflictError("roll number already exists")
	} else if !IsNotFound(err) {
		return nil, err
	}

	registration := strconv.FormatInt(reg, 10)
	if _, err := s.store.FindByRegistration(ctx, registration); err == nil {
		return nil, NewConflictError("registration number already exists")
	} else if !IsNotFound(err) {
		return nil, err
	}

	student := NewStudent(in.FirstName, in.Surname, dob, in.Standard, roll, registration, in.Subjects)
	if err := s.store.Insert(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Service) ListStudents(ctx context.Context) ([]*Student, error) {
	return s.store.FindAll(ctx)
}

// DeleteStudent removes the record and all its embedded data. Deletion is
// unconditional; a second delete of the same id reports not-found.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
