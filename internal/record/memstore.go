package record

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory Store with the same uniqueness semantics as the
// Mongo store. It backs the package tests and the "memory" store backend.
type MemStore struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]*Student
	order []primitive.ObjectID // insertion order, for first-match lookups
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[primitive.ObjectID]*Student)}
}

func (s *MemStore) Insert(ctx context.Context, student *Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	if err := s.checkUnique(student); err != nil {
		return err
	}

	s.docs[student.ID] = student.Clone()
	s.order = append(s.order, student.ID)
	return nil
}

// checkUnique enforces the roll/registration unique indexes. Callers must
// hold the write lock.
func (s *MemStore) checkUnique(student *Student) error {
	for _, other := range s.docs {
		if other.ID == student.ID {
			continue
		}
		if other.RollNumber == student.RollNumber || other.RegistrationNumber == student.RegistrationNumber {
			return NewConflictError("roll number or registration number already exists")
		}
	}
	return nil
}

func (s *MemStore) FindByID(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("student not found")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	student, ok := s.docs[oid]
	if !ok {
		return nil, NewNotFoundError("student not found")
	}
	return student.Clone(), nil
}

func (s *MemStore) FindByRoll(ctx context.Context, roll int64) (*Student, error) {
	return s.findFirst(func(st *Student) bool { return st.RollNumber == roll })
}

func (s *MemStore) FindByRegistration(ctx context.Context, registration string) (*Student, error) {
	return s.findFirst(func(st *Student) bool { return st.RegistrationNumber == registration })
}

func (s *MemStore) FindByStandard(ctx context.Context, standard int) (*Student, error) {
	return s.findFirst(func(st *Student) bool { return st.Standard == standard })
}

func (s *MemStore) findFirst(match func(*Student) bool) (*Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if st, ok := s.docs[id]; ok && match(st) {
			return st.Clone(), nil
		}
	}
	return nil, NewNotFoundError("student not found")
}

func (s *MemStore) FindAll(ctx context.Context) ([]*Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := []*Student{}
	for _, id := range s.order {
		if st, ok := s.docs[id]; ok {
			students = append(students, st.Clone())
		}
	}
	return students, nil
}

func (s *MemStore) FindAllProjected(ctx context.Context, fields ...string) ([]*Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := []*Student{}
	for _, id := range s.order {
		st, ok := s.docs[id]
		if !ok {
			continue
		}
		projected := &Student{ID: st.ID}
		for _, f := range fields {
			switch f {
			case FieldHomework:
				projected.Homework = append([]Homework(nil), st.Homework...)
			case FieldExams:
				projected.Exams = append([]Exam(nil), st.Exams...)
			case FieldTeachers:
				projected.Teachers = append([]Teacher(nil), st.Teachers...)
			case FieldTeacherSalaries:
				projected.TeacherSalaries = append([]TeacherSalary(nil), st.TeacherSalaries...)
			case FieldBilling:
				projected.Billing = append([]Billing(nil), st.Billing...)
			case FieldRegistration:
				projected.RegistrationNumber = st.RegistrationNumber
			}
		}
		students = append(students, projected)
	}
	return students, nil
}

func (s *MemStore) Save(ctx context.Context, student *Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	if err := s.checkUnique(student); err != nil {
		return err
	}

	student.UpdatedAt = time.Now()
	if _, exists := s.docs[student.ID]; !exists {
		s.order = append(s.order, student.ID)
	}
	s.docs[student.ID] = student.Clone()
	return nil
}

func (s *MemStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError("student not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[oid]; !ok {
		return NewNotFoundError("student not found")
	}
	delete(s.docs, oid)
	for i, existing := range s.order {
		if existing == oid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

func (s *MemStore) GetOrCreateByStandard(ctx context.Context, standard int, subject string) (*Student, error) {
	student, err := s.FindByStandard(ctx, standard)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return NewPlaceholderForStandard(standard, subject), nil
		}
		return nil, err
	}
	return student, nil
}

func (s *MemStore) GetOrCreateByRoll(ctx context.Context, roll int64, standard int) (*Student, error) {
	student, err := s.FindByRoll(ctx, roll)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return NewPlaceholderForRoll(roll, standard), nil
		}
		return nil, err
	}
	return student, nil
}
