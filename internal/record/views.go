package record

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Read views over the embedded sub-collections. Each one runs a projection
// query and reshapes the per-record documents into the list the client
// expects; nothing here mutates state.

// ExamWithOwner is one exam entry tagged with the registration number of the
// record it is stored on.
type ExamWithOwner struct {
	Exam
	RegistrationNumber string `json:"registrationNumber"`
}

// TeacherList is one record's teacher roster.
type TeacherList struct {
	ID       primitive.ObjectID `json:"id"`
	Teachers []Teacher          `json:"teachers"`
}

// SalaryList is one record's salary entries.
type SalaryList struct {
	ID              primitive.ObjectID `json:"id"`
	TeacherSalaries []TeacherSalary    `json:"teacherSalaries"`
}

// BillingList is one record's billing entries.
type BillingList struct {
	ID      primitive.ObjectID `json:"id"`
	Billing []Billing          `json:"billing"`
}

// AllHomework flattens every record's homework into one list.
func (s *Service) AllHomework(ctx context.Context) ([]Homework, error) {
	students, err := s.store.FindAllProjected(ctx, FieldHomework)
	if err != nil {
		return nil, err
	}

	homework := []Homework{}
	for _, student := range students {
		homework = append(homework, student.Homework...)
	}
	return homework, nil
}

// AllExams flattens every record's exams, tagging each entry with the owning
// record's registration number.
func (s *Service) AllExams(ctx context.Context) ([]ExamWithOwner, error) {
	students, err := s.store.FindAllProjected(ctx, FieldExams, FieldRegistration)
	if err != nil {
		return nil, err
	}

	exams := []ExamWithOwner{}
	for _, student := range students {
		for _, exam := range student.Exams {
			exams = append(exams, ExamWithOwner{
				Exam:               exam,
				RegistrationNumber: student.RegistrationNumber,
			})
		}
	}
	return exams, nil
}

// TeacherLists returns each record's teacher roster.
func (s *Service) TeacherLists(ctx context.Context) ([]TeacherList, error) {
	students, err := s.store.FindAllProjected(ctx, FieldTeachers)
	if err != nil {
		return nil, err
	}

	lists := []TeacherList{}
	for _, student := range students {
		lists = append(lists, TeacherList{ID: student.ID, Teachers: student.Teachers})
	}
	return lists, nil
}

// SalaryLists returns each record's salary entries.
func (s *Service) SalaryLists(ctx context.Context) ([]SalaryList, error) {
	students, err := s.store.FindAllProjected(ctx, FieldTeacherSalaries)
	if err != nil {
		return nil, err
	}

	lists := []SalaryList{}
	for _, student := range students {
		lists = append(lists, SalaryList{ID: student.ID, TeacherSalaries: student.TeacherSalaries})
	}
	return lists, nil
}

// BillingLists returns each record's billing entries.
func (s *Service) BillingLists(ctx context.Context) ([]BillingList, error) {
	students, err := s.store.FindAllProjected(ctx, FieldBilling)
	if err != nil {
		return nil, err
	}

	lists := []BillingList{}
	for _, student := range students {
		lists = append(lists, BillingList{ID: student.ID, Billing: student.Billing})
	}
	return lists, nil
}
