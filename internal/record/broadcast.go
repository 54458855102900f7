package record

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"schoolbook/internal/shared"
)

// The broadcast operations fan a single new entry out to every existing
// record's matching sub-collection. All per-record saves are launched
// together and awaited jointly: one failed save fails the whole call, but
// records whose save already resolved keep their mutation. Partial,
// indeterminate fan-out is a known consistency gap of this model.

// ScheduleExam appends the exam to every record's exams. Fails not-found
// when the store holds no records.
func (s *Service) ScheduleExam(ctx context.Context, in ExamInput) error {
	date, err := shared.ToTime(in.Date)
	if err != nil {
		return fmt.Errorf("invalid exam date: %w", err)
	}
	totalMarks, err := shared.ToInt(in.TotalMarks)
	if err != nil {
		return fmt.Errorf("invalid totalMarks: %w", err)
	}

	students, err := s.store.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		return NewNotFoundError("no students found in the database")
	}

	exam := Exam{
		ExamName:    in.ExamName,
		Subject:     in.Subject,
		Date:        date,
		Time:        in.Time,
		TotalMarks:  totalMarks,
		Standard:    in.Standard,
		Description: in.Description,
	}
	for _, student := range students {
		student.Exams = append(student.Exams, exam)
	}

	return s.saveAll(ctx, students)
}

// AddTeacher appends the teacher entry to every record's roster. Fails
// not-found when the store holds no records.
func (s *Service) AddTeacher(ctx context.Context, in TeacherInput) error {
	joinDate, err := shared.ToTime(in.JoinDate)
	if err != nil {
		return fmt.Errorf("invalid joinDate: %w", err)
	}

	students, err := s.store.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		return NewNotFoundError("no students found in database")
	}

	teacher := Teacher{
		Name:       in.TeacherName,
		Standard:   in.Standard,
		Subject:    in.Subject,
		JoinDate:   joinDate,
		Email:      in.Email,
		Phone:      in.Phone,
		Experience: in.Experience,
	}
	for _, student := range students {
		student.Teachers = append(student.Teachers, teacher)
	}

	return s.saveAll(ctx, students)
}

// AddTeacherSalary appends the salary entry to every record. Unlike the exam
// and teacher broadcasts it does not require an existing record: on an empty
// store it is a no-op that reports success.
func (s *Service) AddTeacherSalary(ctx context.Context, in SalaryInput) error {
	amount, err := shared.ToFloat64(in.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	bonus, err := shared.ToFloat64(in.Bonus)
	if err != nil {
		return fmt.Errorf("invalid bonus: %w", err)
	}

	students, err := s.store.FindAll(ctx)
	if err != nil {
		return err
	}

	salary := TeacherSalary{
		TeacherName: in.TeacherName,
		Subject:     in.Subject,
		Standard:    in.Standard,
		Amount:      amount,
		Bonus:       bonus,
	}
	for _, student := range students {
		student.TeacherSalaries = append(student.TeacherSalaries, salary)
	}

	return s.saveAll(ctx, students)
}

// saveAll issues every per-record save concurrently and awaits the whole
// group, returning the first error. Saves already resolved when another one
// fails are not rolled back.
func (s *Service) saveAll(ctx context.Context, students []*Student) error {
	var g errgroup.Group
	for _, student := range students {
		student := student
		g.Go(func() error {
			return s.store.Save(ctx, student)
		})
	}
	return g.Wait()
}
