package record

import (
	"context"

	"schoolbook/internal/shared"
)

// RecordAttendance appends one attendance entry to the record matching the
// roll number. There is no duplicate detection: identical entries for the
// same day and subject are permitted, and the sequence only grows.
func (s *Service) RecordAttendance(ctx context.Context, in AttendanceInput) (*Student, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, NewValidationError("missing required fields")
	}

	roll, err := shared.ToInt64(in.RollNumber)
	if err != nil {
		return nil, NewValidationError("roll number must be numeric")
	}
	date, err := shared.ToTime(in.Date)
	if err != nil {
		return nil, NewValidationError("date must be a valid date")
	}

	student, err := s.store.FindByRoll(ctx, roll)
	if err != nil {
		return nil, err
	}

	student.Attendance = append(student.Attendance, Attendance{
		Subject: in.Subject,
		Date:    date,
		Status:  in.Status,
	})

	if err := s.store.Save(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// AddHomework appends the homework entry to the first record matching the
// standard, synthesizing a placeholder record when none exists. Homework
// meant for an entire class is therefore stored on one arbitrary record; the
// read side compensates by flattening across all records.
func (s *Service) AddHomework(ctx context.Context, in HomeworkInput) error {
	if err := s.validate.Struct(in); err != nil {
		return NewValidationError("all fields are required")
	}

	date, err := shared.ToTime(in.Date)
	if err != nil {
		return NewValidationError("date must be a valid date")
	}

	student, err := s.store.GetOrCreateByStandard(ctx, in.Standard, in.Subject)
	if err != nil {
		return err
	}

	student.Homework = append(student.Homework, Homework{
		Standard: in.Standard,
		Subject:  in.Subject,
		Date:     date,
		Question: in.Question,
	})

	return s.store.Save(ctx, student)
}
