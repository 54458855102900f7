package record

import (
	"context"
	"time"

	"schoolbook/internal/shared"
)

// EnterMarks applies a marks batch sequentially, in input order. For each
// valid entry the record is loaded, the mark for the subject is overwritten
// or appended, and the record is saved immediately, so a later entry for the
// same subject in the same batch always wins.
//
// Malformed entries (missing id or subject, non-numeric score) and unknown
// student ids are skipped without aborting the batch. A failed save halts
// further processing; earlier saves remain committed. The batch is not
// transactional and is never retried.
func (s *Service) EnterMarks(ctx context.Context, entries []MarkEntry) error {
	for _, entry := range entries {
		if entry.StudentID == "" || entry.Subject == "" {
			continue
		}
		score, err := shared.ToFloat64(entry.Score)
		if err != nil {
			continue
		}

		student, err := s.store.FindByID(ctx, entry.StudentID)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return err
		}

		if i := student.MarkIndex(entry.Subject); i >= 0 {
			student.Marks[i].Score = score
			student.Marks[i].RecordedAt = time.Now()
		} else {
			student.Marks = append(student.Marks, Mark{
				Subject:    entry.Subject,
				Score:      score,
				RecordedAt: time.Now(),
			})
		}

		if err := s.store.Save(ctx, student); err != nil {
			return err
		}
	}
	return nil
}
