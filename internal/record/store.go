package record

import "context"

// Projection field names accepted by FindAllProjected.
const (
	FieldHomework        = "homework"
	FieldExams           = "exams"
	FieldTeachers        = "teachers"
	FieldTeacherSalaries = "teacherSalaries"
	FieldBilling         = "billing"
	FieldRegistration    = "registrationNumber"
)

// Store is the persistence boundary for student records. There is no
// partial-field update primitive: every mutation is read-modify-write at
// whole-document granularity, so two concurrent writers on the same record
// race and the later Save can silently overwrite the earlier append.
type Store interface {
	// Insert adds a new record. Duplicate roll or registration numbers are
	// rejected with a ConflictError; this is the authoritative uniqueness
	// guard behind the engines' best-effort pre-checks.
	Insert(ctx context.Context, s *Student) error

	FindByID(ctx context.Context, id string) (*Student, error)
	FindByRoll(ctx context.Context, roll int64) (*Student, error)
	FindByRegistration(ctx context.Context, registration string) (*Student, error)

	// FindByStandard returns the first record matching the standard, in
	// insertion order. Class-wide homework lands on that single record.
	FindByStandard(ctx context.Context, standard int) (*Student, error)

	FindAll(ctx context.Context) ([]*Student, error)

	// FindAllProjected returns every record with only the requested fields
	// (plus the id) populated.
	FindAllProjected(ctx context.Context, fields ...string) ([]*Student, error)

	// Save persists the full document, inserting it when the id is new.
	// Unique-field violations surface as ConflictError.
	Save(ctx context.Context, s *Student) error

	DeleteByID(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)

	// GetOrCreateByStandard returns the first record for the standard, or a
	// synthetic placeholder (see NewPlaceholderForStandard) when none exists.
	// The placeholder is not persisted until the caller Saves it, so a failed
	// follow-up mutation leaves no empty record behind.
	GetOrCreateByStandard(ctx context.Context, standard int, subject string) (*Student, error)

	// GetOrCreateByRoll is the billing counterpart, keyed by roll number.
	GetOrCreateByRoll(ctx context.Context, roll int64, standard int) (*Student, error)
}
