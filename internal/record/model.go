package record

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is one student's document. It owns every embedded sub-collection;
// there are no separate collections for sub-entities.
type Student struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName          string             `bson:"firstName" json:"firstName"`
	Surname            string             `bson:"surname" json:"surname"`
	DateOfBirth        time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Standard           int                `bson:"standard" json:"standard"`
	RollNumber         int64              `bson:"rollNumber" json:"rollNumber"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	Subjects           []string           `bson:"subjects" json:"subjects"`

	Marks           []Mark          `bson:"marks" json:"marks"`
	Attendance      []Attendance    `bson:"attendance" json:"attendance"`
	Homework        []Homework      `bson:"homework" json:"homework"`
	Exams           []Exam          `bson:"exams" json:"exams"`
	Teachers        []Teacher       `bson:"teachers" json:"teachers"`
	TeacherSalaries []TeacherSalary `bson:"teacherSalaries" json:"teacherSalaries"`
	Billing         []Billing       `bson:"billing" json:"billing"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Mark holds one score per subject; the upsert-merge engine keeps at most one
// entry per subject on a record.
type Mark struct {
	Subject    string    `bson:"subject" json:"subject"`
	Score      float64   `bson:"score" json:"score"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
}

// Attendance entries are append-only; identical entries for the same
// day/subject are permitted.
type Attendance struct {
	Subject string    `bson:"subject" json:"subject"`
	Date    time.Time `bson:"date" json:"date"`
	Status  string    `bson:"status" json:"status"` // present or absent
}

type Homework struct {
	Standard int       `bson:"standard" json:"standard"`
	Subject  string    `bson:"subject" json:"subject"`
	Date     time.Time `bson:"date" json:"date"`
	Question string    `bson:"question" json:"question"`
}

type Exam struct {
	ExamName    string    `bson:"examName" json:"examName"`
	Subject     string    `bson:"subject" json:"subject"`
	Date        time.Time `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	TotalMarks  int       `bson:"totalMarks" json:"totalMarks"`
	Standard    int       `bson:"standard" json:"standard"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
}

type Teacher struct {
	Name       string    `bson:"name" json:"name"`
	Standard   int       `bson:"standard" json:"standard"`
	Subject    string    `bson:"subject" json:"subject"`
	JoinDate   time.Time `bson:"joinDate" json:"joinDate"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Experience string    `bson:"experience,omitempty" json:"experience,omitempty"`
}

type TeacherSalary struct {
	TeacherName string  `bson:"teacherName" json:"teacherName"`
	Subject     string  `bson:"subject" json:"subject"`
	Standard    int     `bson:"standard" json:"standard"`
	Amount      float64 `bson:"amount" json:"amount"`
	Bonus       float64 `bson:"bonus" json:"bonus"`
}

type Billing struct {
	BillName   string  `bson:"billName" json:"billName"`
	Standard   int     `bson:"standard" json:"standard"`
	BilledRoll int64   `bson:"billedRoll" json:"billedRoll"`
	Amount     float64 `bson:"amount" json:"amount"`
}

// NewStudent builds an explicitly enrolled record with every sub-collection
// initialized empty.
func NewStudent(firstName, surname string, dob time.Time, standard int, roll int64, registration string, subjects []string) *Student {
	now := time.Now()
	return &Student{
		ID:                 primitive.NewObjectID(),
		FirstName:          firstName,
		Surname:            surname,
		DateOfBirth:        dob,
		Standard:           standard,
		RollNumber:         roll,
		RegistrationNumber: registration,
		Subjects:           subjects,
		Marks:              []Mark{},
		Attendance:         []Attendance{},
		Homework:           []Homework{},
		Exams:              []Exam{},
		Teachers:           []Teacher{},
		TeacherSalaries:    []TeacherSalary{},
		Billing:            []Billing{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewPlaceholderForStandard synthesizes a record for a homework entry whose
// standard matched no existing record. Identity is timestamp-derived: the
// epoch-millisecond roll number and a GRNO-prefixed registration number.
func NewPlaceholderForStandard(standard int, subject string) *Student {
	ms := time.Now().UnixMilli()
	dob, _ := time.Parse("2006-01-02", "2000-01-01")
	return NewStudent("Temp", "Student", dob, standard, ms, fmt.Sprintf("GRNO%d", ms), []string{subject})
}

// NewPlaceholderForRoll synthesizes a record for a billing entry whose roll
// number matched no existing record. The roll is the billed roll itself; the
// registration number is timestamp-derived with an AUTO prefix.
func NewPlaceholderForRoll(roll int64, standard int) *Student {
	ms := time.Now().UnixMilli()
	return NewStudent("Auto", "Generated", time.Now(), standard, roll, fmt.Sprintf("AUTO%d", ms), []string{})
}

// MarkIndex returns the index of the mark for subject, or -1.
func (s *Student) MarkIndex(subject string) int {
	for i, m := range s.Marks {
		if m.Subject == subject {
			return i
		}
	}
	return -1
}

// HasBill reports whether a billing entry with the given name already exists.
func (s *Student) HasBill(billName string) bool {
	for _, b := range s.Billing {
		if b.BillName == billName {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record. Stores hand out clones so callers
// mutate in memory without aliasing stored state.
func (s *Student) Clone() *Student {
	c := *s
	c.Subjects = append([]string(nil), s.Subjects...)
	c.Marks = append([]Mark(nil), s.Marks...)
	c.Attendance = append([]Attendance(nil), s.Attendance...)
	c.Homework = append([]Homework(nil), s.Homework...)
	c.Exams = append([]Exam(nil), s.Exams...)
	c.Teachers = append([]Teacher(nil), s.Teachers...)
	c.TeacherSalaries = append([]TeacherSalary(nil), s.TeacherSalaries...)
	c.Billing = append([]Billing(nil), s.Billing...)
	return &c
}
