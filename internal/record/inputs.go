package record

// Request inputs for record operations. Numeric fields that clients send as
// either JSON numbers or strings are typed `any` and coerced with the
// shared coercion helpers; presence rules live in the validate tags.

type CreateStudentInput struct {
	FirstName          string   `json:"firstName" validate:"required"`
	Surname            string   `json:"surname" validate:"required"`
	DateOfBirth        string   `json:"dob" validate:"required"`
	Standard           int      `json:"standard" validate:"required,gte=1,lte=12"`
	RollNumber         any      `json:"rollNumber" validate:"required"`
	RegistrationNumber any      `json:"registrationNumber" validate:"required"`
	Subjects           []string `json:"subjects" validate:"required,min=1,dive,required"`
}

// MarkEntry is one element of a marks batch. Entries are not validated up
// front: malformed ones are skipped during processing.
type MarkEntry struct {
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Score     any    `json:"score"`
}

type AttendanceInput struct {
	RollNumber any    `json:"rollNumber" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=present absent"`
}

type HomeworkInput struct {
	Standard int    `json:"standard" validate:"required,gte=1,lte=12"`
	Subject  string `json:"subject" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// ExamInput and TeacherInput are broadcast entries; the contract applies no
// input validation to them, only the store-existence precondition.
type ExamInput struct {
	ExamName    string `json:"examName"`
	Subject     string `json:"subject"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	TotalMarks  any    `json:"totalMarks"`
	Description string `json:"description"`
	Standard    int    `json:"standard"`
}

type TeacherInput struct {
	TeacherName string `json:"teacherName"`
	Standard    int    `json:"standard"`
	Subject     string `json:"subject"`
	JoinDate    string `json:"joinDate"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Experience  string `json:"experience"`
}

type SalaryInput struct {
	TeacherName string `json:"teacherName"`
	Subject     string `json:"subject"`
	Standard    int    `json:"standard"`
	Amount      any    `json:"amount"`
	Bonus       any    `json:"bonus"`
}

type BillingInput struct {
	BillName   string `json:"billName" validate:"required"`
	Standard   int    `json:"standard" validate:"required,gte=1,lte=12"`
	BilledRoll any    `json:"billedRoll" validate:"required"`
	Amount     any    `json:"amount" validate:"required"`
}
