package model

// MarksUnavailable is the sentinel stored when a student has no marks yet.
const MarksUnavailable = "Unavailable"

// Student represents a student record. Email is the identity key.
// Grade is derived from Marks and recomputed whenever Marks changes;
// a nil Marks means "not yet graded" and is persisted as the
// MarksUnavailable sentinel.
type Student struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CourseID  string `json:"course_id"`
	Grade     string `json:"grade"`
	Marks     *int   `json:"marks"`
}

// HasMarks reports whether the student has numeric marks recorded.
func (s *Student) HasMarks() bool { return s.Marks != nil }

// CreateStudentRequest is the payload for creating a new student.
// Password is optional: when empty the registrar applies the configured
// default (used when a professor enrolls a student on their behalf).
type CreateStudentRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	CourseID  string `json:"course_id" validate:"required,min=2,max=20"`
	Marks     *int   `json:"marks" validate:"omitempty,gte=0,lte=100"`
	Password  string `json:"-" validate:"omitempty,min=4,max=128"`
}

// UpdateStudentRequest is the payload for updating an existing student.
// Empty fields are left unchanged; CourseID changes go through the
// registrar so the reference is checked.
type UpdateStudentRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,min=1,max=50"`
}
