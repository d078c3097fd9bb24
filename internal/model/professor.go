package model

// Rank represents a professor's academic rank.
type Rank string

const (
	RankJunior    Rank = "Junior"
	RankAssociate Rank = "Associate"
	RankSenior    Rank = "Senior"
)

// Professor represents a professor record. The id is the professor's
// email address. CourseID may hold the CourseTBD sentinel when the
// professor has no course assignment yet.
type Professor struct {
	ID       string `json:"professor_id"`
	Name     string `json:"professor_name"`
	Rank     Rank   `json:"rank"`
	CourseID string `json:"course_id"`
}

// Assigned reports whether the professor has a real course assignment.
func (p *Professor) Assigned() bool {
	return p.CourseID != "" && p.CourseID != CourseTBD
}

// CreateProfessorRequest is the payload for creating a new professor.
// CourseID may be empty or "TBD" for an unassigned professor.
type CreateProfessorRequest struct {
	ID       string `json:"professor_id" validate:"required,email"`
	Name     string `json:"professor_name" validate:"required,min=2,max=100"`
	Rank     Rank   `json:"rank" validate:"required,oneof=Junior Associate Senior"`
	CourseID string `json:"course_id" validate:"omitempty,max=20"`
	Password string `json:"-" validate:"omitempty,min=4,max=128"`
}

// UpdateProfessorRequest is the payload for updating an existing professor.
type UpdateProfessorRequest struct {
	Name string `json:"professor_name" validate:"omitempty,min=2,max=100"`
	Rank Rank   `json:"rank" validate:"omitempty,oneof=Junior Associate Senior"`
}
