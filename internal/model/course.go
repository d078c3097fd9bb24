package model

// CourseTBD is the sentinel course id for "not yet assigned".
const CourseTBD = "TBD"

// Course represents a course offering. The id is the identity key and is
// referenced by Student.CourseID and Professor.CourseID.
type Course struct {
	ID          string `json:"course_id"`
	Name        string `json:"course_name"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	ID          string `json:"course_id" validate:"required,min=2,max=20"`
	Name        string `json:"course_name" validate:"required,min=2,max=100"`
	Credits     int    `json:"credits" validate:"gte=0,lte=12"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCourseRequest is the payload for updating an existing course.
// Empty fields are left unchanged.
type UpdateCourseRequest struct {
	Name        string  `json:"course_name" validate:"omitempty,min=2,max=100"`
	Credits     *int    `json:"credits" validate:"omitempty,gte=0,lte=12"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
