package repository

import (
	"strconv"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/store"
)

// Column names of the students table. The header is part of the file
// format and must not change.
const (
	colStudentEmail     = "Email address"
	colStudentFirstName = "First name"
	colStudentLastName  = "Last name"
	colStudentCourseID  = "Course.id"
	colStudentGrade     = "grades"
	colStudentMarks     = "Marks"
)

// StudentSchema describes the students table.
var StudentSchema = store.Schema{
	Name: "students",
	File: "students.csv",
	Columns: []string{
		colStudentEmail, colStudentFirstName, colStudentLastName,
		colStudentCourseID, colStudentGrade, colStudentMarks,
	},
}

// StudentRepository handles student data access with email as the
// identity key.
type StudentRepository struct {
	store *store.Store
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(s *store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// GetByEmail retrieves a student by email. Returns a NOT_FOUND-coded
// error when absent.
func (r *StudentRepository) GetByEmail(email string) (*model.Student, error) {
	records, err := r.store.Load(StudentSchema)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[colStudentEmail] == email {
			s := decodeStudent(rec)
			return &s, nil
		}
	}
	return nil, response.NewError(response.ErrNotFound, "student %q not found", email)
}

// List retrieves all students in file order.
func (r *StudentRepository) List() ([]model.Student, error) {
	records, err := r.store.Load(StudentSchema)
	if err != nil {
		return nil, err
	}
	students := make([]model.Student, 0, len(records))
	for _, rec := range records {
		students = append(students, decodeStudent(rec))
	}
	return students, nil
}

// ListByCourse retrieves all students enrolled in the given course.
func (r *StudentRepository) ListByCourse(courseID string) ([]model.Student, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	var students []model.Student
	for _, s := range all {
		if s.CourseID == courseID {
			students = append(students, s)
		}
	}
	return students, nil
}

// Create inserts a new student. Fails with DUPLICATE_KEY when the email
// is already present; the table is left unchanged on any failure.
func (r *StudentRepository) Create(s *model.Student) error {
	if err := validateStudent(s); err != nil {
		return err
	}
	records, err := r.store.Load(StudentSchema)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec[colStudentEmail] == s.Email {
			return response.NewError(response.ErrDuplicateKey, "student %q already exists", s.Email)
		}
	}
	records = append(records, encodeStudent(s))
	return r.store.Save(StudentSchema, records)
}

// Update loads the student, applies mutate, re-validates, and rewrites
// the table. Fails with NOT_FOUND when the email is absent.
func (r *StudentRepository) Update(email string, mutate func(*model.Student) error) error {
	records, err := r.store.Load(StudentSchema)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec[colStudentEmail] != email {
			continue
		}
		s := decodeStudent(rec)
		if err := mutate(&s); err != nil {
			return err
		}
		if err := validateStudent(&s); err != nil {
			return err
		}
		records[i] = encodeStudent(&s)
		return r.store.Save(StudentSchema, records)
	}
	return response.NewError(response.ErrNotFound, "student %q not found", email)
}

// Delete removes the student row. Deletion is idempotent: an absent
// email is a no-op and the file is not rewritten.
func (r *StudentRepository) Delete(email string) error {
	records, err := r.store.Load(StudentSchema)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec[colStudentEmail] == email {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return nil
	}
	return r.store.Save(StudentSchema, kept)
}

// validateStudent enforces the students table's field constraints.
// Invalid rows fail with VALIDATION_ERROR instead of being accepted
// silently.
func validateStudent(s *model.Student) error {
	if s.Email == "" {
		return response.NewError(response.ErrValidation, "student email is required")
	}
	if s.CourseID == "" {
		return response.NewError(response.ErrValidation, "student course id is required")
	}
	if s.Marks != nil && (*s.Marks < 0 || *s.Marks > 100) {
		return response.NewError(response.ErrValidation, "marks %d out of range [0,100]", *s.Marks)
	}
	return nil
}

func decodeStudent(rec store.Record) model.Student {
	s := model.Student{
		Email:     rec[colStudentEmail],
		FirstName: rec[colStudentFirstName],
		LastName:  rec[colStudentLastName],
		CourseID:  rec[colStudentCourseID],
		Grade:     rec[colStudentGrade],
	}
	if n, err := strconv.Atoi(rec[colStudentMarks]); err == nil {
		s.Marks = &n
	}
	return s
}

func encodeStudent(s *model.Student) store.Record {
	marks := model.MarksUnavailable
	if s.Marks != nil {
		marks = strconv.Itoa(*s.Marks)
	}
	grade := s.Grade
	if grade == "" {
		grade = model.GradeUnavailable
	}
	return store.Record{
		colStudentEmail:     s.Email,
		colStudentFirstName: s.FirstName,
		colStudentLastName:  s.LastName,
		colStudentCourseID:  s.CourseID,
		colStudentGrade:     grade,
		colStudentMarks:     marks,
	}
}
