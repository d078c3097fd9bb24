package repository

import (
	"strconv"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/store"
)

const (
	colCourseID          = "Course_id"
	colCourseName        = "Course_name"
	colCourseCredits     = "Credits"
	colCourseDescription = "Description"
)

// CourseSchema describes the courses table.
var CourseSchema = store.Schema{
	Name:    "courses",
	File:    "courses.csv",
	Columns: []string{colCourseID, colCourseName, colCourseCredits, colCourseDescription},
}

// CourseRepository handles course data access with the course id as the
// identity key.
type CourseRepository struct {
	store *store.Store
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(s *store.Store) *CourseRepository {
	return &CourseRepository{store: s}
}

// GetByID retrieves a course by id. Returns a NOT_FOUND-coded error
// when absent.
func (r *CourseRepository) GetByID(id string) (*model.Course, error) {
	records, err := r.store.Load(CourseSchema)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[colCourseID] == id {
			c := decodeCourse(rec)
			return &c, nil
		}
	}
	return nil, response.NewError(response.ErrNotFound, "course %q not found", id)
}

// Exists reports whether a course with the given id is present.
func (r *CourseRepository) Exists(id string) (bool, error) {
	_, err := r.GetByID(id)
	if err != nil {
		if response.IsCode(err, response.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List retrieves all courses in file order.
func (r *CourseRepository) List() ([]model.Course, error) {
	records, err := r.store.Load(CourseSchema)
	if err != nil {
		return nil, err
	}
	courses := make([]model.Course, 0, len(records))
	for _, rec := range records {
		courses = append(courses, decodeCourse(rec))
	}
	return courses, nil
}

// Create inserts a new course. Fails with DUPLICATE_KEY when the id is
// already present.
func (r *CourseRepository) Create(c *model.Course) error {
	if err := validateCourse(c); err != nil {
		return err
	}
	records, err := r.store.Load(CourseSchema)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec[colCourseID] == c.ID {
			return response.NewError(response.ErrDuplicateKey, "course %q already exists", c.ID)
		}
	}
	records = append(records, encodeCourse(c))
	return r.store.Save(CourseSchema, records)
}

// Update loads the course, applies mutate, re-validates, and rewrites
// the table. Fails with NOT_FOUND when the id is absent.
func (r *CourseRepository) Update(id string, mutate func(*model.Course) error) error {
	records, err := r.store.Load(CourseSchema)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec[colCourseID] != id {
			continue
		}
		c := decodeCourse(rec)
		if err := mutate(&c); err != nil {
			return err
		}
		if err := validateCourse(&c); err != nil {
			return err
		}
		records[i] = encodeCourse(&c)
		return r.store.Save(CourseSchema, records)
	}
	return response.NewError(response.ErrNotFound, "course %q not found", id)
}

// Delete removes the course row. Idempotent: an absent id is a no-op.
// Students and professors still referencing the course are deliberately
// left untouched; dangling references surface on later lookups.
func (r *CourseRepository) Delete(id string) error {
	records, err := r.store.Load(CourseSchema)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec[colCourseID] == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return nil
	}
	return r.store.Save(CourseSchema, kept)
}

func validateCourse(c *model.Course) error {
	if c.ID == "" {
		return response.NewError(response.ErrValidation, "course id is required")
	}
	if c.ID == model.CourseTBD {
		return response.NewError(response.ErrValidation, "course id %q is reserved", model.CourseTBD)
	}
	if c.Credits < 0 {
		return response.NewError(response.ErrValidation, "credits must not be negative")
	}
	return nil
}

func decodeCourse(rec store.Record) model.Course {
	c := model.Course{
		ID:          rec[colCourseID],
		Name:        rec[colCourseName],
		Description: rec[colCourseDescription],
	}
	if n, err := strconv.Atoi(rec[colCourseCredits]); err == nil {
		c.Credits = n
	}
	return c
}

func encodeCourse(c *model.Course) store.Record {
	return store.Record{
		colCourseID:          c.ID,
		colCourseName:        c.Name,
		colCourseCredits:     strconv.Itoa(c.Credits),
		colCourseDescription: c.Description,
	}
}
