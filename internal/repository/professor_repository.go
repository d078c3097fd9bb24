package repository

import (
	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/store"
)

const (
	colProfessorID       = "Professor_id"
	colProfessorName     = "Professor Name"
	colProfessorRank     = "Rank"
	colProfessorCourseID = "Course.id"
)

// ProfessorSchema describes the professors table.
var ProfessorSchema = store.Schema{
	Name:    "professors",
	File:    "professors.csv",
	Columns: []string{colProfessorID, colProfessorName, colProfessorRank, colProfessorCourseID},
}

// ProfessorRepository handles professor data access. The professor id is
// their email address.
type ProfessorRepository struct {
	store *store.Store
}

// NewProfessorRepository creates a new ProfessorRepository.
func NewProfessorRepository(s *store.Store) *ProfessorRepository {
	return &ProfessorRepository{store: s}
}

// GetByID retrieves a professor by id. Returns a NOT_FOUND-coded error
// when absent.
func (r *ProfessorRepository) GetByID(id string) (*model.Professor, error) {
	records, err := r.store.Load(ProfessorSchema)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[colProfessorID] == id {
			p := decodeProfessor(rec)
			return &p, nil
		}
	}
	return nil, response.NewError(response.ErrNotFound, "professor %q not found", id)
}

// List retrieves all professors in file order.
func (r *ProfessorRepository) List() ([]model.Professor, error) {
	records, err := r.store.Load(ProfessorSchema)
	if err != nil {
		return nil, err
	}
	professors := make([]model.Professor, 0, len(records))
	for _, rec := range records {
		professors = append(professors, decodeProfessor(rec))
	}
	return professors, nil
}

// Create inserts a new professor. Fails with DUPLICATE_KEY when the id
// is already present.
func (r *ProfessorRepository) Create(p *model.Professor) error {
	if err := validateProfessor(p); err != nil {
		return err
	}
	records, err := r.store.Load(ProfessorSchema)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec[colProfessorID] == p.ID {
			return response.NewError(response.ErrDuplicateKey, "professor %q already exists", p.ID)
		}
	}
	records = append(records, encodeProfessor(p))
	return r.store.Save(ProfessorSchema, records)
}

// Update loads the professor, applies mutate, re-validates, and rewrites
// the table. Fails with NOT_FOUND when the id is absent.
func (r *ProfessorRepository) Update(id string, mutate func(*model.Professor) error) error {
	records, err := r.store.Load(ProfessorSchema)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec[colProfessorID] != id {
			continue
		}
		p := decodeProfessor(rec)
		if err := mutate(&p); err != nil {
			return err
		}
		if err := validateProfessor(&p); err != nil {
			return err
		}
		records[i] = encodeProfessor(&p)
		return r.store.Save(ProfessorSchema, records)
	}
	return response.NewError(response.ErrNotFound, "professor %q not found", id)
}

// Delete removes the professor row. Idempotent: an absent id is a no-op.
func (r *ProfessorRepository) Delete(id string) error {
	records, err := r.store.Load(ProfessorSchema)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec[colProfessorID] == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return nil
	}
	return r.store.Save(ProfessorSchema, kept)
}

// validateProfessor enforces the professors table's field constraints.
// Rank must be one of the three known ranks; an unknown rank fails with
// VALIDATION_ERROR instead of being accepted silently.
func validateProfessor(p *model.Professor) error {
	if p.ID == "" {
		return response.NewError(response.ErrValidation, "professor id is required")
	}
	switch p.Rank {
	case model.RankJunior, model.RankAssociate, model.RankSenior:
	default:
		return response.NewError(response.ErrValidation, "unknown rank %q", p.Rank)
	}
	return nil
}

func decodeProfessor(rec store.Record) model.Professor {
	return model.Professor{
		ID:       rec[colProfessorID],
		Name:     rec[colProfessorName],
		Rank:     model.Rank(rec[colProfessorRank]),
		CourseID: rec[colProfessorCourseID],
	}
}

func encodeProfessor(p *model.Professor) store.Record {
	courseID := p.CourseID
	if courseID == "" {
		courseID = model.CourseTBD
	}
	return store.Record{
		colProfessorID:       p.ID,
		colProfessorName:     p.Name,
		colProfessorRank:     string(p.Rank),
		colProfessorCourseID: courseID,
	}
}
