package service

import (
	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/security"
	"github.com/checkmygrade/checkmygrade/internal/validator"
	"github.com/rs/zerolog"
)

// RegistrarService coordinates writes that span more than one table and
// enforces the cross-table rules: a student or professor may not
// reference a nonexistent course, identity keys are unique, and every
// person row has exactly one matching credential row.
//
// Cross-table operations are NOT transactional. Each one is a documented
// two-step protocol: the person row is written or removed first, the
// credential row second. An interruption between the two steps therefore
// fails toward an orphaned credential with no profile, never a profile
// with a live listed credential. The second step failing surfaces as a
// PARTIAL_CASCADE error so the caller can advise retrying the residual
// step; SweepOrphans finds leftovers at startup.
type RegistrarService struct {
	students    *repository.StudentRepository
	courses     *repository.CourseRepository
	professors  *repository.ProfessorRepository
	credentials *repository.CredentialRepository
	codec       security.Codec
	scale       model.GradeScale
	validate    *validator.Validator
	defaultPwd  string
	log         zerolog.Logger
}

// NewRegistrarService creates a new RegistrarService.
func NewRegistrarService(
	students *repository.StudentRepository,
	courses *repository.CourseRepository,
	professors *repository.ProfessorRepository,
	credentials *repository.CredentialRepository,
	codec security.Codec,
	scale model.GradeScale,
	validate *validator.Validator,
	defaultPassword string,
	log zerolog.Logger,
) *RegistrarService {
	return &RegistrarService{
		students:    students,
		courses:     courses,
		professors:  professors,
		credentials: credentials,
		codec:       codec,
		scale:       scale,
		validate:    validate,
		defaultPwd:  defaultPassword,
		log:         log,
	}
}

// CreateStudent validates the request, checks the course reference,
// inserts the student row, then inserts the matching credential row with
// role student. An empty request password falls back to the configured
// default (the professor-enrolls flow); self-registration always
// supplies one.
func (s *RegistrarService) CreateStudent(req model.CreateStudentRequest) (*model.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkCourseRef(req.CourseID); err != nil {
		return nil, err
	}

	student := &model.Student{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CourseID:  req.CourseID,
		Grade:     model.GradeUnavailable,
		Marks:     req.Marks,
	}
	if req.Marks != nil {
		student.Grade = s.scale.Letter(*req.Marks)
	}

	if err := s.students.Create(student); err != nil {
		return nil, err
	}
	if err := s.createCredential(req.Email, req.Password, model.RoleStudent); err != nil {
		return nil, response.WrapError(response.ErrPartialCascade, err,
			"student %q written but credential row failed", req.Email)
	}

	s.log.Info().Str("email", req.Email).Str("course", req.CourseID).Msg("student created")
	return student, nil
}

// CreateProfessor validates the request, checks the course reference
// (the TBD sentinel skips the check), inserts the professor row, then
// inserts the matching credential row with role professor.
func (s *RegistrarService) CreateProfessor(req model.CreateProfessorRequest) (*model.Professor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	courseID := req.CourseID
	if courseID == "" {
		courseID = model.CourseTBD
	}
	if courseID != model.CourseTBD {
		if err := s.checkCourseRef(courseID); err != nil {
			return nil, err
		}
	}

	professor := &model.Professor{
		ID:       req.ID,
		Name:     req.Name,
		Rank:     req.Rank,
		CourseID: courseID,
	}

	if err := s.professors.Create(professor); err != nil {
		return nil, err
	}
	if err := s.createCredential(req.ID, req.Password, model.RoleProfessor); err != nil {
		return nil, response.WrapError(response.ErrPartialCascade, err,
			"professor %q written but credential row failed", req.ID)
	}

	s.log.Info().Str("id", req.ID).Str("course", courseID).Msg("professor created")
	return professor, nil
}

// DeleteStudent removes the student row and then the matching credential
// row. A credential failure after the student row is gone surfaces as
// PARTIAL_CASCADE.
func (s *RegistrarService) DeleteStudent(email string) error {
	if err := s.students.Delete(email); err != nil {
		return err
	}
	if err := s.credentials.Delete(email); err != nil {
		return response.WrapError(response.ErrPartialCascade, err,
			"student %q removed but credential row remains", email)
	}
	s.log.Info().Str("email", email).Msg("student deleted")
	return nil
}

// DeleteProfessor removes the professor row and then the matching
// credential row, with the same partial-failure reporting as
// DeleteStudent.
func (s *RegistrarService) DeleteProfessor(id string) error {
	if err := s.professors.Delete(id); err != nil {
		return err
	}
	if err := s.credentials.Delete(id); err != nil {
		return response.WrapError(response.ErrPartialCascade, err,
			"professor %q removed but credential row remains", id)
	}
	s.log.Info().Str("id", id).Msg("professor deleted")
	return nil
}

// ReassignCourse points the person's course reference at newCourseID
// after checking that the course exists.
func (s *RegistrarService) ReassignCourse(role model.Role, key, newCourseID string) error {
	if err := s.checkCourseRef(newCourseID); err != nil {
		return err
	}
	switch role {
	case model.RoleStudent:
		return s.students.Update(key, func(st *model.Student) error {
			st.CourseID = newCourseID
			return nil
		})
	case model.RoleProfessor:
		return s.professors.Update(key, func(p *model.Professor) error {
			p.CourseID = newCourseID
			return nil
		})
	default:
		return response.NewError(response.ErrValidation, "unknown role %q", role)
	}
}

// AssignMarks sets a student's marks and recomputes the grade.
func (s *RegistrarService) AssignMarks(email string, marks int) error {
	if marks < 0 || marks > 100 {
		return response.NewError(response.ErrValidation, "marks %d out of range [0,100]", marks)
	}
	return s.students.Update(email, func(st *model.Student) error {
		st.Marks = &marks
		st.Grade = s.scale.Letter(marks)
		return nil
	})
}

// UpdateStudent applies a partial update to a student's name fields.
func (s *RegistrarService) UpdateStudent(email string, req model.UpdateStudentRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	return s.students.Update(email, func(st *model.Student) error {
		if req.FirstName != "" {
			st.FirstName = req.FirstName
		}
		if req.LastName != "" {
			st.LastName = req.LastName
		}
		return nil
	})
}

// UpdateProfessor applies a partial update to a professor's name and rank.
func (s *RegistrarService) UpdateProfessor(id string, req model.UpdateProfessorRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	return s.professors.Update(id, func(p *model.Professor) error {
		if req.Name != "" {
			p.Name = req.Name
		}
		if req.Rank != "" {
			p.Rank = req.Rank
		}
		return nil
	})
}

// CreateCourse validates and inserts a new course.
func (s *RegistrarService) CreateCourse(req model.CreateCourseRequest) (*model.Course, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	course := &model.Course{
		ID:          req.ID,
		Name:        req.Name,
		Credits:     req.Credits,
		Description: req.Description,
	}
	if err := s.courses.Create(course); err != nil {
		return nil, err
	}
	s.log.Info().Str("course", req.ID).Msg("course created")
	return course, nil
}

// UpdateCourse applies a partial update to a course.
func (s *RegistrarService) UpdateCourse(id string, req model.UpdateCourseRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	return s.courses.Update(id, func(c *model.Course) error {
		if req.Name != "" {
			c.Name = req.Name
		}
		if req.Credits != nil {
			c.Credits = *req.Credits
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		return nil
	})
}

// DeleteCourse removes the course row only. Students and professors
// still referencing it are deliberately not cascaded; their references
// become visible as orphans on later lookups. Any such rows are counted
// and logged so the operator knows.
func (s *RegistrarService) DeleteCourse(id string) error {
	if err := s.courses.Delete(id); err != nil {
		return err
	}

	dangling := 0
	if students, err := s.students.ListByCourse(id); err == nil {
		dangling += len(students)
	}
	if professors, err := s.professors.List(); err == nil {
		for _, p := range professors {
			if p.CourseID == id {
				dangling++
			}
		}
	}
	if dangling > 0 {
		s.log.Warn().Str("course", id).Int("dangling_refs", dangling).
			Msg("course deleted with records still referencing it")
	}
	return nil
}

// SweepOrphans returns the user ids of credential rows that have no
// matching student or professor profile — the residue of an interrupted
// cascade. Callers run it at startup and log the result; reconciliation
// stays manual.
func (s *RegistrarService) SweepOrphans() ([]string, error) {
	creds, err := s.credentials.List()
	if err != nil {
		return nil, err
	}

	var orphans []string
	for _, c := range creds {
		switch c.Role {
		case model.RoleStudent:
			if _, err := s.students.GetByEmail(c.UserID); response.IsCode(err, response.ErrNotFound) {
				orphans = append(orphans, c.UserID)
			}
		case model.RoleProfessor:
			if _, err := s.professors.GetByID(c.UserID); response.IsCode(err, response.ErrNotFound) {
				orphans = append(orphans, c.UserID)
			}
		default:
			orphans = append(orphans, c.UserID)
		}
	}
	return orphans, nil
}

// checkCourseRef fails with DANGLING_REFERENCE unless the course exists.
func (s *RegistrarService) checkCourseRef(courseID string) error {
	ok, err := s.courses.Exists(courseID)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(response.ErrDanglingReference, "course %q does not exist", courseID)
	}
	return nil
}

// createCredential encodes the password (default when empty) and inserts
// the credential row.
func (s *RegistrarService) createCredential(userID, password string, role model.Role) error {
	if password == "" {
		password = s.defaultPwd
	}
	encoded, err := s.codec.Encode(password)
	if err != nil {
		return err
	}
	return s.credentials.Create(&model.Credential{
		UserID:   userID,
		Password: encoded,
		Role:     role,
	})
}
