package service

import (
	"testing"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/security"
	"github.com/checkmygrade/checkmygrade/internal/store"
	"github.com/checkmygrade/checkmygrade/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over a throwaway data dir. The
// Caesar codec keeps the tests fast; digest-specific behavior has its
// own tests.
type testEnv struct {
	students    *repository.StudentRepository
	courses     *repository.CourseRepository
	professors  *repository.ProfessorRepository
	credentials *repository.CredentialRepository
	registrar   *RegistrarService
	auth        *AuthService
	reports     *ReportService
	codec       security.Codec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New(t.TempDir(), zerolog.Nop())
	env := &testEnv{
		students:    repository.NewStudentRepository(st),
		courses:     repository.NewCourseRepository(st),
		professors:  repository.NewProfessorRepository(st),
		credentials: repository.NewCredentialRepository(st),
		codec:       security.NewCaesar(3),
	}
	env.registrar = NewRegistrarService(
		env.students, env.courses, env.professors, env.credentials,
		env.codec, model.DefaultGradeScale(), validator.New(), "default", zerolog.Nop(),
	)
	env.auth = NewAuthService(env.credentials, env.registrar, env.codec, zerolog.Nop())
	env.reports = NewReportService(env.students, zerolog.Nop())
	return env
}

// seedCourse inserts a course directly, bypassing request validation.
func (e *testEnv) seedCourse(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, e.courses.Create(&model.Course{
		ID: id, Name: "Course " + id, Credits: 3,
	}))
}

func intPtr(n int) *int { return &n }
