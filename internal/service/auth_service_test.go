package service

import (
	"testing"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/security"
	"github.com/checkmygrade/checkmygrade/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerStudent(t *testing.T, env *testEnv, identity, password string) {
	t.Helper()
	env.seedCourse(t, "C1")
	require.NoError(t, env.auth.Register(RegisterRequest{
		Identity:  identity,
		Password:  password,
		Role:      model.RoleStudent,
		FirstName: "Sam",
		LastName:  "Spade",
		CourseID:  "C1",
	}))
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	session, err := env.auth.Login("s@x.edu", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, session.Role)
	assert.Equal(t, "s@x.edu", session.Identity)
	assert.NotEmpty(t, session.ID)
}

func TestLoginWrongPasswordRejectedWithoutMutation(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	before, err := env.credentials.GetByUserID("s@x.edu")
	require.NoError(t, err)

	_, err = env.auth.Login("s@x.edu", "wrong")
	assert.True(t, response.IsCode(err, response.ErrInvalidCredentials))

	after, err := env.credentials.GetByUserID("s@x.edu")
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}

func TestLoginUnknownIdentityIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login("nobody@x.edu", "whatever")
	assert.True(t, response.IsCode(err, response.ErrNotFound))

	_, err = env.auth.Identify("nobody@x.edu")
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}

func TestRegisterStudentCreatesProfileAndCredential(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	student, err := env.students.GetByEmail("s@x.edu")
	require.NoError(t, err)
	assert.Nil(t, student.Marks, "stub profile starts unmarked")
	assert.Equal(t, model.GradeUnavailable, student.Grade)

	role, err := env.auth.Identify("s@x.edu")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, role)
}

func TestRegisterProfessorUnassigned(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.auth.Register(RegisterRequest{
		Identity: "p@x.edu",
		Password: "chalkdust",
		Role:     model.RoleProfessor,
		Name:     "Dr. Who",
		Rank:     model.RankAssociate,
	}))

	prof, err := env.professors.GetByID("p@x.edu")
	require.NoError(t, err)
	assert.False(t, prof.Assigned())

	session, err := env.auth.Login("p@x.edu", "chalkdust")
	require.NoError(t, err)
	assert.Equal(t, model.RoleProfessor, session.Role)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	err := env.auth.Register(RegisterRequest{
		Identity:  "s@x.edu",
		Password:  "other",
		Role:      model.RoleStudent,
		FirstName: "Sam",
		LastName:  "Spade",
		CourseID:  "C1",
	})
	assert.True(t, response.IsCode(err, response.ErrDuplicateKey))
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	require.NoError(t, env.auth.ChangePassword("s@x.edu", "hunter2", "hunter3"))

	_, err := env.auth.Login("s@x.edu", "hunter2")
	assert.True(t, response.IsCode(err, response.ErrInvalidCredentials))

	session, err := env.auth.Login("s@x.edu", "hunter3")
	require.NoError(t, err)
	assert.Equal(t, "s@x.edu", session.Identity)
}

func TestLoginWithDigestScheme(t *testing.T) {
	env := newTestEnv(t)
	env.codec = security.NewDigest(bcrypt.MinCost)
	env.registrar = NewRegistrarService(
		env.students, env.courses, env.professors, env.credentials,
		env.codec, model.DefaultGradeScale(), validator.New(), "default", zerolog.Nop(),
	)
	env.auth = NewAuthService(env.credentials, env.registrar, env.codec, zerolog.Nop())
	registerStudent(t, env, "s@x.edu", "hunter2")

	cred, err := env.credentials.GetByUserID("s@x.edu")
	require.NoError(t, err)
	assert.NotContains(t, cred.Password, "hunter2", "no plaintext at rest")

	session, err := env.auth.Login("s@x.edu", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, session.Role)

	_, err = env.auth.Login("s@x.edu", "hunter3")
	assert.True(t, response.IsCode(err, response.ErrInvalidCredentials))
}

func TestChangePasswordRejectsWrongOldOrUnknown(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "s@x.edu", "hunter2")

	err := env.auth.ChangePassword("s@x.edu", "wrong", "hunter3")
	assert.True(t, response.IsCode(err, response.ErrInvalidCredentials))

	err = env.auth.ChangePassword("nobody@x.edu", "hunter2", "hunter3")
	assert.True(t, response.IsCode(err, response.ErrInvalidCredentials))
}
