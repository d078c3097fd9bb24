package repository

import (
	"testing"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(t.TempDir(), zerolog.Nop())
}

func intPtr(n int) *int { return &n }

func testStudent(email string) *model.Student {
	return &model.Student{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		CourseID:  "DATA200",
		Grade:     "A",
		Marks:     intPtr(95),
	}
}

func TestStudentCreateAndGet(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	require.NoError(t, repo.Create(testStudent("s@x.edu")))

	got, err := repo.GetByEmail("s@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	require.NotNil(t, got.Marks)
	assert.Equal(t, 95, *got.Marks)
}

func TestStudentGetMissing(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))

	_, err := repo.GetByEmail("nobody@x.edu")
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}

func TestStudentDuplicateKeyLeavesTableUnchanged(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	require.NoError(t, repo.Create(testStudent("s@x.edu")))

	dup := testStudent("s@x.edu")
	dup.FirstName = "Impostor"
	err := repo.Create(dup)
	assert.True(t, response.IsCode(err, response.ErrDuplicateKey))

	students, err := repo.List()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ada", students[0].FirstName)
}

func TestStudentMarksSentinelRoundTrip(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	s := testStudent("s@x.edu")
	s.Marks = nil
	s.Grade = ""
	require.NoError(t, repo.Create(s))

	got, err := repo.GetByEmail("s@x.edu")
	require.NoError(t, err)
	assert.Nil(t, got.Marks)
	assert.Equal(t, model.GradeUnavailable, got.Grade)
}

func TestStudentValidation(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))

	s := testStudent("s@x.edu")
	s.Marks = intPtr(101)
	assert.True(t, response.IsCode(repo.Create(s), response.ErrValidation))

	s = testStudent("s@x.edu")
	s.CourseID = ""
	assert.True(t, response.IsCode(repo.Create(s), response.ErrValidation))
}

func TestStudentUpdate(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	require.NoError(t, repo.Create(testStudent("s@x.edu")))

	require.NoError(t, repo.Update("s@x.edu", func(s *model.Student) error {
		s.LastName = "Byron"
		return nil
	}))

	got, err := repo.GetByEmail("s@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "Byron", got.LastName)
}

func TestStudentUpdateMissing(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))

	err := repo.Update("nobody@x.edu", func(*model.Student) error { return nil })
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}

func TestStudentUpdateRejectsInvalidMutation(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	require.NoError(t, repo.Create(testStudent("s@x.edu")))

	err := repo.Update("s@x.edu", func(s *model.Student) error {
		s.Marks = intPtr(-1)
		return nil
	})
	assert.True(t, response.IsCode(err, response.ErrValidation))

	got, err := repo.GetByEmail("s@x.edu")
	require.NoError(t, err)
	assert.Equal(t, 95, *got.Marks)
}

func TestStudentDeleteIsIdempotent(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	require.NoError(t, repo.Create(testStudent("s@x.edu")))

	require.NoError(t, repo.Delete("s@x.edu"))
	require.NoError(t, repo.Delete("s@x.edu")) // second delete is a no-op

	students, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestStudentListByCourse(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	a := testStudent("a@x.edu")
	b := testStudent("b@x.edu")
	b.CourseID = "MATH101"
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	students, err := repo.ListByCourse("MATH101")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "b@x.edu", students[0].Email)
}
