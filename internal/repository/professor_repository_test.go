package repository

import (
	"testing"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfessor(id string) *model.Professor {
	return &model.Professor{ID: id, Name: "Dr. Grace Hopper", Rank: model.RankSenior, CourseID: "DATA200"}
}

func TestProfessorCreateAndGet(t *testing.T) {
	repo := NewProfessorRepository(newTestStore(t))
	require.NoError(t, repo.Create(testProfessor("p@x.edu")))

	got, err := repo.GetByID("p@x.edu")
	require.NoError(t, err)
	assert.Equal(t, model.RankSenior, got.Rank)
}

func TestProfessorUnknownRankRejected(t *testing.T) {
	repo := NewProfessorRepository(newTestStore(t))

	p := testProfessor("p@x.edu")
	p.Rank = "Emeritus"
	assert.True(t, response.IsCode(repo.Create(p), response.ErrValidation))
}

func TestProfessorEmptyCourseBecomesTBD(t *testing.T) {
	repo := NewProfessorRepository(newTestStore(t))

	p := testProfessor("p@x.edu")
	p.CourseID = ""
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID("p@x.edu")
	require.NoError(t, err)
	assert.Equal(t, model.CourseTBD, got.CourseID)
	assert.False(t, got.Assigned())
}

func TestProfessorDuplicateKey(t *testing.T) {
	repo := NewProfessorRepository(newTestStore(t))
	require.NoError(t, repo.Create(testProfessor("p@x.edu")))

	err := repo.Create(testProfessor("p@x.edu"))
	assert.True(t, response.IsCode(err, response.ErrDuplicateKey))
}

func TestProfessorUpdateAndDelete(t *testing.T) {
	repo := NewProfessorRepository(newTestStore(t))
	require.NoError(t, repo.Create(testProfessor("p@x.edu")))

	require.NoError(t, repo.Update("p@x.edu", func(p *model.Professor) error {
		p.Rank = model.RankJunior
		return nil
	}))
	got, err := repo.GetByID("p@x.edu")
	require.NoError(t, err)
	assert.Equal(t, model.RankJunior, got.Rank)

	require.NoError(t, repo.Delete("p@x.edu"))
	require.NoError(t, repo.Delete("p@x.edu"))
	_, err = repo.GetByID("p@x.edu")
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}
