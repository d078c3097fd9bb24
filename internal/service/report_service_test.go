package service

import (
	"testing"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMarkedStudents(t *testing.T, env *testEnv, courseID string, marks []int) {
	t.Helper()
	env.seedCourse(t, courseID)
	for i, m := range marks {
		require.NoError(t, env.students.Create(&model.Student{
			Email:     courseID + string(rune('a'+i)) + "@x.edu",
			FirstName: "S",
			LastName:  "T",
			CourseID:  courseID,
			Grade:     model.DefaultGradeScale().Letter(m),
			Marks:     intPtr(m),
		}))
	}
}

func TestCourseStatistics(t *testing.T) {
	env := newTestEnv(t)
	seedMarkedStudents(t, env, "C1", []int{70, 90, 60, 80, 100})

	stats, err := env.reports.CourseStatistics("C1")
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, 80.0, stats.Average, 0.001)
	assert.Equal(t, 80, stats.Median) // upper median of sorted marks
	assert.Equal(t, 60, stats.Min)
	assert.Equal(t, 100, stats.Max)
}

func TestCourseStatisticsEvenCount(t *testing.T) {
	env := newTestEnv(t)
	seedMarkedStudents(t, env, "C1", []int{60, 70, 80, 90})

	stats, err := env.reports.CourseStatistics("C1")
	require.NoError(t, err)
	assert.Equal(t, 80, stats.Median)
}

func TestCourseStatisticsNoMarkedStudents(t *testing.T) {
	env := newTestEnv(t)
	env.seedCourse(t, "C1")
	require.NoError(t, env.students.Create(&model.Student{
		Email: "s@x.edu", FirstName: "S", LastName: "T", CourseID: "C1",
		Grade: model.GradeUnavailable,
	}))

	_, err := env.reports.CourseStatistics("C1")
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}

func TestGradeReport(t *testing.T) {
	env := newTestEnv(t)
	seedMarkedStudents(t, env, "C1", []int{55, 75, 95})

	report, err := env.reports.GradeReport("C1a@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "C1a@x.edu", report.Student.Email)
	assert.Equal(t, 55, report.CourseMin)
	assert.Equal(t, 95, report.CourseMax)
}

func TestGradeReportUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.GradeReport("nobody@x.edu")
	assert.True(t, response.IsCode(err, response.ErrNotFound))
}
