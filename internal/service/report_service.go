package service

import (
	"sort"
	"time"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/rs/zerolog"
)

// GradeReport is one student's standing within their course.
type GradeReport struct {
	Student   model.Student
	CourseMin int
	CourseMax int
	Elapsed   time.Duration
}

// CourseStatistics aggregates the marks of one course's students.
type CourseStatistics struct {
	CourseID string
	Count    int
	Average  float64
	Median   int
	Min      int
	Max      int
	Elapsed  time.Duration
}

// ReportService computes read-only reports over the student table.
type ReportService struct {
	students *repository.StudentRepository
	log      zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(students *repository.StudentRepository, log zerolog.Logger) *ReportService {
	return &ReportService{students: students, log: log}
}

// GradeReport returns the student's record plus the lowest and highest
// marks among classmates in the same course. Classmates without marks
// are skipped.
func (s *ReportService) GradeReport(email string) (*GradeReport, error) {
	start := time.Now()

	student, err := s.students.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	classmates, err := s.students.ListByCourse(student.CourseID)
	if err != nil {
		return nil, err
	}
	marks := collectMarks(classmates)

	report := &GradeReport{Student: *student}
	if len(marks) > 0 {
		report.CourseMin = marks[0]
		report.CourseMax = marks[len(marks)-1]
	}
	report.Elapsed = time.Since(start)
	return report, nil
}

// CourseStatistics returns average, median, min, and max marks for the
// course. Fails with NOT_FOUND when the course has no marked students.
// The median is the upper median of the sorted marks.
func (s *ReportService) CourseStatistics(courseID string) (*CourseStatistics, error) {
	start := time.Now()

	students, err := s.students.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}
	marks := collectMarks(students)
	if len(marks) == 0 {
		return nil, response.NewError(response.ErrNotFound, "no marked students for course %q", courseID)
	}

	sum := 0
	for _, m := range marks {
		sum += m
	}

	stats := &CourseStatistics{
		CourseID: courseID,
		Count:    len(marks),
		Average:  float64(sum) / float64(len(marks)),
		Median:   marks[len(marks)/2],
		Min:      marks[0],
		Max:      marks[len(marks)-1],
		Elapsed:  time.Since(start),
	}
	s.log.Debug().Str("course", courseID).Int("count", stats.Count).Msg("course statistics computed")
	return stats, nil
}

// collectMarks returns the numeric marks of the given students, sorted
// ascending.
func collectMarks(students []model.Student) []int {
	var marks []int
	for _, st := range students {
		if st.Marks != nil {
			marks = append(marks, *st.Marks)
		}
	}
	sort.Ints(marks)
	return marks
}
