package menu

import (
	"errors"
	"fmt"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/service"
)

// fail prints a user-visible message for err, including field-level
// validation details when present.
func fail(err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		fmt.Println(appErr.Message())
		for field, msg := range appErr.Fields {
			fmt.Printf("  - %s: %s\n", field, msg)
		}
		return
	}
	fmt.Println(response.GetMessage(response.ErrInternal))
}

func printStudent(s *model.Student) {
	marks := model.MarksUnavailable
	if s.Marks != nil {
		marks = fmt.Sprintf("%d", *s.Marks)
	}
	fmt.Println("\nStudent Record:")
	fmt.Printf("  Email:      %s\n", s.Email)
	fmt.Printf("  Name:       %s %s\n", s.FirstName, s.LastName)
	fmt.Printf("  Course:     %s\n", s.CourseID)
	fmt.Printf("  Grade:      %s\n", s.Grade)
	fmt.Printf("  Marks:      %s\n", marks)
}

func printCourse(c *model.Course) {
	fmt.Println("\nCourse Details:")
	fmt.Printf("  ID:          %s\n", c.ID)
	fmt.Printf("  Name:        %s\n", c.Name)
	fmt.Printf("  Credits:     %d\n", c.Credits)
	fmt.Printf("  Description: %s\n", c.Description)
}

func printCourses(courses []model.Course) {
	if len(courses) == 0 {
		fmt.Println("No courses available.")
		return
	}
	fmt.Println("\nAvailable Courses:")
	for _, c := range courses {
		fmt.Printf("  %s: %s (%d credits)\n", c.ID, c.Name, c.Credits)
	}
}

func printGradeReport(r *service.GradeReport) {
	printStudent(&r.Student)
	fmt.Printf("  Course Min: %d\n", r.CourseMin)
	fmt.Printf("  Course Max: %d\n", r.CourseMax)
	fmt.Printf("Report generated in %s\n", r.Elapsed)
}

func printCourseStatistics(st *service.CourseStatistics) {
	fmt.Printf("\nCourse Statistics for %s:\n", st.CourseID)
	fmt.Printf("  Students:      %d\n", st.Count)
	fmt.Printf("  Average Marks: %.2f\n", st.Average)
	fmt.Printf("  Median Marks:  %d\n", st.Median)
	fmt.Printf("  Minimum Marks: %d\n", st.Min)
	fmt.Printf("  Maximum Marks: %d\n", st.Max)
	fmt.Printf("Generated in %s\n", st.Elapsed)
}
