package menu

import (
	"fmt"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/service"
)

// professorMenu is the per-session loop for a professor account.
func (m *Menu) professorMenu(session *service.Session) {
	for {
		fmt.Println("\nProfessor Menu")
		fmt.Println("1. Add Student")
		fmt.Println("2. Update Student Grades")
		fmt.Println("3. View Course Details")
		fmt.Println("4. Show Course Statistics")
		fmt.Println("5. Delete Student")
		fmt.Println("6. Change Password")
		fmt.Println("7. Manage Courses")
		fmt.Println("8. Logout")

		switch m.prompt.Line("Select option: ") {
		case "1":
			m.addStudent(session.Identity)
		case "2":
			m.updateStudentMarks(session.Identity)
		case "3":
			m.viewOwnCourse(session.Identity)
		case "4":
			m.ownCourseStatistics(session.Identity)
		case "5":
			m.deleteStudent(session.Identity)
		case "6":
			m.changePassword(session.Identity)
		case "7":
			m.manageCourses(session.Identity)
		case "8":
			m.log.Info().Str("session", session.ID).Msg("professor logged out")
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

// requireAssigned loads the professor and insists on a real (non-TBD)
// course assignment, which gates every operation on course students.
func (m *Menu) requireAssigned(professorID string) (*model.Professor, bool) {
	prof, err := m.professors.GetByID(professorID)
	if err != nil {
		fail(err)
		return nil, false
	}
	if !prof.Assigned() {
		fmt.Println("You must be assigned to a course first!")
		return nil, false
	}
	return prof, true
}

// courseStudent looks up a student and checks they belong to the
// professor's course.
func (m *Menu) courseStudent(prof *model.Professor, email string) (*model.Student, bool) {
	student, err := m.students.GetByEmail(email)
	if err != nil {
		fmt.Println("Student not found in your course!")
		return nil, false
	}
	if student.CourseID != prof.CourseID {
		fmt.Println("Student not found in your course!")
		return nil, false
	}
	return student, true
}

// addStudent enrolls a new student into the professor's own course with
// the default password.
func (m *Menu) addStudent(professorID string) {
	prof, ok := m.requireAssigned(professorID)
	if !ok {
		return
	}

	req := model.CreateStudentRequest{
		Email:     m.prompt.Line("Student email: "),
		FirstName: m.prompt.Line("First name: "),
		LastName:  m.prompt.Line("Last name: "),
		CourseID:  prof.CourseID,
	}
	if marks, err := m.prompt.Int("Initial marks (0-100): "); err == nil {
		req.Marks = &marks
	}

	if _, err := m.registrar.CreateStudent(req); err != nil {
		fail(err)
		return
	}
	fmt.Printf("Student %q added successfully!\n", req.Email)
}

func (m *Menu) updateStudentMarks(professorID string) {
	prof, ok := m.requireAssigned(professorID)
	if !ok {
		return
	}
	email := m.prompt.Line("Enter student email to update: ")
	if _, ok := m.courseStudent(prof, email); !ok {
		return
	}

	marks, err := m.prompt.Int("Enter new marks (0-100): ")
	if err != nil {
		fmt.Println("Marks must be a number.")
		return
	}
	if err := m.registrar.AssignMarks(email, marks); err != nil {
		fail(err)
		return
	}
	fmt.Println("Grades updated successfully!")
}

func (m *Menu) viewOwnCourse(professorID string) {
	prof, ok := m.requireAssigned(professorID)
	if !ok {
		return
	}
	course, err := m.courses.GetByID(prof.CourseID)
	if err != nil {
		fail(err)
		return
	}
	printCourse(course)
}

func (m *Menu) ownCourseStatistics(professorID string) {
	prof, ok := m.requireAssigned(professorID)
	if !ok {
		return
	}
	stats, err := m.reports.CourseStatistics(prof.CourseID)
	if err != nil {
		fail(err)
		return
	}
	printCourseStatistics(stats)
}

// deleteStudent removes a student of the professor's course along with
// their credential row.
func (m *Menu) deleteStudent(professorID string) {
	prof, ok := m.requireAssigned(professorID)
	if !ok {
		return
	}
	email := m.prompt.Line("Enter student email to delete: ")
	if _, ok := m.courseStudent(prof, email); !ok {
		return
	}
	if err := m.registrar.DeleteStudent(email); err != nil {
		fail(err)
		return
	}
	fmt.Println("Student completely removed from system!")
}

// manageCourses is the course management submenu.
func (m *Menu) manageCourses(professorID string) {
	for {
		fmt.Println("\nCourse Management")
		fmt.Println("1. Add New Course")
		fmt.Println("2. Modify Assigned Course")
		fmt.Println("3. Delete Course")
		fmt.Println("4. View All Courses")
		fmt.Println("5. Back")

		switch m.prompt.Line("Select option: ") {
		case "1":
			m.addCourse()
		case "2":
			m.reassignOwnCourse(professorID)
		case "3":
			if courseID, ok := m.selectCourse(); ok {
				if err := m.registrar.DeleteCourse(courseID); err != nil {
					fail(err)
				} else {
					fmt.Println("Course deleted successfully!")
				}
			}
		case "4":
			courses, err := m.courses.List()
			if err != nil {
				fail(err)
				continue
			}
			printCourses(courses)
		case "5":
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

func (m *Menu) addCourse() {
	req := model.CreateCourseRequest{
		ID:   m.prompt.Line("Course ID: "),
		Name: m.prompt.Line("Course name: "),
	}
	credits, err := m.prompt.Int("Credits: ")
	if err != nil {
		fmt.Println("Credits must be a number.")
		return
	}
	req.Credits = credits
	req.Description = m.prompt.Line("Description: ")

	if _, err := m.registrar.CreateCourse(req); err != nil {
		fail(err)
		return
	}
	fmt.Printf("Course %q added successfully!\n", req.ID)
}

func (m *Menu) reassignOwnCourse(professorID string) {
	courseID, ok := m.selectCourse()
	if !ok {
		return
	}
	if err := m.registrar.ReassignCourse(model.RoleProfessor, professorID, courseID); err != nil {
		fail(err)
		return
	}
	fmt.Println("Course assignment updated!")
}
