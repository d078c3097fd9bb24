package menu

import (
	"fmt"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/service"
)

// studentMenu is the per-session loop for a student account.
func (m *Menu) studentMenu(session *service.Session) {
	for {
		fmt.Println("\nStudent Menu")
		fmt.Println("1. View Records")
		fmt.Println("2. Check Grades")
		fmt.Println("3. Update Record")
		fmt.Println("4. Change Password")
		fmt.Println("5. Logout")

		switch m.prompt.Line("Select option: ") {
		case "1":
			m.viewStudentRecord(session.Identity)
		case "2":
			m.studentGradeReport(session.Identity)
		case "3":
			m.updateStudentRecord(session.Identity)
		case "4":
			m.changePassword(session.Identity)
		case "5":
			m.log.Info().Str("session", session.ID).Msg("student logged out")
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

func (m *Menu) viewStudentRecord(email string) {
	student, err := m.students.GetByEmail(email)
	if err != nil {
		fail(err)
		return
	}
	printStudent(student)
}

func (m *Menu) studentGradeReport(email string) {
	report, err := m.reports.GradeReport(email)
	if err != nil {
		fail(err)
		return
	}
	printGradeReport(report)
}

// updateStudentRecord lets a student update their own fields. Course
// changes go through the registrar so the reference is checked; marks
// changes recompute the grade.
func (m *Menu) updateStudentRecord(email string) {
	fmt.Println("\nUpdate options:")
	fmt.Println("1. First name")
	fmt.Println("2. Last name")
	fmt.Println("3. Course ID")
	fmt.Println("4. Marks")

	var err error
	switch m.prompt.Line("Select field to update: ") {
	case "1":
		err = m.registrar.UpdateStudent(email, model.UpdateStudentRequest{
			FirstName: m.prompt.Line("New first name: "),
		})
	case "2":
		err = m.registrar.UpdateStudent(email, model.UpdateStudentRequest{
			LastName: m.prompt.Line("New last name: "),
		})
	case "3":
		courseID, ok := m.selectCourse()
		if !ok {
			fmt.Println("Course selection invalid!")
			return
		}
		err = m.registrar.ReassignCourse(model.RoleStudent, email, courseID)
	case "4":
		marks, convErr := m.prompt.Int("New marks (0-100): ")
		if convErr != nil {
			fmt.Println("Marks must be a number.")
			return
		}
		err = m.registrar.AssignMarks(email, marks)
	default:
		fmt.Println("Invalid choice!")
		return
	}

	if err != nil {
		fail(err)
		return
	}
	fmt.Println("Record updated successfully!")
}
