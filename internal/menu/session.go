// Package menu implements the interactive console session: the login
// loop and the per-role menus. It is glue over the service layer — all
// invariants live below it.
package menu

import (
	"fmt"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/service"
	"github.com/rs/zerolog"
)

// Menu drives the interactive session.
type Menu struct {
	students   *repository.StudentRepository
	courses    *repository.CourseRepository
	professors *repository.ProfessorRepository
	registrar  *service.RegistrarService
	auth       *service.AuthService
	reports    *service.ReportService
	prompt     *Prompter
	log        zerolog.Logger
}

// New creates a Menu.
func New(
	students *repository.StudentRepository,
	courses *repository.CourseRepository,
	professors *repository.ProfessorRepository,
	registrar *service.RegistrarService,
	auth *service.AuthService,
	reports *service.ReportService,
	prompt *Prompter,
	log zerolog.Logger,
) *Menu {
	return &Menu{
		students:   students,
		courses:    courses,
		professors: professors,
		registrar:  registrar,
		auth:       auth,
		reports:    reports,
		prompt:     prompt,
		log:        log,
	}
}

// Run is the top-level loop: login or exit.
func (m *Menu) Run() {
	for {
		fmt.Println("\nCheckMyGrade System")
		fmt.Println("1. Login")
		fmt.Println("2. Exit")

		switch m.prompt.Line("Select option: ") {
		case "1":
			session := m.login()
			if session == nil {
				continue
			}
			switch session.Role {
			case model.RoleStudent:
				m.studentMenu(session)
			case model.RoleProfessor:
				m.professorMenu(session)
			}
		case "2":
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

// login runs one pass of the authentication state machine: identity
// lookup, then either a password check (known user) or registration
// (unknown user). A successful registration logs straight in with the
// password just collected.
func (m *Menu) login() *service.Session {
	identity := m.prompt.Line("Email: ")
	if identity == "" {
		return nil
	}

	if _, err := m.auth.Identify(identity); err != nil {
		if !response.IsCode(err, response.ErrNotFound) {
			fail(err)
			return nil
		}
		fmt.Println("New user detected! Let's create an account.")
		password, ok := m.register(identity)
		if !ok {
			return nil
		}
		session, err := m.auth.Login(identity, password)
		if err != nil {
			fail(err)
			return nil
		}
		return session
	}

	password := m.prompt.Password("Password: ")
	session, err := m.auth.Login(identity, password)
	if err != nil {
		fail(err)
		return nil
	}
	fmt.Printf("Login successful for %q.\n", identity)
	return session
}

// register collects role, password, and profile fields for a new user.
// It returns the chosen password so the caller can complete the login.
func (m *Menu) register(identity string) (string, bool) {
	var role model.Role
	for {
		role = model.Role(m.prompt.Line("Choose role (student/professor): "))
		if role.Valid() {
			break
		}
		fmt.Println("Invalid role! Please choose student or professor.")
	}

	password := m.prompt.Password("Set your password: ")
	req := service.RegisterRequest{
		Identity: identity,
		Password: password,
		Role:     role,
	}

	switch role {
	case model.RoleStudent:
		req.FirstName = m.prompt.Line("First name: ")
		req.LastName = m.prompt.Line("Last name: ")
		courseID, ok := m.selectCourse()
		if !ok {
			fmt.Println("Registration failed: no course selected.")
			return "", false
		}
		req.CourseID = courseID
	case model.RoleProfessor:
		req.Name = m.prompt.Line("Professor name: ")
		req.Rank = model.Rank(m.prompt.Line("Rank (Junior/Associate/Senior): "))
		if courseID, ok := m.selectCourse(); ok {
			req.CourseID = courseID
		} else {
			req.CourseID = model.CourseTBD
		}
	}

	if err := m.auth.Register(req); err != nil {
		fmt.Println("Registration failed!")
		fail(err)
		return "", false
	}
	fmt.Printf("Account for %q created successfully!\n", identity)
	return password, true
}

// selectCourse lists available course ids and reads a selection by
// number. Returns false when no courses exist or the choice is invalid.
func (m *Menu) selectCourse() (string, bool) {
	courses, err := m.courses.List()
	if err != nil {
		fail(err)
		return "", false
	}
	if len(courses) == 0 {
		fmt.Println("No courses available!")
		return "", false
	}

	fmt.Println("\nAvailable Courses:")
	for i, c := range courses {
		fmt.Printf("%d. %s\n", i+1, c.ID)
	}
	choice, err := m.prompt.Int("Select course number: ")
	if err != nil || choice < 1 || choice > len(courses) {
		return "", false
	}
	return courses[choice-1].ID, true
}

// changePassword prompts for the old and new password for the session
// identity.
func (m *Menu) changePassword(identity string) {
	oldPass := m.prompt.Password("Current password: ")
	newPass := m.prompt.Password("New password: ")
	if err := m.auth.ChangePassword(identity, oldPass, newPass); err != nil {
		fail(err)
		return
	}
	fmt.Println("Password changed successfully!")
}
