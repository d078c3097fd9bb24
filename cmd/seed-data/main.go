package main

import (
	"fmt"

	"github.com/checkmygrade/checkmygrade/internal/config"
	"github.com/checkmygrade/checkmygrade/internal/logger"
	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/service"
	"github.com/checkmygrade/checkmygrade/internal/store"
	"github.com/checkmygrade/checkmygrade/internal/validator"
)

// Seeds a demo data set: three courses, two professors, and ten
// students, all with the configured default password.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	st := store.New(cfg.DataDir, log)
	studentRepo := repository.NewStudentRepository(st)
	courseRepo := repository.NewCourseRepository(st)
	professorRepo := repository.NewProfessorRepository(st)
	credentialRepo := repository.NewCredentialRepository(st)

	registrar := service.NewRegistrarService(
		studentRepo, courseRepo, professorRepo, credentialRepo,
		cfg.Codec(), cfg.GradeScale, validator.New(), cfg.DefaultPassword, log,
	)

	fmt.Printf("=== Seeding demo data into %s ===\n", cfg.DataDir)

	courses := []model.CreateCourseRequest{
		{ID: "DATA200", Name: "Introduction to Data Science", Credits: 4, Description: "Data wrangling and analysis basics"},
		{ID: "MATH101", Name: "Calculus I", Credits: 3, Description: "Limits, derivatives, integrals"},
		{ID: "CSE110", Name: "Programming Fundamentals", Credits: 4, Description: "Structured programming in a modern language"},
	}
	for _, req := range courses {
		if _, err := registrar.CreateCourse(req); err != nil {
			if response.IsCode(err, response.ErrDuplicateKey) {
				fmt.Printf("Course %s already exists, skipping\n", req.ID)
				continue
			}
			log.Fatal().Err(err).Str("course", req.ID).Msg("Failed to seed course")
		}
		fmt.Printf("Created course %s\n", req.ID)
	}

	professors := []model.CreateProfessorRequest{
		{ID: "professor_0@mycsu.edu", Name: "Dr. Ada Lovelace", Rank: model.RankSenior, CourseID: "DATA200"},
		{ID: "professor_1@mycsu.edu", Name: "Dr. Alan Turing", Rank: model.RankAssociate, CourseID: "MATH101"},
	}
	for _, req := range professors {
		if _, err := registrar.CreateProfessor(req); err != nil {
			if response.IsCode(err, response.ErrDuplicateKey) {
				fmt.Printf("Professor %s already exists, skipping\n", req.ID)
				continue
			}
			log.Fatal().Err(err).Str("professor", req.ID).Msg("Failed to seed professor")
		}
		fmt.Printf("Created professor %s\n", req.ID)
	}

	firstNames := []string{"Curtis", "Maya", "Jonas", "Priya", "Leo", "Hana", "Omar", "Ines", "Felix", "Tara"}
	lastNames := []string{"Nguyen", "Smith", "Okafor", "Iyer", "Brandt", "Sato", "Haddad", "Costa", "Weber", "Kaur"}
	courseIDs := []string{"DATA200", "MATH101", "CSE110"}

	for i := 0; i < 10; i++ {
		marks := 55 + i*5
		req := model.CreateStudentRequest{
			Email:     fmt.Sprintf("student_%d@mycsu.edu", i),
			FirstName: firstNames[i],
			LastName:  lastNames[i],
			CourseID:  courseIDs[i%len(courseIDs)],
			Marks:     &marks,
		}
		if _, err := registrar.CreateStudent(req); err != nil {
			if response.IsCode(err, response.ErrDuplicateKey) {
				fmt.Printf("Student %s already exists, skipping\n", req.Email)
				continue
			}
			log.Fatal().Err(err).Str("student", req.Email).Msg("Failed to seed student")
		}
		fmt.Printf("Created student %s\n", req.Email)
	}

	fmt.Println("=== Seeding complete ===")
}
