package main

import (
	"github.com/checkmygrade/checkmygrade/internal/config"
	"github.com/checkmygrade/checkmygrade/internal/logger"
	"github.com/checkmygrade/checkmygrade/internal/menu"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/service"
	"github.com/checkmygrade/checkmygrade/internal/store"
	"github.com/checkmygrade/checkmygrade/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("scheme", string(cfg.PasswordScheme)).
		Msg("Starting CheckMyGrade")

	// ─── Initialize Store & Repositories ───────────────────────────────
	st := store.New(cfg.DataDir, log)
	studentRepo := repository.NewStudentRepository(st)
	courseRepo := repository.NewCourseRepository(st)
	professorRepo := repository.NewProfessorRepository(st)
	credentialRepo := repository.NewCredentialRepository(st)

	// ─── Initialize Services ───────────────────────────────────────────
	validate := validator.New()
	codec := cfg.Codec()
	registrar := service.NewRegistrarService(
		studentRepo, courseRepo, professorRepo, credentialRepo,
		codec, cfg.GradeScale, validate, cfg.DefaultPassword, log,
	)
	auth := service.NewAuthService(credentialRepo, registrar, codec, log)
	reports := service.NewReportService(studentRepo, log)

	// ─── Startup Consistency Sweep ─────────────────────────────────────
	// Cross-table cascades are two-step and non-transactional; an
	// interrupted delete leaves a credential row with no profile.
	if orphans, err := registrar.SweepOrphans(); err != nil {
		log.Warn().Err(err).Msg("consistency sweep failed")
	} else if len(orphans) > 0 {
		log.Warn().Strs("user_ids", orphans).
			Msg("credential rows without a matching profile; reconcile manually")
	}

	// ─── Run Interactive Session ───────────────────────────────────────
	m := menu.New(studentRepo, courseRepo, professorRepo, registrar, auth, reports,
		menu.NewPrompter(), log)
	m.Run()
}
