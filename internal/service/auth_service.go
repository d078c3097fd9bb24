package service

import (
	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/repository"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/security"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session identifies one authenticated login.
type Session struct {
	ID       string
	Role     model.Role
	Identity string
}

// RegisterRequest is the payload for first-time self-registration. The
// password is always collected from the user — registration never falls
// back to the system default.
type RegisterRequest struct {
	Identity string     `json:"identity" validate:"required,email"`
	Password string     `json:"-" validate:"required,min=4,max=128"`
	Role     model.Role `json:"role" validate:"required,oneof=student professor"`

	// Student profile fields (role student).
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,min=1,max=50"`
	CourseID  string `json:"course_id" validate:"omitempty,max=20"`

	// Professor profile fields (role professor).
	Name string     `json:"name" validate:"omitempty,min=2,max=100"`
	Rank model.Rank `json:"rank" validate:"omitempty,oneof=Junior Associate Senior"`
}

// AuthService validates login attempts against the credential table and
// drives first-time registration through the registrar.
type AuthService struct {
	credentials *repository.CredentialRepository
	registrar   *RegistrarService
	codec       security.Codec
	log         zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	credentials *repository.CredentialRepository,
	registrar *RegistrarService,
	codec security.Codec,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		credentials: credentials,
		registrar:   registrar,
		codec:       codec,
		log:         log,
	}
}

// Identify looks up the credential row for an identity and returns its
// role. An unknown identity fails with NOT_FOUND so the caller can
// branch into registration before any password is collected.
func (s *AuthService) Identify(identity string) (model.Role, error) {
	cred, err := s.credentials.GetByUserID(identity)
	if err != nil {
		return "", err
	}
	return cred.Role, nil
}

// Login checks identity and password against the credential table. A
// match yields a Session; a mismatch fails with INVALID_CREDENTIALS and
// mutates nothing. An unknown identity passes the NOT_FOUND error
// through so the caller can branch into registration. There is no retry
// loop inside this call — the caller re-invokes.
func (s *AuthService) Login(identity, password string) (*Session, error) {
	cred, err := s.credentials.GetByUserID(identity)
	if err != nil {
		return nil, err
	}

	if err := s.codec.Verify(password, cred.Password); err != nil {
		s.log.Warn().Str("identity", identity).Msg("login rejected")
		return nil, response.NewError(response.ErrInvalidCredentials, "wrong password for %q", identity)
	}

	session := &Session{
		ID:       uuid.New().String(),
		Role:     cred.Role,
		Identity: identity,
	}
	s.log.Info().Str("session", session.ID).Str("identity", identity).
		Str("role", string(cred.Role)).Msg("login successful")
	return session, nil
}

// Register creates the stub profile row and credential row for a new
// user. Students start with sentinel grade and marks; professors may
// start unassigned (TBD course).
func (s *AuthService) Register(req RegisterRequest) error {
	// Registration always collects a real password; it never falls back
	// to the system default.
	if len(req.Password) < 4 {
		return response.NewError(response.ErrValidation, "password must be at least 4 characters")
	}

	switch req.Role {
	case model.RoleStudent:
		_, err := s.registrar.CreateStudent(model.CreateStudentRequest{
			Email:     req.Identity,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			CourseID:  req.CourseID,
			Password:  req.Password,
		})
		return err
	case model.RoleProfessor:
		_, err := s.registrar.CreateProfessor(model.CreateProfessorRequest{
			ID:       req.Identity,
			Name:     req.Name,
			Rank:     req.Rank,
			CourseID: req.CourseID,
			Password: req.Password,
		})
		return err
	default:
		return response.NewError(response.ErrValidation, "unknown role %q", req.Role)
	}
}

// ChangePassword re-encodes and persists a new password after verifying
// the old one. An unknown identity or a wrong old password both fail
// with INVALID_CREDENTIALS.
func (s *AuthService) ChangePassword(identity, oldPassword, newPassword string) error {
	cred, err := s.credentials.GetByUserID(identity)
	if err != nil {
		if response.IsCode(err, response.ErrNotFound) {
			return response.NewError(response.ErrInvalidCredentials, "unknown identity %q", identity)
		}
		return err
	}

	if err := s.codec.Verify(oldPassword, cred.Password); err != nil {
		return response.NewError(response.ErrInvalidCredentials, "wrong password for %q", identity)
	}
	if len(newPassword) < 4 {
		return response.NewError(response.ErrValidation, "new password must be at least 4 characters")
	}

	encoded, err := s.codec.Encode(newPassword)
	if err != nil {
		return err
	}
	if err := s.credentials.Update(identity, func(c *model.Credential) error {
		c.Password = encoded
		return nil
	}); err != nil {
		return err
	}

	s.log.Info().Str("identity", identity).Msg("password changed")
	return nil
}
