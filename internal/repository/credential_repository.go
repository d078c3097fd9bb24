package repository

import (
	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/checkmygrade/checkmygrade/internal/store"
)

const (
	colCredentialUserID   = "User id"
	colCredentialPassword = "Password"
	colCredentialRole     = "Role"
)

// CredentialSchema describes the login table. Only the encoded password
// is persisted, never plaintext.
var CredentialSchema = store.Schema{
	Name:    "login",
	File:    "login.csv",
	Columns: []string{colCredentialUserID, colCredentialPassword, colCredentialRole},
}

// CredentialRepository handles login data access. The user id is the
// email of the matching student or professor, and is unique within the
// table.
type CredentialRepository struct {
	store *store.Store
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(s *store.Store) *CredentialRepository {
	return &CredentialRepository{store: s}
}

// GetByUserID retrieves a credential by user id. Returns a
// NOT_FOUND-coded error when absent.
func (r *CredentialRepository) GetByUserID(userID string) (*model.Credential, error) {
	records, err := r.store.Load(CredentialSchema)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[colCredentialUserID] == userID {
			c := decodeCredential(rec)
			return &c, nil
		}
	}
	return nil, response.NewError(response.ErrNotFound, "credential %q not found", userID)
}

// List retrieves all credentials in file order.
func (r *CredentialRepository) List() ([]model.Credential, error) {
	records, err := r.store.Load(CredentialSchema)
	if err != nil {
		return nil, err
	}
	creds := make([]model.Credential, 0, len(records))
	for _, rec := range records {
		creds = append(creds, decodeCredential(rec))
	}
	return creds, nil
}

// Create inserts a new credential. Fails with DUPLICATE_KEY when the
// user id is already present.
func (r *CredentialRepository) Create(c *model.Credential) error {
	if err := validateCredential(c); err != nil {
		return err
	}
	records, err := r.store.Load(CredentialSchema)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec[colCredentialUserID] == c.UserID {
			return response.NewError(response.ErrDuplicateKey, "credential %q already exists", c.UserID)
		}
	}
	records = append(records, encodeCredential(c))
	return r.store.Save(CredentialSchema, records)
}

// Update loads the credential, applies mutate, re-validates, and
// rewrites the table. Fails with NOT_FOUND when the user id is absent.
func (r *CredentialRepository) Update(userID string, mutate func(*model.Credential) error) error {
	records, err := r.store.Load(CredentialSchema)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec[colCredentialUserID] != userID {
			continue
		}
		c := decodeCredential(rec)
		if err := mutate(&c); err != nil {
			return err
		}
		if err := validateCredential(&c); err != nil {
			return err
		}
		records[i] = encodeCredential(&c)
		return r.store.Save(CredentialSchema, records)
	}
	return response.NewError(response.ErrNotFound, "credential %q not found", userID)
}

// Delete removes the credential row. Idempotent: an absent user id is a
// no-op.
func (r *CredentialRepository) Delete(userID string) error {
	records, err := r.store.Load(CredentialSchema)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec[colCredentialUserID] == userID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return nil
	}
	return r.store.Save(CredentialSchema, kept)
}

func validateCredential(c *model.Credential) error {
	if c.UserID == "" {
		return response.NewError(response.ErrValidation, "credential user id is required")
	}
	if c.Password == "" {
		return response.NewError(response.ErrValidation, "credential password is required")
	}
	if !c.Role.Valid() {
		return response.NewError(response.ErrValidation, "unknown role %q", c.Role)
	}
	return nil
}

func decodeCredential(rec store.Record) model.Credential {
	return model.Credential{
		UserID:   rec[colCredentialUserID],
		Password: rec[colCredentialPassword],
		Role:     model.Role(rec[colCredentialRole]),
	}
}

func encodeCredential(c *model.Credential) store.Record {
	return store.Record{
		colCredentialUserID:   c.UserID,
		colCredentialPassword: c.Password,
		colCredentialRole:     string(c.Role),
	}
}
