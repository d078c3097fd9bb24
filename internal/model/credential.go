package model

// Role distinguishes student vs professor accounts.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// Valid reports whether the role is one of the known account roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// Credential represents one login row. UserID is the email of the
// matching Student or Professor record; Password holds only the encoded
// form (cipher text or digest), never plaintext.
type Credential struct {
	UserID   string `json:"user_id"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
