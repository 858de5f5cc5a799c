package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/erlanggafajar/nilai-ict/core"
)

// Roles
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

var AllRoles = []string{RoleAdmin, RoleViewer}

// User is an account in the credential store. Username is unique and immutable
// once created; PasswordHash holds the bcrypt verifier, never the plaintext.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

// SetPassword derives and stores a salted adaptive verifier for pwd.
func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword recomputes with the salt embedded in the stored verifier and
// compares in constant time.
func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterUser contains information needed to create a new User.
// The role is never caller-provided: it is derived by the bootstrap-admin rule.
type RegisterUser struct {
	Username        string `json:"username" validate:"required,min=3,alphanum_"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (ru *RegisterUser) Validate(validate *validator.Validate) error {
	ru.Username = core.CleanString(ru.Username, true /* lower */)
	return validate.Struct(ru)
}
