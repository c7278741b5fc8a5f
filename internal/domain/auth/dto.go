package auth

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Role       user.Role `json:"role"`
	Identifier string    `json:"identifier"` // namaLengkap for students, username for staff
	Password   string    `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Role != user.RoleSiswa && r.Role != user.RoleAdmin && r.Role != user.RoleSekretaris {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be Siswa, Admin or Sekretaris"})
	}
	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{Field: "identifier", Message: "identifier is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	ExpiresAt   int64       `json:"expiresAt"`
	User        interface{} `json:"user"`
}

// Service defines authentication operations.
type Service interface {
	// Login authenticates a student (by full name) or a staff account
	// (by username) and issues an access token. Staff logins are also
	// dispatched to the sheet fire-and-forget for the audit trail there.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
