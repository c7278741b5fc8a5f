package auth

import (
	"context"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/piket-xe8/piket-backend-go/internal/domain/auth"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/jwt"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type service struct {
	students   student.Repository
	admins     user.Repository
	jwtService jwt.Service
	dispatcher *dispatch.Dispatcher
}

// NewAuthService creates a new authentication service
func NewAuthService(students student.Repository, admins user.Repository, jwtService jwt.Service, dispatcher *dispatch.Dispatcher) auth.Service {
	return &service{
		students:   students,
		admins:     admins,
		jwtService: jwtService,
		dispatcher: dispatcher,
	}
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Role == user.RoleSiswa {
		return s.loginStudent(ctx, req)
	}
	return s.loginStaff(ctx, req)
}

func (s *service) loginStudent(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	subject, err := s.students.GetByNamaLengkap(ctx, req.Identifier)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(subject.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(strconv.Itoa(subject.ID), subject.NamaLengkap, user.RoleSiswa)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        subject,
	}, nil
}

func (s *service) loginStaff(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	account, err := s.admins.GetByUsername(ctx, req.Identifier)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if account.Role != req.Role {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(strconv.Itoa(account.ID), account.Nama, account.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	// Staff logins also land in the sheet's audit trail.
	s.dispatcher.Send(ctx, sheet.ActionAdminLogin, map[string]string{
		"username": account.Username,
		"role":     string(account.Role),
	})

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        account,
	}, nil
}
