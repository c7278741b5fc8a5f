package response

import (
	"errors"
	"net/http"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/auth"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/validator"
	repo "github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUnknownRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, absensi.ErrInvalidQR):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, absensi.ErrAlreadyCompleted):
		Conflict(w, err.Error())
	case errors.Is(err, absensi.ErrAbsensiNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, absensi.ErrStudentNotFound):
		NotFound(w, err.Error())

	// Report domain errors
	case errors.Is(err, laporan.ErrLaporanNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, laporan.ErrStudentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, laporan.ErrAbsensiNotFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, laporan.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAdminNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, schedule.ErrInvalidDay):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, repo.ErrPelanggaranNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
